package pluralforms

// Expression is a pluralforms expression. Eval evaluates the expression for
// a given n value. Use pluralforms.Compile to generate Expression instances.
type Expression interface {
	Eval(n uint64) int
}

func logic(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Holds reports whether e evaluates to a non-zero value for n, which is how
// a compiled plural condition is tested against a count operand.
func Holds(e Expression, n uint64) bool {
	return e.Eval(n) != 0
}

type notExpr struct {
	sub Expression
}

func (e notExpr) Eval(n uint64) int {
	return logic(e.sub.Eval(n) == 0)
}

type negExpr struct {
	sub Expression
}

func (e negExpr) Eval(n uint64) int {
	return -e.sub.Eval(n)
}

type binaryExpr struct {
	left  Expression
	right Expression
}

type orExpr binaryExpr

func (e orExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) != 0 || e.right.Eval(n) != 0)
}

type andExpr binaryExpr

func (e andExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) != 0 && e.right.Eval(n) != 0)
}

type eqExpr binaryExpr

func (e eqExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) == e.right.Eval(n))
}

type neExpr binaryExpr

func (e neExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) != e.right.Eval(n))
}

type ltExpr binaryExpr

func (e ltExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) < e.right.Eval(n))
}

type lteExpr binaryExpr

func (e lteExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) <= e.right.Eval(n))
}

type gtExpr binaryExpr

func (e gtExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) > e.right.Eval(n))
}

type gteExpr binaryExpr

func (e gteExpr) Eval(n uint64) int {
	return logic(e.left.Eval(n) >= e.right.Eval(n))
}

type addExpr binaryExpr

func (e addExpr) Eval(n uint64) int {
	return e.left.Eval(n) + e.right.Eval(n)
}

type subExpr binaryExpr

func (e subExpr) Eval(n uint64) int {
	return e.left.Eval(n) - e.right.Eval(n)
}

type mulExpr binaryExpr

func (e mulExpr) Eval(n uint64) int {
	return e.left.Eval(n) * e.right.Eval(n)
}

// Division and modulo by zero evaluate to 0 rather than panicking.
type divExpr binaryExpr

func (e divExpr) Eval(n uint64) int {
	d := e.right.Eval(n)
	if d == 0 {
		return 0
	}
	return e.left.Eval(n) / d
}

type modExpr binaryExpr

func (e modExpr) Eval(n uint64) int {
	d := e.right.Eval(n)
	if d == 0 {
		return 0
	}
	return e.left.Eval(n) % d
}

type ternaryExpr struct {
	test    Expression
	ifTrue  Expression
	ifFalse Expression
}

func (e ternaryExpr) Eval(n uint64) int {
	if e.test.Eval(n) != 0 {
		return e.ifTrue.Eval(n)
	}
	return e.ifFalse.Eval(n)
}

type numberExpr struct {
	value int
}

func (e numberExpr) Eval(n uint64) int {
	return e.value
}

// varExpr is the operand n. Callers keep n within the int range.
type varExpr struct{}

func (e varExpr) Eval(n uint64) int {
	return int(n)
}
