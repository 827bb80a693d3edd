package pluralforms

import (
	"fmt"
	"strconv"
)

const (
	eofTok = iota + 256
	numTok
	eqTok
	neTok
	ltTok
	lteTok
	gtTok
	gteTok
	andTok
	orTok
	invalidTok
)

type token struct {
	kind int
	num  int
	pos  int
}

type lexer struct {
	data string
	pos  int
}

func (l *lexer) Lex() token {
	for {
		if l.pos >= len(l.data) {
			return token{kind: eofTok, pos: l.pos}
		}
		if l.data[l.pos] != ' ' && l.data[l.pos] != '\t' {
			break
		}
		l.pos += 1
	}

	pos := l.pos
	result := int(l.data[pos])
	l.pos += 1
	next := func(c byte) bool {
		if l.pos < len(l.data) && l.data[l.pos] == c {
			l.pos += 1
			return true
		}
		return false
	}
	switch result {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for l.pos < len(l.data) && l.data[l.pos] >= '0' && l.data[l.pos] <= '9' {
			l.pos += 1
		}
		if num, err := strconv.ParseInt(l.data[pos:l.pos], 10, 32); err == nil {
			return token{kind: numTok, num: int(num), pos: pos}
		}
		return token{kind: invalidTok, pos: pos}
	case '=':
		if next('=') {
			return token{kind: eqTok, pos: pos}
		}
		return token{kind: invalidTok, pos: pos}
	case '!':
		if next('=') {
			return token{kind: neTok, pos: pos}
		}
		return token{kind: result, pos: pos}
	case '&':
		if next('&') {
			return token{kind: andTok, pos: pos}
		}
		return token{kind: invalidTok, pos: pos}
	case '|':
		if next('|') {
			return token{kind: orTok, pos: pos}
		}
		return token{kind: invalidTok, pos: pos}
	case '<':
		if next('=') {
			return token{kind: lteTok, pos: pos}
		}
		return token{kind: ltTok, pos: pos}
	case '>':
		if next('=') {
			return token{kind: gteTok, pos: pos}
		}
		return token{kind: gtTok, pos: pos}
	case 'n', '?', ':', '(', ')', '*', '/', '%', '+', '-':
		// Return as is
		return token{kind: result, pos: pos}
	case ';', '\n':
		l.pos = len(l.data)
		return token{kind: eofTok, pos: pos}
	default:
		return token{kind: invalidTok, pos: pos}
	}
}

// parser is a recursive descent parser following C operator precedence,
// which is what the Plural-Forms header expressions are written in.
type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() {
	p.tok = p.lex.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("offset %d: %s", p.tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expect(kind int) error {
	if p.tok.kind != kind {
		return p.errorf("expected %s, found %s", tokenName(kind), tokenName(p.tok.kind))
	}
	p.advance()
	return nil
}

func tokenName(kind int) string {
	switch kind {
	case eofTok:
		return "end of expression"
	case numTok:
		return "number"
	case eqTok:
		return "'=='"
	case neTok:
		return "'!='"
	case ltTok:
		return "'<'"
	case lteTok:
		return "'<='"
	case gtTok:
		return "'>'"
	case gteTok:
		return "'>='"
	case andTok:
		return "'&&'"
	case orTok:
		return "'||'"
	case invalidTok:
		return "invalid token"
	}
	return strconv.QuoteRune(rune(kind))
}

func (p *parser) parseTernary() (Expression, error) {
	test, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != '?' {
		return test, nil
	}
	p.advance()
	ifTrue, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	ifFalse, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return ternaryExpr{test: test, ifTrue: ifTrue, ifFalse: ifFalse}, nil
}

// binaryLevel parses a left associative chain of operators at one
// precedence level.
func (p *parser) binaryLevel(operand func() (Expression, error), build func(op int, left, right Expression) (Expression, bool)) (Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op := p.tok.kind
		if _, ok := build(op, nil, nil); !ok {
			return left, nil
		}
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left, _ = build(op, left, right)
	}
}

func (p *parser) parseOr() (Expression, error) {
	return p.binaryLevel(p.parseAnd, func(op int, l, r Expression) (Expression, bool) {
		if op == orTok {
			return orExpr{l, r}, true
		}
		return nil, false
	})
}

func (p *parser) parseAnd() (Expression, error) {
	return p.binaryLevel(p.parseEquality, func(op int, l, r Expression) (Expression, bool) {
		if op == andTok {
			return andExpr{l, r}, true
		}
		return nil, false
	})
}

func (p *parser) parseEquality() (Expression, error) {
	return p.binaryLevel(p.parseRelational, func(op int, l, r Expression) (Expression, bool) {
		switch op {
		case eqTok:
			return eqExpr{l, r}, true
		case neTok:
			return neExpr{l, r}, true
		}
		return nil, false
	})
}

func (p *parser) parseRelational() (Expression, error) {
	return p.binaryLevel(p.parseAdditive, func(op int, l, r Expression) (Expression, bool) {
		switch op {
		case ltTok:
			return ltExpr{l, r}, true
		case lteTok:
			return lteExpr{l, r}, true
		case gtTok:
			return gtExpr{l, r}, true
		case gteTok:
			return gteExpr{l, r}, true
		}
		return nil, false
	})
}

func (p *parser) parseAdditive() (Expression, error) {
	return p.binaryLevel(p.parseMultiplicative, func(op int, l, r Expression) (Expression, bool) {
		switch op {
		case '+':
			return addExpr{l, r}, true
		case '-':
			return subExpr{l, r}, true
		}
		return nil, false
	})
}

func (p *parser) parseMultiplicative() (Expression, error) {
	return p.binaryLevel(p.parseUnary, func(op int, l, r Expression) (Expression, bool) {
		switch op {
		case '*':
			return mulExpr{l, r}, true
		case '/':
			return divExpr{l, r}, true
		case '%':
			return modExpr{l, r}, true
		}
		return nil, false
	})
}

func (p *parser) parseUnary() (Expression, error) {
	switch p.tok.kind {
	case '!':
		p.advance()
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notExpr{sub}, nil
	case '-':
		p.advance()
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negExpr{sub}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expression, error) {
	switch p.tok.kind {
	case numTok:
		e := numberExpr{p.tok.num}
		p.advance()
		return e, nil
	case 'n':
		p.advance()
		return varExpr{}, nil
	case '(':
		p.advance()
		e, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.errorf("unexpected %s", tokenName(p.tok.kind))
}

// Compile a string containing a plural form expression to a Expression object.
func Compile(expr string) (Expression, error) {
	p := parser{lex: &lexer{data: expr}}
	p.advance()
	exp, err := p.parseTernary()
	if err == nil {
		err = p.expect(eofTok)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse expression: %v", err)
	}
	return exp, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(expr string) Expression {
	e, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return e
}
