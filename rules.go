package i18n

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wordcount/go-i18n/pluralforms"
)

// Clause pairs a pluralforms condition on the operand n with the category it
// selects.
type Clause struct {
	Condition string
	Category  Category
}

type clause struct {
	cond     pluralforms.Expression
	category Category
}

// Rule is the plural rule of a language. Clauses are tried in order and the
// first whose condition holds decides the category; Fallback is used when
// none does.
type Rule struct {
	clauses  []clause
	fallback Category
}

// NewRule compiles a rule from its clauses.
func NewRule(fallback Category, clauses ...Clause) (*Rule, error) {
	if !fallback.valid() {
		return nil, fmt.Errorf("fallback: %w: %v", ErrUnknownCategory, fallback)
	}
	r := &Rule{fallback: fallback}
	for _, c := range clauses {
		if !c.Category.valid() {
			return nil, fmt.Errorf("clause %q: %w: %v", c.Condition, ErrUnknownCategory, c.Category)
		}
		expr, err := pluralforms.Compile(c.Condition)
		if err != nil {
			return nil, fmt.Errorf("clause %q: %w", c.Condition, err)
		}
		r.clauses = append(r.clauses, clause{cond: expr, category: c.Category})
	}
	return r, nil
}

func mustRule(fallback Category, clauses ...Clause) *Rule {
	r, err := NewRule(fallback, clauses...)
	if err != nil {
		panic(err)
	}
	return r
}

// Category returns the category for the integer operand n.
func (r *Rule) Category(n uint64) Category {
	for _, c := range r.clauses {
		if pluralforms.Holds(c.cond, n) {
			return c.category
		}
	}
	return r.fallback
}

// Categories returns the categories the rule produces, in CLDR order.
func (r *Rule) Categories() []Category {
	var seen [len(categoryNames)]bool
	// every rule in the table repeats with period 100
	for n := uint64(0); n < 200; n++ {
		seen[r.Category(n)] = true
	}
	var result []Category
	for c, ok := range seen {
		if ok {
			result = append(result, Category(c))
		}
	}
	return result
}

var (
	germanicRule = mustRule(Other,
		Clause{"n == 1", One},
	)
	frenchRule = mustRule(Other,
		Clause{"n == 0 || n == 1", One},
	)
	eastSlavicRule = mustRule(Many,
		Clause{"n%10 == 1 && n%100 != 11", One},
		Clause{"n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14)", Few},
	)
	polishRule = mustRule(Many,
		Clause{"n == 1", One},
		Clause{"n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14)", Few},
	)
	czechRule = mustRule(Other,
		Clause{"n == 1", One},
		Clause{"n >= 2 && n <= 4", Few},
	)
	slovenianRule = mustRule(Other,
		Clause{"n%100 == 1", One},
		Clause{"n%100 == 2", Two},
		Clause{"n%100 == 3 || n%100 == 4", Few},
	)

	// defaultRule applies to languages without an entry in rules.
	defaultRule = germanicRule
)

var rules = map[string]*Rule{}

func register(r *Rule, langs ...string) {
	for _, lang := range langs {
		rules[lang] = r
	}
}

func init() {
	register(germanicRule, "en", "es", "it", "nl", "de", "el", "tr", "bg")
	// European Portuguese treats zero as plural
	register(germanicRule, "pt", "pt-pt")
	// Brazilian Portuguese treats zero as singular, like French
	register(frenchRule, "pt-br", "fr")
	register(eastSlavicRule, "ru", "uk", "be", "sr")
	register(polishRule, "pl")
	register(czechRule, "cs", "sk")
	register(slovenianRule, "sl")
}

// LookupRule returns the rule registered for lang.
func LookupRule(lang string) (*Rule, bool) {
	r, ok := rules[strings.ToLower(lang)]
	return r, ok
}

// RuleFor returns the rule for lang, or the default rule when lang has none.
func RuleFor(lang string) *Rule {
	if r, ok := LookupRule(lang); ok {
		return r
	}
	return defaultRule
}

// Languages returns the language tags with a registered plural rule.
func Languages() []string {
	langs := make([]string, 0, len(rules))
	for lang := range rules {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

const (
	// Operands at or above maxOperand are folded into
	// [foldBase, 2*foldBase), which keeps n%10 and n%100.
	maxOperand = 1e15
	foldBase   = 1e6
)

// operand returns the integer operand the rules are evaluated on: the
// integer part of |n|. It reports false for NaN and infinities.
func operand(n float64) (uint64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	i := math.Floor(math.Abs(n))
	if i >= maxOperand {
		i = foldBase + math.Mod(i, foldBase)
	}
	return uint64(i), true
}

// ResolveCategory returns the plural category of n in lang. Sign and
// fraction of n are ignored; NaN and infinities are Other. Unknown
// languages use the English rule.
func ResolveCategory(lang string, n float64) Category {
	i, ok := operand(n)
	if !ok {
		return Other
	}
	return RuleFor(lang).Category(i)
}
