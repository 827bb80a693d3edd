package i18n

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMissingOther = errors.New("plural entry has no \"other\" form")

// Entry is a translation of one message key: either an invariant string, or
// a set of plural forms keyed by category. Use Invariant or Plural to
// create one.
type Entry struct {
	text  string
	forms map[Category]string
}

// Invariant returns an entry that does not vary with a count.
func Invariant(text string) Entry {
	return Entry{text: text}
}

// Plural returns an entry with the given plural forms. Empty forms are
// dropped. The Other form is mandatory.
func Plural(forms map[Category]string) (Entry, error) {
	e := Entry{forms: make(map[Category]string, len(forms))}
	for c, s := range forms {
		if !c.valid() {
			return Entry{}, fmt.Errorf("%w: %v", ErrUnknownCategory, c)
		}
		if s != "" {
			e.forms[c] = s
		}
	}
	other, ok := e.forms[Other]
	if !ok {
		return Entry{}, ErrMissingOther
	}
	e.text = other
	return e, nil
}

// MustPlural is like Plural but panics on error.
func MustPlural(forms map[Category]string) Entry {
	e, err := Plural(forms)
	if err != nil {
		panic(err)
	}
	return e
}

// IsPlural reports whether the entry has plural forms.
func (e Entry) IsPlural() bool {
	return e.forms != nil
}

// Text returns the invariant text, or the Other form of a plural entry.
func (e Entry) Text() string {
	return e.text
}

// Form returns the form for category c, falling back to Other. Invariant
// entries return their text for every category.
func (e Entry) Form(c Category) string {
	if s, ok := e.forms[c]; ok {
		return s
	}
	return e.text
}

// Categories returns the categories the entry defines a form for.
func (e Entry) Categories() []Category {
	cs := make([]Category, 0, len(e.forms))
	for c := range e.forms {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs
}
