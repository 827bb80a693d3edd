package i18n

import (
	"errors"
	"fmt"
)

// Category is a CLDR plural category.
type Category uint8

// Not every language uses every category, but Other is always available.
const (
	Zero Category = iota
	One
	Two
	Few
	Many
	Other
)

var ErrUnknownCategory = errors.New("unknown plural category")

var categoryNames = [...]string{
	Zero:  "zero",
	One:   "one",
	Two:   "two",
	Few:   "few",
	Many:  "many",
	Other: "other",
}

func (c Category) String() string {
	if c.valid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

func (c Category) valid() bool {
	return int(c) < len(categoryNames)
}

// ParseCategory returns the category named by its CLDR keyword.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Categories returns all plural categories in CLDR order.
func Categories() []Category {
	return []Category{Zero, One, Two, Few, Many, Other}
}
