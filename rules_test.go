package i18n

import (
	"errors"
	"math"
	"testing"
)

func TestResolveCategory(t *testing.T) {
	for _, test := range []struct {
		lang     string
		n        float64
		expected Category
	}{
		{"en", 0, Other},
		{"en", 1, One},
		{"en", 2, Other},
		{"de", 1, One},
		{"tr", 5, Other},

		{"pt", 0, Other},
		{"pt", 1, One},
		{"pt-pt", 0, Other},
		{"pt-br", 0, One},
		{"pt-br", 1, One},
		{"pt-br", 2, Other},
		{"fr", 0, One},
		{"fr", 1, One},
		{"fr", 2, Other},
		{"bg", 1, One},
		{"bg", 0, Other},

		{"ru", 0, Many},
		{"ru", 1, One},
		{"ru", 2, Few},
		{"ru", 4, Few},
		{"ru", 5, Many},
		{"ru", 11, Many},
		{"ru", 12, Many},
		{"ru", 14, Many},
		{"ru", 21, One},
		{"ru", 22, Few},
		{"ru", 111, Many},
		{"ru", 112, Many},
		{"ru", 101, One},
		{"uk", 23, Few},
		{"be", 31, One},
		{"sr", 15, Many},

		{"pl", 0, Many},
		{"pl", 1, One},
		{"pl", 2, Few},
		{"pl", 5, Many},
		{"pl", 12, Many},
		{"pl", 21, Many},
		{"pl", 22, Few},
		{"pl", 112, Many},
		{"pl", 124, Few},

		{"cs", 0, Other},
		{"cs", 1, One},
		{"cs", 2, Few},
		{"cs", 4, Few},
		{"cs", 5, Other},
		{"cs", 22, Other},
		{"sk", 3, Few},

		{"sl", 0, Other},
		{"sl", 1, One},
		{"sl", 2, Two},
		{"sl", 3, Few},
		{"sl", 4, Few},
		{"sl", 5, Other},
		{"sl", 101, One},
		{"sl", 102, Two},
		{"sl", 104, Few},
		{"sl", 111, Other},
	} {
		got := ResolveCategory(test.lang, test.n)
		if got != test.expected {
			t.Errorf("ResolveCategory(%q, %v) = %s, expected %s", test.lang, test.n, got, test.expected)
		}
	}
}

func TestResolveCategoryUnknownLanguage(t *testing.T) {
	for _, lang := range []string{"xx", "", "pt-xx", "zh", "RU-ru"} {
		assertDeepEqual(t, ResolveCategory(lang, 1), One)
		assertDeepEqual(t, ResolveCategory(lang, 0), Other)
		assertDeepEqual(t, ResolveCategory(lang, 2), Other)
		assertDeepEqual(t, ResolveCategory(lang, 5), Other)
	}
}

func TestResolveCategoryCaseInsensitive(t *testing.T) {
	assertDeepEqual(t, ResolveCategory("RU", 2), Few)
	assertDeepEqual(t, ResolveCategory("Pt-BR", 0), One)
}

func TestResolveCategoryOperand(t *testing.T) {
	// sign and fraction are ignored
	assertDeepEqual(t, ResolveCategory("en", -1), One)
	assertDeepEqual(t, ResolveCategory("en", 1.7), One)
	assertDeepEqual(t, ResolveCategory("ru", -21), One)
	assertDeepEqual(t, ResolveCategory("ru", 2.5), Few)
	assertDeepEqual(t, ResolveCategory("fr", 0.5), One)

	for _, lang := range []string{"en", "ru", "pl", "sl", "xx"} {
		assertDeepEqual(t, ResolveCategory(lang, math.NaN()), Other)
		assertDeepEqual(t, ResolveCategory(lang, math.Inf(1)), Other)
		assertDeepEqual(t, ResolveCategory(lang, math.Inf(-1)), Other)
	}

	// huge values keep their last digits
	assertDeepEqual(t, ResolveCategory("ru", 1e20+0), Many)
	assertDeepEqual(t, ResolveCategory("ru", 1e15+21), One)
	assertDeepEqual(t, ResolveCategory("en", 1e300), Other)
	assertDeepEqual(t, ResolveCategory("en", math.MaxFloat64), Other)
}

func TestSlavicCycle(t *testing.T) {
	for _, lang := range []string{"ru", "uk", "be", "sr", "pl"} {
		// pl treats exactly 1 specially, so start at 2
		for n := 2; n < 1000; n++ {
			got := ResolveCategory(lang, float64(n+100))
			expected := ResolveCategory(lang, float64(n))
			if got != expected {
				t.Errorf("%s: category of %d is %s, of %d is %s", lang, n+100, got, n, expected)
			}
		}
	}
}

func TestOperand(t *testing.T) {
	for _, test := range []struct {
		n        float64
		expected uint64
	}{
		{0, 0},
		{-0.5, 0},
		{3.99, 3},
		{-42.1, 42},
		{1e15, 1000000},
		{1e15 + 21, 1000021},
	} {
		got, ok := operand(test.n)
		if !ok || got != test.expected {
			t.Errorf("operand(%v) = %d, %v, expected %d", test.n, got, ok, test.expected)
		}
	}
	if _, ok := operand(math.NaN()); ok {
		t.Errorf("operand(NaN) unexpectedly ok")
	}
}

func TestRuleCategories(t *testing.T) {
	for _, test := range []struct {
		lang     string
		expected []Category
	}{
		{"en", []Category{One, Other}},
		{"fr", []Category{One, Other}},
		{"ru", []Category{One, Few, Many}},
		{"pl", []Category{One, Few, Many}},
		{"cs", []Category{One, Few, Other}},
		{"sl", []Category{One, Two, Few, Other}},
	} {
		rule, ok := LookupRule(test.lang)
		if !ok {
			t.Fatalf("no rule for %q", test.lang)
		}
		assertDeepEqual(t, rule.Categories(), test.expected)
	}
}

func TestNewRule(t *testing.T) {
	rule, err := NewRule(Other,
		Clause{"n == 0", Zero},
		Clause{"n == 1", One},
	)
	if err != nil {
		t.Fatal(err)
	}
	assertDeepEqual(t, rule.Category(0), Zero)
	assertDeepEqual(t, rule.Category(1), One)
	assertDeepEqual(t, rule.Category(7), Other)

	_, err = NewRule(Other, Clause{"n = 1", One})
	if err == nil {
		t.Errorf("expected an error for a malformed condition")
	}
}

func TestNewRuleUnknownCategory(t *testing.T) {
	rule, err := NewRule(Other, Clause{"n == 1", Category(9)})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if rule != nil {
		t.Errorf("expected no rule, got %v", rule)
	}
	assert_equal(t, err.Error(), `clause "n == 1": unknown plural category: Category(9)`)

	_, err = NewRule(Category(6))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	assert_equal(t, err.Error(), "fallback: unknown plural category: Category(6)")
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	for _, lang := range []string{"en", "pt", "pt-br", "pt-pt", "ru", "uk", "be", "sr", "pl", "cs", "sk", "sl", "fr", "bg"} {
		found := false
		for _, l := range langs {
			if l == lang {
				found = true
			}
		}
		if !found {
			t.Errorf("language %q has no rule", lang)
		}
	}
	for i := 1; i < len(langs); i++ {
		if langs[i-1] >= langs[i] {
			t.Errorf("languages not sorted: %q >= %q", langs[i-1], langs[i])
		}
	}
}

func TestCategoryNames(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		if err != nil {
			t.Fatal(err)
		}
		assertDeepEqual(t, parsed, c)
	}
	if _, err := ParseCategory("several"); err == nil {
		t.Errorf("expected an error for an unknown category")
	}
	assert_equal(t, Category(42).String(), "Category(42)")
}
