package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "gopkg.in/check.v1"
)

var _ = Suite(&decodeSuite{})

type decodeSuite struct{}

func (decodeSuite) checkLines(c *C, dicts map[string]Dictionary) {
	c.Assert(dicts, HasLen, 2)
	c.Check(dicts["en"]["title"].IsPlural(), Equals, false)
	c.Check(dicts["en"]["title"].Text(), Equals, "Line count")
	c.Check(dicts["sl"]["line"].Categories(), DeepEquals, []Category{One, Two, Few, Other})

	cat, err := New(WithDictionaries(dicts))
	c.Assert(err, IsNil)
	for n, expected := range map[float64]string{
		1: "vrstica", 2: "vrstici", 3: "vrstice", 4: "vrstice", 5: "vrstic", 102: "vrstici",
	} {
		c.Check(cat.TranslateN("line", n, "sl"), Equals, expected, Commentf("n = %v", n))
	}
	c.Check(cat.TranslateN("line", 5, "en"), Equals, "lines")
}

func (s decodeSuite) TestLoadTOML(c *C) {
	dicts, err := LoadFile("testdata/catalog.toml")
	c.Assert(err, IsNil)
	s.checkLines(c, dicts)
}

func (s decodeSuite) TestLoadYAML(c *C) {
	dicts, err := LoadFile("testdata/catalog.yaml")
	c.Assert(err, IsNil)
	s.checkLines(c, dicts)
}

func (decodeSuite) TestLoadFileErrors(c *C) {
	_, err := LoadFile("testdata/catalog.json")
	c.Check(err, ErrorMatches, `unsupported catalog format ".json"`)

	_, err = LoadFile("testdata/missing.toml")
	c.Check(os.IsNotExist(err), Equals, true)

	path := filepath.Join(c.MkDir(), "bad.yml")
	c.Assert(os.WriteFile(path, []byte("en:\n  word:\n    one: word\n"), 0644), IsNil)
	_, err = LoadFile(path)
	c.Check(err, ErrorMatches, `.*bad.yml: en: "word": plural entry has no "other" form`)
}

func (decodeSuite) TestDecodeLowercasesLanguages(c *C) {
	dicts, err := DecodeTOML(strings.NewReader(`["PT-BR"]
word = { one = "palavra", other = "palavras" }
`))
	c.Assert(err, IsNil)
	_, ok := dicts["pt-br"]
	c.Check(ok, Equals, true)
}

func (decodeSuite) TestDecodeErrors(c *C) {
	for _, test := range []struct {
		doc, err string
	}{
		{`[en]
word = { one = "word" }`, `en: "word": plural entry has no "other" form`},
		{`[en]
word = { one = "word", other = "" }`, `en: "word": plural entry has no "other" form`},
		{`[en]
word = { several = "words", other = "words" }`, `en: "word": unknown plural category: "several"`},
		{`[en]
word = { one = 1, other = "words" }`, `en: "word": form "one" is a int64, not a string`},
		{`[en]
count = 3`, `en: "count": unsupported value of type int64`},
		{`[en`, `(?s)cannot decode catalog: .*`},
	} {
		_, err := DecodeTOML(strings.NewReader(test.doc))
		c.Check(err, ErrorMatches, test.err, Commentf("document: %s", test.doc))
	}

	_, err := DecodeYAML(strings.NewReader("en: [1, 2]"))
	c.Check(err, ErrorMatches, "(?s)cannot decode catalog: .*")
}

func (decodeSuite) TestDecodeEmpty(c *C) {
	dicts, err := DecodeYAML(strings.NewReader(""))
	c.Assert(err, IsNil)
	c.Check(dicts, HasLen, 0)

	dicts, err = DecodeTOML(strings.NewReader(""))
	c.Assert(err, IsNil)
	c.Check(dicts, HasLen, 0)
}

func (decodeSuite) TestEntry(c *C) {
	e := Invariant("hello")
	c.Check(e.IsPlural(), Equals, false)
	c.Check(e.Form(Few), Equals, "hello")
	c.Check(e.Categories(), HasLen, 0)

	_, err := Plural(map[Category]string{One: "file"})
	c.Check(err, Equals, ErrMissingOther)

	forms := map[Category]string{One: "file", Few: "", Other: "files"}
	e, err = Plural(forms)
	c.Assert(err, IsNil)
	c.Check(e.IsPlural(), Equals, true)
	c.Check(e.Text(), Equals, "files")
	c.Check(e.Form(One), Equals, "file")
	c.Check(e.Form(Few), Equals, "files")
	c.Check(e.Categories(), DeepEquals, []Category{One, Other})

	// the entry does not share the caller's map
	forms[One] = "changed"
	c.Check(e.Form(One), Equals, "file")

	c.Check(func() { MustPlural(nil) }, PanicMatches, `plural entry has no "other" form`)
}

func (decodeSuite) TestPluralRejectsUnknownCategory(c *C) {
	_, err := Plural(map[Category]string{Category(9): "files", Other: "files"})
	c.Check(errors.Is(err, ErrUnknownCategory), Equals, true)
	c.Check(err, ErrorMatches, `unknown plural category: Category\(9\)`)
}
