// Package keyscan finds the message keys a Go program looks up, so they can
// be checked against a catalog and handed to translators.
package keyscan

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

var (
	ErrNotString  = errors.New("not a string constant")
	ErrBadKeyword = errors.New("bad keyword")
	ErrOutOfRange = errors.New("argument index out of range")
)

// stringConstant evaluates an ast.Expr representing a string constant
func stringConstant(expr ast.Expr) (string, error) {
	switch val := expr.(type) {
	case *ast.BasicLit:
		if val.Kind != token.STRING {
			return "", ErrNotString
		}
		s, err := strconv.Unquote(val.Value)
		if err != nil {
			return "", err
		}
		return s, nil
	// Support simple string concatenation
	case *ast.BinaryExpr:
		// we only support string concat
		if val.Op != token.ADD {
			return "", ErrNotString
		}
		left, err := stringConstant(val.X)
		if err != nil {
			return "", err
		}
		right, err := stringConstant(val.Y)
		if err != nil {
			return "", err
		}
		return left + right, nil
	// Support parenthesised expressions
	case *ast.ParenExpr:
		return stringConstant(val.X)
	}
	return "", ErrNotString
}

// Keyword describes a function whose calls look up a message key.
type Keyword struct {
	name, pkg  string
	key, count int
}

// ParseKeyword parses a keyword spec of the form [PKG.]FUNC[:ARG,...]. ARG
// is the 1-based position of the key argument, or of the count argument
// when suffixed with "n". A keyword with a count argument marks its keys as
// plural. The key defaults to the first argument.
func ParseKeyword(spec string) (*Keyword, error) {
	idx := strings.IndexByte(spec, ':')
	var function, pkg string
	var args []string
	if idx >= 0 {
		function = spec[:idx]
		args = strings.Split(spec[idx+1:], ",")
	} else {
		function = spec
	}

	idx = strings.IndexByte(function, '.')
	if idx >= 0 {
		pkg = function[:idx]
		function = function[idx+1:]
		if strings.IndexByte(function, '.') >= 0 {
			return nil, ErrBadKeyword
		}
	}
	if function == "" {
		return nil, ErrBadKeyword
	}

	k := &Keyword{
		name:  function,
		pkg:   pkg,
		key:   0,
		count: -1,
	}

	keySeen := false
	for _, arg := range args {
		if arg == "" {
			return nil, ErrBadKeyword
		}
		isCount := arg[len(arg)-1] == 'n'
		if isCount {
			arg = arg[:len(arg)-1]
		}
		val, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		if val < 1 {
			return nil, ErrBadKeyword
		}
		switch {
		case isCount && k.count < 0:
			k.count = val - 1
		case !isCount && !keySeen:
			k.key = val - 1
			keySeen = true
		default:
			return nil, ErrBadKeyword
		}
	}
	if k.key == k.count {
		return nil, ErrBadKeyword
	}

	return k, nil
}

// Plural reports whether calls matching k pass a count.
func (k *Keyword) Plural() bool {
	return k.count >= 0
}

func (k *Keyword) Match(call *ast.CallExpr) bool {
	var pkg, name string

	switch e := call.Fun.(type) {
	case *ast.Ident:
		name = e.Name
	case *ast.SelectorExpr:
		name = e.Sel.Name
		if ident, ok := e.X.(*ast.Ident); ok {
			pkg = ident.Name
		}
	default:
		return false
	}

	if name != k.name {
		return false
	}
	// If the keyword includes a package qualifier, make sure it matches
	return k.pkg == "" || k.pkg == pkg
}

// Extract returns the key looked up by call.
func (k *Keyword) Extract(call *ast.CallExpr) (string, error) {
	if k.key >= len(call.Args) || k.count >= len(call.Args) {
		return "", ErrOutOfRange
	}
	return stringConstant(call.Args[k.key])
}

// Location is a place where a key is looked up.
type Location struct {
	File     string
	Line     int
	Comments string
}

// Usage collects the lookups of one key.
type Usage struct {
	Plural    bool
	Locations []Location
}

type visitor struct {
	*Scanner

	fset *token.FileSet
	file *ast.File
}

func commentGroupContent(cg *ast.CommentGroup) string {
	var lines []string
	for _, comment := range cg.List {
		for _, line := range strings.Split(comment.Text, "\n") {
			line = strings.TrimPrefix(line, "//")
			line = strings.TrimPrefix(line, "/*")
			line = strings.TrimSuffix(line, "*/")
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, "# "+line+"\n")
			}
		}
	}
	return strings.Join(lines, "")
}

func (v *visitor) findCommentsBefore(pos token.Position) string {
	for i := len(v.file.Comments) - 1; i >= 0; i-- {
		cg := v.file.Comments[i]
		cgPos := v.fset.Position(cg.End())
		if cgPos.Line+1 == pos.Line {
			return commentGroupContent(cg)
		}
	}
	return ""
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	// We're only interested in calls
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return v
	}

	for _, k := range v.Keywords {
		if !k.Match(call) {
			continue
		}

		key, err := k.Extract(call)
		if err != nil {
			break
		}

		pos := v.fset.Position(node.Pos())
		var comments string
		if len(v.CommentTags) != 0 {
			comments = v.findCommentsBefore(pos)
			keep := false
			for _, tag := range v.CommentTags {
				if strings.HasPrefix(comments, "# "+tag) {
					keep = true
					break
				}
			}
			if !keep {
				comments = ""
			}
		}

		usage := v.Keys[key]
		if usage == nil {
			usage = &Usage{}
			v.Keys[key] = usage
		}
		usage.Plural = usage.Plural || k.Plural()
		usage.Locations = append(usage.Locations, Location{
			File:     pos.Filename,
			Line:     pos.Line,
			Comments: comments,
		})
		break
	}
	return v
}

// Scanner extracts message keys from Go source files.
type Scanner struct {
	Keys        map[string]*Usage
	Keywords    []*Keyword
	CommentTags []string
	Directories []string
	NoLocation  bool
}

// DefaultKeywords are the lookup functions of the i18n package.
var DefaultKeywords = []string{
	"Translate:1",
	"TranslateN:1,2n",
	"Gettext:1",
	"NGettext:1,2n",
}

func (s *Scanner) AddDefaultKeywords() {
	for _, spec := range DefaultKeywords {
		kw, err := ParseKeyword(spec)
		if err != nil {
			panic(err)
		}
		s.Keywords = append(s.Keywords, kw)
	}
}

func (s *Scanner) openFile(filename string) (f *os.File, err error) {
	if len(s.Directories) == 0 || filepath.IsAbs(filename) {
		return os.Open(filename)
	}
	for _, dir := range s.Directories {
		f, err = os.Open(filepath.Join(dir, filename))
		if !os.IsNotExist(err) {
			break
		}
	}
	return f, err
}

func (s *Scanner) parseStream(filename string, r io.Reader) (err error) {
	var v visitor
	v.Scanner = s
	v.fset = token.NewFileSet()
	v.file, err = parser.ParseFile(v.fset, filename, r, parser.ParseComments)
	if err != nil {
		return err
	}

	if s.Keys == nil {
		s.Keys = make(map[string]*Usage)
	}
	ast.Walk(&v, v.file)
	return nil
}

func (s *Scanner) ParseFile(filename string) error {
	f, err := s.openFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.parseStream(filename, f)
}

// SortedKeys returns the keys found so far, sorted.
func (s *Scanner) SortedKeys() []string {
	keys := make([]string, 0, len(s.Keys))
	for key := range s.Keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Missing returns the sorted keys for which has reports false.
func (s *Scanner) Missing(has func(key string) bool) []string {
	var missing []string
	for _, key := range s.SortedKeys() {
		if !has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

const tomlTemplateData = `# Translations for {{ .Lang }}.
{{ if .Categories -}}
# Plural keys take the forms: {{ join .Categories ", " }}.
{{ end -}}
{{ if .CreationDate -}}
# Generated {{ .CreationDate }}
{{ end }}
[{{ .Table }}]
{{ range .Keys -}}
{{ "\n" -}}
{{ .Comments -}}
{{ .Positions -}}
{{ .Key }} = {{ .Value }}
{{ end -}}
`

var tomlTemplate = template.Must(template.New("toml").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(tomlTemplateData))

type keyData struct {
	Key       string
	Value     string
	Positions string
	Comments  string
}

// quoteKey returns key as a TOML key, quoting it unless it is a bare key.
func quoteKey(key string) string {
	if key == "" {
		return `""`
	}
	for _, r := range key {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			return strconv.Quote(key)
		}
	}
	return key
}

// WriteTemplate writes a TOML catalog skeleton for lang holding every key
// found, with an empty string to fill in for each of categories on plural
// keys.
func (s *Scanner) WriteTemplate(w io.Writer, lang string, categories []string, creationDate string) error {
	var keys []*keyData
	for _, key := range s.SortedKeys() {
		usage := s.Keys[key]
		data := &keyData{Key: quoteKey(key), Value: `""`}
		if usage.Plural {
			forms := make([]string, len(categories))
			for i, c := range categories {
				forms[i] = c + ` = ""`
			}
			data.Value = "{ " + strings.Join(forms, ", ") + " }"
		}

		locs := append([]Location(nil), usage.Locations...)
		sort.SliceStable(locs, func(i, j int) bool {
			return locs[i].File < locs[j].File || locs[i].File == locs[j].File && locs[i].Line < locs[j].Line
		})
		for _, loc := range locs {
			data.Comments += loc.Comments
			if !s.NoLocation {
				data.Positions += "# " + loc.File + ":" + strconv.Itoa(loc.Line) + "\n"
			}
		}
		keys = append(keys, data)
	}

	return tomlTemplate.Execute(w, struct {
		Lang         string
		Table        string
		Categories   []string
		CreationDate string
		Keys         []*keyData
	}{
		Lang:         lang,
		Table:        quoteKey(lang),
		Categories:   categories,
		CreationDate: creationDate,
		Keys:         keys,
	})
}
