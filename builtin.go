package i18n

import (
	_ "embed"
	"strings"
	"sync"
)

// Message keys of the builtin catalog.
const (
	KeyWord      = "word"
	KeyCharacter = "character"
	KeyTooltip   = "tooltip"
)

//go:embed builtin.toml
var builtinTOML string

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the catalog compiled into the package. It is built on
// first use and shared afterwards.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		cat, err := NewBuiltin()
		if err != nil {
			panic("cannot load builtin catalog: " + err.Error())
		}
		builtinCatalog = cat
	})
	return builtinCatalog
}

// NewBuiltin builds a fresh catalog from the builtin translations, with
// extra options applied after them.
func NewBuiltin(opts ...Option) (*Catalog, error) {
	dicts, err := DecodeTOML(strings.NewReader(builtinTOML))
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithDictionaries(dicts)}, opts...)...)
}
