// Package i18n resolves CLDR plural categories and looks up localized
// strings in an immutable translation catalog.
//
// Lookups never fail: an unknown language falls back to the default
// language, an unknown key yields the key itself and a missing plural form
// yields the "other" form.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultLanguage is the fallback language of a catalog unless
// WithDefaultLanguage says otherwise.
const DefaultLanguage = "en"

var (
	ErrNoDefault    = errors.New("no dictionary for the default language")
	ErrUndefinedKey = errors.New("key is not defined in the default language")
)

// Dictionary maps message keys to their translation in one language.
type Dictionary map[string]Entry

// LocaleSource reports the ambient language tag used when a lookup does not
// name a language.
type LocaleSource func() string

// Catalog holds the translations of all supported languages. It is
// immutable once New returns and safe for concurrent use.
type Catalog struct {
	dicts       map[string]Dictionary
	defaultLang string
	locale      LocaleSource

	// called when a key is absent from the selected dictionary
	missingKeyHandler func(lang, key string)
}

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// New builds a catalog from the given options. It fails if there is no
// dictionary for the default language, or if a key of another language is
// not defined in the default language.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		dicts:       map[string]Dictionary{},
		defaultLang: DefaultLanguage,
		locale:      UserLanguage,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("cannot apply option: %w", err)
		}
	}

	def, ok := c.dicts[c.defaultLang]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoDefault, c.defaultLang)
	}
	for _, lang := range c.Languages() {
		for key := range c.dicts[lang] {
			if _, ok := def[key]; !ok {
				return nil, fmt.Errorf("%w: %s: %q", ErrUndefinedKey, lang, key)
			}
		}
	}
	return c, nil
}

// WithDefaultLanguage sets the language used when the requested one has no
// dictionary.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return fmt.Errorf("default language cannot be empty")
		}
		c.defaultLang = strings.ToLower(lang)
		return nil
	}
}

// WithDictionary adds the translations of one language. Entries are copied;
// a later dictionary for the same language overrides individual keys.
func WithDictionary(lang string, dict Dictionary) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		lang = strings.ToLower(lang)
		d, ok := c.dicts[lang]
		if !ok {
			d = make(Dictionary, len(dict))
			c.dicts[lang] = d
		}
		for key, entry := range dict {
			d[key] = entry
		}
		return nil
	}
}

// WithDictionaries adds the translations of several languages, as returned
// by DecodeTOML, DecodeYAML or LoadFile.
func WithDictionaries(dicts map[string]Dictionary) Option {
	return func(c *Catalog) error {
		for lang, dict := range dicts {
			if err := WithDictionary(lang, dict)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLocaleSource sets where the ambient language comes from. The default
// is UserLanguage.
func WithLocaleSource(src LocaleSource) Option {
	return func(c *Catalog) error {
		if src == nil {
			return fmt.Errorf("locale source cannot be nil")
		}
		c.locale = src
		return nil
	}
}

// WithMissingKeyHandler sets a function called whenever a lookup does not
// find its key. It is useful to log missing translations during
// development.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = handler
		return nil
	}
}

// DefaultLanguage returns the catalog's fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the languages with a dictionary, the default language
// first and the rest sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.dicts))
	for lang := range c.dicts {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return append([]string{c.defaultLang}, langs...)
}

// Keys returns the message keys of the default language, sorted.
func (c *Catalog) Keys() []string {
	def := c.dicts[c.defaultLang]
	keys := make([]string, 0, len(def))
	for key := range def {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// HasKey reports whether key is defined in the default language.
func (c *Catalog) HasKey(key string) bool {
	_, ok := c.dicts[c.defaultLang][key]
	return ok
}

// Dictionary returns a copy of the dictionary of lang, if there is one.
func (c *Catalog) Dictionary(lang string) (Dictionary, bool) {
	d, ok := c.dicts[strings.ToLower(lang)]
	if !ok {
		return nil, false
	}
	dict := make(Dictionary, len(d))
	for key, entry := range d {
		dict[key] = entry
	}
	return dict, true
}

// Locale returns the translations for lang. An empty lang selects the
// ambient language reported by the catalog's LocaleSource.
func (c *Catalog) Locale(lang string) Locale {
	if lang == "" {
		lang = c.locale()
	}
	lang = strings.ToLower(lang)
	if lang == "" {
		lang = c.defaultLang
	}
	dict, ok := c.dicts[lang]
	if !ok {
		dict = c.dicts[c.defaultLang]
	}
	return Locale{
		lang:    lang,
		dict:    dict,
		missing: c.missingKeyHandler,
	}
}

// UserLocale returns the translations for the ambient language.
func (c *Catalog) UserLocale() Locale {
	return c.Locale("")
}

// Translate returns the translation of key in lang, or in the ambient
// language when lang is empty.
func (c *Catalog) Translate(key, lang string) string {
	return c.Locale(lang).Gettext(key)
}

// TranslateN is like Translate, choosing the plural form for count n.
func (c *Catalog) TranslateN(key string, n float64, lang string) string {
	return c.Locale(lang).NGettext(key, n)
}
