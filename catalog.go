package i18n

// Locale is a catalog bound to one language. Its language decides the plural
// rule even when the catalog has no dictionary for it and the default
// language's strings are used.
type Locale struct {
	lang    string
	dict    Dictionary
	missing func(lang, key string)
}

// Language returns the lowercased language tag the locale was created for.
func (l Locale) Language() string {
	return l.lang
}

func (l Locale) findEntry(key string) (Entry, bool) {
	entry, ok := l.dict[key]
	if !ok && l.missing != nil {
		l.missing(l.lang, key)
	}
	return entry, ok
}

// Gettext returns the translation of an invariant message. Unknown keys, and
// plural entries which need a count, yield the key itself.
func (l Locale) Gettext(key string) string {
	entry, ok := l.findEntry(key)
	if !ok || entry.IsPlural() {
		return key
	}
	return entry.Text()
}

// NGettext returns the form of key matching the plural category of n.
// Invariant entries are returned as is and unknown keys yield the key itself.
func (l Locale) NGettext(key string, n float64) string {
	entry, ok := l.findEntry(key)
	if !ok {
		return key
	}
	if !entry.IsPlural() {
		return entry.Text()
	}
	return entry.Form(ResolveCategory(l.lang, n))
}

// Category returns the plural category of n in the locale's language.
func (l Locale) Category(n float64) Category {
	return ResolveCategory(l.lang, n)
}
