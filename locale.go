package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

var osGetenv = os.Getenv

// UserLanguage returns the user's language from the environment, as a
// lowercased BCP 47 tag such as "pt-br". It consults LANGUAGE, LC_ALL,
// LC_MESSAGES and LANG in that order, and returns "" if none names a
// language.
func UserLanguage() string {
	if langs := osGetenv("LANGUAGE"); langs != "" {
		for _, lang := range strings.Split(langs, ":") {
			if tag := NormalizeTag(lang); tag != "" {
				return tag
			}
		}
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := osGetenv(name); value != "" {
			return NormalizeTag(value)
		}
	}
	return ""
}

// NormalizeTag turns a POSIX locale name or a language tag into a lowercased
// BCP 47 tag: "pt_BR.UTF-8@euro" becomes "pt-br". The C and POSIX locales
// yield "". Values that do not parse as a tag are only lowercased.
func NormalizeTag(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}
	tag, err := language.Parse(strings.Replace(locale, "_", "-", -1))
	if err != nil {
		return strings.ToLower(locale)
	}
	return strings.ToLower(tag.String())
}
