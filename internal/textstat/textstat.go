// Package textstat counts the words and characters of a text.
package textstat

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/wordcount/go-i18n"
)

// A word is a run of ASCII letters, digits and underscores between word
// boundaries.
var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Stats holds the counts of a text.
type Stats struct {
	Words      int
	Characters int
}

// Count returns the statistics of text. Characters are counted as Unicode
// code points.
func Count(text string) Stats {
	return Stats{
		Words:      len(wordPattern.FindAllStringIndex(text, -1)),
		Characters: utf8.RuneCountInString(text),
	}
}

// Add returns the sum of two statistics.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Words:      s.Words + other.Words,
		Characters: s.Characters + other.Characters,
	}
}

// Line renders the statistics as "<n> words, <n> characters" in the
// language of loc.
func (s Stats) Line(loc i18n.Locale) string {
	return fmt.Sprintf("%d %s, %d %s",
		s.Words, loc.NGettext(i18n.KeyWord, float64(s.Words)),
		s.Characters, loc.NGettext(i18n.KeyCharacter, float64(s.Characters)))
}
