package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanWord removes the smooth breathing mark and modifier apostrophe that
// the source text uses for elision, then trims trailing punctuation.
func CleanWord(word string) string {
	word = strings.Map(func(r rune) rune {
		switch r {
		case '\u0313', '\u02BC':
			return -1
		}
		return r
	}, word)
	return strings.TrimRightFunc(word, isTrailingPunct)
}

func isTrailingPunct(r rune) bool {
	switch r {
	case '\u00B7', ',', '.', ';', '\u037E', '\u0387':
		return true
	}
	return false
}

// Normalize strips accents and breathings by decomposing to NFD and
// dropping combining marks, and removes apostrophes.
func Normalize(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(func(r rune) bool {
		return r == '\''
	})))
	out, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return out
}
