// Package search provides search query resolution and client-side result
// paging over lexicon entries.
package search

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidMode indicates a search mode other than word or definition.
var ErrInvalidMode = errors.New("invalid search mode")

// Mode selects what a search query is matched against.
type Mode string

// Mode values.
const (
	ModeWord       Mode = "word"
	ModeDefinition Mode = "definition"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWord:
		return ModeWord, nil
	case ModeDefinition:
		return ModeDefinition, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDefinition {
		return ModeWord
	}
	return ModeDefinition
}

// Query is a sanitized search request with an optional speaker filter.
type Query struct {
	mode    Mode
	text    string
	speaker string
}

// NewQuery sanitizes text and builds a Query. When text is blank and a
// speaker is given, the speaker name becomes the query term.
func NewQuery(mode Mode, text, speaker string) Query {
	speaker = strings.TrimSpace(speaker)
	text = strings.TrimSpace(Sanitize(text))
	if text == "" && speaker != "" {
		text = strings.TrimSpace(Sanitize(speaker))
	}
	return Query{mode: mode, text: text, speaker: speaker}
}

// Mode returns the search mode.
func (q Query) Mode() Mode { return q.mode }

// Text returns the sanitized query text.
func (q Query) Text() string { return q.text }

// Speaker returns the speaker filter, or "" for none.
func (q Query) Speaker() string { return q.speaker }

// HasSpeaker reports whether results are filtered by speaker.
func (q Query) HasSpeaker() bool { return q.speaker != "" }

// IsBlank reports whether there is nothing to search for. A blank query
// must not be sent.
func (q Query) IsBlank() bool { return q.text == "" }

// WithSpeaker returns a copy with a different speaker filter. The query
// text is kept.
func (q Query) WithSpeaker(speaker string) Query {
	q.speaker = strings.TrimSpace(speaker)
	return q
}

// Sanitize keeps Latin letters, Greek letters in U+03AC–U+03C9 and
// U+0391–U+03A9, whitespace and apostrophes. Everything else is dropped.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if allowed(r) {
			return r
		}
		return -1
	}, s)
}

func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '\u03AC' && r <= '\u03C9', r >= '\u0391' && r <= '\u03A9':
		return true
	case r == '\'':
		return true
	}
	return unicode.IsSpace(r)
}
