// Package text provides the line records of the text being read.
package text

import "strings"

// Line is one numbered line of the text. Text and speaker are optional:
// a line number inside the text can exist in a range response without a
// stored row, and some lines carry no speaker.
type Line struct {
	number  int
	text    *string
	speaker *string
}

// NewLine creates a Line with text and speaker present. An empty speaker is
// treated as absent.
func NewLine(number int, text, speaker string) Line {
	l := Line{number: number, text: &text}
	if speaker != "" {
		l.speaker = &speaker
	}
	return l
}

// NewMissingLine creates a placeholder for a line number with no stored row.
func NewMissingLine(number int) Line {
	return Line{number: number}
}

// ReconstructLine recreates a Line from nullable persisted or wire values.
func ReconstructLine(number int, text, speaker *string) Line {
	return Line{number: number, text: text, speaker: speaker}
}

// Number returns the 1-based line number.
func (l Line) Number() int { return l.number }

// Text returns the line text, or "" when absent.
func (l Line) Text() string {
	if l.text == nil {
		return ""
	}
	return *l.text
}

// Speaker returns the speaker, or "" when absent.
func (l Line) Speaker() string {
	if l.speaker == nil {
		return ""
	}
	return *l.speaker
}

// TextValue returns the nullable text.
func (l Line) TextValue() *string { return l.text }

// SpeakerValue returns the nullable speaker.
func (l Line) SpeakerValue() *string { return l.speaker }

// HasText reports whether the line has non-empty text.
func (l Line) HasText() bool { return l.text != nil && *l.text != "" }

// HasSpeaker reports whether the line has a speaker.
func (l Line) HasSpeaker() bool { return l.speaker != nil && *l.speaker != "" }

// Words splits the line into its selectable tokens. The position of a token
// in the returned slice is its index within the line.
func (l Line) Words() []string {
	return strings.Fields(l.Text())
}
