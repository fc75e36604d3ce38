// Package dto holds the JSON shapes of the reader API.
package dto

import "github.com/helixml/antigone/domain/text"

// Line is one line of the text. Text and speaker are null for a line
// number with no stored row.
type Line struct {
	LineNum  int     `json:"lineNum"`
	LineText *string `json:"line_text"`
	Speaker  *string `json:"speaker"`
}

// NewLine converts a domain Line.
func NewLine(l text.Line) Line {
	return Line{
		LineNum:  l.Number(),
		LineText: l.TextValue(),
		Speaker:  l.SpeakerValue(),
	}
}

// NewLines converts domain lines, preserving order.
func NewLines(lines []text.Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = NewLine(l)
	}
	return out
}

// ToDomain converts back to a domain Line.
func (l Line) ToDomain() text.Line {
	return text.ReconstructLine(l.LineNum, l.LineText, l.Speaker)
}

// Error is the body of every error response.
type Error struct {
	Error string `json:"error"`
}

// Health is the body of the health check.
type Health struct {
	Status string `json:"status"`
}
