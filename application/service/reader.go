// Package service provides application layer services that orchestrate domain operations.
package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/helixml/antigone/domain/passage"
	"github.com/helixml/antigone/domain/text"
)

// Reader serves lines and pages of the text.
type Reader struct {
	lines  text.LineStore
	nav    passage.Navigator
	logger *slog.Logger
}

// NewReader creates a new Reader service.
func NewReader(lines text.LineStore, nav passage.Navigator, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		lines:  lines,
		nav:    nav,
		logger: logger,
	}
}

// Navigator returns the navigator for the text's dimensions.
func (r *Reader) Navigator() passage.Navigator { return r.nav }

// ParseLineNumber converts a raw parameter to a line number within the text.
func (r *Reader) ParseLineNumber(raw, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > r.nav.TotalLines() {
		return 0, invalid("Invalid %s: must be an integer between 1 and %d", name, r.nav.TotalLines())
	}
	return n, nil
}

// Line returns line n. A line without text is reported as not found.
func (r *Reader) Line(ctx context.Context, n int) (text.Line, error) {
	if err := r.checkLine(n, "start line"); err != nil {
		return text.Line{}, err
	}
	line, err := r.lines.Line(ctx, n)
	if err != nil {
		return text.Line{}, err
	}
	if !line.HasText() {
		return text.Line{}, notFound("Line %d not found", n)
	}
	return line, nil
}

// Lines returns every line in [start, end]. Lines without a stored row are
// included with no text or speaker.
func (r *Reader) Lines(ctx context.Context, start, end int) ([]text.Line, error) {
	if err := r.checkLine(start, "start line"); err != nil {
		return nil, err
	}
	if err := r.checkLine(end, "end line"); err != nil {
		return nil, err
	}
	if start > end {
		return nil, invalid("Start line must be less than or equal to end line")
	}
	r.logger.DebugContext(ctx, "reading lines", slog.Int("start", start), slog.Int("end", end))
	return r.lines.Range(ctx, start, end)
}

// Passage returns the lines of an address produced by the navigator.
func (r *Reader) Passage(ctx context.Context, a passage.Address) ([]text.Line, error) {
	return r.Lines(ctx, a.Start(), a.End())
}

// Page returns the lines of a 1-based reading page.
func (r *Reader) Page(ctx context.Context, page int) ([]text.Line, error) {
	if !r.nav.ValidPage(page) {
		return nil, invalid("Page number out of range (1-%d)", r.nav.PageCount())
	}
	return r.Passage(ctx, r.nav.PageAddress(page))
}

// Speakers returns the distinct speakers of the text.
func (r *Reader) Speakers(ctx context.Context) ([]string, error) {
	speakers, err := r.lines.Speakers(ctx)
	if err != nil {
		return nil, err
	}
	if speakers == nil {
		speakers = []string{}
	}
	return speakers, nil
}

func (r *Reader) checkLine(n int, name string) error {
	if n < 1 || n > r.nav.TotalLines() {
		return invalid("Invalid %s: must be an integer between 1 and %d", name, r.nav.TotalLines())
	}
	return nil
}
