package text

import "context"

// LineStore reads lines of the text.
type LineStore interface {
	Line(ctx context.Context, n int) (Line, error)
	Range(ctx context.Context, start, end int) ([]Line, error)
	Speakers(ctx context.Context) ([]string, error)
}
