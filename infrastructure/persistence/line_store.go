package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/antigone/domain/repository"
	"github.com/helixml/antigone/domain/text"
	"github.com/helixml/antigone/internal/database"
)

// LineStore reads lines of the text using GORM.
type LineStore struct {
	database.Repository[text.Line, LineModel]
}

// NewLineStore creates a new LineStore.
func NewLineStore(db database.Database) LineStore {
	return LineStore{
		Repository: database.NewRepository[text.Line, LineModel](db, LineMapper{}, "line"),
	}
}

// Line returns line n. A number with no stored row yields a missing line
// rather than an error.
func (s LineStore) Line(ctx context.Context, n int) (text.Line, error) {
	lines, err := s.Find(ctx, repository.WithLineNumber(n), repository.WithLimit(1))
	if err != nil {
		return text.Line{}, err
	}
	if len(lines) == 0 {
		return text.NewMissingLine(n), nil
	}
	return lines[0], nil
}

// Range returns every line number in [start, end] in ascending order.
// Numbers without a stored row are filled with missing lines.
func (s LineStore) Range(ctx context.Context, start, end int) ([]text.Line, error) {
	if end < start {
		return nil, fmt.Errorf("line range %d-%d: end before start", start, end)
	}

	stored, err := s.Find(ctx,
		repository.WithLineRange(start, end),
		repository.WithOrderAsc("line_number"),
	)
	if err != nil {
		return nil, err
	}

	byNumber := make(map[int]text.Line, len(stored))
	for _, l := range stored {
		byNumber[l.Number()] = l
	}

	lines := make([]text.Line, 0, end-start+1)
	for n := start; n <= end; n++ {
		if l, ok := byNumber[n]; ok {
			lines = append(lines, l)
			continue
		}
		lines = append(lines, text.NewMissingLine(n))
	}
	return lines, nil
}

// LastLine returns the highest stored line number, or 0 when nothing has
// been imported.
func (s LineStore) LastLine(ctx context.Context) (int, error) {
	lines, err := s.Find(ctx, repository.WithOrderDesc("line_number"), repository.WithLimit(1))
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}
	return lines[0].Number(), nil
}

// Speakers returns the distinct non-empty speakers of the text, sorted.
func (s LineStore) Speakers(ctx context.Context) ([]string, error) {
	return s.Distinct(ctx, "speaker",
		repository.WithConditionNotEmpty("speaker"),
		repository.WithOrderAsc("speaker"),
	)
}
