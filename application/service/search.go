package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/search"
	"github.com/helixml/antigone/internal/database"
	"golang.org/x/sync/errgroup"
)

// DefaultSearchParallelism bounds concurrent lookups in definition search.
const DefaultSearchParallelism = 4

// Search resolves word and definition queries to lexical entries.
type Search struct {
	store       lexicon.Store
	parallelism int
	logger      *slog.Logger
}

// NewSearch creates a new Search service.
func NewSearch(store lexicon.Store, logger *slog.Logger) *Search {
	if logger == nil {
		logger = slog.Default()
	}
	return &Search{
		store:       store,
		parallelism: DefaultSearchParallelism,
		logger:      logger,
	}
}

// Search runs a query in the named mode. Word mode looks the text up
// directly. Definition mode finds lemmas whose definitions match and looks
// up a form of each, keeping the order the lemmas were matched in. No
// matches is an empty result, not an error.
func (s *Search) Search(ctx context.Context, mode, q string) ([]lexicon.Entry, error) {
	q = strings.TrimSpace(q)
	if q == "" || strings.TrimSpace(mode) == "" {
		return nil, invalid("Missing parameters")
	}
	m, err := search.ParseMode(mode)
	if err != nil {
		return nil, invalid("Invalid search mode")
	}

	var entries []lexicon.Entry
	switch m {
	case search.ModeDefinition:
		entries, err = s.byDefinition(ctx, q)
	default:
		entries, err = s.store.Lookup(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []lexicon.Entry{}
	}

	s.logger.DebugContext(ctx, "search complete",
		slog.String("mode", string(m)),
		slog.String("query", q),
		slog.Int("results", len(entries)),
	)
	return entries, nil
}

// Query runs a prepared query and applies its speaker filter. A blank
// query returns no results without searching.
func (s *Search) Query(ctx context.Context, q search.Query) ([]lexicon.Entry, error) {
	if q.IsBlank() {
		return []lexicon.Entry{}, nil
	}
	entries, err := s.Search(ctx, string(q.Mode()), q.Text())
	if err != nil {
		return nil, err
	}
	return search.FilterBySpeaker(entries, q.Speaker()), nil
}

func (s *Search) byDefinition(ctx context.Context, q string) ([]lexicon.Entry, error) {
	ids, err := s.store.LemmaIDsByDefinition(ctx, q)
	if err != nil {
		return nil, err
	}

	results := make([][]lexicon.Entry, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, id := range ids {
		g.Go(func() error {
			form, err := s.store.FormByLemmaID(ctx, id)
			if errors.Is(err, database.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			entries, err := s.store.Lookup(ctx, form)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []lexicon.Entry
	for _, r := range results {
		entries = append(entries, r...)
	}
	return entries, nil
}
