package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/helixml/antigone/domain/lexicon"
)

// Lexicon looks up the lexical entries of words in the text.
type Lexicon struct {
	store  lexicon.Store
	logger *slog.Logger
}

// NewLexicon creates a new Lexicon service.
func NewLexicon(store lexicon.Store, logger *slog.Logger) *Lexicon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lexicon{
		store:  store,
		logger: logger,
	}
}

// Lookup returns every entry for word, best match first. A word with no
// entries is reported as not found.
func (l *Lexicon) Lookup(ctx context.Context, word string) ([]lexicon.Entry, error) {
	if strings.TrimSpace(word) == "" {
		return nil, invalid("Missing word")
	}
	entries, err := l.store.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, notFound("Word not found")
	}
	l.logger.DebugContext(ctx, "word looked up", slog.String("word", word), slog.Int("entries", len(entries)))
	return entries, nil
}
