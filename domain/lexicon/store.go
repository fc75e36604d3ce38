package lexicon

import "context"

// Store looks up lexical entries.
type Store interface {
	// Lookup returns every entry matching word, best match first.
	Lookup(ctx context.Context, word string) ([]Entry, error)
	// LemmaIDsByDefinition returns the lemmas whose definitions match query.
	LemmaIDsByDefinition(ctx context.Context, query string) ([]int64, error)
	// FormByLemmaID returns a written form of the lemma.
	FormByLemmaID(ctx context.Context, id int64) (string, error)
}
