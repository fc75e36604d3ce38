package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/search"
	"github.com/helixml/antigone/infrastructure/persistence"
	"github.com/helixml/antigone/internal/database"
	"github.com/helixml/antigone/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLexiconStore implements lexicon.Store for testing.
type fakeLexiconStore struct {
	mu      sync.Mutex
	entries map[string][]lexicon.Entry
	ids     []int64
	forms   map[int64]string
	err     error
	lookups []string
}

func (f *fakeLexiconStore) Lookup(_ context.Context, word string) ([]lexicon.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups = append(f.lookups, word)
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[word], nil
}

func (f *fakeLexiconStore) LemmaIDsByDefinition(_ context.Context, _ string) ([]int64, error) {
	return f.ids, f.err
}

func (f *fakeLexiconStore) FormByLemmaID(_ context.Context, id int64) (string, error) {
	form, ok := f.forms[id]
	if !ok {
		return "", fmt.Errorf("%w: lemma %d", database.ErrNotFound, id)
	}
	return form, nil
}

func entry(id int64, form string, line int, speaker string) lexicon.Entry {
	return lexicon.NewEntry(lexicon.NewInfo(id, form, form, line, "n-s---mn-", speaker), lexicon.ParsePostag("n-s---mn-"), nil)
}

func TestSearch_Validation(t *testing.T) {
	s := NewSearch(&fakeLexiconStore{}, nil)
	ctx := context.Background()

	_, err := s.Search(ctx, "word", "  ")
	require.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Missing parameters")

	_, err = s.Search(ctx, "", "κάρα")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Search(ctx, "lemma", "κάρα")
	require.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Invalid search mode")
}

func TestSearch_WordMode(t *testing.T) {
	store := &fakeLexiconStore{entries: map[string][]lexicon.Entry{
		"κάρα": {entry(2, "κάρα", 1, "Antigone")},
	}}
	s := NewSearch(store, nil)

	got, err := s.Search(context.Background(), "word", " κάρα ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"κάρα"}, store.lookups)

	got, err = s.Search(context.Background(), "word", "nothing")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_DefinitionModeKeepsLemmaOrder(t *testing.T) {
	store := &fakeLexiconStore{
		ids:   []int64{3, 1, 9, 2},
		forms: map[int64]string{1: "alpha", 2: "beta", 3: "gamma"},
		entries: map[string][]lexicon.Entry{
			"alpha": {entry(1, "alpha", 10, "Creon"), entry(1, "alpha", 20, "Creon")},
			"beta":  {entry(2, "beta", 30, "Ismene")},
			"gamma": {entry(3, "gamma", 40, "Antigone")},
		},
	}
	s := NewSearch(store, nil)

	got, err := s.Search(context.Background(), "definition", "x")
	require.NoError(t, err)

	var lines []int
	for _, e := range got {
		lines = append(lines, e.Info().LineNumber())
	}
	assert.Equal(t, []int{40, 10, 20, 30}, lines, "lemma 9 has no form and is skipped")
}

func TestSearch_StoreError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSearch(&fakeLexiconStore{err: boom}, nil)

	_, err := s.Search(context.Background(), "definition", "x")
	assert.ErrorIs(t, err, boom)
}

func TestSearch_Query_FiltersBySpeaker(t *testing.T) {
	store := &fakeLexiconStore{entries: map[string][]lexicon.Entry{
		"Creon": {entry(1, "a", 1, "Creon"), entry(2, "b", 2, "Antigone"), entry(3, "c", 3, "creon")},
	}}
	s := NewSearch(store, nil)

	got, err := s.Query(context.Background(), search.NewQuery(search.ModeWord, "", "Creon"))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.Query(context.Background(), search.NewQuery(search.ModeWord, "!!!", ""))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, store.lookups, 1, "blank query is not sent")
}

func TestSearch_AgainstDatabase(t *testing.T) {
	db := testdb.Seeded(t, testdb.Sample())
	s := NewSearch(persistence.NewLexiconStore(db), nil)
	ctx := context.Background()

	got, err := s.Search(ctx, "definition", "evil")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "κακός", got[0].Info().Lemma())

	got, err = s.Search(ctx, "definition", "shared")
	require.NoError(t, err)
	require.Len(t, got, 1, "lemma 1 resolves to its first form")
	assert.Equal(t, 1, got[0].Info().LineNumber())
}

func TestLexicon_Lookup(t *testing.T) {
	store := &fakeLexiconStore{entries: map[string][]lexicon.Entry{
		"κάρα": {entry(2, "κάρα", 1, "Antigone")},
	}}
	l := NewLexicon(store, nil)
	ctx := context.Background()

	got, err := l.Lookup(ctx, "κάρα")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = l.Lookup(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Word not found")

	_, err = l.Lookup(ctx, " ")
	assert.ErrorIs(t, err, ErrValidation)
}
