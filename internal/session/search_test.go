package session

import (
	"errors"
	"testing"

	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twelveResults has 4 entries spoken by Creon among 12.
func twelveResults() []lexicon.Entry {
	speakers := []string{"Antigone", "Creon", "Ismene"}
	out := make([]lexicon.Entry, 0, 12)
	for i := range 12 {
		speaker := speakers[i%3]
		out = append(out, entryOn(i+1, speaker))
	}
	return out
}

func TestSearch_BlankQueryIsNoop(t *testing.T) {
	s := NewSearch(search.DefaultPageSize)
	ticket, ok := s.Submit(search.NewQuery(search.ModeWord, "κοιν", ""))
	require.True(t, ok)
	s.Resolve(ticket, twelveResults(), nil)

	_, ok = s.Submit(search.NewQuery(search.ModeWord, "  ?! ", ""))
	assert.False(t, ok)
	assert.Equal(t, StateDisplayed, s.State())
	assert.Equal(t, 12, s.Pager().Len(), "prior results untouched")
}

func TestSearch_SpeakerFilterPages(t *testing.T) {
	s := NewSearch(search.DefaultPageSize)
	ticket, _ := s.Submit(search.NewQuery(search.ModeWord, "κοιν", ""))
	s.Resolve(ticket, twelveResults(), nil)
	assert.Equal(t, 3, s.Pager().TotalPages())

	s.NextPage()
	assert.Equal(t, 1, s.Pager().Current())

	s.SetSpeaker("creon")
	assert.Len(t, s.Results(), 4)
	assert.Equal(t, 1, s.Pager().TotalPages())
	assert.Equal(t, 0, s.Pager().Current(), "filter change resets the page")

	s.SetSpeaker("")
	assert.Equal(t, 12, s.Pager().Len())
}

func TestSearch_NewResultsResetPage(t *testing.T) {
	s := NewSearch(search.DefaultPageSize)
	ticket, _ := s.Submit(search.NewQuery(search.ModeWord, "a", ""))
	s.Resolve(ticket, twelveResults(), nil)
	s.NextPage()
	s.NextPage()

	ticket, _ = s.Submit(search.NewQuery(search.ModeDefinition, "head", "Creon"))
	s.Resolve(ticket, twelveResults(), nil)
	assert.Equal(t, 0, s.Pager().Current())
	assert.Equal(t, 4, s.Pager().Len())
	assert.Equal(t, search.ModeDefinition, s.Query().Mode())
}

func TestSearch_EmptyAndError(t *testing.T) {
	s := NewSearch(search.DefaultPageSize)
	ticket, _ := s.Submit(search.NewQuery(search.ModeWord, "zzz", ""))
	s.Resolve(ticket, []lexicon.Entry{}, nil)
	assert.True(t, s.IsEmpty())

	ticket, _ = s.Submit(search.NewQuery(search.ModeWord, "zzz", ""))
	s.Resolve(ticket, nil, errors.New("HTTP 500"))
	assert.Equal(t, StateError, s.State())
	assert.False(t, s.IsEmpty())

	retry, ok := s.Retry()
	require.True(t, ok)
	assert.Greater(t, retry.Seq, ticket.Seq)
}

func TestSearch_LatestSubmitWins(t *testing.T) {
	s := NewSearch(search.DefaultPageSize)
	first, _ := s.Submit(search.NewQuery(search.ModeWord, "first", ""))
	second, _ := s.Submit(search.NewQuery(search.ModeWord, "second", ""))

	assert.True(t, s.Resolve(second, twelveResults()[:2], nil))
	assert.False(t, s.Resolve(first, twelveResults(), nil))
	assert.Equal(t, "second", s.Query().Text())
	assert.Equal(t, 2, s.Pager().Len())
}

func TestSearch_SpeakerOnlyQuery(t *testing.T) {
	s := NewSearch(search.DefaultPageSize)
	_, ok := s.Submit(search.NewQuery(search.ModeWord, "", "Creon"))
	require.True(t, ok)
	assert.Equal(t, "Creon", s.Pending().Text())
}
