package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/antigone/domain/lexicon"
)

func entries(speakers ...string) []lexicon.Entry {
	out := make([]lexicon.Entry, len(speakers))
	for i, s := range speakers {
		info := lexicon.NewInfo(int64(i+1), fmt.Sprintf("lemma%d", i), "form", i+1, "n-s---mn-", s)
		out[i] = lexicon.NewEntry(info, lexicon.ParsePostag("n-s---mn-"), nil)
	}
	return out
}

func TestFilterBySpeaker_CreonScenario(t *testing.T) {
	all := entries(
		"Creon", "Antigone", "Ismene", "creon",
		"Chorus", "Guard", "CREON", "Haemon",
		"Teiresias", "Eurydice", "Creon", "Messenger",
	)
	require.Len(t, all, 12)

	filtered := FilterBySpeaker(all, "Creon")
	require.Len(t, filtered, 4)
	for _, e := range filtered {
		assert.True(t, e.SpokenBy("creon"))
	}

	p := NewPager(filtered, DefaultPageSize)
	assert.Equal(t, 1, p.TotalPages())
	assert.Len(t, p.Visible(), 4)
	assert.False(t, p.HasNext())
}

func TestFilterBySpeaker_Blank(t *testing.T) {
	all := entries("Creon", "Antigone")

	assert.Len(t, FilterBySpeaker(all, ""), 2)
	assert.Empty(t, FilterBySpeaker(all, "Nobody"))
}

func TestPager_Paging(t *testing.T) {
	p := NewPager(entries("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"), 5)

	assert.Equal(t, 12, p.Len())
	assert.Equal(t, 3, p.TotalPages())
	assert.Len(t, p.Page(0), 5)
	assert.Len(t, p.Page(2), 2)
	assert.Nil(t, p.Page(3))
	assert.Nil(t, p.Page(-1))

	assert.False(t, p.HasPrev())
	p = p.Prev()
	assert.Equal(t, 0, p.Current())

	p = p.Next().Next()
	assert.Equal(t, 2, p.Current())
	assert.Equal(t, "k", p.Visible()[0].Info().Speaker())
	p = p.Next()
	assert.Equal(t, 2, p.Current(), "stays on the last page")
}

func TestPager_ResetReturnsToFirstPage(t *testing.T) {
	p := NewPager(entries("a", "b", "c", "d", "e", "f"), 5).Next()
	require.Equal(t, 1, p.Current())

	p = p.Reset(entries("x", "y"))

	assert.Equal(t, 0, p.Current())
	assert.Equal(t, 1, p.TotalPages())
}

func TestPager_Empty(t *testing.T) {
	p := NewPager(nil, 0)

	assert.Equal(t, DefaultPageSize, p.Size())
	assert.Equal(t, 0, p.TotalPages())
	assert.Nil(t, p.Visible())
	assert.False(t, p.HasNext())
}
