package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOn(line int, speaker string) Entry {
	return NewEntry(
		NewInfo(1, "κάρα", "κάρα", line, "n-s---na-", speaker),
		ParsePostag("n-s---na-"),
		nil,
	)
}

func TestPrimary_PrefersMatchingLine(t *testing.T) {
	entries := []Entry{entryOn(10, "Creon"), entryOn(1, "Antigone"), entryOn(1, "Ismene")}

	e, ok := Primary(entries, 1)

	require.True(t, ok)
	assert.Equal(t, "Antigone", e.Info().Speaker())
}

func TestPrimary_FallsBackToFirst(t *testing.T) {
	entries := []Entry{entryOn(10, "Creon"), entryOn(20, "Antigone")}

	e, ok := Primary(entries, 99)

	require.True(t, ok)
	assert.Equal(t, 10, e.Info().LineNumber())
}

func TestPrimary_Empty(t *testing.T) {
	_, ok := Primary(nil, 1)

	assert.False(t, ok)
}

func TestEntry_Preview(t *testing.T) {
	e := NewEntry(NewInfo(7, "λόγος", "λόγον", 3, "n-s---ma-", ""), Morphology{}, []Definition{
		NewDefinition(1, "word", "word"),
		NewDefinition(2, Unavailable, ""),
		NewDefinition(3, "reason", "reason"),
		NewDefinition(4, "account", "account"),
	})

	preview := e.Preview(3)

	require.Len(t, preview, 2)
	assert.Equal(t, "word", preview[0].Short())
	assert.Equal(t, "reason", preview[1].Short())
	assert.Len(t, e.Preview(10), 3)
	assert.Empty(t, e.Preview(0))
	assert.True(t, e.HasDefinitions())
}

func TestEntry_DefinitionsAreCopied(t *testing.T) {
	defs := []Definition{NewDefinition(1, "word", "")}
	e := NewEntry(NewInfo(1, "", "", 1, "", ""), Morphology{}, defs)

	defs[0] = NewDefinition(9, "changed", "")
	got := e.Definitions()
	got[0] = NewDefinition(8, "changed again", "")

	assert.Equal(t, "word", e.Definitions()[0].Short())
}

func TestEntry_SpokenBy(t *testing.T) {
	e := entryOn(1, "Creon")

	assert.True(t, e.SpokenBy("creon"))
	assert.True(t, e.SpokenBy(" CREON "))
	assert.False(t, e.SpokenBy("Cre"))
	assert.False(t, entryOn(1, "").SpokenBy("Creon"))
}

func TestSelection_IsZero(t *testing.T) {
	assert.True(t, Selection{}.IsZero())
	assert.False(t, Selection{Word: "κάρα", LineNum: 1, Index: 4}.IsZero())
}
