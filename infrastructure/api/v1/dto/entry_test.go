package dto

import (
	"encoding/json"
	"testing"

	"github.com/helixml/antigone/domain/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(defs ...lexicon.Definition) lexicon.Entry {
	info := lexicon.NewInfo(2, "κάρα", "κάρα", 1, "n-s---na-", "Antigone")
	return lexicon.NewEntry(info, lexicon.ParsePostag("n-s---na-"), defs)
}

func TestEntry_MarshalTuple(t *testing.T) {
	data, err := json.Marshal(NewEntry(sampleEntry(lexicon.NewDefinition(1, "head", "head"))))
	require.NoError(t, err)

	var tuple []map[string]any
	require.NoError(t, json.Unmarshal(data, &tuple))
	require.Len(t, tuple, 3)

	assert.Equal(t, float64(2), tuple[0]["lemma_id"])
	assert.Equal(t, "Antigone", tuple[0]["speaker"])
	assert.Equal(t, float64(1), tuple[0]["line_number"])

	c := tuple[1]["case"].(map[string]any)
	assert.Equal(t, "noun", c["1"])
	assert.Equal(t, "-", c["2"])
	assert.Equal(t, "accusative", c["8"])
	assert.Len(t, c, 9)

	defs := tuple[2]["definitions"].([]any)
	require.Len(t, defs, 1)
	assert.Equal(t, "head", defs[0].(map[string]any)["short_def"])
}

func TestEntry_MarshalWithoutDefinitions(t *testing.T) {
	data, err := json.Marshal(NewEntry(sampleEntry()))
	require.NoError(t, err)

	var tuple []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &tuple))
	assert.Len(t, tuple, 2)
}

func TestEntry_RoundTrip(t *testing.T) {
	orig := sampleEntry(lexicon.NewDefinition(1, "head", "head"), lexicon.NewDefinition(2, "[unavailable]", ""))
	data, err := json.Marshal([]Entry{NewEntry(orig)})
	require.NoError(t, err)

	var decoded []Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	got := decoded[0].ToDomain()
	assert.Equal(t, orig.Info(), got.Info())
	assert.Equal(t, orig.Morphology().Labels(), got.Morphology().Labels())
	assert.Equal(t, orig.Definitions(), got.Definitions())
}

func TestEntry_UnmarshalShortTuple(t *testing.T) {
	raw := `[{"lemma_id":7,"lemma":"x","form":"y","line_number":3,"postag":"v3siia---","speaker":null}]`

	var e Entry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))

	got := e.ToDomain()
	assert.Equal(t, "", got.Info().Speaker())
	assert.Equal(t, "verb", got.Morphology().PartOfSpeech(), "falls back to postag")
	assert.Empty(t, got.Definitions())
}

func TestEntry_UnmarshalMalformed(t *testing.T) {
	for _, raw := range []string{`{}`, `[]`, `["x"]`, `[{"lemma_id":1},[1]]`} {
		var e Entry
		assert.ErrorIs(t, json.Unmarshal([]byte(raw), &e), ErrMalformedEntry, raw)
	}
}

func TestLine_NullFields(t *testing.T) {
	data, err := json.Marshal(NewLines(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	var l Line
	require.NoError(t, json.Unmarshal([]byte(`{"lineNum":4,"line_text":null,"speaker":null}`), &l))
	assert.False(t, l.ToDomain().HasText())
	assert.Equal(t, 4, l.ToDomain().Number())
}
