package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePostag(t *testing.T) {
	m := ParsePostag("v3siia---")

	assert.Equal(t, "verb", m.PartOfSpeech())
	assert.Equal(t, "third person", m.Get(SlotPerson))
	assert.Equal(t, "singular", m.Get(SlotNumber))
	assert.Equal(t, "imperfect", m.Get(SlotTense))
	assert.Equal(t, "indicative", m.Get(SlotMood))
	assert.Equal(t, "active", m.Get(SlotVoice))
	assert.Equal(t, NotApplicable, m.Get(SlotGender))
	assert.Equal(t, NotApplicable, m.Case())
	assert.Equal(t, NotApplicable, m.Get(SlotDegree))
	assert.Equal(t, "verb. third person. singular. imperfect. indicative. active.", m.String())
}

func TestParsePostag_Noun(t *testing.T) {
	m := ParsePostag("n-s---fn-")

	assert.Equal(t, []string{"noun", "singular", "feminine", "nominative"}, m.Applicable())
}

func TestParsePostag_ShortAndUnknown(t *testing.T) {
	m := ParsePostag("a-p")
	assert.Equal(t, "adjective", m.PartOfSpeech())
	assert.Equal(t, "plural", m.Get(SlotNumber))
	assert.Equal(t, NotApplicable, m.Get(SlotDegree))

	m = ParsePostag("z--------")
	assert.Equal(t, "z", m.PartOfSpeech())

	assert.True(t, ParsePostag("").IsZero())
	assert.Len(t, ParsePostag("").Labels(), 9)
}

func TestNewMorphology(t *testing.T) {
	m := NewMorphology([]string{"noun", "-", "", "-"})

	assert.Equal(t, "noun", m.PartOfSpeech())
	assert.Equal(t, NotApplicable, m.Get(SlotNumber))
	assert.Equal(t, NotApplicable, m.Case())
	assert.Equal(t, ParsePostag("n--------"), m)
}

func TestSlot_String(t *testing.T) {
	assert.Equal(t, "case", SlotCase.String())
	assert.Equal(t, "unknown", Slot(42).String())
	assert.Equal(t, NotApplicable, Morphology{}.Get(Slot(-1)))
}
