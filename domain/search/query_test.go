package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("word")
	require.NoError(t, err)
	assert.Equal(t, ModeWord, m)

	m, err = ParseMode(" Definition ")
	require.NoError(t, err)
	assert.Equal(t, ModeDefinition, m)

	_, err = ParseMode("speaker")
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = ParseMode("")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestMode_Toggle(t *testing.T) {
	assert.Equal(t, ModeDefinition, ModeWord.Toggle())
	assert.Equal(t, ModeWord, ModeDefinition.Toggle())
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"love", "love"},
		{"κάρα", "κάρα"},
		{"ΚΡΕΩΝ", "ΚΡΕΩΝ"},
		{"don't stop", "don't stop"},
		{"<script>alert(1)</script>", "scriptalertscript"},
		{"λόγος; 42!", "λγος "},
		{"tab\there", "tab\there"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSanitize_StripsTonosOmicronUpsilonOmega(t *testing.T) {
	// ό ύ ώ (U+03CC-U+03CE) sit above the accepted lowercase range.
	assert.Equal(t, "", Sanitize("\u03cc\u03cd\u03ce"))
	assert.Equal(t, "φλος", Sanitize("φλ\u03ccος"))
	assert.Equal(t, "ά", Sanitize("\u03ac"))
	assert.Equal(t, "ω", Sanitize("\u03c9"))
}

func TestNewQuery(t *testing.T) {
	q := NewQuery(ModeWord, "  κάρα!  ", "")

	assert.Equal(t, ModeWord, q.Mode())
	assert.Equal(t, "κάρα", q.Text())
	assert.False(t, q.HasSpeaker())
	assert.False(t, q.IsBlank())
}

func TestNewQuery_Blank(t *testing.T) {
	assert.True(t, NewQuery(ModeWord, "   ", "").IsBlank())
	assert.True(t, NewQuery(ModeWord, "123 ?!", "").IsBlank())
}

func TestNewQuery_SpeakerAsTerm(t *testing.T) {
	q := NewQuery(ModeWord, "", "Creon")

	assert.Equal(t, "Creon", q.Text())
	assert.Equal(t, "Creon", q.Speaker())
	assert.True(t, q.HasSpeaker())
}

func TestQuery_WithSpeaker(t *testing.T) {
	q := NewQuery(ModeDefinition, "love", "").WithSpeaker(" Haemon ")

	assert.Equal(t, "love", q.Text())
	assert.Equal(t, "Haemon", q.Speaker())
}
