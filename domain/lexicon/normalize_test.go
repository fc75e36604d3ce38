package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanWord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"κάρα,", "κάρα"},
		{"Ζεὺς·", "Ζεὺς"},
		{"τί;", "τί"},
		{"τί\u037e", "τί"},
		{"ἀλλʼ", "ἀλλ"},
		{"\u03b1\u0313", "\u03b1"},
		{"word.,;", "word"},
		{"mid,dle", "mid,dle"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanWord(tt.in), "input %q", tt.in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "καρα", Normalize("κάρα"))
	assert.Equal(t, "Ισμηνης", Normalize("Ἰσμήνης"))
	assert.Equal(t, "αλλ", Normalize("ἀλλ'"))
	assert.Equal(t, "creon", Normalize("creon"))
}
