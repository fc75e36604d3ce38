package lexicon

// Selection identifies one token occurrence on a displayed line. The index
// disambiguates a word repeated within the same line.
type Selection struct {
	Word    string
	LineNum int
	Index   int
}

// IsZero reports whether the selection is empty.
func (s Selection) IsZero() bool {
	return s == Selection{}
}
