package lexicon

// Unavailable is the placeholder short definition for lemmas the
// dictionary has no gloss for.
const Unavailable = "[unavailable]"

// Definition is one numbered short gloss of a lemma.
type Definition struct {
	number  int
	short   string
	queries string
}

// NewDefinition creates a Definition.
func NewDefinition(number int, short, queries string) Definition {
	return Definition{number: number, short: short, queries: queries}
}

// Number returns the definition number within its lemma.
func (d Definition) Number() int { return d.number }

// Short returns the short definition text.
func (d Definition) Short() string { return d.short }

// Queries returns the dictionary query terms recorded for the definition.
func (d Definition) Queries() string { return d.queries }

// IsAvailable reports whether the definition carries a real gloss.
func (d Definition) IsAvailable() bool {
	return d.short != "" && d.short != Unavailable
}
