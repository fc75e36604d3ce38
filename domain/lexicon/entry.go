// Package lexicon provides the word-level lexical records returned by
// lookups and searches.
package lexicon

import "strings"

// Info identifies one occurrence of a lemma in the text.
type Info struct {
	lemmaID    int64
	lemma      string
	form       string
	lineNumber int
	postag     string
	speaker    string
}

// NewInfo creates an Info.
func NewInfo(lemmaID int64, lemma, form string, lineNumber int, postag, speaker string) Info {
	return Info{
		lemmaID:    lemmaID,
		lemma:      lemma,
		form:       form,
		lineNumber: lineNumber,
		postag:     postag,
		speaker:    speaker,
	}
}

// LemmaID returns the dictionary identifier of the lemma.
func (i Info) LemmaID() int64 { return i.lemmaID }

// Lemma returns the dictionary headword.
func (i Info) Lemma() string { return i.lemma }

// Form returns the inflected form as it appears in the line.
func (i Info) Form() string { return i.form }

// LineNumber returns the line the form occurs on.
func (i Info) LineNumber() int { return i.lineNumber }

// Postag returns the raw treebank postag.
func (i Info) Postag() string { return i.postag }

// Speaker returns the speaker of the line, or "" if the line has none.
func (i Info) Speaker() string { return i.speaker }

// Entry is one lookup or search result: where a lemma occurs, how the form
// is inflected, and what the lemma means.
type Entry struct {
	info        Info
	morphology  Morphology
	definitions []Definition
}

// NewEntry creates an Entry. The definitions slice is copied.
func NewEntry(info Info, morphology Morphology, definitions []Definition) Entry {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return Entry{info: info, morphology: morphology, definitions: defs}
}

// Info returns the occurrence details.
func (e Entry) Info() Info { return e.info }

// Morphology returns the decoded postag.
func (e Entry) Morphology() Morphology { return e.morphology }

// Definitions returns every definition in definition-number order.
func (e Entry) Definitions() []Definition {
	defs := make([]Definition, len(e.definitions))
	copy(defs, e.definitions)
	return defs
}

// HasDefinitions reports whether the entry carries any definition.
func (e Entry) HasDefinitions() bool { return len(e.definitions) > 0 }

// Preview returns the available glosses among the first n definitions.
func (e Entry) Preview(n int) []Definition {
	n = min(max(n, 0), len(e.definitions))
	var out []Definition
	for _, d := range e.definitions[:n] {
		if d.IsAvailable() {
			out = append(out, d)
		}
	}
	return out
}

// SpokenBy reports whether the entry's line is spoken by speaker,
// compared case-insensitively.
func (e Entry) SpokenBy(speaker string) bool {
	return strings.EqualFold(strings.TrimSpace(e.info.speaker), strings.TrimSpace(speaker))
}

// Primary picks the entry to show for a word selected on line: the first
// entry occurring on that line, else the first entry. ok is false when
// entries is empty.
func Primary(entries []Entry, line int) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	for _, e := range entries {
		if e.info.lineNumber == line {
			return e, true
		}
	}
	return entries[0], true
}
