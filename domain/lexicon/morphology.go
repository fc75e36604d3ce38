package lexicon

import "strings"

// NotApplicable marks a morphological category that does not apply to a form.
const NotApplicable = "-"

// postagLength is the number of positional slots in a treebank postag.
const postagLength = 9

// Slot names one position of a postag.
type Slot int

// Slot values, in postag order.
const (
	SlotPartOfSpeech Slot = iota
	SlotPerson
	SlotNumber
	SlotTense
	SlotMood
	SlotVoice
	SlotGender
	SlotCase
	SlotDegree
)

var slotNames = [postagLength]string{
	"part of speech", "person", "number", "tense", "mood", "voice", "gender", "case", "degree",
}

// String returns the category name.
func (s Slot) String() string {
	if s < 0 || int(s) >= postagLength {
		return "unknown"
	}
	return slotNames[s]
}

var slotLabels = [postagLength]map[byte]string{
	SlotPartOfSpeech: {
		'n': "noun", 'v': "verb", 'a': "adjective", 'd': "adverb", 'l': "article", 'g': "particle",
		'c': "conjunction", 'r': "preposition", 'p': "pronoun", 'm': "numeral", 'i': "interjection",
		'u': "punctuation", 'x': "not available",
	},
	SlotPerson: {'1': "first person", '2': "second person", '3': "third person"},
	SlotNumber: {'s': "singular", 'p': "plural", 'd': "dual"},
	SlotTense: {
		'p': "present", 'i': "imperfect", 'r': "perfect", 'l': "pluperfect", 't': "future perfect",
		'f': "future", 'a': "aorist",
	},
	SlotMood: {
		'i': "indicative", 's': "subjunctive", 'o': "optative", 'n': "infinitive", 'm': "imperative",
		'p': "participle",
	},
	SlotVoice:  {'a': "active", 'p': "passive", 'm': "middle", 'e': "medio-passive"},
	SlotGender: {'m': "masculine", 'f': "feminine", 'n': "neuter"},
	SlotCase: {
		'n': "nominative", 'g': "genitive", 'd': "dative", 'a': "accusative", 'v': "vocative",
		'l': "locative",
	},
	SlotDegree: {'c': "comparative", 's': "superlative"},
}

// Morphology is the decoded form of a nine-position treebank postag such as
// "v3siia---". Every slot holds a readable label or NotApplicable.
type Morphology struct {
	values [postagLength]string
}

// ParsePostag decodes a postag. Missing trailing positions are treated as
// not applicable; an unrecognised code is kept as the raw character.
func ParsePostag(postag string) Morphology {
	var m Morphology
	for i := range postagLength {
		if i >= len(postag) || postag[i] == '-' {
			m.values[i] = NotApplicable
			continue
		}
		code := postag[i]
		if label, ok := slotLabels[i][code]; ok {
			m.values[i] = label
			continue
		}
		m.values[i] = string(code)
	}
	return m
}

// NewMorphology builds a Morphology from labels in slot order, as carried on
// the wire. Missing or blank labels become NotApplicable.
func NewMorphology(labels []string) Morphology {
	var m Morphology
	for i := range postagLength {
		m.values[i] = NotApplicable
		if i < len(labels) && strings.TrimSpace(labels[i]) != "" {
			m.values[i] = labels[i]
		}
	}
	return m
}

// Get returns the label at slot.
func (m Morphology) Get(s Slot) string {
	if s < 0 || int(s) >= postagLength {
		return NotApplicable
	}
	if m.values[s] == "" {
		return NotApplicable
	}
	return m.values[s]
}

// PartOfSpeech returns the part-of-speech label.
func (m Morphology) PartOfSpeech() string { return m.Get(SlotPartOfSpeech) }

// Case returns the grammatical case label.
func (m Morphology) Case() string { return m.Get(SlotCase) }

// Labels returns every slot label in postag order.
func (m Morphology) Labels() []string {
	labels := make([]string, postagLength)
	for i := range postagLength {
		labels[i] = m.Get(Slot(i))
	}
	return labels
}

// Applicable returns the labels of the slots that apply, in postag order.
func (m Morphology) Applicable() []string {
	var labels []string
	for _, l := range m.Labels() {
		if l != NotApplicable {
			labels = append(labels, l)
		}
	}
	return labels
}

// IsZero reports whether no slot applies.
func (m Morphology) IsZero() bool {
	return len(m.Applicable()) == 0
}

// String joins the applicable labels, e.g. "verb. third person. singular."
func (m Morphology) String() string {
	labels := m.Applicable()
	if len(labels) == 0 {
		return ""
	}
	return strings.Join(labels, ". ") + "."
}
