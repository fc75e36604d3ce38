package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/helixml/antigone/domain/lexicon"
)

// ErrMalformedEntry indicates an entry tuple could not be decoded.
var ErrMalformedEntry = errors.New("malformed entry")

// Info is the lexical information of one token occurrence.
type Info struct {
	LemmaID    int64   `json:"lemma_id"`
	Lemma      string  `json:"lemma"`
	Form       string  `json:"form"`
	LineNumber int     `json:"line_number"`
	Postag     string  `json:"postag"`
	Speaker    *string `json:"speaker"`
}

// Case carries the decoded postag keyed by 1-based slot position.
type Case struct {
	Case map[string]string `json:"case"`
}

// Definition is one sense of a lemma.
type Definition struct {
	DefNum   int    `json:"def_num"`
	ShortDef string `json:"short_def"`
	Queries  string `json:"queries"`
}

// Definitions wraps the definitions element of an entry.
type Definitions struct {
	Definitions []Definition `json:"definitions"`
}

// Entry is a lookup result. On the wire it is a positional array of
// [Info, Case] followed by Definitions when the lemma has any.
type Entry struct {
	Info        Info
	Case        Case
	Definitions []Definition
}

// NewEntry converts a domain Entry.
func NewEntry(e lexicon.Entry) Entry {
	info := e.Info()
	var speaker *string
	if s := info.Speaker(); s != "" {
		speaker = &s
	}

	labels := e.Morphology().Labels()
	c := make(map[string]string, len(labels))
	for i, l := range labels {
		c[strconv.Itoa(i+1)] = l
	}

	defs := e.Definitions()
	definitions := make([]Definition, len(defs))
	for i, d := range defs {
		definitions[i] = Definition{DefNum: d.Number(), ShortDef: d.Short(), Queries: d.Queries()}
	}

	return Entry{
		Info: Info{
			LemmaID:    info.LemmaID(),
			Lemma:      info.Lemma(),
			Form:       info.Form(),
			LineNumber: info.LineNumber(),
			Postag:     info.Postag(),
			Speaker:    speaker,
		},
		Case:        Case{Case: c},
		Definitions: definitions,
	}
}

// NewEntries converts domain entries, preserving order.
func NewEntries(entries []lexicon.Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = NewEntry(e)
	}
	return out
}

// ToDomain converts back to a domain Entry.
func (e Entry) ToDomain() lexicon.Entry {
	var speaker string
	if e.Info.Speaker != nil {
		speaker = *e.Info.Speaker
	}
	info := lexicon.NewInfo(e.Info.LemmaID, e.Info.Lemma, e.Info.Form, e.Info.LineNumber, e.Info.Postag, speaker)

	var morphology lexicon.Morphology
	if len(e.Case.Case) > 0 {
		labels := make([]string, 9)
		for i := range labels {
			labels[i] = e.Case.Case[strconv.Itoa(i+1)]
		}
		morphology = lexicon.NewMorphology(labels)
	} else {
		morphology = lexicon.ParsePostag(e.Info.Postag)
	}

	definitions := make([]lexicon.Definition, len(e.Definitions))
	for i, d := range e.Definitions {
		definitions[i] = lexicon.NewDefinition(d.DefNum, d.ShortDef, d.Queries)
	}
	return lexicon.NewEntry(info, morphology, definitions)
}

// EntriesToDomain converts decoded entries to domain entries.
func EntriesToDomain(entries []Entry) []lexicon.Entry {
	out := make([]lexicon.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.ToDomain()
	}
	return out
}

// MarshalJSON encodes the positional tuple.
func (e Entry) MarshalJSON() ([]byte, error) {
	tuple := []any{e.Info, e.Case}
	if len(e.Definitions) > 0 {
		tuple = append(tuple, Definitions{Definitions: e.Definitions})
	}
	return json.Marshal(tuple)
}

// UnmarshalJSON decodes the positional tuple. The lexical information must
// come first; the case and definitions elements are recognised by key and
// may be absent.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEntry, err)
	}
	if len(tuple) == 0 {
		return fmt.Errorf("%w: empty tuple", ErrMalformedEntry)
	}

	var out Entry
	if err := json.Unmarshal(tuple[0], &out.Info); err != nil {
		return fmt.Errorf("%w: info: %w", ErrMalformedEntry, err)
	}

	for _, raw := range tuple[1:] {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedEntry, err)
		}
		if c, ok := keys["case"]; ok {
			if err := json.Unmarshal(c, &out.Case.Case); err != nil {
				return fmt.Errorf("%w: case: %w", ErrMalformedEntry, err)
			}
		}
		if d, ok := keys["definitions"]; ok {
			if err := json.Unmarshal(d, &out.Definitions); err != nil {
				return fmt.Errorf("%w: definitions: %w", ErrMalformedEntry, err)
			}
		}
	}

	*e = out
	return nil
}
