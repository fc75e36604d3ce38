// Package corpus loads the text, its lemmatisation and the lemma
// definitions from CSV exports into the database.
package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/helixml/antigone/infrastructure/persistence"
)

// ErrMissingColumn indicates a required CSV header is absent.
var ErrMissingColumn = errors.New("missing column")

// header maps column names to their index in a record.
type header map[string]int

func readHeader(r *csv.Reader, required ...string) (header, error) {
	names, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := make(header, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		h[name] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return h, nil
}

// get returns the trimmed cell for column, or "" when the column is absent.
func (h header) get(record []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// nullable returns nil for an empty cell.
func (h header) nullable(record []string, column string) *string {
	v := h.get(record, column)
	if v == "" {
		return nil
	}
	return &v
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// parseNumber accepts integers and integral floats such as "12.0", which
// spreadsheet exports produce for numeric columns.
func parseNumber(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// ParseLines reads lines.csv. Rows whose line_number is not a number are
// skipped and counted.
func ParseLines(r io.Reader) ([]persistence.LineModel, int, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "line_number", "line_text")
	if err != nil {
		return nil, 0, fmt.Errorf("lines: %w", err)
	}

	var lines []persistence.LineModel
	skipped := 0
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("lines: row %d: %w", row, err)
		}
		n, ok := parseNumber(h.get(record, "line_number"))
		if !ok {
			skipped++
			continue
		}
		lines = append(lines, persistence.LineModel{
			LineNumber:  int(n),
			LineText:    h.nullable(record, "line_text"),
			Speaker:     h.nullable(record, "speaker"),
			NormSpeaker: h.nullable(record, "norm_speaker"),
			EngSpeaker:  h.nullable(record, "eng_speaker"),
		})
	}
	return lines, skipped, nil
}

// ParseLemmas reads wordList.csv.
func ParseLemmas(r io.Reader) ([]persistence.LemmaModel, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "lemma_id", "line_number", "lemma", "form")
	if err != nil {
		return nil, fmt.Errorf("lemmas: %w", err)
	}

	var lemmas []persistence.LemmaModel
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lemmas: row %d: %w", row, err)
		}
		id, ok := parseNumber(h.get(record, "lemma_id"))
		if !ok {
			return nil, fmt.Errorf("lemmas: row %d: invalid lemma_id %q", row, h.get(record, "lemma_id"))
		}
		line, ok := parseNumber(h.get(record, "line_number"))
		if !ok {
			return nil, fmt.Errorf("lemmas: row %d: invalid line_number %q", row, h.get(record, "line_number"))
		}
		lemmas = append(lemmas, persistence.LemmaModel{
			LemmaID:     id,
			LineNumber:  int(line),
			Lemma:       h.get(record, "lemma"),
			FullEng:     h.get(record, "full_eng"),
			URN:         h.get(record, "urn"),
			Normalized:  h.get(record, "normalized"),
			EngLemma:    h.get(record, "eng_lemma"),
			Form:        h.get(record, "form"),
			NormForm:    h.get(record, "norm_form"),
			Postag:      h.get(record, "postag"),
			FormEng:     h.get(record, "form_eng"),
			NormFormEng: h.get(record, "norm_form_eng"),
		})
	}
	return lemmas, nil
}

// ParseDefinitions reads defList.csv.
func ParseDefinitions(r io.Reader) ([]persistence.DefinitionModel, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "lemma_id", "def_num", "short_definition")
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}

	var definitions []persistence.DefinitionModel
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("definitions: row %d: %w", row, err)
		}
		id, ok := parseNumber(h.get(record, "lemma_id"))
		if !ok {
			return nil, fmt.Errorf("definitions: row %d: invalid lemma_id %q", row, h.get(record, "lemma_id"))
		}
		num, ok := parseNumber(h.get(record, "def_num"))
		if !ok {
			return nil, fmt.Errorf("definitions: row %d: invalid def_num %q", row, h.get(record, "def_num"))
		}
		definitions = append(definitions, persistence.DefinitionModel{
			LemmaID:         id,
			DefNum:          int(num),
			ShortDefinition: h.get(record, "short_definition"),
			Queries:         h.get(record, "queries"),
		})
	}
	return definitions, nil
}
