package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/repository"
	"github.com/helixml/antigone/domain/text"
	"github.com/helixml/antigone/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result limits for definition search.
const (
	ExactDefinitionLimit   = 5
	PartialDefinitionLimit = 10
)

// inChunk bounds the number of bind variables in one IN clause.
const inChunk = 500

const lookupWhere = `form = ? OR lemma = ? OR norm_form LIKE ? OR normalized LIKE ?
	OR form_eng LIKE ? OR norm_form_eng LIKE ? OR full_eng LIKE ? OR eng_lemma LIKE ?`

const lookupRank = `CASE
	WHEN form = ? THEN 1
	WHEN lemma = ? THEN 2
	WHEN norm_form LIKE ? THEN 3
	WHEN normalized LIKE ? THEN 4
	WHEN norm_form LIKE ? THEN 5
	WHEN normalized LIKE ? THEN 6
	ELSE 7
END, lemma_id, line_number`

// LexiconStore looks up lexical entries and definitions using GORM.
type LexiconStore struct {
	database.Repository[lexicon.Info, LemmaModel]
	lines       database.Repository[text.Line, LineModel]
	definitions database.Repository[lexicon.Definition, DefinitionModel]
}

// NewLexiconStore creates a new LexiconStore.
func NewLexiconStore(db database.Database) LexiconStore {
	return LexiconStore{
		Repository:  database.NewRepository[lexicon.Info, LemmaModel](db, LemmaMapper{}, "lemma"),
		lines:       database.NewRepository[text.Line, LineModel](db, LineMapper{}, "line"),
		definitions: database.NewRepository[lexicon.Definition, DefinitionModel](db, DefinitionMapper{}, "definition"),
	}
}

// Lookup returns every entry matching word, best match first. The word is
// cleaned of breathing marks and trailing punctuation and compared both
// as written and accent-stripped against Greek forms, lemmas and their
// English glosses.
func (s LexiconStore) Lookup(ctx context.Context, word string) ([]lexicon.Entry, error) {
	cleaned := strings.TrimSpace(lexicon.CleanWord(word))
	if cleaned == "" {
		return []lexicon.Entry{}, nil
	}
	norm := lexicon.Normalize(cleaned)
	prefix := norm + "%"
	contains := "%" + norm + "%"
	containsCleaned := "%" + cleaned + "%"

	var rows []LemmaModel
	err := s.DB(ctx).
		Where(lookupWhere, cleaned, cleaned, prefix, prefix, containsCleaned, contains, containsCleaned, contains).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                lookupRank,
			Vars:               []any{cleaned, cleaned, prefix, prefix, contains, contains},
			WithoutParentheses: true,
		}}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}
	if len(rows) == 0 {
		return []lexicon.Entry{}, nil
	}

	speakers, err := s.speakersByLine(ctx, rows)
	if err != nil {
		return nil, err
	}
	definitions, err := s.definitionsByLemma(ctx, rows)
	if err != nil {
		return nil, err
	}

	mapper := LemmaMapper{}
	entries := make([]lexicon.Entry, len(rows))
	for i, row := range rows {
		info := mapper.WithSpeaker(row, speakers[row.LineNumber])
		entries[i] = lexicon.NewEntry(info, lexicon.ParsePostag(row.Postag), definitions[row.LemmaID])
	}
	return entries, nil
}

// LemmaIDsByDefinition returns lemma ids whose short definition equals
// query, or failing that contains it. Ids are unique and keep the order in
// which they were first matched.
func (s LexiconStore) LemmaIDsByDefinition(ctx context.Context, query string) ([]int64, error) {
	ids, err := s.definitionMatches(ctx, "lemma_definitions.short_definition = ?", query, ExactDefinitionLimit)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return ids, nil
	}
	return s.definitionMatches(ctx, "lemma_definitions.short_definition LIKE ?", "%"+query+"%", PartialDefinitionLimit)
}

// FormByLemmaID returns the written form of the first occurrence of a lemma.
func (s LexiconStore) FormByLemmaID(ctx context.Context, id int64) (string, error) {
	var row LemmaModel
	err := s.DB(ctx).
		Where("lemma_id = ?", id).
		Order("line_number ASC").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: lemma %d", database.ErrNotFound, id)
		}
		return "", fmt.Errorf("form of lemma %d: %w", id, err)
	}
	return row.Form, nil
}

func (s LexiconStore) definitionMatches(ctx context.Context, where, value string, limit int) ([]int64, error) {
	var matches []struct {
		LemmaID    int64
		LineNumber int
	}
	err := s.definitions.DB(ctx).
		Select("lemma_definitions.lemma_id, lemma_data.line_number").
		Joins("JOIN lemma_data ON lemma_data.lemma_id = lemma_definitions.lemma_id").
		Where(where, value).
		Order("lemma_definitions.lemma_id, lemma_definitions.def_num, lemma_data.line_number").
		Limit(limit).
		Scan(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("search definitions: %w", err)
	}

	seen := make(map[int64]struct{}, len(matches))
	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.LemmaID]; ok {
			continue
		}
		seen[m.LemmaID] = struct{}{}
		ids = append(ids, m.LemmaID)
	}
	return ids, nil
}

func (s LexiconStore) speakersByLine(ctx context.Context, rows []LemmaModel) (map[int]string, error) {
	seen := make(map[int]struct{}, len(rows))
	numbers := make([]int, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.LineNumber]; ok {
			continue
		}
		seen[r.LineNumber] = struct{}{}
		numbers = append(numbers, r.LineNumber)
	}

	speakers := make(map[int]string, len(numbers))
	for _, batch := range chunks(numbers) {
		lines, err := s.lines.Find(ctx, repository.WithConditionIn("line_number", batch))
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			speakers[l.Number()] = l.Speaker()
		}
	}
	return speakers, nil
}

func (s LexiconStore) definitionsByLemma(ctx context.Context, rows []LemmaModel) (map[int64][]lexicon.Definition, error) {
	seen := make(map[int64]struct{}, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.LemmaID]; ok {
			continue
		}
		seen[r.LemmaID] = struct{}{}
		ids = append(ids, r.LemmaID)
	}

	mapper := DefinitionMapper{}
	definitions := make(map[int64][]lexicon.Definition, len(ids))
	for _, batch := range chunks(ids) {
		var models []DefinitionModel
		err := s.definitions.DB(ctx).
			Where("lemma_id IN ?", batch).
			Order("lemma_id ASC, def_num ASC").
			Find(&models).Error
		if err != nil {
			return nil, fmt.Errorf("find definitions: %w", err)
		}
		for _, m := range models {
			definitions[m.LemmaID] = append(definitions[m.LemmaID], mapper.ToDomain(m))
		}
	}
	return definitions, nil
}

func chunks[T any](items []T) [][]T {
	var out [][]T
	for len(items) > inChunk {
		out = append(out, items[:inChunk])
		items = items[inChunk:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
