package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helixml/antigone/infrastructure/persistence"
	"github.com/helixml/antigone/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordsCSV = `lemma_id,line_number,lemma,full_eng,urn,normalized,eng_lemma,form,norm_form,postag,form_eng,norm_form_eng
1,1,κοινός,"common, shared",urn:1,κοινος,common,κοινὸν,κοινον,a-s---ma-,common,common
2,1,κάρα,head,urn:2,καρα,head,κάρα,καρα,n-s---na-,head,head
`

const definitionsCSV = `lemma_id,def_num,short_definition,queries
1,1,"common, shared",common
2,1,head,head
`

const linesCSV = `line_number,line_text,speaker,norm_speaker,eng_speaker
1,"ὦ κοινὸν αὐτάδελφον Ἰσμήνης κάρα,",Ἀντιγόνη,Αντιγονη,Antigone
2.0,second line,,,
title,Ἀντιγόνη,,,
`

func writeSource(t *testing.T, words, definitions, lines string) Source {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}
	return Source{
		Words:       write("wordList.csv", words),
		Definitions: write("defList.csv", definitions),
		Lines:       write("lines.csv", lines),
	}
}

func TestImporter_Import(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	stats, err := NewImporter(db, WithBatchSize(1)).Import(ctx, writeSource(t, wordsCSV, definitionsCSV, linesCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, 2, stats.Lemmas)
	assert.Equal(t, 2, stats.Definitions)
	assert.Equal(t, 1, stats.SkippedLines)

	lines := persistence.NewLineStore(db)
	first, err := lines.Line(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ἀντιγόνη", first.Speaker())

	second, err := lines.Line(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "second line", second.Text())
	assert.False(t, second.HasSpeaker())

	entries, err := persistence.NewLexiconStore(db).Lookup(ctx, "κάρα")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "head", entries[0].Definitions()[0].Short())
}

func TestImporter_ReplacesExistingRows(t *testing.T) {
	db := testdb.Seeded(t, testdb.Sample())
	ctx := context.Background()

	_, err := NewImporter(db).Import(ctx, writeSource(t, wordsCSV, definitionsCSV, linesCSV))
	require.NoError(t, err)

	n, err := persistence.NewLineStore(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestImporter_FailureLeavesDatabaseUntouched(t *testing.T) {
	db := testdb.Seeded(t, testdb.Sample())
	ctx := context.Background()

	duplicate := definitionsCSV + "2,1,head again,head\n"
	_, err := NewImporter(db).Import(ctx, writeSource(t, wordsCSV, duplicate, linesCSV))
	require.Error(t, err)

	n, err := persistence.NewLineStore(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(testdb.Sample().Lines)), n)
}

func TestImporter_MissingFile(t *testing.T) {
	db := testdb.New(t)
	src := writeSource(t, wordsCSV, definitionsCSV, linesCSV)
	src.Words = filepath.Join(t.TempDir(), "absent.csv")

	_, err := NewImporter(db).Import(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.csv")
}

func TestParseLines_MissingColumn(t *testing.T) {
	_, _, err := ParseLines(strings.NewReader("number,text\n1,a\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseLemmas_InvalidID(t *testing.T) {
	_, err := ParseLemmas(strings.NewReader("lemma_id,line_number,lemma,form\nx,1,a,b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12", 12, true},
		{"12.0", 12, true},
		{"12.5", 0, false},
		{"", 0, false},
		{"Prologue", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDefinitions_BOMHeader(t *testing.T) {
	defs, err := ParseDefinitions(strings.NewReader("\ufefflemma_id,def_num,short_definition\n3,1,Zeus\n"))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, int64(3), defs[0].LemmaID)
	assert.Empty(t, defs[0].Queries)
}
