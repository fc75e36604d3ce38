package antigone_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/helixml/antigone"
	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/infrastructure/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T) corpus.Source {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"wordList.csv": "lemma_id,line_number,lemma,full_eng,urn,normalized,eng_lemma,form,norm_form,postag,form_eng,norm_form_eng\n" +
			"3,2,Ζεύς,Zeus,urn:3,Ζευς,Zeus,Ζεὺς,Ζευς,n-s---mn-,Zeus,Zeus\n",
		"defList.csv": "lemma_id,def_num,short_definition,queries\n3,1,Zeus,Zeus\n",
		"lines.csv":   "line_number,line_text,speaker\n1,first,Antigone\n2,ἆρ᾽ οἶσθ᾽ ὅ τι Ζεὺς,Antigone\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return corpus.Source{
		Words:       filepath.Join(dir, "wordList.csv"),
		Definitions: filepath.Join(dir, "defList.csv"),
		Lines:       filepath.Join(dir, "lines.csv"),
	}
}

func TestNew_RequiresDatabase(t *testing.T) {
	_, err := antigone.New()
	assert.ErrorIs(t, err, antigone.ErrNoDatabase)
}

func TestClient_EndToEnd(t *testing.T) {
	client, err := antigone.New(antigone.WithSQLite(filepath.Join(t.TempDir(), "antigone.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()

	stats, err := client.Import(ctx, writeCorpus(t))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Lines)

	lines, err := client.Reader.Lines(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "first", lines[0].Text())
	assert.False(t, lines[2].HasText())

	entries, err := client.Lexicon.Lookup(ctx, "Ζεὺς")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Antigone", entries[0].Info().Speaker())
	assert.Equal(t, "nominative", entries[0].Morphology().Case())

	results, err := client.Search.Search(ctx, "definition", "Zeus")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	_, err = client.Reader.Line(ctx, 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestClient_TotalLines(t *testing.T) {
	client, err := antigone.New(antigone.WithDatabaseURL("sqlite:///:memory:"), antigone.WithTotalLines(22))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 2, client.Navigator().PageCount())
	_, err = client.Reader.Lines(context.Background(), 1, 23)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestClient_CloseTwice(t *testing.T) {
	client, err := antigone.New(antigone.WithSQLite(":memory:"))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.ErrorIs(t, client.Close(), antigone.ErrClientClosed)

	_, err = client.Import(context.Background(), corpus.Source{})
	assert.ErrorIs(t, err, antigone.ErrClientClosed)
}

func TestClient_CheckCorpus(t *testing.T) {
	ctx := context.Background()

	client, err := antigone.New(antigone.WithSQLite(filepath.Join(t.TempDir(), "antigone.db")), antigone.WithTotalLines(2))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.ErrorIs(t, client.CheckCorpus(ctx), antigone.ErrCorpusEmpty)

	_, err = client.Import(ctx, writeCorpus(t))
	require.NoError(t, err)
	assert.NoError(t, client.CheckCorpus(ctx))

	short, err := antigone.New(antigone.WithSQLite(filepath.Join(t.TempDir(), "short.db")), antigone.WithTotalLines(1))
	require.NoError(t, err)
	t.Cleanup(func() { _ = short.Close() })

	_, err = short.Import(ctx, writeCorpus(t))
	require.NoError(t, err)
	assert.ErrorIs(t, short.CheckCorpus(ctx), antigone.ErrCorpusTruncated)
}
