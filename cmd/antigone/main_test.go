package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/helixml/antigone/domain/text"
	"github.com/helixml/antigone/internal/config"
	"github.com/helixml/antigone/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDatabase points the environment at a fresh data directory and
// database file.
func useDatabase(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "antigone.db")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("DB_URL", "sqlite:///"+path)
	t.Setenv("TOTAL_LINES", "7")
	t.Setenv("REMOTE_SERVER_URL", "")
	t.Setenv("LOG_LEVEL", "ERROR")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintLines(t *testing.T) {
	var out bytes.Buffer
	printLines(&out, []text.Line{
		text.NewLine(1, "ὦ κοινὸν", "Antigone"),
		text.NewLine(2, "ἆρ᾽ οἶσθ᾽", "Antigone"),
		text.NewMissingLine(3),
		text.NewLine(4, "τί δ᾽ ἔστι;", "Ismene"),
	})

	want := "Antigone:\n" +
		"    1  ὦ κοινὸν\n" +
		"    2  ἆρ᾽ οἶσθ᾽\n" +
		"    3  (no text)\n" +
		"Ismene:\n" +
		"    4  τί δ᾽ ἔστι;\n"
	assert.Equal(t, want, out.String())
}

func TestLinesCmd(t *testing.T) {
	path := useDatabase(t)
	testdb.File(t, path, testdb.Sample())

	out, err := execute(t, "lines", "5-9")
	require.NoError(t, err)
	assert.Equal(t, "Ismene:\n    5  τί δ᾽ ἔστι;\nCreon:\n    6  τοῦ κοινοῦ λόγου\n    7  ἰώ\n", out,
		"the end is clamped to the last line")
}

func TestImportCmd(t *testing.T) {
	useDatabase(t)
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}
	words := write("wordList.csv", "lemma_id,line_number,lemma,full_eng,urn,normalized,eng_lemma,form,norm_form,postag,form_eng,norm_form_eng\n"+
		"2,1,κάρα,head,urn:2,καρα,head,κάρα,καρα,n-s---na-,head,head\n")
	defs := write("defList.csv", "lemma_id,def_num,short_definition,queries\n2,1,head,head\n")
	lines := write("lines.csv", "line_number,line_text,speaker,norm_speaker,eng_speaker\n1,first line,,,\n")

	out, err := execute(t, "import", "--words", words, "--definitions", defs, "--lines", lines)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 lines, 1 lemmas, 1 definitions")

	out, err = execute(t, "lines", "1")
	require.NoError(t, err)
	assert.Equal(t, "    1  first line\n", out)
}

func TestImportCmd_RequiresFiles(t *testing.T) {
	useDatabase(t)

	_, err := execute(t, "import", "--words", "w.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "antigone version dev")
}

func TestApplyServeOverrides(t *testing.T) {
	cfg := config.NewAppConfig()

	got := applyServeOverrides(cfg, "127.0.0.1", 9090, "", false)
	assert.Equal(t, "127.0.0.1:9090", got.Addr())
	assert.Equal(t, cfg.BasePath(), got.BasePath())

	got = applyServeOverrides(cfg, "", 0, "", true)
	assert.Equal(t, cfg.Addr(), got.Addr())
	assert.Empty(t, got.BasePath())
}

func TestApplyRemoteOverride(t *testing.T) {
	cfg := config.NewAppConfig()
	assert.False(t, applyRemoteOverride(cfg, "").IsRemote())

	got := applyRemoteOverride(cfg, "http://localhost:8080/AntigoneApp")
	assert.True(t, got.IsRemote())
	assert.Equal(t, "http://localhost:8080/AntigoneApp", got.Remote().ServerURL())
}
