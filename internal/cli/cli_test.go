package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContext_EmptyPathIsEmptyContext(t *testing.T) {
	ctx, err := LoadContext("")
	require.NoError(t, err)
	assert.Nil(t, ctx.Tables)
}

func TestLoadContext_ParsesJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ctx.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"tables":{"persons":{"columns":{"id":{"type":"integer"}}}}}`,
	), 0o644))

	ctx, err := LoadContext(path)
	require.NoError(t, err)
	require.Contains(t, ctx.Tables, "persons")
	assert.Equal(t, "integer", string(ctx.Tables["persons"].Columns["id"].Type))
}

func TestLoadContext_MissingFile(t *testing.T) {
	_, err := LoadContext("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseLocationFlag(t *testing.T) {
	start, end, err := parseLocationFlag("4:9")
	require.NoError(t, err)
	assert.Equal(t, 4, start)
	assert.Equal(t, 9, end)

	_, _, err = parseLocationFlag("not-a-range")
	assert.Error(t, err)
}

func TestOpenOutput_DashMeansStdout(t *testing.T) {
	f, closeFn, err := openOutput("-")
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, os.Stdout, f)
}

func TestOpenOutput_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	f, closeFn, err := openOutput(path)
	require.NoError(t, err)
	_, err = f.WriteString("hello")
	require.NoError(t, err)
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestAnalyze_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proc.ora.sql")
	require.NoError(t, os.WriteFile(src, []byte(
		"CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;",
	), 0o644))
	out := filepath.Join(dir, "report.json")

	err := Analyze("procedure", src, "", "json", out, false)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"procedure"`)
}

func TestTranspile_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proc.ora.sql")
	require.NoError(t, os.WriteFile(src, []byte(
		"CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;",
	), 0o644))
	out := filepath.Join(dir, "edited.sql")

	err := Transpile("procedure", src, "CYAR-0002", "", "", out, false)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AS $$")
}

func TestTranspile_ValidateCatchesIncompleteRewrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proc.ora.sql")
	require.NoError(t, os.WriteFile(src, []byte(
		"CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END p;",
	), 0o644))
	out := filepath.Join(dir, "edited.sql")

	// CYAR-0002 alone rewrites the IS/AS keyword but leaves the body
	// unclosed and the trailing END p; untouched, so the result is not
	// yet valid PostgreSQL -- --validate should catch that.
	err := Transpile("procedure", src, "CYAR-0002", "", "", out, true)
	require.Error(t, err)
}
