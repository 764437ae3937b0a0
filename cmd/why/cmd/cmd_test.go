package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// run executes the CLI with a private configuration whose cache lives in
// a temp dir
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "why.toml")
	content := "[cache]\npath = \"" + filepath.ToSlash(filepath.Join(dir, "checks.db")) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	t.Setenv("WHY_CONFIG", cfgPath)

	cfgFile, verbose, logLevel, logFormat, noColor = "", false, "", "", true
	tokensJSON, parseFormat = false, "sexpr"
	checkWatch, checkNoCache, checkCache = false, false, ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--no-color"))

	code := Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTokens(t *testing.T) {
	r := run(t, "x = 1;", "tokens")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "1:1 identifier x\n1:3 =\n1:5 number 1\n1:6 ;\n1:7 end of input\n", r.stdout)
}

func TestTokens_JSON(t *testing.T) {
	r := run(t, "x = 'a';", "tokens", "--json")
	require.Equal(t, 0, r.code, r.stderr)

	var tokens []tokenJSON
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &tokens))
	require.Len(t, tokens, 5)
	assert.Equal(t, tokenJSON{Line: 1, Column: 5, Kind: "string", Text: "'a'"}, tokens[2])
}

func TestTokens_LexicalError(t *testing.T) {
	r := run(t, "x = 'abc;", "tokens")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "<stdin>:1:5: error:")
	assert.Contains(t, r.stderr, "hint: close the string with '")
	assert.Empty(t, r.stdout)
}

func TestParse_Formats(t *testing.T) {
	src := "int x = 1;\ny = x;"

	sexpr := run(t, src, "parse")
	require.Equal(t, 0, sexpr.code, sexpr.stderr)
	assert.Len(t, strings.Split(strings.TrimSpace(sexpr.stdout), "\n"), 2)

	js := run(t, src, "parse", "--format", "json")
	require.Equal(t, 0, js.code, js.stderr)
	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(js.stdout), &tree))
	assert.NotEmpty(t, tree)

	ym := run(t, src, "parse", "-f", "yaml")
	require.Equal(t, 0, ym.code, ym.stderr)
	var ytree map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(ym.stdout), &ytree))
	assert.Equal(t, len(tree), len(ytree))
}

func TestParse_UnknownFormat(t *testing.T) {
	r := run(t, "x = 1;", "parse", "--format", "xml")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "Fehler: unknown output format")
}

func TestParse_MissingFile(t *testing.T) {
	r := run(t, "", "parse", filepath.Join(t.TempDir(), "missing.why"))
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "failed to read source")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.why", "x = 1;")
	writeSource(t, dir, "b.why", "y = 2;")

	first := run(t, "", "check", dir)
	require.Equal(t, 0, first.code, first.stderr)
	assert.Contains(t, first.stdout, "2 Dateien geprüft, 0 fehlerhaft")
}

func TestCheck_Failure(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "ok.why", "x = 1;")
	bad := writeSource(t, dir, "bad.why", "x = 1;\ny = (2;")

	r := run(t, "", "check", dir)
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, bad+":2:7: error:")
	assert.Contains(t, r.stdout, "2 Dateien geprüft, 1 fehlerhaft")
}

func TestCheck_CacheHit(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "a.why", "x = 1;")
	cache := filepath.Join(t.TempDir(), "cache.db")

	first := run(t, "", "check", "--cache", cache, file)
	require.Equal(t, 0, first.code, first.stderr)
	assert.Contains(t, first.stdout, "0 aus dem Cache")

	second := run(t, "", "check", "--cache", cache, file)
	require.Equal(t, 0, second.code, second.stderr)
	assert.Contains(t, second.stdout, "1 aus dem Cache")

	uncached := run(t, "", "check", "--cache", cache, "--no-cache", file)
	assert.Contains(t, uncached.stdout, "0 aus dem Cache")
}

func TestCheck_Stdin(t *testing.T) {
	r := run(t, "int x = 'a';", "check", "-")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "<stdin>:1:9: error:")
}

func TestParse_DiagnosticPrintedOnce(t *testing.T) {
	r := run(t, "int x = 1.5;", "parse", "-")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "<stdin>:1:9: error:")
	assert.NotContains(t, r.stderr, "parse failed")
}

func TestCheck_WatchRejectsStdin(t *testing.T) {
	r := run(t, "", "check", "--watch", "-")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "--watch cannot read from stdin")
}

func TestVersion(t *testing.T) {
	r := run(t, "", "version")
	require.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "why 0.1.0 (Sprache 0.1.0")
	assert.Contains(t, r.stdout, "Go Version:")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[parser]\nmax_depth = -1\n"), 0o644))

	r := run(t, "", "--config", path, "version")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "parser.max_depth")
}
