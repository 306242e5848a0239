package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scenario string
	results  string
}

const originalResults = `{"participants": {"score": 10}, "rounds": 3}`

func setup(t *testing.T, scenario string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		scenario: filepath.Join(dir, "scenario.toml"),
		results:  filepath.Join(dir, "results.json"),
	}
	require.NoError(t, os.WriteFile(f.scenario, []byte(scenario), 0644))
	require.NoError(t, os.WriteFile(f.results, []byte(originalResults), 0644))
	return f
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_Success(t *testing.T) {
	f := setup(t, "[[participants]]\nname = \"alice\"\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario, "--results", f.results}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{"participants": {"score": 10, "name": "alice"}, "rounds": 3}`, readFile(t, f.results))
	assert.Equal(t, "Enriched "+f.results+" with participant name: alice\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_Warnings(t *testing.T) {
	f := setup(t, "[[participants]]\nname = \"a\"\n\n[[participants]]\nname = \"b\"\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario, "--results", f.results, "--log-format", "json"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `"level":"WARN"`)
	assert.Contains(t, stderr.String(), "Multiple participants found")
	assert.Contains(t, readFile(t, f.results), `"name": "a"`)
}

func TestRun_MissingScenario(t *testing.T) {
	f := setup(t, "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario + ".missing", "--results", f.results}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: scenario not found")
	assert.Equal(t, originalResults, readFile(t, f.results))
	assert.Empty(t, stdout.String())
}

func TestRun_MissingResults(t *testing.T) {
	f := setup(t, "[[participants]]\nname = \"alice\"\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario, "--results", f.results + ".missing"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: results not found")
}

func TestRun_NonObjectResults(t *testing.T) {
	f := setup(t, "[[participants]]\nname = \"alice\"\n")
	require.NoError(t, os.WriteFile(f.results, []byte(`[1, 2]`), 0644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario, "--results", f.results}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, `[1, 2]`, readFile(t, f.results))
}

func TestRun_RequiredFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", "scenario.toml"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `"results"`)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	f := setup(t, "[[participants]]\nname = \"alice\"\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario, "--results", f.results, "--log-level", "loud"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, originalResults, readFile(t, f.results))
}

func TestRun_DryRun(t *testing.T) {
	f := setup(t, "[[participants]]\nname = \"alice\"\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--scenario", f.scenario, "--results", f.results, "--dry-run"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, originalResults, readFile(t, f.results))
	assert.JSONEq(t, `{"participants": {"score": 10, "name": "alice"}, "rounds": 3}`, stdout.String())
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "enrich-results version dev\n", stdout.String())
}
