package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/csvplot/internal/cli"
	"github.com/specialistvlad/csvplot/internal/table"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_PlotsRequestedKey(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "data.csv", "a,b\n1,2\n3,4\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{path, "--keys", "a"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "• a", "Expected the chart legend for key 'a'")
}

func TestRun_GroupedPrintsShape(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "data.csv", "# bench\nsample,v\nx,1\ny,2\nx,3\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"--keys", "v", "--group", "sample", path})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "2 2\n")
	require.Contains(t, out.String(), "• x")
	require.Contains(t, out.String(), "• y")
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "sample,v\nx,1\nx,2\n")
	cfg := writeFile(t, dir, "plot.hcl", `
		keys     = ["v"]
		group_by = "sample"
		summary  = true
	`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"--config", cfg, path})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "1 2\n")
	require.Contains(t, out.String(), "stddev")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_MissingKeys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "data.csv", "a\n1\n")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected *cli.ExitError, got %T", err)
	require.Equal(t, 1, exitErr.Code)
	require.Equal(t, cli.MissingKeysMessage, exitErr.Message)
}

func TestRun_ConfigFileWithoutKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "a\n1\n")
	cfg := writeFile(t, dir, "plot.hcl", `group_by = "a"`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--config", cfg, path})

	require.Error(t, err)
	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected *cli.ExitError, got %T", err)
	require.Equal(t, 1, exitErr.Code)
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EmptyFileIsFatal(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "empty.csv", "")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--keys", "a", path})

	require.Error(t, err)
	require.ErrorIs(t, err, table.ErrNoHeader)
}
