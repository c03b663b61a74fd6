package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ParsesDeckToJSON(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	deckPath := filepath.Join(tempDir, "turbine.fst")
	deckContent := `-- minimal deck --
10  TMax - Simulation length
`
	err := os.WriteFile(deckPath, []byte(deckContent), 0600)
	require.NoError(t, err, "failed to set up test deck")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err = run(out, errOut, []string{"-header-lines", "1", deckPath})

	require.NoError(t, err)
	require.Contains(t, out.String(), `"TMax"`)
}

func TestRun_MissingDeckFails(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, []string{"does-not-exist.fst"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "does-not-exist.fst")
}
