package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/ppcatalog/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.pp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeManifest(t, `file { "/tmp/one": } service { "nginx": } File["/tmp/one"] -> Service["nginx"]`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "# Execution plan debug:\n# File[/tmp/one] (-> Service[nginx])\n# Service[nginx]\n", out.String())
}

func TestRun_DOT(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `exec { 'a': } exec { 'b': } Exec['a'] ~> Exec['b']`)
	out := &bytes.Buffer{}

	require.NoError(t, run(out, &bytes.Buffer{}, []string{"-format", "dot", path}))
	assert.Contains(t, out.String(), `0 -> 1 [ label = "~>" ]`)
}

func TestRun_SyntaxErrorPrintsDiagnostic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The title is missing its colon.
	path := writeManifest(t, "file { '/tmp/one' }\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{path})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, errOut.String(), "Error: Unexpected '}'")
	assert.Contains(t, errOut.String(), "line 1")
	assert.Empty(t, out.String())
}

func TestRun_CycleError(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `
		file { 'a': } file { 'b': } file { 'c': }
		File['a'] -> File['b']
		File['b'] -> File['c']
		File['c'] -> File['a']
	`)

	errOut := &bytes.Buffer{}
	err := run(&bytes.Buffer{}, errOut, []string{path})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, errOut.String(), "Error: Dependency cycle")
	assert.Contains(t, errOut.String(), "edge File[c] -> File[a] would create a cycle")
	assert.Contains(t, errOut.String(), "line 5")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
