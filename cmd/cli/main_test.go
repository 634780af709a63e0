package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "deps.hcl", `
package "boost-program-options" {
  on = {
    "ubuntu 24.04" = "libboost-program-options1.83.0"
    "generic"      = "boost-program-options"
  }
}

target "core" {
  runtime_deps = ["boost-program-options"]
}
`)

	out := &bytes.Buffer{}
	err := run(out, io.Discard, []string{"-config", tempDir, "-distro", "ubuntu 24.04", "core"})

	require.NoError(t, err)
	assert.Equal(t, "libboost-program-options1.83.0\n", out.String())
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// A syntax error in the config is guaranteed to panic inside app.NewApp.
	invalidHCL := `
		target "core" {
			runtime_deps = [
	`
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "deps.hcl", invalidHCL)

	out := &bytes.Buffer{}
	err := run(out, io.Discard, []string{"-config", tempDir, "core"})

	require.Error(t, err, "run() should have returned an error after recovering from a panic")
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	errW := &bytes.Buffer{}
	err := run(io.Discard, errW, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	assert.Contains(t, errW.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(io.Discard, io.Discard, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_UnresolvedDependencyFails(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeConfig(t, tempDir, "deps.hcl", `
package "boost-program-options" {
  on = { "ubuntu 24.04" = "libboost-program-options1.83.0" }
}

target "core" {
  runtime_deps = ["boost-program-options"]
}
`)

	out := &bytes.Buffer{}
	err := run(out, io.Discard, []string{"-config", tempDir, "-distro", "fedora 40", "core"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no package mapping")
	assert.Empty(t, out.String(), "no partial results may be printed")
}
