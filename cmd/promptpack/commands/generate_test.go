package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pperrors "github.com/thoreinstein/promptpack/internal/errors"
)

func writeLibraryFixture(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "agents"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "commands"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agents", "helper.md"),
		[]byte("---\nname: helper\ndescription: Helps\n---\nHelp.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commands", "fix.md"),
		[]byte("---\ndescription: Fixes\n---\nFix.\n"), 0o644))
}

func TestGenerate(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	writeLibraryFixture(t, dir)
	out := filepath.Join(dir, "registry_gen.go")

	stdout, err := runCLI(t, "generate", "--source", dir, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"helper": "agents/helper.md",`)

	// Unchanged library: second run reports up to date.
	stdout, err = runCLI(t, "generate", "--source", dir, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")
}

func TestGenerate_InvalidDocument(t *testing.T) {
	resetInitFlags(t)
	dir := t.TempDir()
	writeLibraryFixture(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commands", "broken.md"),
		[]byte("no metadata block\n"), 0o644))

	_, err := runCLI(t, "generate", "--source", dir, "--out", filepath.Join(dir, "registry_gen.go"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pperrors.ErrGeneration))
}
