package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeSnapshot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "agents", "nested"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "commands"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "agents", "a.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "agents", "nested", "deep.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "agents", "readme.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "commands", "c.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "manifest.json"), []byte("{}"), 0o644))

	snap, err := TakeSnapshot(root)
	require.NoError(t, err)

	assert.True(t, snap.Exists("agents/a.md"))
	assert.True(t, snap.Exists("commands/c.md"))
	assert.False(t, snap.Exists("agents/nested/deep.md"), "snapshot is non-recursive")
	assert.False(t, snap.Exists("agents/readme.txt"), "only content extension files count")
	assert.False(t, snap.Exists("manifest.json"))
	assert.Len(t, snap, 2)
}

func TestTakeSnapshot_MissingRoot(t *testing.T) {
	snap, err := TakeSnapshot(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, snap)
}
