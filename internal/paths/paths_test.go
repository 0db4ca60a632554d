package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRoot(t *testing.T) {
	assert.Equal(t, filepath.Join("/work", ".promptpack"), LocalRoot("/work"))
}

func TestManifestPath(t *testing.T) {
	assert.Equal(t, "/tmp/root/manifest.json", ManifestPath("/tmp/root"))
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
