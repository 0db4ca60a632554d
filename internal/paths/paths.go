// Package paths resolves filesystem locations for the promptpack CLI: the
// global and local installation roots and the layout beneath them.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG config home and for the
// local installation root.
const AppName = "promptpack"

// LocalDirName is the per-project installation root, relative to the
// working directory.
const LocalDirName = ".promptpack"

// ManifestFileName is the name of the install manifest inside a target root.
const ManifestFileName = "manifest.json"

// DefaultDirPerm is the permission for newly created installation directories.
const DefaultDirPerm = 0o755

// GlobalRoot returns the fixed global installation root.
// On Linux: ~/.config/promptpack
func GlobalRoot() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LocalRoot returns the installation root relative to dir (normally the
// current working directory).
func LocalRoot(dir string) string {
	return filepath.Join(dir, LocalDirName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// ManifestPath returns the manifest location inside a target root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFileName)
}

// EnsureDir creates the directory and any necessary parents.
// It is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DefaultDirPerm)
}
