package install

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/promptpack/internal/content"
	"github.com/thoreinstein/promptpack/internal/paths"
	"github.com/thoreinstein/promptpack/pkg/fileutil"
)

// ManifestVersion is the manifest format version, for forward compatibility.
const ManifestVersion = 1

// Manifest is the persisted record of what an apply actually wrote. It is
// written only on real (non-dry-run) applies and lists successful writes
// only: skipped units and failed writes are excluded. The manifest, not the
// plan, is the authoritative record of what is present.
type Manifest struct {
	// Version is the manifest format version.
	Version int `json:"version"`

	// InstalledAt is when the apply ran.
	InstalledAt time.Time `json:"installed_at"`

	// InstallationType records whether this was a global or local install.
	InstallationType InstallationType `json:"installation_type"`

	// ToolVersion is the promptpack version that wrote the manifest.
	ToolVersion string `json:"tool_version,omitempty"`

	// Entries lists the content units materialized by this apply.
	Entries []ManifestEntry `json:"entries"`
}

// ManifestEntry identifies one installed content unit.
type ManifestEntry struct {
	Category content.Category `json:"category"`
	Name     string           `json:"name"`

	// SourceHash is the SHA256 of the source document as installed.
	SourceHash string `json:"source_hash"`
}

// WriteManifest persists the manifest atomically under root.
func WriteManifest(root string, m *Manifest) error {
	if err := paths.EnsureDir(root); err != nil {
		return errors.Wrap(err, "creating target root")
	}
	return fileutil.AtomicWriteJSON(paths.ManifestPath(root), m)
}

// LoadManifest reads the manifest under root. A missing manifest is not an
// error; it returns (nil, nil).
func LoadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(paths.ManifestPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	return &m, nil
}
