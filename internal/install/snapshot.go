package install

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/promptpack/internal/content"
)

// Snapshot is a read-only listing of the content files currently present
// under a target root, keyed by root-relative slash path. The planner works
// exclusively from a Snapshot so it never touches the filesystem itself.
type Snapshot map[string]struct{}

// Exists reports whether rel was present when the snapshot was taken.
func (s Snapshot) Exists(rel string) bool {
	_, ok := s[rel]
	return ok
}

// TakeSnapshot lists the content files under root. Only the category
// directories are consulted, non-recursively, matching how units are laid
// out on install. A missing root yields an empty snapshot.
func TakeSnapshot(root string) (Snapshot, error) {
	snap := Snapshot{}

	for _, category := range content.Categories() {
		dir := filepath.Join(root, category.Dir())
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "listing %s", dir)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), content.Extension) {
				continue
			}
			snap[path.Join(category.Dir(), entry.Name())] = struct{}{}
		}
	}

	return snap, nil
}
