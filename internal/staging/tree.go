// Package staging provides the virtual file tree: an in-memory staging
// layer over a target root. Mutations accumulate in memory and reach the
// real filesystem only on an explicit Flush, which is what makes dry-run a
// zero-risk preview of apply.
package staging

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"

	pperrors "github.com/thoreinstein/promptpack/internal/errors"
)

// Tree stages writes beneath a single target root. Paths are slash-separated
// and relative to the root.
type Tree struct {
	root   string
	staged map[string][]byte
}

// New creates an empty Tree over root. The root does not need to exist yet.
func New(root string) *Tree {
	return &Tree{
		root:   root,
		staged: make(map[string][]byte),
	}
}

// Write stages content at rel. Staging the same content twice is a no-op;
// staging different content replaces the earlier stage.
func (t *Tree) Write(rel string, content []byte) {
	if prev, ok := t.staged[rel]; ok && bytes.Equal(prev, content) {
		return
	}
	t.staged[rel] = content
}

// Exists reports whether rel exists in the staged-or-real view: either a
// staged write or a file already on disk.
func (t *Tree) Exists(rel string) bool {
	if _, ok := t.staged[rel]; ok {
		return true
	}
	_, err := os.Stat(t.abs(rel))
	return err == nil
}

// Read returns the staged content at rel, falling back to the file on disk.
func (t *Tree) Read(rel string) ([]byte, error) {
	if content, ok := t.staged[rel]; ok {
		return content, nil
	}
	data, err := os.ReadFile(t.abs(rel))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", rel)
	}
	return data, nil
}

// Change is one staged write that Flush would apply.
type Change struct {
	// Path is relative to the tree root.
	Path string

	// Content is the staged file content.
	Content []byte
}

// Changes returns the staged writes in path order without applying them.
// Dry-run reporting is built on this.
func (t *Tree) Changes() []Change {
	changes := make([]Change, 0, len(t.staged))
	for rel, content := range t.staged {
		changes = append(changes, Change{Path: rel, Content: content})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}

// FlushFailure records one staged write that could not be applied.
type FlushFailure struct {
	Path string
	Err  error
}

// FlushResult reports the outcome of a Flush.
type FlushResult struct {
	// Written lists the relative paths applied successfully, in order.
	Written []string

	// Failures lists the writes that failed.
	Failures []FlushFailure
}

// Err returns nil when every write succeeded, otherwise an error marked
// with ErrFlushIncomplete.
func (r FlushResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	err := errors.Newf("%d of %d staged writes failed", len(r.Failures), len(r.Failures)+len(r.Written))
	return errors.Mark(err, pperrors.ErrFlushIncomplete)
}

// Flush applies all staged writes in path-sorted order. It is not
// transactional: a failed write is recorded and the remaining independent
// writes still proceed, so a mid-flush failure leaves the files written so
// far on disk. Applied writes are unstaged; failed ones stay staged.
func (t *Tree) Flush() FlushResult {
	var result FlushResult

	for _, change := range t.Changes() {
		abs := t.abs(change.Path)
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			result.Failures = append(result.Failures, FlushFailure{Path: change.Path, Err: err})
			continue
		}
		if err := os.WriteFile(abs, change.Content, 0o644); err != nil {
			result.Failures = append(result.Failures, FlushFailure{Path: change.Path, Err: err})
			continue
		}
		delete(t.staged, change.Path)
		result.Written = append(result.Written, change.Path)
	}

	return result
}

func (t *Tree) abs(rel string) string {
	return filepath.Join(t.root, filepath.FromSlash(rel))
}
