package install

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/promptpack/internal/content"
	"github.com/thoreinstein/promptpack/internal/registry"
)

// testRegistry builds a small registry: three agents, two commands, one
// knowledge doc, with a curated catalog covering a subset.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	fsys := fstest.MapFS{
		"agents/code-reviewer.md": {Data: []byte("---\nname: code-reviewer\ndescription: Reviews diffs\n---\nReview.\n")},
		"agents/doc-writer.md":    {Data: []byte("---\nname: doc-writer\ndescription: Writes docs\n---\nDocument.\n")},
		"agents/test-writer.md":   {Data: []byte("---\nname: test-writer\ndescription: Writes tests\n---\nTest.\n")},
		"commands/lint.md":        {Data: []byte("---\ndescription: Runs lint\n---\nLint.\n")},
		"commands/explain.md":     {Data: []byte("---\ndescription: Explains code\n---\nExplain.\n")},
		"knowledge/style.md":      {Data: []byte("---\ndescription: Style guide\n---\nTabs.\n")},
		"catalog.toml":            {Data: []byte("[defaults]\nagents = [\"code-reviewer\"]\ncommands = [\"lint\"]\nknowledge = [\"style\"]\n")},
	}

	reg, err := registry.FromLibrary(fsys)
	require.NoError(t, err)
	return reg
}

// fakePrompter returns canned selections per category.
type fakePrompter struct {
	answers map[content.Category][]string
	asked   []content.Category
}

func (p *fakePrompter) SelectUnits(category content.Category, _ []content.Unit) ([]string, error) {
	p.asked = append(p.asked, category)
	return p.answers[category], nil
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }
