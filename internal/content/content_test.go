package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agentDoc(name, description string) []byte {
	return []byte("---\nname: " + name + "\ndescription: " + description + "\n---\nInstructions.\n")
}

func TestParseUnit_Agent(t *testing.T) {
	raw := agentDoc("code-reviewer", "Reviews diffs")

	unit, err := ParseUnit(CategoryAgent, "code-reviewer.md", raw)
	require.NoError(t, err)

	assert.Equal(t, "code-reviewer", unit.Name)
	assert.Equal(t, "Reviews diffs", unit.Description)
	assert.Equal(t, "Instructions.\n", string(unit.Body))
	assert.Equal(t, raw, []byte(unit.Raw))
	assert.Equal(t, "agents/code-reviewer.md", unit.TargetRelPath())
	assert.Len(t, unit.SourceHash(), 64)
}

func TestParseUnit_MissingDescription(t *testing.T) {
	_, err := ParseUnit(CategoryCommand, "lint.md", []byte("---\nname: lint\n---\nbody\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestParseUnit_AgentRequiresName(t *testing.T) {
	_, err := ParseUnit(CategoryAgent, "helper.md", []byte("---\ndescription: d\n---\nbody\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestParseUnit_AgentNameMustMatchFilename(t *testing.T) {
	_, err := ParseUnit(CategoryAgent, "helper.md", agentDoc("other", "d"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match filename")
}

func TestParseUnit_CommandNameOptional(t *testing.T) {
	unit, err := ParseUnit(CategoryCommand, "lint.md", []byte("---\ndescription: Runs lint\n---\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "lint", unit.Name)
}

func TestScanCategory_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"commands/zeta.md":   {Data: []byte("---\ndescription: z\n---\n")},
		"commands/alpha.md":  {Data: []byte("---\ndescription: a\n---\n")},
		"commands/notes.txt": {Data: []byte("ignored")},
		"commands/sub/x.md":  {Data: []byte("ignored, recursion is off")},
	}

	units, err := ScanCategory(fsys, CategoryCommand)
	require.NoError(t, err)

	require.Len(t, units, 2)
	assert.Equal(t, "alpha", units[0].Name)
	assert.Equal(t, "zeta", units[1].Name)
}

func TestScanCategory_MissingDirIsEmpty(t *testing.T) {
	units, err := ScanCategory(fstest.MapFS{}, CategoryKnowledge)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestScanCategory_CaseCollision(t *testing.T) {
	fsys := fstest.MapFS{
		"commands/lint.md": {Data: []byte("---\ndescription: a\n---\n")},
		"commands/Lint.md": {Data: []byte("---\ndescription: b\n---\n")},
	}

	_, err := ScanCategory(fsys, CategoryCommand)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}

func TestParseCatalog(t *testing.T) {
	data := []byte("[defaults]\nagents = [\"code-reviewer\"]\ncommands = [\"lint\", \"release\"]\n")

	c, err := ParseCatalog(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"code-reviewer"}, c.Selections(CategoryAgent))
	assert.Equal(t, []string{"lint", "release"}, c.Selections(CategoryCommand))
	assert.Empty(t, c.Selections(CategoryKnowledge))
}
