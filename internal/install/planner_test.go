package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_Ordering(t *testing.T) {
	reg := testRegistry(t)
	cfg := &Config{
		SelectedAgents:    []string{"code-reviewer", "test-writer"},
		SelectedCommands:  []string{"explain", "lint"},
		SelectedKnowledge: []string{"style"},
	}

	plan := BuildPlan(cfg, reg, Snapshot{})

	var paths []string
	for _, op := range plan.Operations {
		paths = append(paths, op.TargetPath)
	}
	assert.Equal(t, []string{
		"agents/code-reviewer.md",
		"agents/test-writer.md",
		"commands/explain.md",
		"commands/lint.md",
		"knowledge/style.md",
	}, paths, "fixed category-then-name order")
}

func TestBuildPlan_Deterministic(t *testing.T) {
	reg := testRegistry(t)
	cfg := &Config{
		SelectedAgents:   []string{"code-reviewer", "doc-writer"},
		SelectedCommands: []string{"lint"},
	}
	snap := Snapshot{"agents/code-reviewer.md": {}}

	first := BuildPlan(cfg, reg, snap)
	second := BuildPlan(cfg, reg, snap)

	assert.Equal(t, first, second)
}

func TestBuildPlan_Classification(t *testing.T) {
	reg := testRegistry(t)
	snap := Snapshot{"agents/code-reviewer.md": {}}

	cfg := &Config{SelectedAgents: []string{"code-reviewer", "doc-writer"}}
	plan := BuildPlan(cfg, reg, snap)

	require.Len(t, plan.Operations, 2)
	assert.Equal(t, ActionSkip, plan.Operations[0].Action)
	assert.Equal(t, ActionCreate, plan.Operations[1].Action)
	assert.Equal(t, 1, plan.Creates)
	assert.Equal(t, 1, plan.Skips)
	assert.Equal(t, 0, plan.Overwrites)
	assert.Equal(t, 1, plan.Mutations())
}

func TestBuildPlan_ForceReclassifiesToOverwrite(t *testing.T) {
	reg := testRegistry(t)
	snap := Snapshot{"agents/code-reviewer.md": {}}

	cfg := &Config{SelectedAgents: []string{"code-reviewer"}, Force: true}
	plan := BuildPlan(cfg, reg, snap)

	require.Len(t, plan.Operations, 1)
	assert.Equal(t, ActionOverwrite, plan.Operations[0].Action)
	assert.Equal(t, 0, plan.Skips)
	assert.Equal(t, 1, plan.Overwrites)
}

func TestBuildPlan_ForceDoesNotTouchMissingFiles(t *testing.T) {
	reg := testRegistry(t)

	cfg := &Config{SelectedAgents: []string{"code-reviewer"}, Force: true}
	plan := BuildPlan(cfg, reg, Snapshot{})

	require.Len(t, plan.Operations, 1)
	assert.Equal(t, ActionCreate, plan.Operations[0].Action)
}

func TestBuildPlan_EmptySelection(t *testing.T) {
	plan := BuildPlan(&Config{}, testRegistry(t), Snapshot{})

	assert.Empty(t, plan.Operations)
	assert.Equal(t, 0, plan.Mutations())
}
