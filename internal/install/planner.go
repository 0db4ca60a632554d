package install

import (
	"github.com/thoreinstein/promptpack/internal/content"
	"github.com/thoreinstein/promptpack/internal/registry"
)

// Action classifies what apply would do for one file.
type Action string

// File actions.
const (
	// ActionCreate writes a file that does not exist yet.
	ActionCreate Action = "create"
	// ActionSkip leaves an existing file untouched (force off).
	ActionSkip Action = "skip"
	// ActionOverwrite replaces an existing file (force on).
	ActionOverwrite Action = "overwrite"
)

// FileOperation is one planned per-unit action.
type FileOperation struct {
	// TargetPath is the destination, relative to the target root.
	TargetPath string

	// Action is the planned classification.
	Action Action

	// Unit is the content unit the operation materializes.
	Unit *content.Unit
}

// Plan is the ordered operation list plus aggregate counts. Operations are
// ordered by category (agents, commands, knowledge) and by name within each
// category, independent of any filesystem iteration order.
type Plan struct {
	Operations []FileOperation

	Creates    int
	Skips      int
	Overwrites int
}

// Mutations reports how many operations would touch disk.
func (p *Plan) Mutations() int {
	return p.Creates + p.Overwrites
}

// BuildPlan computes the installation plan for a resolved configuration
// against a registry and a target snapshot. It is a pure function of its
// inputs: identical inputs yield an identical plan, and it performs no I/O,
// so it can back dry-run previews at no risk.
//
// The configuration is assumed resolver-validated; selections must be
// subsets of the registry's names. An empty selection yields an empty plan.
func BuildPlan(cfg *Config, reg *registry.Registry, snap Snapshot) *Plan {
	plan := &Plan{}

	for _, category := range content.Categories() {
		for _, name := range cfg.Selected(category) {
			unit, ok := reg.Get(category, name)
			if !ok {
				continue
			}

			op := FileOperation{
				TargetPath: unit.TargetRelPath(),
				Unit:       unit,
			}
			switch {
			case !snap.Exists(op.TargetPath):
				op.Action = ActionCreate
				plan.Creates++
			case cfg.Force:
				op.Action = ActionOverwrite
				plan.Overwrites++
			default:
				op.Action = ActionSkip
				plan.Skips++
			}

			plan.Operations = append(plan.Operations, op)
		}
	}

	return plan
}
