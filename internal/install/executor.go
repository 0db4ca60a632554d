package install

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/internal/logging"
	"github.com/thoreinstein/promptpack/internal/registry"
	"github.com/thoreinstein/promptpack/internal/staging"
)

// Executor orchestrates registry, planner and staging tree into one of two
// terminal behaviors: a dry-run report or a real apply plus manifest.
type Executor struct {
	Registry *registry.Registry
	Out      io.Writer
	Logger   *slog.Logger

	// Version is recorded in the manifest as the writing tool's version.
	Version string

	// Now supplies the manifest timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Run executes the resolved configuration against root.
//
// Dry-run: the plan is computed and reported; Flush is never called, so no
// file under the target root is created, modified or deleted.
//
// Apply: every Create and Overwrite operation is staged and flushed, then a
// manifest of the successful writes is persisted. Failed writes are
// reported per file, remaining writes still proceed, and the invocation
// fails with a system error. A plan with no mutations is a no-op: nothing
// is flushed and the existing manifest is left untouched.
func (e *Executor) Run(cfg *Config, root string) error {
	logger := e.Logger
	if logger == nil {
		logger = logging.NewDiscard()
	}

	snap, err := TakeSnapshot(root)
	if err != nil {
		return pperrors.NewSystemError(err, "check permissions on "+root)
	}

	plan := BuildPlan(cfg, e.Registry, snap)
	logger.Debug("plan computed",
		"creates", plan.Creates,
		"skips", plan.Skips,
		"overwrites", plan.Overwrites,
		"root", root)

	e.renderPlan(plan, cfg, root)

	if cfg.DryRun {
		fmt.Fprintln(e.Out, "Dry run: no files were written.")
		return nil
	}

	if plan.Mutations() == 0 {
		fmt.Fprintln(e.Out, "Nothing to do.")
		return nil
	}

	tree := staging.New(root)
	for _, op := range plan.Operations {
		if op.Action == ActionSkip {
			continue
		}
		tree.Write(op.TargetPath, op.Unit.Raw)
	}

	result := tree.Flush()
	for _, failure := range result.Failures {
		logger.Error("write failed", "path", failure.Path, "error", failure.Err)
		fmt.Fprintf(e.Out, "failed: %s: %v\n", failure.Path, failure.Err)
	}

	manifest := e.buildManifest(cfg, plan, result)
	if err := WriteManifest(root, manifest); err != nil {
		return pperrors.NewSystemError(err, "check permissions on "+root)
	}
	logger.Info("manifest written",
		"path", root,
		"entries", len(manifest.Entries))

	if err := result.Err(); err != nil {
		return pperrors.NewSystemError(err, "re-run after fixing the reported paths")
	}

	fmt.Fprintf(e.Out, "Installed %d file(s) to %s\n", len(result.Written), root)
	return nil
}

// buildManifest maps the flush result back onto the plan. Only operations
// whose write actually landed become entries.
func (e *Executor) buildManifest(cfg *Config, plan *Plan, result staging.FlushResult) *Manifest {
	written := make(map[string]struct{}, len(result.Written))
	for _, rel := range result.Written {
		written[rel] = struct{}{}
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	m := &Manifest{
		Version:          ManifestVersion,
		InstalledAt:      now().UTC(),
		InstallationType: cfg.InstallationType,
		ToolVersion:      e.Version,
		Entries:          []ManifestEntry{},
	}
	for _, op := range plan.Operations {
		if _, ok := written[op.TargetPath]; !ok {
			continue
		}
		m.Entries = append(m.Entries, ManifestEntry{
			Category:   op.Unit.Category,
			Name:       op.Unit.Name,
			SourceHash: op.Unit.SourceHash(),
		})
	}
	return m
}

// renderPlan prints the human-readable action summary: aggregate counts
// followed by the affected paths.
func (e *Executor) renderPlan(plan *Plan, cfg *Config, root string) {
	useColor := logging.SupportsColor(e.Out)
	paint := func(c *color.Color, s string) string {
		if !useColor {
			return s
		}
		return c.Sprint(s)
	}

	fmt.Fprintf(e.Out, "Plan for %s (%s install):\n", root, cfg.InstallationType)
	fmt.Fprintf(e.Out, "  %d to create, %d to overwrite, %d to skip\n",
		plan.Creates, plan.Overwrites, plan.Skips)

	for _, op := range plan.Operations {
		var label string
		switch op.Action {
		case ActionCreate:
			label = paint(color.New(color.FgGreen), "create")
		case ActionOverwrite:
			label = paint(color.New(color.FgYellow), "overwrite")
		default:
			label = paint(color.New(color.FgHiBlack), "skip")
		}
		fmt.Fprintf(e.Out, "  %-9s %s\n", label, op.TargetPath)
	}
}
