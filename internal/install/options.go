// Package install implements the install-time pipeline: resolving flags and
// prompts into a fully-specified configuration, planning file operations
// against a target snapshot, and executing the plan through the staging tree.
package install

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/promptpack/internal/content"
	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/internal/paths"
	"github.com/thoreinstein/promptpack/internal/registry"
)

// InstallationType selects the target root family.
type InstallationType string

// Installation types.
const (
	// TypeGlobal installs under the fixed per-user root.
	TypeGlobal InstallationType = "global"
	// TypeLocal installs under .promptpack in the working directory.
	TypeLocal InstallationType = "local"
)

// Mode selects how the content set is chosen.
type Mode string

// Installation modes.
const (
	// ModeDefault installs the curated catalog selection.
	ModeDefault Mode = "default"
	// ModeCustom installs an explicit or interactively chosen selection.
	ModeCustom Mode = "custom"
)

// Config is a fully-resolved installation configuration. Every field is
// populated; nothing downstream re-applies defaults.
type Config struct {
	InstallationType InstallationType
	Mode             Mode

	// SelectedAgents, SelectedCommands and SelectedKnowledge are the
	// name-sorted unit selections per category. Each is a subset of the
	// registry's names for that category.
	SelectedAgents    []string
	SelectedCommands  []string
	SelectedKnowledge []string

	Force          bool
	DryRun         bool
	NonInteractive bool
}

// Selected returns the selection for a category.
func (c *Config) Selected(category content.Category) []string {
	switch category {
	case content.CategoryAgent:
		return c.SelectedAgents
	case content.CategoryCommand:
		return c.SelectedCommands
	case content.CategoryKnowledge:
		return c.SelectedKnowledge
	}
	return nil
}

// TargetRoot returns the installation root for this configuration. cwd is
// only consulted for local installs.
func (c *Config) TargetRoot(cwd string) string {
	if c.InstallationType == TypeLocal {
		return paths.LocalRoot(cwd)
	}
	return paths.GlobalRoot()
}

// Flags carries the raw CLI inputs into the resolver. Nil means the flag was
// not given; the distinction is what makes set-if-absent resolution work.
type Flags struct {
	Mode             *string
	InstallationType *string
	Agents           []string
	Commands         []string
	Knowledge        []string
	Force            *bool
	DryRun           *bool
	NonInteractive   *bool
}

// Defaults carries configuration-file defaults (viper) into the resolver.
// They rank below flags and prompt answers.
type Defaults struct {
	InstallationType string
	Mode             string
}

// Prompter supplies interactive answers for custom-mode selection. A nil
// Prompter means prompts are unavailable.
type Prompter interface {
	// SelectUnits asks the user to choose unit names for one category.
	SelectUnits(category content.Category, units []content.Unit) ([]string, error)
}

// Resolver turns Flags plus defaults and prompt answers into a Config.
//
// Every field resolves independently with set-if-absent precedence:
// explicit flag, then prompt answer, then mode-specific default, then the
// global fallback. A lower-precedence source never overwrites a field a
// higher-precedence source already set, so an explicit --installationType
// survives any mode-implied default.
type Resolver struct {
	Registry *registry.Registry
	Defaults Defaults
	Prompter Prompter
}

// Resolve produces a fully-specified Config or fails with a resolution
// error. No filesystem mutation happens here or before the resulting plan
// is fully validated.
func (r *Resolver) Resolve(flags Flags) (*Config, error) {
	cfg := &Config{}

	cfg.NonInteractive = boolFlag(flags.NonInteractive, false)
	cfg.Force = boolFlag(flags.Force, false)
	cfg.DryRun = boolFlag(flags.DryRun, false)

	mode, err := r.resolveMode(flags)
	if err != nil {
		return nil, err
	}
	cfg.Mode = mode

	installType, err := r.resolveInstallationType(flags)
	if err != nil {
		return nil, err
	}
	cfg.InstallationType = installType

	if err := r.resolveSelections(flags, cfg); err != nil {
		return nil, err
	}

	if err := r.validateSelections(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r *Resolver) resolveMode(flags Flags) (Mode, error) {
	raw := ""
	switch {
	case flags.Mode != nil:
		raw = *flags.Mode
	case r.Defaults.Mode != "":
		raw = r.Defaults.Mode
	default:
		return ModeDefault, nil
	}

	switch Mode(strings.ToLower(raw)) {
	case ModeDefault:
		return ModeDefault, nil
	case ModeCustom:
		return ModeCustom, nil
	}
	return "", errors.Newf("invalid install mode %q (valid: default, custom)", raw)
}

func (r *Resolver) resolveInstallationType(flags Flags) (InstallationType, error) {
	raw := ""
	switch {
	case flags.InstallationType != nil:
		raw = *flags.InstallationType
	case r.Defaults.InstallationType != "":
		raw = r.Defaults.InstallationType
	default:
		// Global fallback, applied only because nothing else set the field.
		return TypeGlobal, nil
	}

	switch InstallationType(strings.ToLower(raw)) {
	case TypeGlobal:
		return TypeGlobal, nil
	case TypeLocal:
		return TypeLocal, nil
	}
	return "", errors.Newf("invalid installation type %q (valid: global, local)", raw)
}

// resolveSelections fills the per-category selections. Explicit flags win.
// In custom mode the remaining categories come from prompts; in default
// mode they come from the curated catalog.
func (r *Resolver) resolveSelections(flags Flags, cfg *Config) error {
	explicit := map[content.Category][]string{
		content.CategoryAgent:     flags.Agents,
		content.CategoryCommand:   flags.Commands,
		content.CategoryKnowledge: flags.Knowledge,
	}

	anyExplicit := false
	for _, sel := range explicit {
		if sel != nil {
			anyExplicit = true
		}
	}

	if cfg.Mode == ModeCustom && !anyExplicit {
		if cfg.NonInteractive || r.prompterUnavailable() {
			return errors.Mark(
				errors.New("custom mode needs explicit selections when prompts are unavailable"),
				pperrors.ErrAmbiguousSelection)
		}
	}

	for _, category := range content.Categories() {
		sel := explicit[category]
		if sel == nil {
			switch cfg.Mode {
			case ModeCustom:
				if cfg.NonInteractive || r.prompterUnavailable() {
					// Partially explicit custom install: unmentioned
					// categories stay empty.
					sel = []string{}
				} else {
					answer, err := r.Prompter.SelectUnits(category, r.Registry.Units(category))
					if err != nil {
						return errors.Wrapf(err, "selecting %s", category.Dir())
					}
					sel = answer
				}
			default:
				sel = r.Registry.Defaults(category)
			}
		}
		setSelection(cfg, category, normalize(sel))
	}

	return nil
}

// prompterUnavailable reports whether interactive answers cannot be obtained.
func (r *Resolver) prompterUnavailable() bool {
	return r.Prompter == nil
}

func (r *Resolver) validateSelections(cfg *Config) error {
	var offenders []string
	for _, category := range content.Categories() {
		for _, name := range cfg.Selected(category) {
			if _, ok := r.Registry.Get(category, name); !ok {
				offenders = append(offenders, fmt.Sprintf("%s/%s", category.Dir(), name))
			}
		}
	}
	if len(offenders) == 0 {
		return nil
	}

	var valid []string
	for _, category := range content.Categories() {
		for _, name := range r.Registry.Names(category) {
			valid = append(valid, fmt.Sprintf("%s/%s", category.Dir(), name))
		}
	}

	err := errors.Newf("unknown content units: %s (valid: %s)",
		strings.Join(offenders, ", "), strings.Join(valid, ", "))
	return errors.Mark(err, pperrors.ErrUnknownContentUnit)
}

func setSelection(cfg *Config, category content.Category, sel []string) {
	switch category {
	case content.CategoryAgent:
		cfg.SelectedAgents = sel
	case content.CategoryCommand:
		cfg.SelectedCommands = sel
	case content.CategoryKnowledge:
		cfg.SelectedKnowledge = sel
	}
}

// normalize sorts and dedupes a selection.
func normalize(sel []string) []string {
	out := make([]string, 0, len(sel))
	seen := make(map[string]struct{}, len(sel))
	for _, name := range sel {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func boolFlag(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
