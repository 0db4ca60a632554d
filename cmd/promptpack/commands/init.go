package commands

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/promptpack/internal/config"
	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/internal/install"
	"github.com/thoreinstein/promptpack/internal/prompt"
	"github.com/thoreinstein/promptpack/internal/registry"
	"github.com/thoreinstein/promptpack/library"
)

var (
	initInstallMode      string
	initInstallationType string
	initAgents           []string
	initCommands         []string
	initKnowledge        []string
	initDry              bool
	initForce            bool
	initNonInteractive   bool
)

func init() {
	initCmd.Flags().StringVar(&initInstallMode, "installMode", "",
		"content selection mode: default (curated) or custom")
	initCmd.Flags().StringVar(&initInstallationType, "installationType", "",
		"target root: global (per-user) or local (under the working directory)")
	initCmd.Flags().StringSliceVar(&initAgents, "agents", nil,
		"agent names to install (custom selection)")
	initCmd.Flags().StringSliceVar(&initCommands, "commands", nil,
		"command names to install (custom selection)")
	initCmd.Flags().StringSliceVar(&initKnowledge, "knowledge", nil,
		"knowledge doc names to install (custom selection)")
	initCmd.Flags().BoolVar(&initDry, "dry", false,
		"compute and report the plan without writing anything")
	initCmd.Flags().BoolVar(&initForce, "force", false,
		"overwrite existing files instead of skipping them")
	initCmd.Flags().BoolVar(&initNonInteractive, "nonInteractive", false,
		"disable prompts; custom selections must come from flags")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install content units into a target directory",
	Long: `Install a selected set of content units (agents, commands, knowledge
docs) into the target directory.

Default mode installs the curated catalog selection. Custom mode installs
an explicit selection from the --agents/--commands/--knowledge flags, or an
interactive one when flags are omitted and a terminal is attached.

Existing files are skipped unless --force is given, so re-running init is
always safe. Use --dry to preview the plan with zero disk mutation.`,
	Example: `  # Curated defaults into the global root
  promptpack init

  # Explicit custom selection, no prompts
  promptpack init --installMode=custom --nonInteractive --agents code-reviewer

  # Preview a forced local reinstall
  promptpack init --installationType=local --force --dry`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	reg, err := registry.FromLibrary(library.FS)
	if err != nil {
		return pperrors.NewExitError(errors.Wrap(err, "loading content registry"), pperrors.ExitSystem)
	}

	flags := collectInitFlags(cmd)
	resolver := &install.Resolver{
		Registry: reg,
		Defaults: resolverDefaults(loadedConfig),
	}
	if prompt.IsInteractive() {
		resolver.Prompter = prompt.NewSelector()
	}

	cfg, err := resolver.Resolve(flags)
	if err != nil {
		return resolutionError(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return pperrors.NewSystemError(err, "cannot determine working directory")
	}

	executor := &install.Executor{
		Registry: reg,
		Out:      cmd.OutOrStdout(),
		Logger:   slog.Default(),
		Version:  version,
	}
	return executor.Run(cfg, cfg.TargetRoot(cwd))
}

// collectInitFlags translates the cobra flag set into resolver inputs,
// preserving the set/unset distinction the resolver's precedence needs.
func collectInitFlags(cmd *cobra.Command) install.Flags {
	flags := install.Flags{}

	if cmd.Flags().Changed("installMode") {
		flags.Mode = &initInstallMode
	}
	if cmd.Flags().Changed("installationType") {
		flags.InstallationType = &initInstallationType
	}
	if cmd.Flags().Changed("agents") {
		flags.Agents = initAgents
	}
	if cmd.Flags().Changed("commands") {
		flags.Commands = initCommands
	}
	if cmd.Flags().Changed("knowledge") {
		flags.Knowledge = initKnowledge
	}
	if cmd.Flags().Changed("dry") {
		flags.DryRun = &initDry
	}
	if cmd.Flags().Changed("force") {
		flags.Force = &initForce
	}
	if cmd.Flags().Changed("nonInteractive") {
		flags.NonInteractive = &initNonInteractive
	}

	return flags
}

func resolverDefaults(cfg *config.Config) install.Defaults {
	if cfg == nil {
		return install.Defaults{}
	}
	return install.Defaults{
		InstallationType: cfg.InstallationType,
		Mode:             cfg.InstallMode,
	}
}

// resolutionError maps resolver failures onto user-facing exit errors.
func resolutionError(err error) error {
	switch {
	case errors.Is(err, pperrors.ErrUnknownContentUnit):
		return pperrors.NewUserError(err, "run 'promptpack list' to see available content")
	case errors.Is(err, pperrors.ErrAmbiguousSelection):
		return pperrors.NewUserError(err, "pass --agents/--commands/--knowledge or drop --nonInteractive")
	default:
		return pperrors.NewExitError(err, pperrors.ExitUser)
	}
}
