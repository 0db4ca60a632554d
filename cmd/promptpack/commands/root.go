// Package commands implements the CLI commands for promptpack.
package commands

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/promptpack/cmd"
	"github.com/thoreinstein/promptpack/internal/config"
	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/internal/logging"
)

// version is set at build time via ldflags (see cmd/version.go).
var version = cmd.Version

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig and configLoadErr capture the result of config loading for
// commands to consume.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("promptpack version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "promptpack",
	Short: "Installer for a curated library of prompt documents",
	Long: `promptpack ships a library of declarative prompt documents (agents,
slash commands and knowledge docs) and installs a selected subset into a
target directory.

Installs are planned before anything is written: every run first diffs the
desired content set against the target directory and classifies each file
as create, overwrite or skip. Existing files are never overwritten without
--force, re-running the same install converges to a no-op, and --dry
previews exactly what apply would do without touching the disk.`,
	Example: `  # Install the curated default set globally
  promptpack init

  # Preview a local install without writing anything
  promptpack init --installationType=local --dry

  # Pick agents and commands explicitly
  promptpack init --installMode=custom --agents code-reviewer --commands lint

  See Also: promptpack list, promptpack generate`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configLoadErr != nil {
			return pperrors.NewUserError(configLoadErr, "check the --config path")
		}
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return pperrors.NewExitError(errors.New("cannot use --quiet and --verbose together"), pperrors.ExitUser)
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
