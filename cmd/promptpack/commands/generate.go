package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/internal/registry"
)

var (
	generateSource string
	generateOut    string
)

func init() {
	generateCmd.Flags().StringVar(&generateSource, "source", "library",
		"content library directory to scan")
	generateCmd.Flags().StringVar(&generateOut, "out", "library/registry_gen.go",
		"path of the generated lookup artifact")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the content registry artifact",
	Long: `Scan the content library, validate every document's metadata, and
regenerate the statically-typed lookup artifact.

This is a build-time step for maintainers of the content library, not part
of installing. Generation fails outright on a missing required metadata key
or a name collision within a category, so the published registry is always
a checked artifact. The artifact is rewritten only when its content
actually changed.`,
	Example: `  # Regenerate after editing library documents
  promptpack generate

  # Generate from an alternate library checkout
  promptpack generate --source ./library --out ./library/registry_gen.go`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	wrote, err := registry.Generate(generateSource, generateOut)
	if err != nil {
		if errors.Is(err, pperrors.ErrGeneration) {
			return pperrors.NewUserError(err, "fix the reported document and re-run")
		}
		return pperrors.NewExitError(err, pperrors.ExitSystem)
	}

	if wrote {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", generateOut)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", generateOut)
	}
	return nil
}
