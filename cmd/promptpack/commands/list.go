package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/promptpack/internal/content"
	pperrors "github.com/thoreinstein/promptpack/internal/errors"
	"github.com/thoreinstein/promptpack/internal/registry"
	"github.com/thoreinstein/promptpack/library"
)

var listCategory string

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "",
		"limit output to one category: agent, command, knowledge")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available content units",
	Example: `  # All content units
  promptpack list

  # Agents only
  promptpack list --category agent`,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	if listCategory != "" && !content.Category(listCategory).Valid() {
		err := errors.Newf("invalid category %q (valid: agent, command, knowledge)", listCategory)
		return pperrors.NewUserError(err, "")
	}

	reg, err := registry.FromLibrary(library.FS)
	if err != nil {
		return pperrors.NewExitError(errors.Wrap(err, "loading content registry"), pperrors.ExitSystem)
	}

	renderUnits(cmd.OutOrStdout(), reg, content.Category(listCategory))
	return nil
}

// renderUnits prints the per-category unit listing. The curated-marker
// legend appears only when at least one marker was printed.
func renderUnits(out io.Writer, reg *registry.Registry, filter content.Category) {
	curatedShown := false
	for _, category := range content.Categories() {
		if filter != "" && category != filter {
			continue
		}

		units := reg.Units(category)
		if len(units) == 0 {
			continue
		}

		curated := map[string]struct{}{}
		for _, name := range reg.Defaults(category) {
			curated[name] = struct{}{}
		}

		fmt.Fprintf(out, "%s:\n", category.Dir())
		for _, u := range units {
			marker := " "
			if _, ok := curated[u.Name]; ok {
				marker = "*"
				curatedShown = true
			}
			fmt.Fprintf(out, "  %s %-20s %s\n", marker, u.Name, u.Description)
		}
	}

	if curatedShown {
		fmt.Fprintln(out, "\n* installed by default mode")
	}
}
