// Package prompt provides the interactive selection UI for custom-mode
// installs.
package prompt

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"

	"github.com/thoreinstein/promptpack/internal/content"
)

// Selector asks the user to pick content units with a fuzzy finder.
type Selector struct{}

// NewSelector creates a Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// SelectUnits presents the category's units in a multi-select fuzzy finder
// and returns the chosen names. Aborting the finder (Esc/Ctrl-C) selects
// nothing; tab toggles entries.
func (s *Selector) SelectUnits(category content.Category, units []content.Unit) ([]string, error) {
	if len(units) == 0 {
		return nil, nil
	}

	indexes, err := fuzzyfinder.FindMulti(
		units,
		func(i int) string {
			return fmt.Sprintf("%s: %s", units[i].Name, units[i].Description)
		},
		fuzzyfinder.WithHeader(fmt.Sprintf("Select %s to install (tab to toggle, enter to confirm)", category.Dir())),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			u := units[i]
			return fmt.Sprintf("Name: %s\n\nDescription:\n%s\n\n%s", u.Name, u.Description, u.Body)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	names := make([]string, 0, len(indexes))
	for _, i := range indexes {
		names = append(names, units[i].Name)
	}
	return names, nil
}

// IsInteractive reports whether stdin and stdout are both terminals, so
// prompts can actually be answered.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
