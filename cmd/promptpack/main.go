// Package main is the entry point for the promptpack CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/promptpack/cmd/promptpack/commands"
	pperrors "github.com/thoreinstein/promptpack/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *pperrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(pperrors.ExitUser)
	}
}
