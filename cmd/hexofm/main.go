// Package main is the entry point for the hexofm CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dimaslanjaka/hexo-front-matter/cmd/hexofm/commands"
	fmerrors "github.com/dimaslanjaka/hexo-front-matter/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hexofm: %v\n", err)

		var exitErr *fmerrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(fmerrors.ExitUser)
	}
}
