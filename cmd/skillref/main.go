// Package main is the entry point for the skillref CLI.
package main

import (
	"errors"
	"os"

	"github.com/thoreinstein/skillref/cmd/skillref/commands"
	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *skillreferrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(skillreferrors.ExitUser)
	}
}
