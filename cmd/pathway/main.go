// Command pathway inspects and manages filesystem paths using the
// pathway library: listing directory trees, copying files, and running
// commands inside registered temporary directories.
package main

import (
	"log/slog"
	"os"

	"github.com/pathwaylabs/pathway"
)

func main() {
	code := 0
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		code = 1
	}

	// Remove every temporary directory still registered. This runs
	// exactly once, after the command has finished.
	if err := pathway.Sweep(); err != nil {
		slog.Error("temporary directory sweep failed", "err", err)
		code = 1
	}

	os.Exit(code)
}
