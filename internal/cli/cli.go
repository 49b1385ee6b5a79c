// Package cli implements the peptigraph command-line interface.
//
// This package provides commands for converting peptide sequences to
// SMILES line notation, rendering molecular graph diagrams, managing
// the result cache, serving the HTTP API, and exploring sequences
// interactively. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Generate SMILES from a sequence, modfile, or FASTA input
//   - render: Generate DOT, SVG, or PNG molecular graph diagrams
//   - cache: Manage the conversion result cache
//   - serve: Run the HTTP API server
//   - tui: Interactive sequence explorer
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
//
// # Example
//
//	import "github.com/peptikit/peptigraph/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/peptikit/peptigraph/pkg/cache"
	"github.com/peptikit/peptigraph/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "peptigraph"

// newRunner creates a pipeline runner for CLI use. With noCache the
// runner still works, it just recomputes every time.
func newRunner(noCache bool, logger *log.Logger) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(c, nil, logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/peptigraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
