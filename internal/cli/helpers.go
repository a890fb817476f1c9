// Package cli implements the interactive and batch behaviors behind the
// dicetale commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/internal/logging"
	"github.com/aretw0/dicetale/pkg/domain"
)

// newLogger builds the CLI logger. Debug mode lowers the level and hands the
// logger to the engine; otherwise engine internals stay quiet.
func newLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

// newEngine initializes the engine for a corpus directory with shared CLI options.
func newEngine(repoPath string, debug bool, maxWords int) (*dicetale.Engine, error) {
	opts := []dicetale.Option{}
	if debug {
		opts = append(opts, dicetale.WithLogger(newLogger(true)))
	}
	if maxWords > 0 {
		opts = append(opts, dicetale.WithMaxStoryLength(maxWords))
	}

	engine, err := dicetale.New(repoPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing dicetale: %w", err)
	}
	return engine, nil
}

// printWarnings surfaces degenerate-allocation warnings to the corpus author
// on stderr, keeping stdout clean for tables and stories.
func printWarnings(warnings []domain.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

// resolveStart picks the start word: the user's choice if given, otherwise
// the first legal start word from the corpus.
func resolveStart(engine *dicetale.Engine, start string) domain.Token {
	if start != "" {
		return domain.Token(start)
	}
	return engine.DefaultStart()
}
