package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/internal/presentation/table"
	"github.com/aretw0/dicetale/internal/presentation/tui"
)

// WatchOptions configures the live-reload table view.
type WatchOptions struct {
	RepoPath string
	Debug    bool
}

// RunWatch renders the dice table and re-renders it whenever the corpus
// changes on disk. Corpus authors keep this open while editing sentences.
func RunWatch(opts WatchOptions) error {
	logger := newLogger(opts.Debug)
	tui.PrintBanner(dicetale.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := newEngine(opts.RepoPath, opts.Debug, 0)
	if err != nil {
		return err
	}

	watchCh, err := engine.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch mode unavailable: %w", err)
	}

	render := tui.NewRenderer()
	show := func() {
		printWarnings(engine.Warnings())
		md := table.Render(engine.Model(), engine.Warnings())
		if out, rerr := render(md); rerr == nil {
			fmt.Print(out)
		} else {
			fmt.Print(md)
		}
	}

	logger.Info("watching corpus", "path", opts.RepoPath)
	show()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nWatcher stopped.")
			return nil
		case _, ok := <-watchCh:
			if !ok {
				return nil
			}
			logger.Info("corpus changed, rebuilding model")
			if err := engine.Reload(ctx); err != nil {
				// Keep the old model and wait for the author to fix the corpus.
				fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
				time.Sleep(time.Second)
				continue
			}
			show()
		}
	}
}
