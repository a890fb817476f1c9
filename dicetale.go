package dicetale

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/dicetale/internal/logging"
	"github.com/aretw0/dicetale/internal/markov"
	"github.com/aretw0/dicetale/internal/sampler"
	"github.com/aretw0/dicetale/pkg/adapters/corpus"
	"github.com/aretw0/dicetale/pkg/adapters/dice"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/aretw0/dicetale/pkg/ports"
)

// Engine is the high-level entry point for the Dicetale library.
// It wraps the internal builder and sampler and provides a simplified API
// for consumers. The model is rebuilt only on New and Reload; everything
// else reads the immutable snapshot.
type Engine struct {
	loader   ports.CorpusLoader
	rolls    ports.RollSource
	model    *domain.Model
	warnings []domain.Warning
	sampler  *sampler.Sampler
	logger   *slog.Logger
	maxWords int
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCorpusLoader injects a custom CorpusLoader, bypassing the default
// Loam initialization.
func WithCorpusLoader(l ports.CorpusLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithRollSource sets the default roll source used by Sample.
// Without it, every Sample draws from a fresh crypto-seeded pseudo die.
func WithRollSource(rolls ports.RollSource) Option {
	return func(e *Engine) {
		e.rolls = rolls
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxStoryLength caps generated stories at n tokens, guarding against
// accidental runaway loops from a malformed model.
func WithMaxStoryLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxWords = n
		}
	}
}

// New initializes a new Dicetale Engine and builds the model.
// By default, it reads the corpus from a Loam repository at the given path.
// If the WithCorpusLoader option is provided, repoPath can be empty and
// Loam is skipped.
func New(repoPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{maxWords: sampler.DefaultMaxWords}

	// Apply options first to check if a loader is provided.
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom corpus loader is provided")
		}

		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)

		loader, err := corpus.Open(absPath)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	} else if repoPath != "" {
		// With a custom loader, repoPath is just a descriptive label.
		eng.Name = filepath.Base(repoPath)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("corpus", eng.Name)
	}

	if err := eng.Reload(context.Background()); err != nil {
		return nil, err
	}

	return eng, nil
}

// Reload re-reads the corpus and rebuilds the model from scratch.
// Counts are never mutated incrementally across runs; a reload is a full
// rebuild. Used by watch mode when the corpus changes on disk.
func (e *Engine) Reload(ctx context.Context) error {
	sentences, err := e.loader.Sentences(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	result, err := markov.Build(sentences)
	if err != nil {
		return err
	}

	e.model = result.Model
	e.warnings = result.Warnings
	e.sampler = sampler.New(result.Model,
		sampler.WithMaxWords(e.maxWords),
		sampler.WithLogger(e.logger),
	)

	e.logger.Info("model built", "words", result.Model.Len(), "start_words", len(result.Model.StartWords()))
	for _, w := range result.Warnings {
		e.logger.Warn("degenerate allocation", "word", w.Word, "dropped", len(w.Dropped))
	}

	return nil
}

// Model returns the built transition model.
func (e *Engine) Model() *domain.Model {
	return e.model
}

// Warnings returns the non-fatal allocation warnings from the last build.
// Renderers should surface these to the corpus author.
func (e *Engine) Warnings() []domain.Warning {
	return append([]domain.Warning(nil), e.warnings...)
}

// MaxStoryLength returns the configured story length guard.
func (e *Engine) MaxStoryLength() int {
	return e.maxWords
}

// DefaultStart returns the first legal start word observed in the corpus.
func (e *Engine) DefaultStart() domain.Token {
	starts := e.model.StartWords()
	if len(starts) == 0 {
		// Unreachable for a built model: the first sentence's first word
		// is always registered as a start.
		return ""
	}
	return starts[0]
}

// NewStory begins a story at the given start word.
// The word must exist in the model as a transition source; otherwise
// domain.ErrUnknownWord is returned.
func (e *Engine) NewStory(start domain.Token) (*domain.Story, error) {
	if _, err := e.model.Get(start); err != nil {
		return nil, err
	}
	return domain.NewStory(start), nil
}

// Step resolves a single roll against the current word without touching any
// story state. Classroom helpers use this for "what does my roll mean".
func (e *Engine) Step(current domain.Token, roll int) (domain.Token, error) {
	return e.sampler.Step(current, roll)
}

// Advance applies one die roll to a story.
func (e *Engine) Advance(story *domain.Story, roll int) error {
	return e.sampler.Advance(story, roll)
}

// Preview generates a complete story from the start word, drawing rolls
// from the provided source until END or the length guard.
func (e *Engine) Preview(start domain.Token, rolls ports.RollSource) (*domain.Story, error) {
	story, err := e.NewStory(start)
	if err != nil {
		return nil, err
	}
	if err := e.sampler.Run(story, rolls); err != nil {
		return nil, err
	}
	return story, nil
}

// Sample generates a complete story from the start word using the engine's
// configured roll source, or a fresh crypto-seeded pseudo die if none was set.
func (e *Engine) Sample(start domain.Token) (*domain.Story, error) {
	rolls := e.rolls
	if rolls == nil {
		seed, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		rolls = dice.NewPseudoSource(seed)
	}
	return e.Preview(start, rolls)
}

// Loader returns the underlying CorpusLoader used by the engine.
func (e *Engine) Loader() ports.CorpusLoader {
	return e.loader
}

// Watch returns a channel that signals when the underlying corpus changes.
// Returns an error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan struct{}, error) {
	if w, ok := e.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current corpus loader does not support watching")
}
