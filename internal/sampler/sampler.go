// Package sampler walks a transition model with die rolls to generate stories.
package sampler

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/dicetale/internal/logging"
	"github.com/aretw0/dicetale/pkg/domain"
	"github.com/aretw0/dicetale/pkg/ports"
)

// DefaultMaxWords is the default guard against runaway generations.
const DefaultMaxWords = 20

// Sampler generates stories by walking a model with die rolls.
// It is stateless between calls; all progress lives on the Story.
type Sampler struct {
	model    *domain.Model
	maxWords int
	logger   *slog.Logger
}

// Option configures the Sampler.
type Option func(*Sampler)

// WithMaxWords sets the maximum token count before a story is cut off.
func WithMaxWords(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.maxWords = n
		}
	}
}

// WithLogger configures a logger for step-level debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Sampler over an immutable model.
func New(model *domain.Model, opts ...Option) *Sampler {
	s := &Sampler{
		model:    model,
		maxWords: DefaultMaxWords,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step resolves a single die roll against the current word and returns the
// successor token (possibly END).
//
// A word absent from the model is a model-construction bug, not a runtime
// condition to tolerate: it surfaces as domain.ErrUnknownWord. A roll with
// no matching face range would violate the allocator's total-coverage
// invariant and surfaces as domain.ErrMalformedModel.
func (s *Sampler) Step(current domain.Token, roll int) (domain.Token, error) {
	if roll < 1 || roll > domain.Faces {
		return "", fmt.Errorf("%w: got %d", domain.ErrInvalidRoll, roll)
	}

	entries, err := s.model.Get(current)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if e.Faces.Contains(roll) {
			return e.Next, nil
		}
	}
	return "", fmt.Errorf("%w: word %q has no range for face %d", domain.ErrMalformedModel, current, roll)
}

// Advance applies one roll to the story, mutating it in place.
// Returns domain.ErrStoryComplete if the story already ended.
func (s *Sampler) Advance(story *domain.Story, roll int) error {
	if story.Status == domain.StatusComplete {
		return domain.ErrStoryComplete
	}

	next, err := s.Step(story.Current, roll)
	if err != nil {
		return err
	}

	story.Rolls = append(story.Rolls, roll)

	if next.IsEnd() {
		story.Status = domain.StatusComplete
		story.Stop = domain.StopEndReached
		s.logger.Debug("story complete", "words", len(story.Words), "rolls", len(story.Rolls))
		return nil
	}

	story.Words = append(story.Words, next)
	story.Current = next
	s.logger.Debug("story step", "roll", roll, "next", next)

	if len(story.Words) >= s.maxWords {
		story.Status = domain.StatusComplete
		story.Stop = domain.StopMaxLength
		s.logger.Debug("story cut off", "max_words", s.maxWords)
	}
	return nil
}

// Run drains rolls from the source until the story completes, either by
// reaching END or by hitting the maximum token guard.
func (s *Sampler) Run(story *domain.Story, rolls ports.RollSource) error {
	for story.Status == domain.StatusAwaitingRoll {
		roll, err := rolls.Roll()
		if err != nil {
			return fmt.Errorf("roll source: %w", err)
		}
		if err := s.Advance(story, roll); err != nil {
			return err
		}
	}
	return nil
}

// MaxWords exposes the configured guard, mostly for presentation layers.
func (s *Sampler) MaxWords() int {
	return s.maxWords
}
