package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/dicetale/pkg/adapters/dice"
	"github.com/aretw0/dicetale/pkg/domain"
)

// PreviewOptions configures batch story generation.
type PreviewOptions struct {
	RepoPath  string
	Start     string
	Stories   int
	Sentences int
	Seed      int64
	SeedSet   bool
	MaxWords  int
	Debug     bool
}

// RunPreview generates sample stories with a seeded pseudo-random die.
// The seed is echoed so any preview can be reproduced exactly.
func RunPreview(opts PreviewOptions) error {
	engine, err := newEngine(opts.RepoPath, opts.Debug, opts.MaxWords)
	if err != nil {
		return err
	}
	printWarnings(engine.Warnings())

	seed := opts.Seed
	if !opts.SeedSet {
		generated, err := dice.NewSeed()
		if err != nil {
			return err
		}
		seed = generated
	}
	source := dice.NewPseudoSource(seed)

	stories := opts.Stories
	if stories < 1 {
		stories = 1
	}
	sentences := opts.Sentences
	if sentences < 1 {
		sentences = 1
	}

	// Rotate through the legal start words so multi-story and multi-sentence
	// previews show corpus variety while staying reproducible.
	starts := engine.Model().StartWords()
	startIdx := 0
	nextStart := func() domain.Token {
		start := starts[startIdx%len(starts)]
		startIdx++
		return start
	}

	for i := 0; i < stories; i++ {
		parts := make([]string, 0, sentences)
		cutOff := false

		for s := 0; s < sentences; s++ {
			start := nextStart()
			if s == 0 && opts.Start != "" {
				start = domain.Token(opts.Start)
			}

			story, err := engine.Preview(start, source)
			if err != nil {
				return err
			}
			parts = append(parts, story.Sentence())
			cutOff = cutOff || story.Stop == domain.StopMaxLength
		}

		fmt.Printf("Story %d: %s\n", i+1, strings.Join(parts, " "))
		if cutOff {
			fmt.Printf("  (a sentence was cut off at %d words)\n", engine.MaxStoryLength())
		}
	}

	fmt.Printf("(seed: %d)\n", seed)
	return nil
}
