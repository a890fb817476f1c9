package markov

import (
	"fmt"

	"github.com/aretw0/dicetale/pkg/domain"
)

// Result carries the built model plus any non-fatal allocation warnings.
type Result struct {
	Model    *domain.Model
	Warnings []domain.Warning
}

// Build runs the full pipeline over a corpus: tokenize, count, allocate and
// assemble the transition model. The counts are discarded once the model is
// assembled; the model is the only entity handed back.
//
// Returns domain.ErrEmptyCorpus when the corpus yields no tokens (or no
// transition sources at all).
func Build(corpus []string) (*Result, error) {
	counts := Accumulate(corpus)
	if counts.TokenCount() == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	words := counts.Words()
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: only sentence terminators found", domain.ErrEmptyCorpus)
	}

	rows := make([]domain.WordTransitions, 0, len(words))
	var warnings []domain.Warning

	for _, word := range words {
		entries, droppedSuccessors := Allocate(counts.Successors(word))
		if len(droppedSuccessors) > 0 {
			warnings = append(warnings, domain.Warning{Word: word, Dropped: droppedSuccessors})
		}
		rows = append(rows, domain.WordTransitions{Word: word, Entries: entries})
	}

	model, err := domain.NewModel(rows, counts.StartWords())
	if err != nil {
		return nil, fmt.Errorf("assemble model: %w", err)
	}

	return &Result{Model: model, Warnings: warnings}, nil
}
