// Package corpus provides CorpusLoader adapters over different backends.
package corpus

import "context"

// MemoryLoader serves a fixed slice of sentences. Useful for tests and for
// embedding a corpus directly in an application.
type MemoryLoader struct {
	sentences []string
}

// NewMemoryLoader creates a loader over the given sentences.
func NewMemoryLoader(sentences ...string) *MemoryLoader {
	return &MemoryLoader{sentences: append([]string(nil), sentences...)}
}

// Sentences returns the sentences in their original order.
func (l *MemoryLoader) Sentences(ctx context.Context) ([]string, error) {
	return append([]string(nil), l.sentences...), nil
}
