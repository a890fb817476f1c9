package ports

import "context"

// CorpusLoader defines how the engine retrieves the example sentences used
// to build a model. This allows the storage layer (Loam, FS, Memory) to be
// decoupled from the builder.
type CorpusLoader interface {
	// Sentences returns the raw sentence strings in a stable order.
	// A string may contain more than one sentence; the tokenizer splits them.
	Sentences(ctx context.Context) ([]string, error)
}

// Watchable defines an interface for corpus loaders that can notify about
// backend changes. This is typically used for hot-reload functionality.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying corpus
	// changes, indicating the model should be rebuilt.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
