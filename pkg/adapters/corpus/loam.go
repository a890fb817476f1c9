package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
)

// Metadata is the frontmatter of a corpus document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type Metadata struct {
	Title string `json:"title" mapstructure:"title"`

	// Sentences may carry the corpus directly in the frontmatter.
	Sentences []string `json:"sentences" mapstructure:"sentences"`

	// Skip excludes a document from the corpus without deleting it.
	Skip bool `json:"skip" mapstructure:"skip"`
}

// LoamLoader adapts a Loam repository to the CorpusLoader interface.
// A corpus is a directory of markdown documents: frontmatter sentences
// first, then every non-empty body line that is not a heading.
type LoamLoader struct {
	Repo *loam.TypedRepository[Metadata]
}

// NewLoamLoader creates a Loam corpus adapter from a typed repository.
func NewLoamLoader(repo *loam.TypedRepository[Metadata]) *LoamLoader {
	return &LoamLoader{Repo: repo}
}

// Open initializes a read-only Loam repository at path and wraps it.
// Strict mode keeps frontmatter numeric types stable across adapters.
func Open(path string) (*LoamLoader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return NewLoamLoader(loam.NewTypedRepository[Metadata](repo)), nil
}

// Sentences collects the corpus from every document in the repository.
// Documents are visited in ID order so the corpus (and therefore the built
// model) is deterministic regardless of filesystem enumeration.
func (l *LoamLoader) Sentences(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	var sentences []string
	for _, doc := range docs {
		if doc.Data.Skip {
			continue
		}

		sentences = append(sentences, doc.Data.Sentences...)

		for _, line := range strings.Split(doc.Content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			sentences = append(sentences, line)
		}
	}

	return sentences, nil
}

// Watch implements ports.Watchable, signaling when any corpus file changes.
func (l *LoamLoader) Watch(ctx context.Context) (<-chan struct{}, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan struct{}, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- struct{}{}:
				case <-ctx.Done():
					return
				default:
					// A reload signal is already pending; coalesce.
				}
			}
		}
	}()

	return ch, nil
}
