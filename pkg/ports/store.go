package ports

import (
	"context"

	"github.com/aretw0/dicetale/pkg/domain"
)

// StoryStore defines the interface for persisting in-progress stories.
// This allows serve-mode sessions to survive across requests (and across
// processes, with a shared backend).
type StoryStore interface {
	// Save persists the story for a given story ID.
	Save(ctx context.Context, id string, story *domain.Story) error

	// Load retrieves the story for a given story ID.
	// Returns domain.ErrStoryNotFound if the story does not exist.
	Load(ctx context.Context, id string) (*domain.Story, error)

	// Delete removes the story for a given story ID.
	Delete(ctx context.Context, id string) error
}
