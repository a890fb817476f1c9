// Package memory provides the in-process StoryStore, the default for serve mode.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/dicetale/pkg/domain"
)

// Store implements ports.StoryStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Story
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Story),
	}
}

// Save persists the story in memory.
func (s *Store) Save(ctx context.Context, id string, story *domain.Story) error {
	copied := copyStory(story)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = copied
	return nil
}

// Load retrieves the story from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.data[id]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}

	// Copy on read so callers can't mutate store state through the pointer.
	return copyStory(story), nil
}

// Delete removes the story.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the active story IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func copyStory(story *domain.Story) *domain.Story {
	copied := *story
	copied.Words = append([]domain.Token(nil), story.Words...)
	copied.Rolls = append([]int(nil), story.Rolls...)
	return &copied
}
