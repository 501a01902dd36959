package mem

import (
	"sync"
	"time"

	"locallens/internal/models/response_models"
)

// StoryCache keeps recently fetched story lists per planning location so a
// burst of itinerary generations does not hammer the content tables.
type StoryCache interface {
	Get(location string) ([]response_models.LocalStory, bool)
	Set(location string, stories []response_models.LocalStory, ttl time.Duration)
}

type storyEntry struct {
	stories   []response_models.LocalStory
	expiresAt time.Time
}

type StoryCacheStore struct {
	mu   sync.RWMutex
	data map[string]storyEntry
}

func NewStoryCache() *StoryCacheStore {
	return &StoryCacheStore{
		data: make(map[string]storyEntry),
	}
}

func (s *StoryCacheStore) Get(location string) ([]response_models.LocalStory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[location]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.stories, true
}

func (s *StoryCacheStore) Set(location string, stories []response_models.LocalStory, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[location] = storyEntry{
		stories:   stories,
		expiresAt: time.Now().Add(ttl),
	}
}
