package store

import (
	"sync"

	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
)

// MemoryStore keeps a thread-safe snapshot of the latest feed in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	feed domainfeed.Feed
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Feed returns a copy of the current feed.
func (s *MemoryStore) Feed() domainfeed.Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]domainfeed.Game, len(s.feed.Games))
	copy(games, s.feed.Games)
	return domainfeed.Feed{
		LastUpdated: s.feed.LastUpdated,
		Games:       games,
	}
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domainfeed.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.feed.Games {
		if g.ID == id {
			return g, true
		}
	}
	return domainfeed.Game{}, false
}

// SetFeed replaces the stored feed with a new snapshot.
func (s *MemoryStore) SetFeed(f domainfeed.Feed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feed = f
}
