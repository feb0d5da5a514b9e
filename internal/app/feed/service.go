package feed

import domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"

// Store defines the contract for persisting and retrieving the feed.
type Store interface {
	Feed() domainfeed.Feed
	GetGame(id string) (domainfeed.Game, bool)
	SetFeed(f domainfeed.Feed)
}

// Service coordinates feed operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Feed returns the current feed snapshot.
func (s *Service) Feed() domainfeed.Feed {
	return s.store.Feed()
}

// Games returns the current set of games.
func (s *Service) Games() []domainfeed.Game {
	return s.store.Feed().Games
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id string) (domainfeed.Game, bool) {
	return s.store.GetGame(id)
}

// ReplaceFeed swaps the stored feed with a freshly built one.
func (s *Service) ReplaceFeed(f domainfeed.Feed) {
	s.store.SetFeed(f)
}
