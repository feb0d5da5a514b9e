package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
)

// StubLineupProvider is a test double for providers.LineupProvider.
type StubLineupProvider struct {
	Data   providers.LineupData
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchLineups returns configured lineup data and error while tracking calls.
func (s *StubLineupProvider) FetchLineups(ctx context.Context) (providers.LineupData, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Data, s.Err
}

// StubBuilder is a test double for poller.Builder.
type StubBuilder struct {
	Feed   domainfeed.Feed
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Build returns the configured feed and error while tracking calls.
func (s *StubBuilder) Build(ctx context.Context) (domainfeed.Feed, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Feed, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Feeds   map[string]domainfeed.Feed // keyed by date
	LoadErr error
}

// LoadFeed returns the feed for the given date if present in the Feeds map.
func (s *StubSnapshotStore) LoadFeed(date string) (domainfeed.Feed, error) {
	if s.LoadErr != nil {
		return domainfeed.Feed{}, s.LoadErr
	}
	if s.Feeds == nil {
		return domainfeed.Feed{}, errors.New("snapshot not found")
	}
	feed, ok := s.Feeds[date]
	if !ok {
		return domainfeed.Feed{}, errors.New("snapshot not found")
	}
	return feed, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[string]domainfeed.Feed // keyed by date
	Latest  map[string]domainfeed.Feed // keyed by output path
	Err     error
}

// WriteFeedSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteFeedSnapshot(date string, snapshot domainfeed.Feed) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Written == nil {
		w.Written = make(map[string]domainfeed.Feed)
	}
	w.Written[date] = snapshot
	return nil
}

// WriteLatest records the standalone output for verification in tests.
func (w *StubSnapshotWriter) WriteLatest(path string, snapshot domainfeed.Feed) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Latest == nil {
		w.Latest = make(map[string]domainfeed.Feed)
	}
	w.Latest[path] = snapshot
	return nil
}

// WrittenFeed returns the snapshot recorded for date, guarding against races.
func (w *StubSnapshotWriter) WrittenFeed(date string) (domainfeed.Feed, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	feed, ok := w.Written[date]
	return feed, ok
}
