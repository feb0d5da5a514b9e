package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadFeed(date string) (domainfeed.Feed, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadFeed reads a snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/feeds/{date}.json with a Feed payload.
func (s *FSStore) LoadFeed(date string) (domainfeed.Feed, error) {
	var payload domainfeed.Feed
	if err := s.load(kindFeeds, date, &payload); err != nil {
		return domainfeed.Feed{}, err
	}
	return payload, nil
}

// LoadLatest finds the most recent snapshot on disk and returns it.
// Useful for warming the in-memory store before the first build completes.
func (s *FSStore) LoadLatest() (domainfeed.Feed, string, error) {
	if s == nil {
		return domainfeed.Feed{}, "", errors.New("snapshot store not configured")
	}
	dir := filepath.Join(s.basePath, string(kindFeeds))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domainfeed.Feed{}, "", err
	}
	latest := ""
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		date := e.Name()[:len(e.Name())-len(".json")]
		if date > latest {
			latest = date
		}
	}
	if latest == "" {
		return domainfeed.Feed{}, "", os.ErrNotExist
	}
	feed, err := s.LoadFeed(latest)
	if err != nil {
		return domainfeed.Feed{}, "", err
	}
	return feed, latest, nil
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return err
	}
	return nil
}
