package snapshots

import (
	"os"
	"testing"
)

func TestFSStoreLoadFeed(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	feed := feedWithGames("BOS@NYK", "LAL@GSW")
	if err := w.WriteFeedSnapshot("2026-01-15", feed); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadFeed("2026-01-15")
	if err != nil {
		t.Fatalf("load feed: %v", err)
	}
	if len(got.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got.Games))
	}
	if got.LastUpdated != "2026-01-15 07:30 PM" {
		t.Fatalf("unexpected last_updated: %q", got.LastUpdated)
	}
}

func TestFSStoreLoadFeedMissing(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadFeed("2026-01-15"); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}

func TestFSStoreLoadFeedEmptyDate(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadFeed(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
}

func TestFSStoreLoadLatest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 30)

	for _, d := range []string{"2026-01-13", "2026-01-15", "2026-01-14"} {
		if err := w.WriteFeedSnapshot(d, feedWithGames(d)); err != nil {
			t.Fatalf("write snapshot %s: %v", d, err)
		}
	}

	store := NewFSStore(dir)
	got, date, err := store.LoadLatest()
	if err != nil {
		t.Fatalf("load latest: %v", err)
	}
	if date != "2026-01-15" {
		t.Fatalf("expected latest date 2026-01-15, got %q", date)
	}
	if len(got.Games) != 1 || got.Games[0].ID != "2026-01-15" {
		t.Fatalf("unexpected feed: %+v", got.Games)
	}
}

func TestFSStoreLoadLatestEmptyDir(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, _, err := store.LoadLatest(); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
