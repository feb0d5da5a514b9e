package server

import (
	"testing"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/config"
)

func TestBuildSnapshotsComponents(t *testing.T) {
	cfg := config.Config{}
	cfg.Snapshots.Dir = t.TempDir()
	cfg.Snapshots.RetentionDays = 7

	snaps := buildSnapshots(cfg)
	if snaps.store == nil {
		t.Fatalf("expected snapshot store")
	}
	if snaps.writer == nil {
		t.Fatalf("expected snapshot writer")
	}
	if snaps.writer.BasePath() != cfg.Snapshots.Dir {
		t.Fatalf("expected writer rooted at %q, got %q", cfg.Snapshots.Dir, snaps.writer.BasePath())
	}
}
