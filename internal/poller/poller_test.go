package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/store"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/teststubs"
)

func builtFeed() domainfeed.Feed {
	f := domainfeed.New("2026-01-15 07:30 PM", nil)
	f.Games = []domainfeed.Game{{ID: "BOS@NYK", Teams: []string{"BOS", "NYK"}}}
	return f
}

func TestPollerBuildsAndWritesSnapshot(t *testing.T) {
	builder := &teststubs.StubBuilder{
		Feed:   builtFeed(),
		Notify: make(chan struct{}),
	}
	writer := &teststubs.StubSnapshotWriter{}
	st := store.NewMemoryStore()

	p := New(builder, st, writer, "out/nba_data.json", nil, nil, 10*time.Millisecond)
	// Fix the time for deterministic date.
	p.now = func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-builder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial build")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	snap, ok := writer.WrittenFeed("2026-01-15")
	if !ok {
		t.Fatalf("expected snapshot written for 2026-01-15")
	}
	if len(snap.Games) != 1 || snap.Games[0].ID != "BOS@NYK" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if _, ok := writer.Latest["out/nba_data.json"]; !ok {
		t.Fatalf("expected standalone output written")
	}

	if got := st.Feed(); len(got.Games) != 1 {
		t.Fatalf("expected store updated, got %+v", got)
	}
	if builder.Calls.Load() < 1 {
		t.Fatalf("expected at least one build call")
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	builder := &teststubs.StubBuilder{
		Feed:   builtFeed(),
		Notify: make(chan struct{}),
	}

	p := New(builder, store.NewMemoryStore(), &teststubs.StubSnapshotWriter{}, "", nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-builder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial build")
	}

	cancel()
	_ = p.Stop(context.Background())

	callsAfterStop := builder.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if builder.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional builds after stop; before=%d after=%d", callsAfterStop, builder.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	builder := &teststubs.StubBuilder{Feed: builtFeed(), Notify: make(chan struct{})}
	p := New(builder, store.NewMemoryStore(), &teststubs.StubSnapshotWriter{}, "", nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-builder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial build")
	}

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestPollerStatusTracksFailures(t *testing.T) {
	builder := &teststubs.StubBuilder{
		Err:    errors.New("build boom"),
		Notify: make(chan struct{}),
	}
	p := New(builder, store.NewMemoryStore(), &teststubs.StubSnapshotWriter{}, "", nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-builder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial build")
	}
	_ = p.Stop(context.Background())

	status := p.Status()
	if status.ConsecutiveFailures < 1 {
		t.Fatalf("expected failure recorded, got %+v", status)
	}
	if status.LastError != "build boom" {
		t.Fatalf("unexpected last error: %q", status.LastError)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failures without success")
	}
}

func TestPollerStatusReadyAfterSuccess(t *testing.T) {
	builder := &teststubs.StubBuilder{Feed: builtFeed(), Notify: make(chan struct{})}
	p := New(builder, store.NewMemoryStore(), &teststubs.StubSnapshotWriter{}, "", nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-builder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial build")
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if p.Status().IsReady() {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	_ = p.Stop(context.Background())

	if !p.Status().IsReady() {
		t.Fatalf("expected ready after successful build, got %+v", p.Status())
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	builder := &teststubs.StubBuilder{Feed: builtFeed(), Notify: make(chan struct{})}
	p := New(builder, store.NewMemoryStore(), &teststubs.StubSnapshotWriter{}, "", nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // second start is a no-op

	select {
	case <-builder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial build")
	}
	_ = p.Stop(context.Background())

	if builder.Calls.Load() != 1 {
		t.Fatalf("expected exactly one build, got %d", builder.Calls.Load())
	}
}
