package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/config"
	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/poller"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers/fixture"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/snapshots"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/store"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		Port:         "0",
		PollInterval: time.Hour,
		Provider:     "fixture",
	}
	cfg.Slate.Dir = dir
	cfg.Slate.ProjectionsGlob = "*DFF*.csv"
	cfg.Slate.SalaryGlob = "*FanDuel*.csv"
	cfg.Snapshots.Dir = dir
	cfg.Snapshots.RetentionDays = 7
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewServerWiresComponents(t *testing.T) {
	s := newServerWithProvider(testConfig(t), nil, fixture.New())

	if s.store == nil || s.feedService == nil || s.poller == nil {
		t.Fatalf("expected wired components, got %+v", s)
	}
	if s.httpServer == nil {
		t.Fatalf("expected http server")
	}
	if s.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestServerHandlerServesHealth(t *testing.T) {
	s := newServerWithProvider(testConfig(t), nil, fixture.New())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}
}

func TestServerReadyBeforeFirstBuild(t *testing.T) {
	s := newServerWithProvider(testConfig(t), nil, fixture.New())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first successful build, got %d", rec.Code)
	}
}

func TestServerMountsAdminWhenTokenSet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Snapshots.AdminToken = "secret"
	s := newServerWithProvider(cfg, nil, fixture.New())

	req := httptest.NewRequest("POST", "/admin/feed/refresh", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without bearer token, got %d", rec.Code)
	}
}

func TestServerOmitsAdminWithoutToken(t *testing.T) {
	s := newServerWithProvider(testConfig(t), nil, fixture.New())

	req := httptest.NewRequest("POST", "/admin/feed/refresh", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when admin endpoint unmounted, got %d", rec.Code)
	}
}

func TestWarmStoreSeedsFromLatestSnapshot(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir, 7)
	feed := domainfeed.Feed{
		LastUpdated: "2026-01-14 11:00 PM",
		Games:       []domainfeed.Game{{ID: "BOS@NYK"}},
	}
	if err := writer.WriteFeedSnapshot("2026-01-14", feed); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	memoryStore := store.NewMemoryStore()
	warmStore(memoryStore, snapshots.NewFSStore(dir), nil)

	if got := memoryStore.Feed(); len(got.Games) != 1 || got.Games[0].ID != "BOS@NYK" {
		t.Fatalf("expected warmed feed, got %+v", got)
	}
}

func TestWarmStoreNoSnapshotsIsNoop(t *testing.T) {
	memoryStore := store.NewMemoryStore()
	warmStore(memoryStore, snapshots.NewFSStore(t.TempDir()), nil)

	if got := memoryStore.Feed(); len(got.Games) != 0 {
		t.Fatalf("expected empty feed, got %+v", got)
	}
}

type stubHTTPServer struct {
	shutdowns int
	started   chan struct{}
}

func (s *stubHTTPServer) ListenAndServe() error {
	if s.started != nil {
		close(s.started)
	}
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns++
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return http.NewServeMux() }

type pollerStub struct {
	starts int
	stops  int
}

func (p *pollerStub) Start(ctx context.Context)      { p.starts++ }
func (p *pollerStub) Stop(ctx context.Context) error { p.stops++; return nil }
func (p *pollerStub) Status() poller.Status          { return poller.Status{} }

func TestServerRunShutsDownGracefully(t *testing.T) {
	httpSrv := &stubHTTPServer{started: make(chan struct{})}
	plr := &pollerStub{}
	s := newServerWithDeps(testConfig(t), nil, nil, httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-httpSrv.started:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for server start")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}

	if plr.starts != 1 || plr.stops != 1 {
		t.Fatalf("expected poller start/stop once, got %d/%d", plr.starts, plr.stops)
	}
	if httpSrv.shutdowns != 1 {
		t.Fatalf("expected one shutdown, got %d", httpSrv.shutdowns)
	}
}
