package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/app/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/config"
	httpserver "github.com/dfsstartinglineups/nbastartingingfive/internal/http"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/http/handlers"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/http/middleware"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/lineup"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/metrics"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/pipeline"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/poller"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/slate"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/snapshots"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/store"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	feedService   *appfeed.Service
	builder       poller.Builder
	snapWriter    *snapshots.Writer
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.LineupProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, 0, 0)
	}

	memoryStore := store.NewMemoryStore()
	feedSvc := appfeed.NewService(memoryStore)
	snaps := buildSnapshots(cfg)
	warmStore(memoryStore, snaps.store, logger)

	builder := pipeline.New(
		slate.FileSource{
			Dir:             cfg.Slate.Dir,
			ProjectionsGlob: cfg.Slate.ProjectionsGlob,
			SalaryGlob:      cfg.Slate.SalaryGlob,
		},
		provider,
		lineup.Policy{
			ProjectionFallback: cfg.Matcher.ProjectionFallback,
			SuppressOut:        cfg.Matcher.SuppressOut,
			FuzzyTier:          cfg.Matcher.FuzzyTier,
			FuzzyMaxDistance:   cfg.Matcher.FuzzyMaxDistance,
		},
		logger,
		recorder,
	)

	plr := poller.New(builder, memoryStore, snaps.writer, cfg.Snapshots.OutputFile, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, feedSvc, builder, memoryStore, snaps, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		feedService:   feedSvc,
		builder:       builder,
		snapWriter:    snaps.writer,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, feedSvc *appfeed.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:         cfg,
		logger:      logger,
		feedService: feedSvc,
		httpServer:  httpSrv,
		poller:      plr,
	}
}

// warmStore seeds the in-memory feed from the newest snapshot on disk so
// requests arriving before the first build see yesterday's data instead of
// an empty feed.
func warmStore(memoryStore *store.MemoryStore, snapStore *snapshots.FSStore, logger *slog.Logger) {
	feed, date, err := snapStore.LoadLatest()
	if err != nil {
		return
	}
	memoryStore.SetFeed(feed)
	logging.Info(logger, "feed warmed from snapshot",
		slog.String("date", date),
		slog.Int(logging.FieldCount, len(feed.Games)),
	)
}

func buildHTTPServer(cfg config.Config, feedSvc *appfeed.Service, builder poller.Builder, memoryStore *store.MemoryStore, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(feedSvc, snaps.store, logger, statusFn)
	router := httpserver.NewRouter(handler)
	// Optionally mount the admin refresh endpoint if a token is set.
	if cfg.Snapshots.AdminToken != "" {
		admin := handlers.NewAdminHandler(builder, memoryStore, snaps.writer, cfg.Snapshots.OutputFile, cfg.Snapshots.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/feed/refresh", admin.RefreshFeed)
		}
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// RunOnce performs a single build-and-write cycle without starting any
// servers. Used by the -once flag for cron-style invocations.
func (s *Server) RunOnce(ctx context.Context) error {
	doc, err := s.builder.Build(ctx)
	if err != nil {
		return err
	}
	s.store.SetFeed(doc)

	date := timeutil.FormatDate(time.Now().UTC())
	if err := s.snapWriter.WriteFeedSnapshot(date, doc); err != nil {
		return err
	}
	if out := s.cfg.Snapshots.OutputFile; out != "" {
		if err := s.snapWriter.WriteLatest(out, doc); err != nil {
			return err
		}
	}
	logging.Info(s.logger, "feed written",
		slog.String("date", date),
		slog.Int(logging.FieldCount, len(doc.Games)),
	)
	return nil
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
