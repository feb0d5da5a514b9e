package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/http/requestutil"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/poller"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/snapshots"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., on-demand feed rebuild).
type AdminHandler struct {
	builder    poller.Builder
	store      poller.FeedStore
	writer     *snapshots.Writer
	outputPath string
	token      string
	logger     *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(builder poller.Builder, store poller.FeedStore, writer *snapshots.Writer, outputPath, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		builder:    builder,
		store:      store,
		writer:     writer,
		outputPath: outputPath,
		token:      token,
		logger:     logger,
	}
}

// RefreshFeed rebuilds the feed immediately, publishes it to the store, and
// writes snapshots. Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshFeed(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.builder == nil {
		writeError(w, r, http.StatusServiceUnavailable, "feed builder not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	start := time.Now()
	doc, err := h.builder.Build(r.Context())
	if err != nil {
		logging.Warn(logger, "admin feed rebuild failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to rebuild feed", logger)
		return
	}

	if h.store != nil {
		h.store.SetFeed(doc)
	}
	date := timeutil.FormatDate(time.Now())
	if h.writer != nil {
		if writeErr := h.writer.WriteFeedSnapshot(date, doc); writeErr != nil {
			logging.Warn(logger, "admin snapshot write failed",
				slog.String("date", date),
				slog.Any("err", writeErr),
			)
			writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
			return
		}
		if h.outputPath != "" {
			if writeErr := h.writer.WriteLatest(h.outputPath, doc); writeErr != nil {
				logging.Warn(logger, "admin output write failed", slog.Any("err", writeErr))
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":   date,
		"games":  len(doc.Games),
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin feed rebuilt",
		slog.String("date", date),
		slog.Int(logging.FieldCount, len(doc.Games)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
