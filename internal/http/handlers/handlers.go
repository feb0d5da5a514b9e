package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	appfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/app/feed"
	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/poller"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/snapshots"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/timeutil"
)

type nowFunc func() time.Time

var errSnapshotsUnavailable = errors.New("snapshot store not configured")

// Handler wires HTTP routes to the feed service.
type Handler struct {
	svc      *appfeed.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appfeed.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches to the route handlers.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/feed":
		h.Feed(w, r)
	case r.URL.Path == "/feed/games":
		h.Games(w, r)
	case strings.HasPrefix(r.URL.Path, "/feed/games/"):
		h.GameByID(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Feed returns the full feed document. An explicit ?date=YYYY-MM-DD query
// serves the snapshot written for that date instead of the live cache.
func (h *Handler) Feed(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	dateParam := r.URL.Query().Get("date")
	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusNotFound, "snapshot unavailable", h.logger)
			return
		}
		if logger != nil {
			logger.Info("served feed snapshot", "date", dateParam, "count", len(snap.Games))
		}
		writeJSON(w, nethttp.StatusOK, snap, h.logger)
		return
	}

	feed := h.svc.Feed()
	if len(feed.Games) == 0 {
		// Cold cache: fall back to today's snapshot when one exists.
		today := timeutil.FormatDate(h.now())
		if snap, err := h.loadSnapshot(today); err == nil {
			feed = snap
			if logger != nil {
				logger.Info("served feed snapshot", "date", today, "count", len(snap.Games))
			}
		}
	}
	writeJSON(w, nethttp.StatusOK, feed, h.logger)
}

// Games returns the current set of games without the feed envelope.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	games := h.svc.Games()
	if games == nil {
		games = []domainfeed.Game{}
	}
	writeJSON(w, nethttp.StatusOK, games, h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	// Expect path: /feed/games/{id}
	idRaw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/feed/games/"), "/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, ok := h.svc.GameByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

func (h *Handler) loadSnapshot(date string) (domainfeed.Feed, error) {
	if h.snaps == nil {
		return domainfeed.Feed{}, errSnapshotsUnavailable
	}
	return h.snaps.LoadFeed(date)
}
