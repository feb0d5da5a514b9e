package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/metrics"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/timeutil"
)

const defaultInterval = 5 * time.Minute

// Builder runs one full feed build.
type Builder interface {
	Build(ctx context.Context) (domainfeed.Feed, error)
}

// FeedStore receives the freshly built feed.
type FeedStore interface {
	SetFeed(f domainfeed.Feed)
}

// SnapshotWriter persists feed snapshots and the standalone output file.
type SnapshotWriter interface {
	WriteFeedSnapshot(date string, snapshot domainfeed.Feed) error
	WriteLatest(path string, snapshot domainfeed.Feed) error
}

// Poller rebuilds the feed on an interval, publishes it to the store, and
// writes snapshots to disk.
type Poller struct {
	builder    Builder
	store      FeedStore
	writer     SnapshotWriter
	outputPath string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(builder Builder, store FeedStore, writer SnapshotWriter, outputPath string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		builder:    builder,
		store:      store,
		writer:     writer,
		outputPath: outputPath,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial build to warm data on boot.
		p.buildOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.buildOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) buildOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	doc, err := p.builder.Build(ctx)
	if p.metrics != nil {
		p.metrics.RecordBuildCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("feed build failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.store != nil {
		p.store.SetFeed(doc)
	}
	if p.writer != nil {
		today := timeutil.FormatDate(p.now().UTC())
		if writeErr := p.writer.WriteFeedSnapshot(today, doc); writeErr != nil {
			p.logError("feed snapshot write failed", writeErr)
		}
		if p.outputPath != "" {
			if writeErr := p.writer.WriteLatest(p.outputPath, doc); writeErr != nil {
				p.logError("feed output write failed", writeErr)
			}
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed feed",
		logging.FieldCount, len(doc.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
