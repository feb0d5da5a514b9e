package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a LineupProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       LineupProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner LineupProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) LineupProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchLineups(ctx context.Context) (LineupData, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		data, err := r.inner.FetchLineups(ctx)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "lineup fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return Empty(), ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "lineup fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return Empty(), lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
