package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSourceAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSourceAttempt("rotowire", 10*time.Millisecond, nil)
	rec.RecordSourceAttempt("rotowire", 15*time.Millisecond, errors.New("boom"))

	if got := rec.SourceCalls("rotowire"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.SourceErrors("rotowire"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("rotowire"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("rotowire")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("rotowire", 5*time.Second)
	rec.RecordRateLimit("rotowire", 0)

	if got := rec.RateLimitHits("rotowire"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("rotowire"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordSourceAttempt("rotowire", time.Millisecond, nil)
	rec.RecordRateLimit("rotowire", time.Second)
	rec.RecordHTTPRequest("GET", "/feed", 200, time.Millisecond)
	rec.RecordBuildCycle(time.Millisecond, nil)

	if snap := rec.Snapshot("rotowire"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
}
