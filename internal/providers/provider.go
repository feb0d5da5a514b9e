package providers

import (
	"context"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
)

// LineupData is the extractor's view of the lineup source: observed starters
// and scheduled game times keyed by canonical team code, plus the order in
// which teams were first observed. Consecutive pairs in TeamOrder form the
// slate's games (away, home, away, home, ...).
type LineupData struct {
	Starters  map[string][]players.ObservedStarter
	GameTimes map[string]string
	TeamOrder []string
}

// Empty returns LineupData with initialized maps and no observations, the
// degraded result when the source is unavailable.
func Empty() LineupData {
	return LineupData{
		Starters:  make(map[string][]players.ObservedStarter),
		GameTimes: make(map[string]string),
	}
}

// LineupProvider fetches the current lineup observations from an upstream
// source. Implementations must honor ctx and never block past their
// configured timeout.
type LineupProvider interface {
	FetchLineups(ctx context.Context) (LineupData, error)
}
