package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/assemble"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/lineup"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/metrics"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/slate"
)

// SlateSource loads the two tabular inputs for a build. A missing file is
// fatal to the build; the lineup source, by contrast, is allowed to fail.
type SlateSource interface {
	Load(ctx context.Context) ([]slate.ProjectionRow, []slate.SalaryRow, error)
}

// Pipeline runs one synchronous build: read slate files, merge, fetch
// lineups, resolve starters, assemble the feed. Each stage fully consumes
// the prior stage's output; nothing is shared across builds.
type Pipeline struct {
	slates  SlateSource
	lineups providers.LineupProvider
	policy  lineup.Policy
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// New constructs a Pipeline.
func New(slates SlateSource, lineups providers.LineupProvider, policy lineup.Policy, logger *slog.Logger, recorder *metrics.Recorder) *Pipeline {
	return &Pipeline{
		slates:  slates,
		lineups: lineups,
		policy:  policy,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Build produces the export feed. Only slate errors propagate; an
// unavailable lineup source degrades to an empty observation set.
func (p *Pipeline) Build(ctx context.Context) (feed.Feed, error) {
	projections, salaries, err := p.slates.Load(ctx)
	if err != nil {
		return feed.Feed{}, err
	}

	roster := slate.Merge(projections, salaries)
	logging.Info(p.logger, "slate merged",
		logging.FieldCount, len(roster),
	)

	lineups := p.fetchLineups(ctx)
	rosters := p.resolveRosters(lineups, roster)

	doc := assemble.Build(assemble.Input{
		Lineups:     lineups,
		Rosters:     rosters,
		Projections: projections,
		Now:         p.now(),
		Logger:      p.logger,
	})

	logging.Info(p.logger, "feed built",
		logging.FieldCount, len(doc.Games),
	)
	return doc, nil
}

func (p *Pipeline) fetchLineups(ctx context.Context) providers.LineupData {
	if p.lineups == nil {
		return providers.Empty()
	}

	start := time.Now()
	data, err := p.lineups.FetchLineups(ctx)
	if p.metrics != nil {
		p.metrics.RecordSourceAttempt("lineup", time.Since(start), err)
		var unavailable *providers.SourceUnavailableError
		if errors.As(err, &unavailable) && unavailable.StatusCode == http.StatusTooManyRequests {
			p.metrics.RecordRateLimit(unavailable.Source, 0)
		}
	}
	if err != nil {
		// Degrade, never abort: the feed still ships with placeholders.
		logging.Warn(p.logger, "lineup source unavailable, continuing without lineup data", "error", err)
		return providers.Empty()
	}
	return data
}

func (p *Pipeline) resolveRosters(lineups providers.LineupData, roster []players.Record) map[string][]feed.PlayerEntry {
	teamSet := lineups.TeamOrder
	if len(teamSet) == 0 {
		teamSet = teamsFromRecords(roster)
	}

	rosters := make(map[string][]feed.PlayerEntry, len(teamSet))
	for _, team := range teamSet {
		rosters[team] = lineup.Resolve(team, lineups.Starters[team], roster, p.policy)
	}
	return rosters
}

func teamsFromRecords(roster []players.Record) []string {
	var order []string
	seen := make(map[string]struct{})
	for _, r := range roster {
		if _, ok := seen[r.Team]; ok {
			continue
		}
		seen[r.Team] = struct{}{}
		order = append(order, r.Team)
	}
	return order
}
