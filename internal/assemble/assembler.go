package assemble

import (
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/teams"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/slate"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/timeutil"
)

const unknownField = "TBD"

// Input carries everything the assembler needs for one build.
type Input struct {
	Lineups     providers.LineupData
	Rosters     map[string][]feed.PlayerEntry
	Projections []slate.ProjectionRow
	Now         time.Time
	Logger      *slog.Logger
}

type gameMeta struct {
	spread    float64
	overUnder string
}

// Build pairs teams into games, attaches metadata, and shapes the final
// export document sorted by start time.
func Build(in Input) feed.Feed {
	order := in.Lineups.TeamOrder
	if len(order) == 0 {
		// No lineup data at all: the slate itself still defines the games.
		order = orderFromProjections(in.Projections)
	}

	metaByTeam := metaLookup(in.Projections)

	var games []feed.Game
	for i := 0; i+1 < len(order); i += 2 {
		games = append(games, buildGame(in, order[i], order[i+1], metaByTeam))
	}
	if len(order)%2 != 0 {
		logging.Warn(in.Logger, "dropping unpaired team from feed",
			slog.String(logging.FieldTeam, order[len(order)-1]))
	}

	sortGames(games)
	return feed.New(timeutil.FormatStamp(in.Now), games)
}

func buildGame(in Input, away, home string, metaByTeam map[string]gameMeta) feed.Game {
	spread, total := unknownField, unknownField
	if meta, ok := metaByTeam[away]; ok {
		spread = formatSpread(meta.spread)
		if meta.overUnder != "" {
			total = meta.overUnder
		}
	}

	gameTime := in.Lineups.GameTimes[away]
	if gameTime == "" {
		gameTime = unknownField
	}

	return feed.Game{
		ID:    away + "-" + home,
		Teams: []string{away, home},
		Meta:  feed.Meta{Spread: spread, Total: total, Time: gameTime},
		Rosters: map[string]feed.Roster{
			away: rosterFor(in.Rosters, away),
			home: rosterFor(in.Rosters, home),
		},
	}
}

// rosterFor never returns an empty player list: teams without resolved
// entries carry the placeholder so they are never omitted from the feed.
func rosterFor(rosters map[string][]feed.PlayerEntry, team string) feed.Roster {
	entries := rosters[team]
	if len(entries) == 0 {
		entries = []feed.PlayerEntry{feed.Sentinel()}
	}
	return feed.Roster{
		Logo:    teams.LogoURL(team),
		Players: entries,
	}
}

// orderFromProjections derives first-observed team order by pairing each
// team with its opponent field, so games exist even when the lineup source
// yields nothing.
func orderFromProjections(rows []slate.ProjectionRow) []string {
	var order []string
	seen := make(map[string]struct{})
	for _, row := range rows {
		team := teams.Normalize(row.Team)
		opp := teams.Normalize(row.Opponent)
		if team == "" || opp == "" {
			continue
		}
		if _, ok := seen[team]; ok {
			continue
		}
		if _, ok := seen[opp]; ok {
			continue
		}
		seen[team] = struct{}{}
		seen[opp] = struct{}{}
		order = append(order, team, opp)
	}
	return order
}

func metaLookup(rows []slate.ProjectionRow) map[string]gameMeta {
	lookup := make(map[string]gameMeta)
	for _, row := range rows {
		team := teams.Normalize(row.Team)
		if team == "" {
			continue
		}
		if _, ok := lookup[team]; ok {
			continue
		}
		lookup[team] = gameMeta{spread: row.Spread, overUnder: row.OverUnder}
	}
	return lookup
}

// formatSpread keeps an explicit "+" for zero and positive spreads.
func formatSpread(spread float64) string {
	rendered := strconv.FormatFloat(spread, 'f', -1, 64)
	if spread >= 0 {
		return "+" + rendered
	}
	return rendered
}

// sortGames orders ascending by start time in minutes since midnight;
// unparseable times sort last.
func sortGames(games []feed.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		mi, oki := timeutil.ClockMinutes(games[i].Meta.Time)
		mj, okj := timeutil.ClockMinutes(games[j].Meta.Time)
		if oki != okj {
			return oki
		}
		return mi < mj
	})
}
