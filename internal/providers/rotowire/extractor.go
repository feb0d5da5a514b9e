package rotowire

import (
	"strings"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/teams"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/timeutil"
)

const maxStarters = 5

// gameContext tracks the two teams established by the most recent header row.
// Player rows are attributed to it explicitly instead of inferring the active
// game from collection ordering.
type gameContext struct {
	away   string
	home   string
	active bool
}

// Extract runs the row-classification state machine over scraped table rows.
// Rows matching neither pattern, and malformed rows, are skipped; a single
// bad row never aborts extraction of the rest of the document.
func Extract(rows []Row) providers.LineupData {
	data := providers.Empty()
	seen := make(map[string]struct{})
	var game gameContext

	for _, row := range rows {
		switch classify(row) {
		case rowHeader:
			game = handleHeader(row, &data, seen)
		case rowPlayer:
			if game.active {
				handlePlayer(row, game, &data)
			}
		}
	}
	return data
}

func handleHeader(row Row, data *providers.LineupData, seen map[string]struct{}) gameContext {
	// The "@" cell is the home team; the cell before it is the away team.
	atIdx := 1
	if strings.Contains(row.Cells[2].Text, "@") {
		atIdx = 2
	}

	awayRaw := row.Cells[atIdx-1].Text
	homeRaw := strings.ReplaceAll(row.Cells[atIdx].Text, "@", "")

	away := teams.Normalize(awayRaw)
	home := teams.Normalize(homeRaw)
	if away == "" || home == "" {
		return gameContext{}
	}

	gameTime := defaultGameTime
	if atIdx == 2 && timeutil.LooksLikeClock(row.Cells[0].Text) {
		gameTime = strings.TrimSpace(row.Cells[0].Text)
	}

	for _, team := range []string{away, home} {
		data.Starters[team] = []players.ObservedStarter{}
		data.GameTimes[team] = gameTime
		if _, ok := seen[team]; !ok {
			seen[team] = struct{}{}
			data.TeamOrder = append(data.TeamOrder, team)
		}
	}

	return gameContext{away: away, home: home, active: true}
}

func handlePlayer(row Row, game gameContext, data *providers.LineupData) {
	if len(row.Cells) > 1 {
		appendStarter(data, game.away, row.Cells[1])
	}
	if len(row.Cells) > 2 {
		appendStarter(data, game.home, row.Cells[2])
	}
}

func appendStarter(data *providers.LineupData, team string, cell Cell) {
	// Only cells linking to a player page name a specific player.
	if !cell.PlayerLink {
		return
	}
	list := data.Starters[team]
	if len(list) >= maxStarters {
		return
	}
	data.Starters[team] = append(list, players.ObservedStarter{
		RawName:  cell.Text,
		Team:     team,
		Slot:     len(list),
		Verified: cell.verified(),
	})
}
