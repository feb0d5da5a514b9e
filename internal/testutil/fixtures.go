package testutil

import (
	domainfeed "github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/teams"
)

// SampleGame returns a minimal game fixture for the given away/home pair.
func SampleGame(away, home string) domainfeed.Game {
	return domainfeed.Game{
		ID:    away + "@" + home,
		Teams: []string{away, home},
		Meta:  domainfeed.Meta{Spread: "-3.5", Total: "224.5", Time: "7:30 PM"},
		Rosters: map[string]domainfeed.Roster{
			away: {Logo: teams.LogoURL(away), Players: []domainfeed.PlayerEntry{domainfeed.Sentinel()}},
			home: {Logo: teams.LogoURL(home), Players: []domainfeed.PlayerEntry{domainfeed.Sentinel()}},
		},
	}
}

// SampleFeed builds a feed with one sample game and a fixed timestamp.
func SampleFeed(away, home string) domainfeed.Feed {
	return domainfeed.Feed{
		LastUpdated: "2026-01-15 07:30 PM",
		Games:       []domainfeed.Game{SampleGame(away, home)},
	}
}
