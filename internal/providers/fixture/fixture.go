package fixture

import (
	"context"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
)

// Provider returns a static lineup set useful for local testing and
// bootstrapping without hitting the real lineup source.
type Provider struct{}

// New creates a fixture lineup provider.
func New() *Provider {
	return &Provider{}
}

// FetchLineups returns a deterministic one-game slate.
func (p *Provider) FetchLineups(ctx context.Context) (providers.LineupData, error) {
	_ = ctx

	data := providers.Empty()
	data.TeamOrder = []string{"BOS", "NYK"}
	data.GameTimes["BOS"] = "7:30 PM"
	data.GameTimes["NYK"] = "7:30 PM"
	data.Starters["BOS"] = []players.ObservedStarter{
		{RawName: "Jrue Holiday", Team: "BOS", Slot: 0, Verified: true},
		{RawName: "Derrick White", Team: "BOS", Slot: 1, Verified: true},
		{RawName: "Jaylen Brown", Team: "BOS", Slot: 2, Verified: true},
		{RawName: "Jayson Tatum", Team: "BOS", Slot: 3, Verified: true},
		{RawName: "Kristaps Porzingis", Team: "BOS", Slot: 4, Verified: true},
	}
	data.Starters["NYK"] = []players.ObservedStarter{
		{RawName: "Jalen Brunson", Team: "NYK", Slot: 0, Verified: true},
		{RawName: "Josh Hart", Team: "NYK", Slot: 1, Verified: false},
		{RawName: "Mikal Bridges", Team: "NYK", Slot: 2, Verified: false},
		{RawName: "OG Anunoby", Team: "NYK", Slot: 3, Verified: true},
		{RawName: "Karl-Anthony Towns", Team: "NYK", Slot: 4, Verified: true},
	}
	return data, nil
}
