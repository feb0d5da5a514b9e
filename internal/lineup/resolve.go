package lineup

import (
	"math"
	"sort"
	"strings"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/feed"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
)

// Policy selects the optional resolution behaviors. The zero value is the
// conservative contract: no guessed lineups, no injury suppression, exact
// tiers only.
type Policy struct {
	// ProjectionFallback emits a top-5-by-projection roster when a team has
	// no lineup observations at all, instead of the placeholder entry.
	ProjectionFallback bool
	// SuppressOut drops a resolved starter whose injury status marks them
	// out.
	SuppressOut bool
	// FuzzyTier appends a Levenshtein-ranked tier after the exact tiers.
	FuzzyTier        bool
	FuzzyMaxDistance int
}

// Resolve maps a team's observed starter names onto canonical player records
// using cascading tiers, preserving the extractor's emission order. The
// result is never empty: a team with no usable data gets exactly one
// placeholder entry.
func Resolve(team string, observed []players.ObservedStarter, roster []players.Record, policy Policy) []feed.PlayerEntry {
	candidates := teamCandidates(team, roster)

	if len(observed) == 0 {
		if policy.ProjectionFallback && len(candidates) > 0 {
			return topProjected(candidates)
		}
		return []feed.PlayerEntry{feed.Sentinel()}
	}

	tiers := tiersFor(policy)
	entries := make([]feed.PlayerEntry, 0, len(observed))
	for _, obs := range observed {
		key, normalized := players.NormalizeName(obs.RawName)

		var record players.Record
		matched := false
		if normalized {
			record, matched = resolveOne(key, candidates, tiers)
		}
		if !matched {
			// Unresolved names surface in-band rather than being dropped.
			entries = append(entries, feed.PlayerEntry{
				Pos:      slotPosition(obs.Slot),
				Name:     obs.RawName,
				Verified: obs.Verified,
			})
			continue
		}
		if policy.SuppressOut && isOut(record) {
			continue
		}
		entries = append(entries, entryFor(record, obs))
	}

	if len(entries) == 0 {
		return []feed.PlayerEntry{feed.Sentinel()}
	}
	return entries
}

func resolveOne(key string, candidates []players.Record, tiers []tier) (players.Record, bool) {
	for _, match := range tiers {
		if record, ok := match(key, candidates); ok {
			return record, true
		}
	}
	return players.Record{}, false
}

func teamCandidates(team string, roster []players.Record) []players.Record {
	candidates := make([]players.Record, 0, len(roster))
	for _, r := range roster {
		if r.Team == team {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

func topProjected(candidates []players.Record) []feed.PlayerEntry {
	ranked := make([]players.Record, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Projection > ranked[j].Projection
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	entries := make([]feed.PlayerEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, entryFor(r, players.ObservedStarter{}))
	}
	return entries
}

func entryFor(record players.Record, obs players.ObservedStarter) feed.PlayerEntry {
	pos := record.Position
	if pos == "" {
		pos = slotPosition(obs.Slot)
	}
	return feed.PlayerEntry{
		Pos:      pos,
		Name:     record.FullName(),
		Salary:   record.Salary,
		Proj:     round1(record.Projection),
		Value:    round2(value(record)),
		Injury:   record.InjuryStatus,
		Verified: obs.Verified,
	}
}

// value is the projection per thousand dollars of salary.
func value(record players.Record) float64 {
	if record.Salary <= 0 {
		return 0
	}
	return record.Projection / (float64(record.Salary) / 1000)
}

func isOut(record players.Record) bool {
	status := strings.TrimSpace(record.InjuryStatus)
	return strings.EqualFold(status, "out") || strings.EqualFold(status, "o")
}

func slotPosition(slot int) string {
	if slot < 0 || slot >= len(players.SlotPositions) {
		return ""
	}
	return players.SlotPositions[slot]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
