package lineup

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
)

// tier is one matching strategy: a pure function over (normalized name,
// candidate set) returning the matched record. Tiers are tried in order with
// short-circuit on first success.
type tier func(key string, candidates []players.Record) (players.Record, bool)

func tiersFor(policy Policy) []tier {
	t := []tier{exactMatch, initialSurnameMatch, surnameMatch}
	if policy.FuzzyTier {
		maxDistance := policy.FuzzyMaxDistance
		if maxDistance <= 0 {
			maxDistance = 2
		}
		t = append(t, fuzzyMatch(maxDistance))
	}
	return t
}

// exactMatch: normalized scraped name equals a record's normalized full name.
func exactMatch(key string, candidates []players.Record) (players.Record, bool) {
	for _, c := range candidates {
		if c.NormalizedName == key {
			return c, true
		}
	}
	return players.Record{}, false
}

// initialSurnameMatch: unique candidate whose surname and first-initial both
// match the scraped name.
func initialSurnameMatch(key string, candidates []players.Record) (players.Record, bool) {
	first, surname := players.SplitKey(key)
	if first == "" || surname == "" {
		return players.Record{}, false
	}

	var match players.Record
	found := 0
	for _, c := range candidates {
		candFirst, candSurname := players.SplitKey(c.NormalizedName)
		if candSurname != surname || candFirst == "" {
			continue
		}
		if candFirst[0] != first[0] {
			continue
		}
		match = c
		found++
	}
	if found != 1 {
		return players.Record{}, false
	}
	return match, true
}

// surnameMatch: accepted only when exactly one candidate on the team shares
// the surname. Ambiguous surnames are rejected, not guessed.
func surnameMatch(key string, candidates []players.Record) (players.Record, bool) {
	_, surname := players.SplitKey(key)
	if surname == "" {
		return players.Record{}, false
	}

	var match players.Record
	found := 0
	for _, c := range candidates {
		_, candSurname := players.SplitKey(c.NormalizedName)
		if candSurname != surname {
			continue
		}
		match = c
		found++
	}
	if found != 1 {
		return players.Record{}, false
	}
	return match, true
}

// fuzzyMatch ranks candidates by Levenshtein distance against the scraped
// name and accepts a unique best candidate within maxDistance. Off by
// default; enabled through MatcherConfig.
func fuzzyMatch(maxDistance int) tier {
	return func(key string, candidates []players.Record) (players.Record, bool) {
		best := maxDistance + 1
		var match players.Record
		found := 0
		for _, c := range candidates {
			rank := fuzzy.LevenshteinDistance(key, c.NormalizedName)
			if rank > maxDistance || rank > best {
				continue
			}
			if rank < best {
				best = rank
				match = c
				found = 1
				continue
			}
			found++
		}
		if found != 1 {
			return players.Record{}, false
		}
		return match, true
	}
}
