package config

const (
	envProjectionFallback = "MATCH_PROJECTION_FALLBACK"
	envSuppressOut        = "MATCH_SUPPRESS_OUT"
	envFuzzyTier          = "MATCH_FUZZY_TIER"
	envFuzzyMaxDistance   = "MATCH_FUZZY_MAX_DISTANCE"

	defaultFuzzyMaxDistance = 2
)

// MatcherConfig controls the optional starter-resolution policies. All three
// default to off: when no lineup has been published the feed carries a
// placeholder rather than a guess.
type MatcherConfig struct {
	ProjectionFallback bool
	SuppressOut        bool
	FuzzyTier          bool
	FuzzyMaxDistance   int
}

func loadMatcher() MatcherConfig {
	return MatcherConfig{
		ProjectionFallback: boolEnvOrDefault(envProjectionFallback, false),
		SuppressOut:        boolEnvOrDefault(envSuppressOut, false),
		FuzzyTier:          boolEnvOrDefault(envFuzzyTier, false),
		FuzzyMaxDistance:   intEnvOrDefault(envFuzzyMaxDistance, defaultFuzzyMaxDistance),
	}
}
