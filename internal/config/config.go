package config

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Slate        SlateConfig
	Rotowire     RotowireConfig
	Matcher      MatcherConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Slate:        loadSlate(),
		Rotowire:     loadRotowire(),
		Matcher:      loadMatcher(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
	}
}
