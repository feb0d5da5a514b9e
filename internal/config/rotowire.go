package config

import "time"

const (
	envRotowireURL     = "ROTOWIRE_URL"
	envRotowireTimeout = "ROTOWIRE_TIMEOUT"

	defaultRotowireURL = "https://www.rotowire.com/basketball/nba-lineups.php"
	// The lineup source must never block a build indefinitely.
	defaultRotowireTimeout = 10 * Duration(time.Second)
)

// RotowireConfig controls how we talk to the lineup source.
type RotowireConfig struct {
	URL     string
	Timeout time.Duration
}

func loadRotowire() RotowireConfig {
	return RotowireConfig{
		URL:     envOrDefault(envRotowireURL, defaultRotowireURL),
		Timeout: durationEnvOrDefault(envRotowireTimeout, defaultRotowireTimeout),
	}
}
