package config

const (
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"
	envFeedOutput        = "FEED_OUTPUT"
	envAdminToken        = "ADMIN_TOKEN"

	defaultSnapshotDir       = "data/snapshots"
	defaultSnapshotRetention = 14
	defaultFeedOutput        = "data/nba_data.json"
)

// SnapshotConfig controls feed snapshot persistence and the exported file.
type SnapshotConfig struct {
	Dir           string
	RetentionDays int
	// OutputFile is the stable path the latest feed is always written to.
	// Consumers read this file; it is overwritten whole on every refresh.
	OutputFile string
	// AdminToken guards the admin refresh endpoint; empty disables it.
	AdminToken string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
		OutputFile:    envOrDefault(envFeedOutput, defaultFeedOutput),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
