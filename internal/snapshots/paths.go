package snapshots

import (
	"fmt"
	"path/filepath"
)

// FeedSnapshotPath builds the path to a feed snapshot for a given date.
func FeedSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "feeds", fmt.Sprintf("%s.json", date))
}
