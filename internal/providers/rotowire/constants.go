package rotowire

import "time"

const (
	defaultURL     = "https://www.rotowire.com/basketball/nba-lineups.php"
	defaultTimeout = 10 * time.Second

	// The lineup page serves a stripped response to non-browser agents.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// A cell names a specific player only when it links to a player page;
	// placeholder dashes never carry a link.
	playerLinkFragment = "player"

	// Marker class the source attaches to confirmed (vs. projected) slots.
	verifiedClass = "is-confirmed"

	// Start time used when a header row carries no recognizable clock cell.
	defaultGameTime = "7:00 PM"
)
