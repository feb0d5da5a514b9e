package feed

// SentinelName is the placeholder entry emitted for a team with no usable
// lineup data.
const SentinelName = "Waiting for Lineup"

// PlayerEntry is one roster line in the exported feed.
type PlayerEntry struct {
	Pos      string  `json:"pos"`
	Name     string  `json:"name"`
	Salary   int     `json:"salary"`
	Proj     float64 `json:"proj"`
	Value    float64 `json:"value"`
	Injury   string  `json:"injury"`
	Verified bool    `json:"verified"`
}

// Roster is one team's resolved starting five (or the sentinel placeholder).
type Roster struct {
	Logo    string        `json:"logo"`
	Players []PlayerEntry `json:"players"`
}

// Meta carries the betting context for a game. Spread keeps an explicit "+"
// for non-negative values; both fields render "TBD" when unknown.
type Meta struct {
	Spread string `json:"spread"`
	Total  string `json:"total"`
	Time   string `json:"time"`
}

// Game pairs two teams with metadata and their rosters.
type Game struct {
	ID      string            `json:"id"`
	Teams   []string          `json:"teams"`
	Meta    Meta              `json:"meta"`
	Rosters map[string]Roster `json:"rosters"`
}

// Feed is the exported document. It is rebuilt whole on every refresh and
// overwrites any previous output.
type Feed struct {
	LastUpdated string `json:"last_updated"`
	Games       []Game `json:"games"`
}

// New builds a Feed payload.
func New(lastUpdated string, games []Game) Feed {
	return Feed{
		LastUpdated: lastUpdated,
		Games:       games,
	}
}

// Sentinel returns the placeholder roster entry for a team awaiting lineup
// data, with all numeric fields zeroed.
func Sentinel() PlayerEntry {
	return PlayerEntry{Name: SentinelName}
}
