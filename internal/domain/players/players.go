package players

// Record is the canonical player shape produced by the slate merge. A record
// is immutable after creation apart from the Starter flag.
type Record struct {
	FirstName    string
	LastName     string
	Team         string // canonical team code
	Opponent     string // canonical team code
	Position     string // primary plus optional secondary, slash-delimited
	Salary       int
	Projection   float64
	InjuryStatus string
	Spread       float64
	OverUnder    string
	Starter      bool

	// NormalizedName is precomputed at merge time so the starter matcher
	// never re-normalizes per comparison.
	NormalizedName string
}

// FullName returns the display name.
func (r Record) FullName() string {
	if r.FirstName == "" {
		return r.LastName
	}
	return r.FirstName + " " + r.LastName
}

// ObservedStarter is one scraped lineup slot for a team, capped at five per
// team by the extractor.
type ObservedStarter struct {
	RawName  string
	Team     string // canonical team code
	Slot     int    // 0-4, table row order (position-major)
	Verified bool   // source marked the name confirmed rather than projected
}

// SlotPositions lists the five lineup slots in table row order.
var SlotPositions = [5]string{"PG", "SG", "SF", "PF", "C"}
