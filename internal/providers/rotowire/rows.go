package rotowire

import "strings"

// Cell is one table cell from the scraped lineup page: its collapsed text
// plus the two pieces of metadata the extractor cares about.
type Cell struct {
	Text       string
	Class      string
	PlayerLink bool
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell
}

type rowKind int

const (
	rowUnknown rowKind = iota
	rowHeader
	rowPlayer
)

var positionSlots = map[string]struct{}{
	"PG": {}, "SG": {}, "SF": {}, "PF": {}, "C": {},
}

// classify tags a row as a game header, a player row, or noise. The page is
// loosely structured, so recognition is structural: headers carry an "@"
// between two team cells, player rows lead with a position abbreviation.
func classify(row Row) rowKind {
	if len(row.Cells) >= 3 {
		if strings.Contains(row.Cells[1].Text, "@") || strings.Contains(row.Cells[2].Text, "@") {
			return rowHeader
		}
	}
	if len(row.Cells) > 0 {
		if _, ok := positionSlots[row.Cells[0].Text]; ok {
			return rowPlayer
		}
	}
	return rowUnknown
}

func (c Cell) verified() bool {
	return strings.Contains(c.Class, verifiedClass)
}
