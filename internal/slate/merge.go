package slate

import (
	"strings"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/players"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/domain/teams"
)

type mergeKey struct {
	first string
	last  string
	team  string
}

// Merge inner-joins the projections and salary row-sets on (normalized first
// name, normalized last name, canonical team). A projection without a salary
// counterpart, or vice versa, is dropped: every exported player needs both a
// price and a projection. Duplicate keys on either side collapse to the first
// occurrence.
func Merge(projections []ProjectionRow, salaries []SalaryRow) []players.Record {
	salaryByKey := make(map[mergeKey]SalaryRow, len(salaries))
	for _, row := range salaries {
		key := keyFor(row.FirstName, row.LastName, row.Team)
		if _, seen := salaryByKey[key]; seen {
			continue
		}
		salaryByKey[key] = row
	}

	records := make([]players.Record, 0, len(projections))
	seen := make(map[mergeKey]struct{}, len(projections))
	for _, row := range projections {
		key := keyFor(row.FirstName, row.LastName, row.Team)
		salaryRow, ok := salaryByKey[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		record := players.Record{
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Team:         teams.Normalize(row.Team),
			Opponent:     teams.Normalize(row.Opponent),
			Position:     row.Position,
			Salary:       row.Salary,
			Projection:   row.Projection,
			InjuryStatus: row.InjuryStatus,
			Spread:       row.Spread,
			OverUnder:    row.OverUnder,
		}
		if record.Salary == 0 {
			record.Salary = salaryRow.Salary
		}
		if key, ok := players.NormalizeName(record.FullName()); ok {
			record.NormalizedName = key
		}
		records = append(records, record)
	}
	return records
}

func keyFor(first, last, team string) mergeKey {
	return mergeKey{
		first: strings.ToLower(strings.TrimSpace(first)),
		last:  strings.ToLower(strings.TrimSpace(last)),
		team:  teams.Normalize(team),
	}
}
