package slate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn signals that a slate file's header row lacks a required
// column. Header drift is a fatal input error, never a silent empty slate.
var ErrMissingColumn = errors.New("slate: required column missing")

// ProjectionRow is one record from the projections file (Input A).
type ProjectionRow struct {
	FirstName    string
	LastName     string
	Team         string
	Opponent     string
	Position     string
	Projection   float64
	Salary       int
	InjuryStatus string
	Spread       float64
	OverUnder    string
}

// SalaryRow is one record from the salary file (Input B). Its header casing
// differs from the projections file by source convention.
type SalaryRow struct {
	FirstName string
	LastName  string
	Team      string
	Salary    int
}

// ReadProjections decodes the projections CSV. Rows missing a name or team
// are skipped; malformed numeric fields decode to zero rather than failing
// the file.
func ReadProjections(path string) ([]ProjectionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open projections: %w", err)
	}
	defer f.Close()
	return decodeProjections(f)
}

func decodeProjections(r io.Reader) ([]ProjectionRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read projections header: %w", err)
	}
	cols := indexColumns(header)
	if err := requireColumns(cols, "first_name", "last_name", "team", "ppg_projection", "salary"); err != nil {
		return nil, fmt.Errorf("projections: %w", err)
	}

	var rows []ProjectionRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single malformed line does not fail the file.
			continue
		}

		row := ProjectionRow{
			FirstName:    field(record, cols, "first_name"),
			LastName:     field(record, cols, "last_name"),
			Team:         field(record, cols, "team"),
			Opponent:     field(record, cols, "opp"),
			Position:     field(record, cols, "position"),
			Projection:   parseFloat(field(record, cols, "ppg_projection")),
			Salary:       parseInt(field(record, cols, "salary")),
			InjuryStatus: field(record, cols, "injury_status"),
			Spread:       parseFloat(field(record, cols, "spread")),
			OverUnder:    field(record, cols, "over_under"),
		}
		if row.LastName == "" || row.Team == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadSalaries decodes the salary CSV.
func ReadSalaries(path string) ([]SalaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open salaries: %w", err)
	}
	defer f.Close()
	return decodeSalaries(f)
}

func decodeSalaries(r io.Reader) ([]SalaryRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read salaries header: %w", err)
	}
	cols := indexColumns(header)
	if err := requireColumns(cols, "first name", "last name", "team", "salary"); err != nil {
		return nil, fmt.Errorf("salaries: %w", err)
	}

	var rows []SalaryRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		row := SalaryRow{
			FirstName: field(record, cols, "first name"),
			LastName:  field(record, cols, "last name"),
			Team:      field(record, cols, "team"),
			Salary:    parseInt(field(record, cols, "salary")),
		}
		if row.LastName == "" || row.Team == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// indexColumns maps lowercased, trimmed header names to positions so the two
// sources' differing header casings resolve the same way.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// requireColumns rejects a header row that lacks any of the named columns.
func requireColumns(cols map[string]int, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseFloat(raw string) float64 {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return val
}

func parseInt(raw string) int {
	if val, err := strconv.Atoi(raw); err == nil {
		return val
	}
	// Some exports format salaries as floats ("9800.0").
	if val, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(val)
	}
	return 0
}
