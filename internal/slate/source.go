package slate

import "context"

// FileSource loads the slate from date-stamped CSV exports in a directory.
type FileSource struct {
	Dir             string
	ProjectionsGlob string
	SalaryGlob      string
}

// Load discovers and reads both slate files. A missing file surfaces
// ErrMissingInput; the caller treats that as fatal.
func (s FileSource) Load(ctx context.Context) ([]ProjectionRow, []SalaryRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	projectionsPath, salaryPath, err := DiscoverFiles(s.Dir, s.ProjectionsGlob, s.SalaryGlob)
	if err != nil {
		return nil, nil, err
	}

	projections, err := ReadProjections(projectionsPath)
	if err != nil {
		return nil, nil, err
	}
	salaries, err := ReadSalaries(salaryPath)
	if err != nil {
		return nil, nil, err
	}
	return projections, salaries, nil
}
