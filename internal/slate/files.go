package slate

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// ErrMissingInput signals that one of the two required slate files could not
// be found. The run cannot proceed without both.
var ErrMissingInput = errors.New("slate: required input file missing")

// DiscoverFiles locates the latest projections and salary files under dir
// using the configured glob patterns. When several files match a pattern the
// lexicographically last one wins, which for date-stamped exports is the
// newest.
func DiscoverFiles(dir, projectionsGlob, salaryGlob string) (projectionsPath, salaryPath string, err error) {
	projectionsPath, err = latestMatch(dir, projectionsGlob)
	if err != nil {
		return "", "", fmt.Errorf("projections (%s): %w", projectionsGlob, err)
	}
	salaryPath, err = latestMatch(dir, salaryGlob)
	if err != nil {
		return "", "", fmt.Errorf("salaries (%s): %w", salaryGlob, err)
	}
	return projectionsPath, salaryPath, nil
}

func latestMatch(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("%w: bad pattern: %v", ErrMissingInput, err)
	}
	if len(matches) == 0 {
		return "", ErrMissingInput
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
