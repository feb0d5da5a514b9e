package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals a nil or unconfigured provider.
var ErrProviderUnavailable = errors.New("lineup provider unavailable")

// SourceUnavailableError captures network, timeout, or total-parse failures
// from the lineup source. Callers recover by continuing with empty lineup
// data; it never aborts a run.
type SourceUnavailableError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *SourceUnavailableError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s unavailable (status=%d)", e.Source, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Source)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// AsSourceUnavailable attempts to unwrap an error into a SourceUnavailableError.
func AsSourceUnavailable(err error) (*SourceUnavailableError, bool) {
	var suErr *SourceUnavailableError
	if errors.As(err, &suErr) {
		return suErr, true
	}
	return nil, false
}
