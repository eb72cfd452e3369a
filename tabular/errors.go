package tabular

import (
	"errors"
	"fmt"
)

// LoadError reports a table that could not be fetched or parsed
type LoadError struct {
	Table  string
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load %s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("load %s from %s: %v", e.Table, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err wraps a *LoadError
func IsLoadError(err error) bool {
	var target *LoadError
	return errors.As(err, &target)
}
