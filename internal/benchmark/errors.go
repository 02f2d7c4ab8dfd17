// Package benchmark maps dimension scores to percentiles against configured
// elite performance thresholds.
package benchmark

import (
	"fmt"

	"github.com/jonathan/career-coach/internal/types"
)

// DataUnavailableError indicates no thresholds are configured for a
// (dimension, key) pair. Callers fall back to a default key or degrade.
type DataUnavailableError struct {
	Dimension string
	Key       types.BenchmarkKey
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("benchmark data unavailable for dimension %q, key %s", e.Dimension, e.Key)
}
