// Package ats scores text against configurable ATS system profiles.
package ats

import "fmt"

// WeightsError indicates a malformed industry-priority weighting list.
type WeightsError struct {
	Message string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}
