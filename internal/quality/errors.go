// Package quality scores a single text response on clarity, specificity,
// achievement density and quantification.
package quality

import "fmt"

// EmptyInputError indicates the input text was empty or whitespace-only.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "validation error: input text is empty"
}

// UnparsableInputError indicates tokenization produced no usable content
// (e.g. binary or non-text input).
type UnparsableInputError struct {
	Message string
}

func (e *UnparsableInputError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("analysis error: unparsable input: %s", e.Message)
	}
	return "analysis error: unparsable input"
}
