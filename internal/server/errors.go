// Package server provides the HTTP REST API for the career-coach analysis core.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-coach/internal/ats"
	"github.com/jonathan/career-coach/internal/benchmark"
	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/quality"
)

// Error kinds carried in the error_kind field of error responses.
const (
	KindValidationError      = "validation_error"
	KindUnparsableInput      = "unparsable_input"
	KindSessionNotFound      = "session_not_found"
	KindSessionClosed        = "session_closed"
	KindSessionExists        = "session_exists"
	KindBenchmarkUnavailable = "benchmark_data_unavailable"
	KindAnalysisTimeout      = "analysis_timeout"
	KindRateLimited          = "rate_limited"
	KindInternal             = "internal_error"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrorKind classifies an error into the response taxonomy.
func ErrorKind(err error) string {
	var (
		emptyInput    *quality.EmptyInputError
		unparsable    *quality.UnparsableInputError
		weights       *ats.WeightsError
		validation    *ErrValidation
		notFound      *conversation.SessionNotFoundError
		closed        *conversation.SessionClosedError
		exists        *conversation.SessionExistsError
		benchmarkData *benchmark.DataUnavailableError
	)

	switch {
	case errors.As(err, &emptyInput), errors.As(err, &weights), errors.As(err, &validation):
		return KindValidationError
	case errors.As(err, &unparsable):
		return KindUnparsableInput
	case errors.As(err, &notFound):
		return KindSessionNotFound
	case errors.As(err, &closed):
		return KindSessionClosed
	case errors.As(err, &exists):
		return KindSessionExists
	case errors.As(err, &benchmarkData):
		return KindBenchmarkUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return KindAnalysisTimeout
	default:
		return KindInternal
	}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch ErrorKind(err) {
	case KindValidationError:
		return http.StatusBadRequest
	case KindUnparsableInput:
		return http.StatusUnprocessableEntity
	case KindSessionNotFound, KindBenchmarkUnavailable:
		return http.StatusNotFound
	case KindSessionClosed, KindSessionExists:
		return http.StatusConflict
	case KindAnalysisTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
