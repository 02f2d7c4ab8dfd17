// Package conversation implements the session-scoped coaching state machine
// that merges all analysis signals and decides the next phase.
package conversation

import "fmt"

// SessionNotFoundError indicates an unknown session id.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// SessionClosedError indicates the session reached Completion and rejects
// further turns until explicitly reset.
type SessionClosedError struct {
	ID string
}

func (e *SessionClosedError) Error() string {
	return fmt.Sprintf("session closed: %s", e.ID)
}

// SessionExistsError indicates a start request for an id that is already
// active.
type SessionExistsError struct {
	ID string
}

func (e *SessionExistsError) Error() string {
	return fmt.Sprintf("session already exists: %s", e.ID)
}
