// Package session provides the storage contract for coaching sessions with
// in-memory and Redis drivers.
package session

import "errors"

var (
	// ErrNotFound is returned when a session id is unknown to the store.
	ErrNotFound = errors.New("session not found")
	// ErrAlreadyExists is returned when creating a session whose id is taken.
	ErrAlreadyExists = errors.New("session already exists")
	// ErrVersionConflict is returned when an update races a concurrent write.
	ErrVersionConflict = errors.New("session version conflict")
	// ErrInvalidStoreType is returned for an unknown driver name.
	ErrInvalidStoreType = errors.New("invalid session store type")
	// ErrInvalidConfig is returned when a driver is missing required options.
	ErrInvalidConfig = errors.New("invalid session store config")
)
