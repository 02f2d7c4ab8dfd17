package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jonathan/career-coach/internal/types"
)

// memoryStore is the per-process default driver. Sessions are deep-copied on
// the way in and out so callers never share mutable state with the store.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*types.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*types.Session)}
}

func (s *memoryStore) Create(_ context.Context, sess *types.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return ErrAlreadyExists
	}

	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	sess.Version = 1

	stored, err := copySession(sess)
	if err != nil {
		return err
	}
	s.sessions[sess.ID] = stored
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	return copySession(stored)
}

func (s *memoryStore) Update(_ context.Context, sess *types.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.sessions[sess.ID]
	if !exists {
		return ErrNotFound
	}
	if stored.Version != sess.Version {
		return ErrVersionConflict
	}

	sess.Version++
	sess.UpdatedAt = time.Now()

	updated, err := copySession(sess)
	if err != nil {
		return err
	}
	s.sessions[sess.ID] = updated
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = nil
	return nil
}

func copySession(sess *types.Session) (*types.Session, error) {
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	var out types.Session
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
