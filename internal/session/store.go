// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"

	"github.com/MKhiriev/go-pro-network/models"
)

// Store is the single source of truth for the current session.
//
// Invariant: a user is never held without a token. SetAuth with an empty
// token stores the cleared state; a token without a user is the "unverified"
// state resolved by the auth bootstrap.
type Store struct {
	mu       sync.RWMutex
	user     *models.User
	token    string
	revision uint64

	hydrateOnce sync.Once
	hydrated    chan struct{}
}

// NewStore returns an empty, not yet hydrated store.
func NewStore() *Store {
	return &Store{hydrated: make(chan struct{})}
}

// SetAuth overwrites user and token atomically.
func (s *Store) SetAuth(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		s.user, s.token = nil, ""
	} else {
		s.user, s.token = cloneUser(user), token
	}
	s.revision++
}

// Logout clears both fields.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user, s.token = nil, ""
	s.revision++
}

// Restore loads a persisted session without counting as a mutation. It is
// meant to be called once before MarkHydrated.
func (s *Store) Restore(sess models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.Token == "" {
		s.user, s.token = nil, ""
		return
	}
	s.user, s.token = cloneUser(sess.User), sess.Token
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Session{User: cloneUser(s.user), Token: s.token}
}

// Token returns the current bearer token or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Revision increases on every SetAuth or Logout.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// MarkHydrated signals that the persisted record has been restored. Further
// calls are no-ops.
func (s *Store) MarkHydrated() {
	s.hydrateOnce.Do(func() { close(s.hydrated) })
}

// Hydrated is closed once MarkHydrated has been called.
func (s *Store) Hydrated() <-chan struct{} {
	return s.hydrated
}

// IsHydrated reports whether MarkHydrated has been called.
func (s *Store) IsHydrated() bool {
	select {
	case <-s.hydrated:
		return true
	default:
		return false
	}
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
