// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-pro-network/internal/adapter"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/models"
)

// Phase is a state of [AuthBootstrap].
type Phase int

const (
	// PhaseHydrating waits for the persisted session to be restored.
	PhaseHydrating Phase = iota
	// PhaseChecking reconciles the session with the server.
	PhaseChecking
	// PhaseReady has a verified user.
	PhaseReady
	// PhaseReadyAnonymous has no user and needs none.
	PhaseReadyAnonymous
	// PhaseRedirecting has left for the login page.
	PhaseRedirecting
)

func (p Phase) String() string {
	switch p {
	case PhaseHydrating:
		return "hydrating"
	case PhaseChecking:
		return "checking"
	case PhaseReady:
		return "ready"
	case PhaseReadyAnonymous:
		return "ready-anonymous"
	case PhaseRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// BootstrapState is the signal a page renders from.
type BootstrapState struct {
	User            *models.User
	Token           string
	Phase           Phase
	IsLoading       bool
	IsAuthenticated bool
}

// Verifier confirms a token with the server. adapter.ServerAdapter
// satisfies it.
type Verifier interface {
	Me(ctx context.Context) (models.User, error)
}

// AuthBootstrap reconciles the session with the server once per page mount.
// It is safe to read State from another goroutine while Run is in progress.
type AuthBootstrap struct {
	sessions    SessionService
	verifier    Verifier
	navigator   Navigator
	requireAuth bool

	mu         sync.Mutex
	phase      Phase
	redirected bool

	logger *logger.Logger
}

// NewAuthBootstrap returns a bootstrap in [PhaseHydrating]. With requireAuth
// a missing or rejected session sends the user to the login page.
func NewAuthBootstrap(sessions SessionService, verifier Verifier, navigator Navigator, requireAuth bool, log *logger.Logger) *AuthBootstrap {
	return &AuthBootstrap{
		sessions:    sessions,
		verifier:    verifier,
		navigator:   navigator,
		requireAuth: requireAuth,
		phase:       PhaseHydrating,
		logger:      log,
	}
}

// Run drives the bootstrap to a terminal phase and returns the final state.
//
// The server is only asked when a token is held without a verified user.
// Running again after a terminal phase returns the current state without any
// request or navigation. If ctx is cancelled first, the session is left
// untouched and ctx.Err() is returned; the caller is expected to discard
// the result.
func (b *AuthBootstrap) Run(ctx context.Context) (BootstrapState, error) {
	if b.terminal() {
		return b.State(), nil
	}

	select {
	case <-b.sessions.Hydrated():
	case <-ctx.Done():
		return b.State(), ctx.Err()
	}

	b.setPhase(PhaseChecking)
	snap := b.sessions.Snapshot()

	switch {
	case snap.IsAuthenticated():
		b.setPhase(PhaseReady)
		return b.State(), nil

	case !snap.HasToken():
		b.resolveAnonymous(false)
		return b.State(), nil
	}

	user, err := b.verifier.Me(ctx)
	if ctx.Err() != nil {
		// unmounted while checking
		return b.State(), ctx.Err()
	}

	log := b.logger.With().Str("func", "AuthBootstrap.Run").Logger()

	if err != nil {
		log.Info().Err(err).Msg("session verification failed")
		// only the checked token is cleared; a newer session stays
		if _, logoutErr := b.sessions.LogoutIfToken(ctx, snap.Token); logoutErr != nil {
			log.Err(logoutErr).Msg("failed to persist cleared session")
		}
		if b.sessions.Snapshot().IsAuthenticated() {
			b.setPhase(PhaseReady)
			return b.State(), nil
		}
		// the HTTP client has already navigated away on 401
		b.resolveAnonymous(errors.Is(err, adapter.ErrUnauthorized))
		return b.State(), nil
	}

	adopted, err := b.sessions.AdoptUser(ctx, user, snap.Token)
	if err != nil {
		log.Err(err).Msg("verified user kept in memory only")
	}
	if !adopted {
		// the session changed while checking; resolve from what is there now
		log.Debug().Msg("session replaced during verification")
		if b.sessions.Snapshot().IsAuthenticated() {
			b.setPhase(PhaseReady)
		} else {
			b.resolveAnonymous(false)
		}
		return b.State(), nil
	}

	b.setPhase(PhaseReady)
	return b.State(), nil
}

// State returns the current signal. IsLoading stays true while redirecting
// so the page never flashes protected content.
func (b *AuthBootstrap) State() BootstrapState {
	b.mu.Lock()
	phase := b.phase
	b.mu.Unlock()

	snap := b.sessions.Snapshot()
	st := BootstrapState{
		User:      snap.User,
		Token:     snap.Token,
		Phase:     phase,
		IsLoading: phase == PhaseHydrating || phase == PhaseChecking || phase == PhaseRedirecting,
	}
	st.IsAuthenticated = phase == PhaseReady && snap.IsAuthenticated()
	if !st.IsAuthenticated && phase == PhaseReady {
		// the session ended after the check, e.g. by a 401 elsewhere
		st.User = nil
	}
	return st
}

// resolveAnonymous finishes without a user. A page that does not require
// auth always lands in PhaseReadyAnonymous. alreadyNavigated marks a
// redirect that was issued elsewhere and must not be repeated. The navigator
// is called outside mu since it may block on the UI loop, which reads State.
func (b *AuthBootstrap) resolveAnonymous(alreadyNavigated bool) {
	b.mu.Lock()
	navigate := false
	switch {
	case !b.requireAuth:
		b.phase = PhaseReadyAnonymous
	case alreadyNavigated:
		b.phase = PhaseRedirecting
		b.redirected = true
	default:
		b.phase = PhaseRedirecting
		navigate = !b.redirected
		b.redirected = true
	}
	b.mu.Unlock()

	if navigate {
		b.navigator.RedirectToLogin()
	}
}

func (b *AuthBootstrap) setPhase(p Phase) {
	b.mu.Lock()
	b.phase = p
	b.mu.Unlock()
}

func (b *AuthBootstrap) terminal() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase == PhaseReady || b.phase == PhaseReadyAnonymous || b.phase == PhaseRedirecting
}
