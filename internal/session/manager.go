// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package session

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/tmdb"
)

// Creator creates guest sessions. Satisfied by tmdb.ClientInterface.
type Creator interface {
	CreateGuestSession(ctx context.Context) (*tmdb.GuestSession, error)
}

const flightKey = "guest_session"

// Manager holds the process-wide TMDB guest session id. The id is created on
// first use and then reused for the life of the process. Concurrent first
// callers share a single creation request; a failed creation stores nothing,
// so the next caller tries again.
type Manager struct {
	creator Creator

	mu sync.RWMutex
	id string

	group singleflight.Group
}

// NewManager creates a manager with no session.
func NewManager(creator Creator) *Manager {
	return &Manager{creator: creator}
}

// SessionID returns the memoized guest session id, creating it if needed.
//
// The creation request runs detached from ctx so a caller that gives up does
// not fail the request other callers are waiting on. The caller itself still
// returns as soon as ctx is done.
func (m *Manager) SessionID(ctx context.Context) (string, error) {
	if id := m.Current(); id != "" {
		return id, nil
	}

	ch := m.group.DoChan(flightKey, func() (interface{}, error) {
		// A flight that finished just before this one started may have stored an id.
		if id := m.Current(); id != "" {
			return id, nil
		}
		return m.create(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		id, _ := res.Val.(string)
		return id, nil
	}
}

// create performs one guest session request and stores the id on success.
func (m *Manager) create(ctx context.Context) (string, error) {
	logger := logging.CtxWith(ctx).Str("component", "session").Logger()

	gs, err := m.creator.CreateGuestSession(ctx)
	if err != nil {
		metrics.RecordGuestSessionCreation(false)
		logger.Warn().Err(err).Msg("Guest session creation failed")
		return "", err
	}

	m.mu.Lock()
	m.id = gs.GuestSessionID
	m.mu.Unlock()

	metrics.RecordGuestSessionCreation(true)
	logger.Info().
		Str("guest_session_id", logging.SanitizeSessionID(gs.GuestSessionID)).
		Str("expires_at", gs.ExpiresAt).
		Msg("Guest session created")
	return gs.GuestSessionID, nil
}

// Current returns the stored id without creating one. Empty means none yet.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.id
}
