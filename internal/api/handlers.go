// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"context"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tomtom215/cinegraph/internal/config"
)

// UpstreamProbe reports TMDB health for readiness. Satisfied by
// *tmdb.CircuitBreakerClient.
type UpstreamProbe interface {
	Ping(ctx context.Context) error
	IsOpen() bool
	StateString() string
}

// SessionStatus reports whether a guest session is held. Satisfied by
// *session.Manager.
type SessionStatus interface {
	Current() string
}

// Handler serves the GraphQL endpoint and the health probes.
type Handler struct {
	schema    *graphql.Schema
	upstream  UpstreamProbe
	sessions  SessionStatus
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
// sessions may be nil.
func NewHandler(schema *graphql.Schema, upstream UpstreamProbe, sessions SessionStatus, cfg *config.Config) *Handler {
	return &Handler{
		schema:    schema,
		upstream:  upstream,
		sessions:  sessions,
		config:    cfg,
		startTime: time.Now(),
	}
}
