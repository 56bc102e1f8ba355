// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/cinegraph/internal/api"
	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/session"
	"github.com/tomtom215/cinegraph/internal/tmdb"
)

// app holds the wired components shared by the HTTP handlers.
type app struct {
	upstream *tmdb.CircuitBreakerClient
	sessions *session.Manager
	router   http.Handler
}

// newApp wires TMDB client, circuit breaker, guest session, GraphQL schema
// and router. Nothing here performs network I/O.
func newApp(cfg *config.Config) (*app, error) {
	client := tmdb.NewClient(&cfg.TMDB)
	upstream := tmdb.NewCircuitBreakerClient(client, &cfg.Breaker)

	// Session creation goes through the breaker like every other TMDB call.
	sessions := session.NewManager(upstream)

	converter := graph.NewCurrencyConverter(cfg.Currency.Rates)
	window := tmdb.ReleaseWindow{From: cfg.TMDB.DiscoverFrom, To: cfg.TMDB.DiscoverTo}
	resolver := graph.NewResolver(upstream, sessions, converter, window)

	schema, err := graph.NewSchema(resolver, &cfg.GraphQL)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	handler := api.NewHandler(schema, upstream, sessions, cfg)
	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security))

	return &app{
		upstream: upstream,
		sessions: sessions,
		router:   api.NewRouter(handler, mw).SetupChi(),
	}, nil
}
