// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package tmdb is the HTTP client for The Movie Database (TMDB) v3 REST API.

Every request carries the configured api_key and language as query
parameters. A call performs exactly one HTTP request and never retries.

# Operations

	Ping                 GET  /configuration
	GetMovie             GET  /movie/{id}
	FindByIMDbID         GET  /find/{imdb_id}?external_source=imdb_id
	DiscoverMovies       GET  /discover/movie?primary_release_date.gte&.lte
	CreateGuestSession   GET  /authentication/guest_session/new
	GetGuestRatedMovies  GET  /guest_session/{id}/rated/movies
	RateMovie            POST /movie/{id}/rating?guest_session_id={id}

# Errors

All failures are returned as *UpstreamError: transport errors (StatusCode 0),
non-2xx responses (with TMDB's status_code and status_message when the body
has them), undecodable 2xx bodies (wrapping ErrMalformedResponse) and circuit
breaker rejections (wrapping ErrCircuitOpen). UpstreamError implements the
Extensions method read by graphql-go, so it can be returned from a resolver
unchanged.

# Circuit Breaker

CircuitBreakerClient wraps any ClientInterface with sony/gobreaker:

	client := tmdb.NewCircuitBreakerClient(tmdb.NewClient(&cfg.TMDB), &cfg.Breaker)

Only upstream health counts as failure: transport errors, 5xx, 401 and 429.
A 404 for an unknown movie or a canceled caller context does not move the
breaker.
*/
package tmdb
