// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge by chi route pattern
  - Compression: gzip for clients that accept it

All three use the func(http.Handler) http.Handler shape and plug into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Group(func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Compression)
	    r.Post("/graphql", handler.GraphQL)
	})

See Also:

  - internal/api: router and handlers wrapped by this middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
