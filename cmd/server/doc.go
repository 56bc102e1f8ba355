// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package main is the entry point for the Cinegraph server.

Cinegraph exposes a small GraphQL API over The Movie Database (TMDB): movie
lookup by TMDB or IMDb id, a discover listing for a fixed release window,
and rating movies under a process-wide guest session.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output
 3. TMDB client wrapped in a gobreaker circuit breaker
 4. Guest session manager (created lazily on the first rating operation)
 5. GraphQL schema and chi router
 6. Supervisor tree with the HTTP server service

# Endpoints

	POST /graphql                GraphQL queries and mutations
	GET  /api/v1/health/live     liveness
	GET  /api/v1/health/ready    readiness (pings TMDB unless the circuit is open)
	GET  /metrics                Prometheus metrics

# Example Usage

	export MOVIE_DB_API_KEY=your-tmdb-key
	export CURRENCY_RATES="EUR:0.92,GBP:0.79"
	./cinegraph

	curl -s localhost:8080/graphql \
	  -H 'Content-Type: application/json' \
	  -d '{"query":"{ movie(imdb_id: \"tt0137523\") { id title budget(currency: GBP) } }"}'

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests for up to
HTTP_SHUTDOWN_TIMEOUT.
*/
package main
