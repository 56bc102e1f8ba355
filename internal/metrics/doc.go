// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package metrics provides Prometheus metrics for Cinegraph.

All collectors are registered on the default registry through promauto and
exposed by the HTTP layer at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

GraphQL:
  - graphql_resolver_calls_total{field, outcome}
  - graphql_resolver_duration_seconds{field}
  - graphql_response_errors_total

TMDB upstream:
  - tmdb_requests_total{operation, status_code}
  - tmdb_request_duration_seconds{operation}
  - tmdb_request_errors_total{operation, kind}
  - tmdb_guest_session_creations_total{result}
  - tmdb_guest_session_active

Circuit breaker:
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Supervisor:
  - supervisor_events_total{type}
*/
package metrics
