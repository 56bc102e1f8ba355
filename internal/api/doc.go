// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package api provides the HTTP layer for Cinegraph.

Routes:

	POST /graphql              GraphQL queries and mutations
	GET  /api/v1/health/live   liveness, always 200 while the process runs
	GET  /api/v1/health/ready  readiness, 503 while TMDB is unreachable or the circuit is open
	GET  /metrics              Prometheus exposition

Middleware Stack:

Global: request id with logging context, real IP, panic recovery and CORS.
The /graphql group adds per-IP rate limiting (go-chi/httprate), security
headers, Prometheus instrumentation and gzip. Rate limiting protects this
service from its clients; calls to TMDB are never throttled or retried.

GraphQL Requests:

The body is read through http.MaxBytesReader (graphql.max_body_bytes) and
decoded with goccy/go-json:

	{"query": "...", "operationName": "...", "variables": {...}}

An oversized body is 413, an empty or malformed body is 400 and a missing or
too-long query is a 400 VALIDATION_ERROR, all in the APIResponse envelope.
Executed documents always return 200 with the GraphQL response body.

See Also:

  - internal/graph: schema and resolvers
  - internal/middleware: request id, metrics and compression middleware
*/
package api
