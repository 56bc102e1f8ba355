// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// GraphQL Metrics
	GraphQLResolverTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphql_resolver_calls_total",
			Help: "Total number of top-level GraphQL field resolutions",
		},
		[]string{"field", "outcome"}, // outcome: "ok", "null", "error"
	)

	GraphQLResolverDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphql_resolver_duration_seconds",
			Help:    "Top-level GraphQL field resolution time in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"field"},
	)

	GraphQLRequestErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "graphql_response_errors_total",
			Help: "Total number of errors returned in GraphQL responses",
		},
	)

	// TMDB Upstream Metrics
	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of requests to the TMDB API",
		},
		[]string{"operation", "status_code"},
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDB API request latency in seconds",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	TMDBRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_request_errors_total",
			Help: "Total number of failed TMDB API requests by failure kind",
		},
		[]string{"operation", "kind"}, // kind: "transport", "status", "decode", "circuit_open"
	)

	// Guest Session Metrics
	GuestSessionCreations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_guest_session_creations_total",
			Help: "Total number of guest session creation attempts",
		},
		[]string{"result"}, // result: "success", "failure"
	)

	GuestSessionActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tmdb_guest_session_active",
			Help: "1 when a guest session id is held by the process",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Supervisor Metrics
	SupervisorEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supervisor_events_total",
			Help: "Total number of supervisor tree events",
		},
		[]string{"type"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records an inbound rate limit rejection.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordResolver records a top-level GraphQL field resolution.
func RecordResolver(field, outcome string, duration time.Duration) {
	GraphQLResolverTotal.WithLabelValues(field, outcome).Inc()
	GraphQLResolverDuration.WithLabelValues(field).Observe(duration.Seconds())
}

// RecordGraphQLErrors adds n response errors.
func RecordGraphQLErrors(n int) {
	if n > 0 {
		GraphQLRequestErrors.Add(float64(n))
	}
}

// RecordTMDBRequest records a completed TMDB round trip. statusCode is 0
// when no HTTP response was received.
func RecordTMDBRequest(operation string, statusCode int, duration time.Duration) {
	code := "none"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	TMDBRequestsTotal.WithLabelValues(operation, code).Inc()
	TMDBRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTMDBError records a failed TMDB request by failure kind.
func RecordTMDBError(operation, kind string) {
	TMDBRequestErrors.WithLabelValues(operation, kind).Inc()
}

// RecordGuestSessionCreation records a guest session creation attempt.
func RecordGuestSessionCreation(success bool) {
	if success {
		GuestSessionCreations.WithLabelValues("success").Inc()
		GuestSessionActive.Set(1)
		return
	}
	GuestSessionCreations.WithLabelValues("failure").Inc()
}

// RecordSupervisorEvent records a supervisor tree event by type.
func RecordSupervisorEvent(eventType string) {
	SupervisorEvents.WithLabelValues(eventType).Inc()
}
