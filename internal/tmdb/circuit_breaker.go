// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

// BreakerName labels the TMDB breaker in logs and metrics.
const BreakerName = "tmdb-api"

// CircuitBreakerClient wraps a ClientInterface with a circuit breaker so a
// failing TMDB is not hammered by every incoming query. It never retries;
// a rejected call fails immediately with an UpstreamError wrapping
// ErrCircuitOpen.
//
// The breaker uses real time (via sony/gobreaker) for its interval and
// timeout. Tests drive state through execute rather than waiting.
type CircuitBreakerClient struct {
	client ClientInterface
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
	logger zerolog.Logger
}

var _ ClientInterface = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps client. The circuit opens once at least
// cfg.MinRequests calls were seen in the current interval and the failure
// ratio reaches cfg.FailureRatio.
func NewCircuitBreakerClient(client ClientInterface, cfg *config.BreakerConfig) *CircuitBreakerClient {
	name := BreakerName
	logger := logging.WithComponent("tmdb").With().Str("breaker", name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}

			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: isBreakerSuccess,
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: name, logger: logger}
}

// isBreakerSuccess decides which errors count against the breaker. Caller
// mistakes (404, 400, 422) and caller cancellation say nothing about TMDB
// health; transport failures, 401, 429 and 5xx do.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}

	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.StatusCode == 0 {
		return false
	}
	switch ue.StatusCode {
	case http.StatusUnauthorized, http.StatusTooManyRequests:
		return false
	}
	return ue.StatusCode >= 400 && ue.StatusCode < 500
}

// execute wraps a TMDB call with circuit breaker protection.
func (cbc *CircuitBreakerClient) execute(op string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			metrics.RecordTMDBError(op, "circuit_open")
			cbc.logger.Warn().Err(err).Str("op", op).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &UpstreamError{Op: op, Err: fmt.Errorf("%w: %w", ErrCircuitOpen, err)}
		}

		if isBreakerSuccess(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		}
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, AsUpstreamError(op, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// castResult type-asserts the breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// IsOpen reports whether calls are currently being rejected outright.
func (cbc *CircuitBreakerClient) IsOpen() bool {
	return cbc.cb.State() == gobreaker.StateOpen
}

// StateString returns the breaker state as closed, half-open or open.
func (cbc *CircuitBreakerClient) StateString() string {
	return stateToString(cbc.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Ping verifies connectivity with circuit breaker protection.
func (cbc *CircuitBreakerClient) Ping(ctx context.Context) error {
	_, err := cbc.execute(OpPing, func() (interface{}, error) {
		return nil, cbc.client.Ping(ctx)
	})
	return err
}

// GetMovie fetches a movie with circuit breaker protection.
func (cbc *CircuitBreakerClient) GetMovie(ctx context.Context, id string) (*Movie, error) {
	return castResult[*Movie](cbc.execute(OpGetMovie, func() (interface{}, error) {
		return cbc.client.GetMovie(ctx, id)
	}))
}

// FindByIMDbID resolves an IMDb id with circuit breaker protection.
func (cbc *CircuitBreakerClient) FindByIMDbID(ctx context.Context, imdbID string) (*FindResult, error) {
	return castResult[*FindResult](cbc.execute(OpFindByIMDbID, func() (interface{}, error) {
		return cbc.client.FindByIMDbID(ctx, imdbID)
	}))
}

// DiscoverMovies lists movies in a release window with circuit breaker protection.
func (cbc *CircuitBreakerClient) DiscoverMovies(ctx context.Context, window ReleaseWindow) ([]Movie, error) {
	return castResult[[]Movie](cbc.execute(OpDiscoverMovies, func() (interface{}, error) {
		return cbc.client.DiscoverMovies(ctx, window)
	}))
}

// CreateGuestSession creates a guest session with circuit breaker protection.
func (cbc *CircuitBreakerClient) CreateGuestSession(ctx context.Context) (*GuestSession, error) {
	return castResult[*GuestSession](cbc.execute(OpCreateGuestSession, func() (interface{}, error) {
		return cbc.client.CreateGuestSession(ctx)
	}))
}

// GetGuestRatedMovies lists rated movies with circuit breaker protection.
func (cbc *CircuitBreakerClient) GetGuestRatedMovies(ctx context.Context, sessionID string) ([]Movie, error) {
	return castResult[[]Movie](cbc.execute(OpGetGuestRatedMovies, func() (interface{}, error) {
		return cbc.client.GetGuestRatedMovies(ctx, sessionID)
	}))
}

// RateMovie submits a rating with circuit breaker protection.
func (cbc *CircuitBreakerClient) RateMovie(ctx context.Context, movieID, sessionID string, value int) error {
	_, err := cbc.execute(OpRateMovie, func() (interface{}, error) {
		return nil, cbc.client.RateMovie(ctx, movieID, sessionID, value)
	})
	return err
}
