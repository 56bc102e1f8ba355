// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the GraphQL extensions code attached to every upstream failure.
const ErrorCode = "UPSTREAM_ERROR"

// ErrCircuitOpen is wrapped by UpstreamError when the circuit breaker rejects a call.
var ErrCircuitOpen = errors.New("tmdb circuit breaker open")

// ErrMalformedResponse is wrapped by UpstreamError when a 2xx body cannot be used.
var ErrMalformedResponse = errors.New("malformed tmdb response")

// UpstreamError is the single error kind returned by this package. It covers
// transport failures, non-2xx statuses, undecodable bodies and breaker rejections.
type UpstreamError struct {
	// Op names the client operation, e.g. "get_movie".
	Op string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// TMDBCode and StatusMessage come from TMDB's error body when present.
	TMDBCode      int
	StatusMessage string

	Err error
}

// Error implements error.
func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.StatusMessage != "":
		return fmt.Sprintf("tmdb %s: status %d: %s", e.Op, e.StatusCode, e.StatusMessage)
	case e.StatusCode != 0 && e.Err == nil:
		return fmt.Sprintf("tmdb %s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("tmdb %s: request failed", e.Op)
	}
}

// Unwrap returns the underlying cause.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Extensions is read by graphql-go and merged into the response error's
// "extensions" object.
func (e *UpstreamError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":      ErrorCode,
		"operation": e.Op,
	}
	if e.StatusCode != 0 {
		ext["http_status"] = e.StatusCode
	}
	if e.TMDBCode != 0 {
		ext["tmdb_status_code"] = e.TMDBCode
	}
	if errors.Is(e.Err, ErrCircuitOpen) {
		ext["circuit_open"] = true
	}
	return ext
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}

// AsUpstreamError returns err as *UpstreamError, wrapping foreign errors under op.
// graphql-go only reads Extensions from the concrete error a resolver returns,
// so resolvers pass their errors through this before returning them.
func AsUpstreamError(op string, err error) *UpstreamError {
	if err == nil {
		return nil
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue
	}
	return &UpstreamError{Op: op, Err: err}
}
