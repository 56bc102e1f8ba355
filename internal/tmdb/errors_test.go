// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamError_Extensions(t *testing.T) {
	tests := []struct {
		name string
		err  *UpstreamError
		want map[string]interface{}
	}{
		{
			name: "status with tmdb code",
			err:  &UpstreamError{Op: OpGetMovie, StatusCode: 401, TMDBCode: 7, StatusMessage: "Invalid API key"},
			want: map[string]interface{}{"code": ErrorCode, "operation": OpGetMovie, "http_status": 401, "tmdb_status_code": 7},
		},
		{
			name: "transport failure",
			err:  &UpstreamError{Op: OpDiscoverMovies, Err: errors.New("connection refused")},
			want: map[string]interface{}{"code": ErrorCode, "operation": OpDiscoverMovies},
		},
		{
			name: "circuit open",
			err:  &UpstreamError{Op: OpRateMovie, Err: fmt.Errorf("%w: %w", ErrCircuitOpen, errors.New("circuit breaker is open"))},
			want: map[string]interface{}{"code": ErrorCode, "operation": OpRateMovie, "circuit_open": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Extensions()
			if len(got) != len(tt.want) {
				t.Fatalf("Extensions() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Extensions()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestUpstreamError_Error(t *testing.T) {
	tests := []struct {
		err  *UpstreamError
		want string
	}{
		{&UpstreamError{Op: "get_movie", StatusCode: 404, StatusMessage: "not found"}, "tmdb get_movie: status 404: not found"},
		{&UpstreamError{Op: "get_movie", StatusCode: 500}, "tmdb get_movie: status 500"},
		{&UpstreamError{Op: "ping", Err: errors.New("dial tcp: refused")}, "tmdb ping: dial tcp: refused"},
		{&UpstreamError{Op: "ping"}, "tmdb ping: request failed"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("wrapped: %w", &UpstreamError{Op: OpGetMovie, StatusCode: 404})) {
		t.Error("wrapped 404 should be not found")
	}
	if IsNotFound(&UpstreamError{Op: OpGetMovie, StatusCode: 500}) {
		t.Error("500 should not be not found")
	}
	if IsNotFound(errors.New("404")) {
		t.Error("plain error should not be not found")
	}
	if IsNotFound(nil) {
		t.Error("nil should not be not found")
	}
}

func TestAsUpstreamError(t *testing.T) {
	if AsUpstreamError(OpPing, nil) != nil {
		t.Error("nil error should stay nil")
	}

	orig := &UpstreamError{Op: OpGetMovie, StatusCode: 502}
	if got := AsUpstreamError(OpPing, fmt.Errorf("ctx: %w", orig)); got != orig {
		t.Errorf("got %v, want the wrapped UpstreamError", got)
	}

	plain := errors.New("boom")
	got := AsUpstreamError(OpPing, plain)
	if got.Op != OpPing || !errors.Is(got, plain) {
		t.Errorf("got %+v, want Op=ping wrapping the original error", got)
	}
}
