// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinegraph/internal/logging"
)

// readyPingTimeout bounds the TMDB ping made by the readiness probe.
const readyPingTimeout = 5 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of TMDB.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 while the TMDB circuit is open or TMDB cannot be reached.
// An open circuit short-circuits the check without calling TMDB.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	circuit := "unknown"
	reachable := false

	if h.upstream != nil {
		circuit = h.upstream.StateString()
		if !h.upstream.IsOpen() {
			ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
			err := h.upstream.Ping(ctx)
			cancel()
			if err != nil {
				logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness: TMDB ping failed")
			}
			reachable = err == nil
			circuit = h.upstream.StateString()
		}
	}

	sessionActive := h.sessions != nil && h.sessions.Current() != ""

	statusCode := http.StatusOK
	if !reachable {
		statusCode = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).Status(statusCode, reachable, map[string]interface{}{
		"ready_to_serve":       reachable,
		"tmdb_reachable":       reachable,
		"circuit_state":        circuit,
		"guest_session_active": sessionActive,
		"uptime":               time.Since(h.startTime).Seconds(),
	})
}
