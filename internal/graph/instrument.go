// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

// Resolver outcomes recorded in metrics.
const (
	OutcomeSuccess = "success"
	OutcomeNull    = "null"
	OutcomeError   = "error"
)

// observe records one top-level field resolution.
func observe(ctx context.Context, field string, start time.Time, null bool, err error) {
	duration := time.Since(start)

	outcome := OutcomeSuccess
	switch {
	case err != nil:
		outcome = OutcomeError
	case null:
		outcome = OutcomeNull
	}
	metrics.RecordResolver(field, outcome, duration)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("field", field).
			Dur("duration", duration).
			Msg("GraphQL resolver failed")
		return
	}
	logging.Ctx(ctx).Debug().
		Str("field", field).
		Str("outcome", outcome).
		Dur("duration", duration).
		Msg("GraphQL resolver completed")
}

// panicLogger reports resolver panics through zerolog. graphql-go recovers the
// panic and returns a generic error to the client.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logging.Ctx(ctx).Error().
		Interface("panic", value).
		Bytes("stack", debug.Stack()).
		Msg("GraphQL resolver panic")
}
