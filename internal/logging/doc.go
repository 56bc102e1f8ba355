// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package logging provides zerolog-based structured logging for Cinegraph.
//
// A single global logger is configured once at startup and then reached
// through package-level helpers. Request-scoped logging picks up the
// request and correlation ids stored in the context by the HTTP layer.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Resolver failed")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Redaction
//
// The TMDB API key travels as a query parameter and guest session ids are
// bearer-like credentials for the rating endpoints. Never log either raw:
//
//	logging.Debug().Str("url", logging.SanitizeURL(u)).Msg("TMDB request")
//	logging.Info().Str("session", logging.SanitizeSessionID(id)).Msg("Guest session created")
//
// # Suture Integration
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog so the
// supervisor tree (sutureslog) shares the same output and level.
package logging
