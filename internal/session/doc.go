// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package session memoizes the TMDB guest session used for rating.
//
// TMDB only accepts ratings under a session. Cinegraph creates one guest
// session lazily, the first time a rating operation needs it, and shares it
// across all requests until the process exits. Sessions are never refreshed;
// a restart starts a new one.
package session
