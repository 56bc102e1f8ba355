// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package services provides suture.Service wrappers for Cinegraph components.

HTTPServerService adapts the blocking ListenAndServe of *http.Server to
suture's context-aware Serve:

	server := services.NewServer(cfg.Server, router)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

Return values follow suture's conventions:
  - ctx.Err() after a graceful shutdown
  - a wrapped error when the listener fails, so the supervisor restarts it
  - a wrapped error when Shutdown exceeds its timeout
*/
package services
