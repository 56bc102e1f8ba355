// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package supervisor runs Cinegraph's long-running services under suture v4.

# Overview

	RootSupervisor ("cinegraph")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService ("http-server")

A service that returns an error is restarted. Repeated failures push the
supervisor into backoff according to TreeConfig:

	config := supervisor.TreeConfig{
	    FailureThreshold: 5.0,              // Failures before backoff
	    FailureDecay:     30.0,             // Seconds for failures to decay
	    FailureBackoff:   15 * time.Second, // Backoff duration
	    ShutdownTimeout:  10 * time.Second, // Per-service shutdown timeout
	}

Zero fields take the values from DefaultTreeConfig.

# Events

Supervisor events (service terminate, panic, backoff, resume, stop timeout)
are logged through sutureslog and counted in supervisor_events_total by type.
Pass logging.NewSlogLogger() so they end up in the zerolog stream.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	<-errCh

After shutdown, UnstoppedServiceReport lists services that ignored
cancellation.

# What Is NOT Supervised

The TMDB client, its circuit breaker and the guest session manager are plain
values shared by the HTTP handlers. They hold no goroutines of their own.
*/
package supervisor
