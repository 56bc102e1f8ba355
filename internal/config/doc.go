// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package config provides layered configuration loading for Cinegraph.

# Configuration Sources

Values are merged with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/cinegraph/config.yaml
 3. Environment variables, via an explicit name mapping

Only mapped environment variables are read; anything else in the process
environment is ignored.

# Environment Variables

TMDB:
  - MOVIE_DB_API_KEY (required; TMDB_API_KEY also accepted)
  - TMDB_BASE_URL, TMDB_LANGUAGE, TMDB_TIMEOUT
  - TMDB_DISCOVER_FROM, TMDB_DISCOVER_TO

Currency:
  - CURRENCY_RATES: "EUR:0.92,GBP:0.79" (units per 1 USD)

Circuit breaker:
  - TMDB_BREAKER_MAX_REQUESTS, TMDB_BREAKER_INTERVAL, TMDB_BREAKER_TIMEOUT
  - TMDB_BREAKER_MIN_REQUESTS, TMDB_BREAKER_FAILURE_RATIO

GraphQL:
  - GRAPHQL_MAX_DEPTH, GRAPHQL_MAX_PARALLELISM
  - GRAPHQL_MAX_QUERY_LENGTH, GRAPHQL_MAX_BODY_BYTES

HTTP server:
  - HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT
  - HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT, ENVIRONMENT

Security:
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW
  - DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	tmdb:
	  api_key: "your-key"
	  discover_from: "2019-09-15"
	  discover_to: "2019-11-10"
	currency:
	  rates:
	    EUR: 0.92
	    GBP: 0.79
	server:
	  port: 8080

# Validation

Load validates struct tags through the validation package, then applies
cross-field checks (release window order, currency codes and rates, rate
limit bounds, log level and format).
*/
package config
