// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults: built-in values for every optional setting
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Currency CurrencyConfig `koanf:"currency"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	GraphQL  GraphQLConfig  `koanf:"graphql"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// TMDBConfig holds The Movie Database API settings.
//
// Environment Variables:
//   - MOVIE_DB_API_KEY: TMDB v3 API key (required)
//   - TMDB_BASE_URL: API base URL (default: https://api.themoviedb.org/3)
//   - TMDB_LANGUAGE: language sent with every request (default: en-US)
//   - TMDB_TIMEOUT: per-request HTTP timeout (default: 10s)
//   - TMDB_DISCOVER_FROM / TMDB_DISCOVER_TO: release window served by the
//     movies query, YYYY-MM-DD (default: 2019-09-15 .. 2019-11-10)
type TMDBConfig struct {
	APIKey       string        `koanf:"api_key" validate:"required"`
	BaseURL      string        `koanf:"base_url" validate:"required,http_url"`
	Language     string        `koanf:"language" validate:"required"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	DiscoverFrom string        `koanf:"discover_from" validate:"required,datetime=2006-01-02"`
	DiscoverTo   string        `koanf:"discover_to" validate:"required,datetime=2006-01-02"`
}

// CurrencyConfig holds the static conversion table used by Movie.budget.
// TMDB reports budgets in US dollars; each rate is the number of units of
// the keyed currency per 1 USD. USD is always 1 and need not be listed.
//
// Environment Variables:
//   - CURRENCY_RATES: comma-separated CODE:RATE pairs, e.g. "EUR:0.92,GBP:0.79"
type CurrencyConfig struct {
	Rates map[string]float64 `koanf:"rates"`
}

// BreakerConfig holds circuit breaker settings for the TMDB client.
//
// Environment Variables:
//   - TMDB_BREAKER_MAX_REQUESTS: requests allowed while half-open (default: 3)
//   - TMDB_BREAKER_INTERVAL: closed-state counting window (default: 1m)
//   - TMDB_BREAKER_TIMEOUT: open duration before half-open (default: 2m)
//   - TMDB_BREAKER_MIN_REQUESTS: requests needed before tripping (default: 10)
//   - TMDB_BREAKER_FAILURE_RATIO: failure ratio that trips (default: 0.6)
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests  uint32        `koanf:"min_requests" validate:"gte=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// GraphQLConfig holds GraphQL execution and request limits.
//
// Environment Variables:
//   - GRAPHQL_MAX_DEPTH: maximum selection depth (default: 10)
//   - GRAPHQL_MAX_PARALLELISM: concurrent field resolvers per request (default: 10)
//   - GRAPHQL_MAX_QUERY_LENGTH: maximum query document size in bytes (default: 10000)
//   - GRAPHQL_MAX_BODY_BYTES: maximum request body size (default: 1MB)
type GraphQLConfig struct {
	MaxDepth       int   `koanf:"max_depth" validate:"gte=1,lte=100"`
	MaxParallelism int   `koanf:"max_parallelism" validate:"gte=1,lte=1000"`
	MaxQueryLength int   `koanf:"max_query_length" validate:"gte=1"`
	MaxBodyBytes   int64 `koanf:"max_body_bytes" validate:"gte=1"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds inbound request protection settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration using the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or CONFIG_PATH)
//  3. Built-in defaults
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// String renders a one-line summary safe for logs (no credentials).
func (c *Config) String() string {
	return fmt.Sprintf("tmdb=%s lang=%s window=%s..%s addr=%s env=%s",
		c.TMDB.BaseURL, c.TMDB.Language, c.TMDB.DiscoverFrom, c.TMDB.DiscoverTo,
		c.Server.Addr(), c.Server.Environment)
}
