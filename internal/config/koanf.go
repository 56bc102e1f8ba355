// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinegraph/config.yaml",
	"/etc/cinegraph/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIKey:       "",
			BaseURL:      "https://api.themoviedb.org/3",
			Language:     "en-US",
			Timeout:      10 * time.Second,
			DiscoverFrom: "2019-09-15",
			DiscoverTo:   "2019-11-10",
		},
		Currency: CurrencyConfig{
			Rates: map[string]float64{
				"EUR": 0.92,
				"GBP": 0.79,
			},
		},
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		GraphQL: GraphQLConfig{
			MaxDepth:       10,
			MaxParallelism: 10,
			MaxQueryLength: 10000,
			MaxBodyBytes:   1 << 20,
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processRateFields(k); err != nil {
		return nil, fmt.Errorf("failed to process currency rates: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// DefaultConfigPaths entry, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated slices.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		if parts := splitList(strVal); len(parts) > 0 {
			if err := k.Set(path, parts); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// processRateFields converts a "CODE:RATE,CODE:RATE" string for currency.rates
// into a map. YAML maps pass through untouched.
func processRateFields(k *koanf.Koanf) error {
	strVal, ok := k.Get("currency.rates").(string)
	if !ok {
		return nil
	}

	rates, err := ParseRates(strVal)
	if err != nil {
		return err
	}

	values := make(map[string]interface{}, len(rates))
	for code, rate := range rates {
		values[code] = rate
	}
	return k.Set("currency.rates", values)
}

// ParseRates parses "EUR:0.92,GBP:0.79" into a rate table. Codes are
// upper-cased; an empty string yields an empty table.
func ParseRates(s string) (map[string]float64, error) {
	rates := make(map[string]float64)
	for _, pair := range splitList(s) {
		code, raw, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("rate %q must be CODE:RATE", pair)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("rate %q has invalid number: %w", pair, err)
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored so unrelated environment does not leak in.
var envMappings = map[string]string{
	// TMDB
	"movie_db_api_key":   "tmdb.api_key",
	"tmdb_api_key":       "tmdb.api_key",
	"tmdb_base_url":      "tmdb.base_url",
	"tmdb_language":      "tmdb.language",
	"tmdb_timeout":       "tmdb.timeout",
	"tmdb_discover_from": "tmdb.discover_from",
	"tmdb_discover_to":   "tmdb.discover_to",

	// Currency conversion
	"currency_rates": "currency.rates",

	// Circuit breaker
	"tmdb_breaker_max_requests":  "breaker.max_requests",
	"tmdb_breaker_interval":      "breaker.interval",
	"tmdb_breaker_timeout":       "breaker.timeout",
	"tmdb_breaker_min_requests":  "breaker.min_requests",
	"tmdb_breaker_failure_ratio": "breaker.failure_ratio",

	// GraphQL
	"graphql_max_depth":        "graphql.max_depth",
	"graphql_max_parallelism":  "graphql.max_parallelism",
	"graphql_max_query_length": "graphql.max_query_length",
	"graphql_max_body_bytes":   "graphql.max_body_bytes",

	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf paths.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

// normalize canonicalises values that koanf passes through verbatim.
func (c *Config) normalize() {
	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	c.Logging.Level = strings.ToLower(c.Logging.Level)

	if len(c.Currency.Rates) > 0 {
		rates := make(map[string]float64, len(c.Currency.Rates))
		for code, rate := range c.Currency.Rates {
			rates[strings.ToUpper(code)] = rate
		}
		c.Currency.Rates = rates
	}
}
