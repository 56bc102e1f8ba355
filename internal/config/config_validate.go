// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/cinegraph/internal/validation"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateDiscoverWindow(); err != nil {
		return err
	}

	if err := c.validateCurrency(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDiscoverWindow checks that the release window is not inverted.
// Layouts were already checked by the struct tags.
func (c *Config) validateDiscoverWindow() error {
	from, err := time.Parse(time.DateOnly, c.TMDB.DiscoverFrom)
	if err != nil {
		return fmt.Errorf("TMDB_DISCOVER_FROM is invalid: %w", err)
	}
	to, err := time.Parse(time.DateOnly, c.TMDB.DiscoverTo)
	if err != nil {
		return fmt.Errorf("TMDB_DISCOVER_TO is invalid: %w", err)
	}
	if to.Before(from) {
		return fmt.Errorf("TMDB_DISCOVER_TO (%s) must not be before TMDB_DISCOVER_FROM (%s)",
			c.TMDB.DiscoverTo, c.TMDB.DiscoverFrom)
	}
	return nil
}

// validateCurrency checks every configured rate.
func (c *Config) validateCurrency() error {
	codes := make([]string, 0, len(c.Currency.Rates))
	for code := range c.Currency.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		if verr := validation.ValidateVar("currency code", code, "currency_code"); verr != nil {
			return fmt.Errorf("CURRENCY_RATES entry %q: %w", code, verr)
		}
		if rate := c.Currency.Rates[code]; rate <= 0 {
			return fmt.Errorf("CURRENCY_RATES entry %s must be positive, got %v", code, rate)
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates inbound protection settings
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
