// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"math"
	"strings"
)

// BaseCurrency is the currency TMDB reports budgets in.
const BaseCurrency = "USD"

// CurrencyConverter converts USD budgets using a static rate table.
// Rates are units of the target currency per 1 USD.
type CurrencyConverter struct {
	rates map[string]float64
}

// NewCurrencyConverter copies rates. USD is always present with rate 1.
func NewCurrencyConverter(rates map[string]float64) *CurrencyConverter {
	c := &CurrencyConverter{rates: make(map[string]float64, len(rates)+1)}
	for code, rate := range rates {
		c.rates[strings.ToUpper(code)] = rate
	}
	c.rates[BaseCurrency] = 1
	return c
}

// Convert returns amount (USD) in currency, rounded to the nearest unit.
// A zero budget passes through as 0. ok is false when the amount is
// negative, the currency has no rate, or the result does not fit a GraphQL Int.
func (c *CurrencyConverter) Convert(amount int64, currency string) (converted int32, ok bool) {
	if amount < 0 {
		return 0, false
	}
	rate, found := c.rates[strings.ToUpper(currency)]
	if !found || rate <= 0 {
		return 0, false
	}

	v := math.Round(float64(amount) * rate)
	if v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// Supports reports whether currency has a rate.
func (c *CurrencyConverter) Supports(currency string) bool {
	_, ok := c.rates[strings.ToUpper(currency)]
	return ok
}
