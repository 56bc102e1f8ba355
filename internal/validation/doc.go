// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. It is used for two
// things: checking the loaded configuration at startup and checking the
// envelope of incoming GraphQL HTTP requests before they reach the executor.
//
// # Quick Start
//
//	type graphQLRequest struct {
//	    Query string `json:"query" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	    return
//	}
//
// # Field Names
//
// Errors name fields by their koanf tag, then json tag, then Go name, so a
// missing API key reports "api_key is required" rather than "APIKey".
//
// # Custom Validators
//
//   - currency_code: three upper-case letters (e.g. EUR, GBP, USD)
package validation
