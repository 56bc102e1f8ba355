// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import "errors"

// Request errors returned by decodeGraphQLRequest.
var (
	// ErrEmptyBody indicates a POST without a body
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge indicates the body exceeded graphql.max_body_bytes
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrMalformedJSON indicates the body is not a JSON GraphQL request
	ErrMalformedJSON = errors.New("request body is not valid JSON")
)
