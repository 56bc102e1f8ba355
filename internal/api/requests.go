// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/validation"
)

// GraphQLRequest is the body of POST /graphql.
type GraphQLRequest struct {
	Query         string                 `json:"query" validate:"required"`
	OperationName string                 `json:"operationName" validate:"omitempty,max=256"`
	Variables     map[string]interface{} `json:"variables"`
}

// decodeGraphQLRequest reads at most maxBytes of the body and decodes it.
func decodeGraphQLRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*GraphQLRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, mbe.Limit)
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	var req GraphQLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return &req, nil
}

// validateGraphQLRequest applies the struct tags and the configured query length limit.
func validateGraphQLRequest(req *GraphQLRequest, maxQueryLength int) *validation.RequestValidationError {
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	if maxQueryLength > 0 {
		return validation.ValidateVar("query", req.Query, fmt.Sprintf("max=%d", maxQueryLength))
	}
	return nil
}
