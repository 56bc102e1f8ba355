// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

// GraphQL executes a GraphQL document.
//
// Transport problems (oversized, empty or malformed body, missing query) are
// answered with the REST error envelope and a 4xx status. Once the document
// is executed the response is always 200 with the standard GraphQL
// {"data", "errors"} body, including for upstream failures.
func (h *Handler) GraphQL(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := decodeGraphQLRequest(w, r, h.config.GraphQL.MaxBodyBytes)
	if err != nil {
		switch {
		case errors.Is(err, ErrBodyTooLarge):
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, err.Error())
		default:
			rw.BadRequest(err.Error())
		}
		return
	}

	if verr := validateGraphQLRequest(req, h.config.GraphQL.MaxQueryLength); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	resp := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	metrics.RecordGraphQLErrors(len(resp.Errors))
	if len(resp.Errors) > 0 {
		logging.Ctx(r.Context()).Debug().
			Int("errors", len(resp.Errors)).
			Str("operation", req.OperationName).
			Msg("GraphQL response has errors")
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode GraphQL response")
		rw.Error(http.StatusInternalServerError, ErrCodeInternalError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write GraphQL response")
	}
}
