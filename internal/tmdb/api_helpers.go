// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"io"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// maxErrorBodySize caps how much of a failed response is read for diagnostics.
const maxErrorBodySize = 64 * 1024

// apiRequest holds the path and query parameters for a TMDB request.
type apiRequest struct {
	path   string
	params map[string]string
}

// newAPIRequest creates a request for path. Each segment is escaped.
//
//	newAPIRequest("movie", id, "rating")  ->  /movie/{id}/rating
func newAPIRequest(segments ...string) *apiRequest {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return &apiRequest{
		path:   "/" + strings.Join(escaped, "/"),
		params: make(map[string]string),
	}
}

// addParam adds a parameter to the request (skipped when empty).
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params[key] = value
	}
	return r
}

// buildURL constructs the full URL. api_key and language are always sent;
// request parameters cannot override them.
func (r *apiRequest) buildURL(baseURL, apiKey, language string) string {
	params := url.Values{}
	for key, value := range r.params {
		params.Set(key, value)
	}
	params.Set("api_key", apiKey)
	if language != "" {
		params.Set("language", language)
	}

	return baseURL + r.path + "?" + params.Encode()
}

// readBodyForError reads at most maxErrorBodySize bytes of a failed response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// newStatusError builds an UpstreamError for a non-2xx response, lifting
// TMDB's status_code and status_message out of the body when it parses.
func newStatusError(op string, statusCode int, body []byte) *UpstreamError {
	ue := &UpstreamError{Op: op, StatusCode: statusCode}

	var status StatusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		ue.TMDBCode = status.StatusCode
		ue.StatusMessage = status.StatusMessage
		return ue
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		if len(msg) > 200 {
			msg = msg[:200] + "..."
		}
		ue.StatusMessage = msg
	}
	return ue
}
