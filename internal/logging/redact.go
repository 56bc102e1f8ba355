// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package logging

import (
	"net/url"
	"strings"
)

// sensitiveParams are query parameters masked by SanitizeURL.
var sensitiveParams = map[string]bool{
	"api_key":          true,
	"apikey":           true,
	"guest_session_id": true,
	"session_id":       true,
	"token":            true,
}

// SanitizeToken masks a token, showing only the first and last 4 characters.
// Example: "0123456789abcdef" -> "0123...cdef"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeSessionID masks a guest session ID.
func SanitizeSessionID(sessionID string) string {
	return SanitizeToken(sessionID)
}

// SanitizeURL masks credential-bearing query parameters and path segments
// following "guest_session". Unparseable input is replaced entirely.
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}

	if u.RawQuery != "" {
		q := u.Query()
		for key, values := range q {
			if !sensitiveParams[strings.ToLower(key)] {
				continue
			}
			for i := range values {
				values[i] = SanitizeToken(values[i])
			}
			q[key] = values
		}
		u.RawQuery = q.Encode()
	}

	segments := strings.Split(u.Path, "/")
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == "guest_session" && segments[i+1] != "" {
			segments[i+1] = SanitizeSessionID(segments[i+1])
		}
	}
	u.Path = strings.Join(segments, "/")
	u.RawPath = ""

	return u.String()
}

// Truncate shortens s to maxLen bytes, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
