// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

// Operation names used for logging, metrics and UpstreamError.Op.
const (
	OpPing                = "ping"
	OpGetMovie            = "get_movie"
	OpFindByIMDbID        = "find_by_imdb_id"
	OpDiscoverMovies      = "discover_movies"
	OpCreateGuestSession  = "create_guest_session"
	OpGetGuestRatedMovies = "get_guest_rated_movies"
	OpRateMovie           = "rate_movie"
)

// ClientInterface defines the TMDB operations used by the resolvers.
// Implemented by Client and CircuitBreakerClient.
type ClientInterface interface {
	Ping(ctx context.Context) error
	GetMovie(ctx context.Context, id string) (*Movie, error)
	FindByIMDbID(ctx context.Context, imdbID string) (*FindResult, error)
	DiscoverMovies(ctx context.Context, window ReleaseWindow) ([]Movie, error)
	CreateGuestSession(ctx context.Context) (*GuestSession, error)
	GetGuestRatedMovies(ctx context.Context, sessionID string) ([]Movie, error)
	RateMovie(ctx context.Context, movieID, sessionID string, value int) error
}

var _ ClientInterface = (*Client)(nil)

// Client talks to the TMDB v3 REST API. It performs exactly one HTTP
// request per call and never retries.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		client:   &http.Client{Timeout: timeout},
	}
}

// get issues GET <base><path>?api_key&language&params and decodes the body
// into out. Every failure is returned as *UpstreamError.
func (c *Client) get(ctx context.Context, op string, req *apiRequest, out interface{}) error {
	return c.do(ctx, http.MethodGet, op, req, nil, out)
}

// post sends body as JSON and decodes the response into out.
func (c *Client) post(ctx context.Context, op string, req *apiRequest, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, op, req, body, out)
}

// do executes one request. out may be nil when the body is not needed.
func (c *Client) do(ctx context.Context, method, op string, req *apiRequest, body, out interface{}) error {
	reqURL := req.buildURL(c.baseURL, c.apiKey, c.language)
	logger := logging.CtxWith(ctx).Str("component", "tmdb").Str("op", op).Logger()

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &UpstreamError{Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("create request failed: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json;charset=utf-8")
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.RecordTMDBRequest(op, 0, time.Since(start))
		metrics.RecordTMDBError(op, "transport")
		logger.Debug().Err(err).Str("url", logging.SanitizeURL(reqURL)).Msg("TMDB request failed")
		return &UpstreamError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start)
	metrics.RecordTMDBRequest(op, resp.StatusCode, duration)
	logger.Debug().
		Str("method", method).
		Str("url", logging.SanitizeURL(reqURL)).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("TMDB request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordTMDBError(op, "status")
		return newStatusError(op, resp.StatusCode, readBodyForError(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordTMDBError(op, "decode")
		return &UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %w", ErrMalformedResponse, err),
		}
	}
	return nil
}

// Ping verifies connectivity and credentials via /configuration.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, OpPing, newAPIRequest("configuration"), nil)
}

// GetMovie fetches /movie/{id}. A missing movie is an UpstreamError for
// which IsNotFound reports true.
func (c *Client) GetMovie(ctx context.Context, id string) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, OpGetMovie, newAPIRequest("movie", id), &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByIMDbID resolves an IMDb id through /find/{imdb_id}.
func (c *Client) FindByIMDbID(ctx context.Context, imdbID string) (*FindResult, error) {
	req := newAPIRequest("find", imdbID).addParam("external_source", "imdb_id")

	var result FindResult
	if err := c.get(ctx, OpFindByIMDbID, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DiscoverMovies returns the first page of /discover/movie for the release window.
func (c *Client) DiscoverMovies(ctx context.Context, window ReleaseWindow) ([]Movie, error) {
	req := newAPIRequest("discover", "movie").
		addParam("primary_release_date.gte", window.From).
		addParam("primary_release_date.lte", window.To)

	var page MoviePage
	if err := c.get(ctx, OpDiscoverMovies, req, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// CreateGuestSession requests a new guest session id. A response without an
// id is treated as malformed.
func (c *Client) CreateGuestSession(ctx context.Context) (*GuestSession, error) {
	var session GuestSession
	req := newAPIRequest("authentication", "guest_session", "new")
	if err := c.get(ctx, OpCreateGuestSession, req, &session); err != nil {
		return nil, err
	}
	if session.GuestSessionID == "" {
		return nil, &UpstreamError{
			Op:  OpCreateGuestSession,
			Err: fmt.Errorf("%w: missing guest_session_id", ErrMalformedResponse),
		}
	}
	return &session, nil
}

// GetGuestRatedMovies lists the movies rated within a guest session.
func (c *Client) GetGuestRatedMovies(ctx context.Context, sessionID string) ([]Movie, error) {
	var page MoviePage
	req := newAPIRequest("guest_session", sessionID, "rated", "movies")
	if err := c.get(ctx, OpGetGuestRatedMovies, req, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// RateMovie posts {"value": value} to /movie/{id}/rating under the guest
// session. A 2xx body that explicitly reports success=false is a failure.
func (c *Client) RateMovie(ctx context.Context, movieID, sessionID string, value int) error {
	req := newAPIRequest("movie", movieID, "rating").addParam("guest_session_id", sessionID)

	var status StatusResponse
	if err := c.post(ctx, OpRateMovie, req, RatingRequest{Value: value}, &status); err != nil {
		return err
	}
	if status.Success != nil && !*status.Success {
		return &UpstreamError{
			Op:            OpRateMovie,
			TMDBCode:      status.StatusCode,
			StatusMessage: status.StatusMessage,
			Err:           fmt.Errorf("rating rejected for movie %s: %s", movieID, status.StatusMessage),
		}
	}
	return nil
}
