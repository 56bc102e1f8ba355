// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/config"
)

// fakeTMDB is a minimal in-memory TMDB: one movie, guest sessions and
// ratings kept per session.
type fakeTMDB struct {
	sessions atomic.Int32

	mu      sync.Mutex
	ratings map[string]map[string]float64
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("api_key") != "test-key" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
		return
	}

	path := r.URL.Path
	switch {
	case path == "/configuration":
		_, _ = w.Write([]byte(`{}`))

	case path == "/authentication/guest_session/new":
		f.sessions.Add(1)
		_, _ = w.Write([]byte(`{"success":true,"guest_session_id":"guest-abc","expires_at":"2026-10-20 00:00:00 UTC"}`))

	case path == "/movie/550" && r.Method == http.MethodGet:
		_, _ = w.Write([]byte(`{"id":550,"imdb_id":"tt0137523","title":"Fight Club","release_date":"1999-10-15","budget":63000000,
			"production_companies":[{"id":508,"logo_path":"/7PzJdsLGlR7oW4J0J5Xcd0pHGRg.png","name":"Regency Enterprises","origin_country":"US"}]}`))

	case path == "/movie/550/rating" && r.Method == http.MethodPost:
		var body struct {
			Value float64 `json:"value"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		session := r.URL.Query().Get("guest_session_id")
		f.mu.Lock()
		if f.ratings[session] == nil {
			f.ratings[session] = map[string]float64{}
		}
		f.ratings[session]["550"] = body.Value
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"status_code":1,"status_message":"Success."}`))

	case strings.HasPrefix(path, "/guest_session/") && strings.HasSuffix(path, "/rated/movies"):
		session := strings.TrimSuffix(strings.TrimPrefix(path, "/guest_session/"), "/rated/movies")
		f.mu.Lock()
		rating, ok := f.ratings[session]["550"]
		f.mu.Unlock()
		if !ok {
			_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"page":    1,
			"results": []map[string]interface{}{{"id": 550, "title": "Fight Club", "rating": rating}},
		})

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}
}

func testAppConfig(baseURL string) *config.Config {
	return &config.Config{
		TMDB: config.TMDBConfig{
			APIKey:       "test-key",
			BaseURL:      baseURL,
			Language:     "en-US",
			Timeout:      5 * time.Second,
			DiscoverFrom: "2019-09-15",
			DiscoverTo:   "2019-11-10",
		},
		Currency: config.CurrencyConfig{Rates: map[string]float64{"EUR": 0.5}},
		Breaker: config.BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		GraphQL: config.GraphQLConfig{
			MaxDepth:       10,
			MaxParallelism: 10,
			MaxQueryLength: 10000,
			MaxBodyBytes:   1 << 20,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
	}
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

func execute(t *testing.T, h http.Handler, query string, variables map[string]interface{}) gqlResponse {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"query": query, "variables": variables})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp gqlResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s: %v", rec.Body.String(), err)
	}
	return resp
}

func TestApp_EndToEnd(t *testing.T) {
	fake := &fakeTMDB{ratings: map[string]map[string]float64{}}
	upstream := httptest.NewServer(fake)
	defer upstream.Close()

	a, err := newApp(testAppConfig(upstream.URL))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	t.Run("movie by id with converted budget", func(t *testing.T) {
		resp := execute(t, a.router, `query($id: ID) { movie(id: $id) { id imdb_id title budget(currency: EUR) production_companies { name origin_country } } }`,
			map[string]interface{}{"id": "550"})
		if len(resp.Errors) != 0 {
			t.Fatalf("errors = %+v", resp.Errors)
		}

		var movie struct {
			ID        string `json:"id"`
			ImdbID    string `json:"imdb_id"`
			Title     string `json:"title"`
			Budget    int32  `json:"budget"`
			Companies []struct {
				Name          string `json:"name"`
				OriginCountry string `json:"origin_country"`
			} `json:"production_companies"`
		}
		if err := json.Unmarshal(resp.Data["movie"], &movie); err != nil {
			t.Fatalf("unmarshal movie: %v", err)
		}
		if movie.ID != "550" || movie.ImdbID != "tt0137523" || movie.Title != "Fight Club" {
			t.Errorf("movie = %+v", movie)
		}
		if movie.Budget != 31500000 {
			t.Errorf("budget = %d, want 31500000", movie.Budget)
		}
		if len(movie.Companies) != 1 || movie.Companies[0].OriginCountry != "US" {
			t.Errorf("companies = %+v", movie.Companies)
		}
	})

	t.Run("unknown movie is null", func(t *testing.T) {
		resp := execute(t, a.router, `{ movie(id: "1") { id } }`, nil)
		if len(resp.Errors) != 0 {
			t.Fatalf("errors = %+v", resp.Errors)
		}
		if string(resp.Data["movie"]) != "null" {
			t.Errorf("movie = %s, want null", resp.Data["movie"])
		}
	})

	t.Run("rate then list rated movies shares one guest session", func(t *testing.T) {
		if a.sessions.Current() != "" {
			t.Fatal("guest session created before any session operation")
		}

		resp := execute(t, a.router, `mutation { rateMovie(id: "550", rating: 8) }`, nil)
		if len(resp.Errors) != 0 {
			t.Fatalf("rateMovie errors = %+v", resp.Errors)
		}
		if string(resp.Data["rateMovie"]) != "8" {
			t.Errorf("rateMovie = %s, want 8", resp.Data["rateMovie"])
		}

		resp = execute(t, a.router, `{ ratedMovies { id title rating } }`, nil)
		if len(resp.Errors) != 0 {
			t.Fatalf("ratedMovies errors = %+v", resp.Errors)
		}
		var rated []struct {
			ID     string  `json:"id"`
			Rating float64 `json:"rating"`
		}
		if err := json.Unmarshal(resp.Data["ratedMovies"], &rated); err != nil {
			t.Fatalf("unmarshal ratedMovies: %v", err)
		}
		if len(rated) != 1 || rated[0].ID != "550" || rated[0].Rating != 8 {
			t.Errorf("ratedMovies = %+v", rated)
		}

		if got := fake.sessions.Load(); got != 1 {
			t.Errorf("guest sessions created = %d, want 1", got)
		}
		if a.sessions.Current() != "guest-abc" {
			t.Errorf("Current() = %q, want guest-abc", a.sessions.Current())
		}
	})

	t.Run("readiness pings TMDB", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("ready status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})
}

func TestApp_BadAPIKeySurfacesUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(&fakeTMDB{ratings: map[string]map[string]float64{}})
	defer upstream.Close()

	cfg := testAppConfig(upstream.URL)
	cfg.TMDB.APIKey = "wrong"
	a, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	resp := execute(t, a.router, `{ movie(id: "550") { id } }`, nil)
	if len(resp.Errors) != 1 {
		t.Fatalf("errors = %+v, want 1", resp.Errors)
	}
	if resp.Errors[0].Extensions["http_status"] != float64(http.StatusUnauthorized) {
		t.Errorf("extensions = %v", resp.Errors[0].Extensions)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("ready status = %d, want 503", rec.Code)
	}
}
