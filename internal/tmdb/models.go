// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tmdb

// Movie is the subset of a TMDB movie object exposed by the API. Pointer
// fields keep "absent upstream" distinct from zero values; list endpoints
// omit imdb_id, budget and production_companies entirely.
type Movie struct {
	ID                  int                 `json:"id"`
	ImdbID              *string             `json:"imdb_id"`
	Title               string              `json:"title"`
	ReleaseDate         *string             `json:"release_date"`
	Budget              *int64              `json:"budget"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`

	// Rating is only present on guest session rated-movie listings.
	Rating *float64 `json:"rating"`
}

// ProductionCompany is a company credited on a movie.
type ProductionCompany struct {
	ID            int     `json:"id"`
	LogoPath      *string `json:"logo_path"`
	Name          string  `json:"name"`
	OriginCountry *string `json:"origin_country"`
}

// FindResult is the response of /find/{external_id}.
type FindResult struct {
	MovieResults []Movie `json:"movie_results"`
}

// FirstMovieID returns the id of the first movie match.
func (f *FindResult) FirstMovieID() (int, bool) {
	if f == nil || len(f.MovieResults) == 0 {
		return 0, false
	}
	return f.MovieResults[0].ID, true
}

// MoviePage is a paged movie listing (discover, rated movies).
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// GuestSession is the response of /authentication/guest_session/new.
type GuestSession struct {
	Success        bool   `json:"success"`
	GuestSessionID string `json:"guest_session_id"`
	ExpiresAt      string `json:"expires_at"`
}

// StatusResponse is TMDB's generic status body, used for both write
// acknowledgements and error responses.
type StatusResponse struct {
	Success       *bool  `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// RatingRequest is the body of POST /movie/{id}/rating.
type RatingRequest struct {
	Value int `json:"value"`
}

// ReleaseWindow bounds a discover query by primary release date (YYYY-MM-DD, inclusive).
type ReleaseWindow struct {
	From string
	To   string
}
