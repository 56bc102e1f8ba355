// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"context"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tomtom215/cinegraph/internal/tmdb"
)

// SessionSource yields the shared guest session id. Satisfied by *session.Manager.
type SessionSource interface {
	SessionID(ctx context.Context) (string, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	client    tmdb.ClientInterface
	sessions  SessionSource
	converter *CurrencyConverter
	window    tmdb.ReleaseWindow
}

// NewResolver creates the root resolver.
func NewResolver(client tmdb.ClientInterface, sessions SessionSource, converter *CurrencyConverter, window tmdb.ReleaseWindow) *Resolver {
	return &Resolver{
		client:    client,
		sessions:  sessions,
		converter: converter,
		window:    window,
	}
}

// MovieArgs are the arguments of Query.movie. Empty strings count as absent.
type MovieArgs struct {
	ID     *graphql.ID
	ImdbID *string
}

// Movie resolves Query.movie. id takes precedence over imdb_id; imdb_id is
// only consulted when id is absent.
func (r *Resolver) Movie(ctx context.Context, args MovieArgs) (res *MovieResolver, err error) {
	start := time.Now()
	defer func() { observe(ctx, "movie", start, res == nil, err) }()

	if args.ID != nil && *args.ID != "" {
		return r.movieByID(ctx, string(*args.ID))
	}
	if args.ImdbID != nil && *args.ImdbID != "" {
		return r.movieByIMDbID(ctx, *args.ImdbID)
	}
	return nil, nil
}

func (r *Resolver) movieByID(ctx context.Context, id string) (*MovieResolver, error) {
	m, err := r.client.GetMovie(ctx, id)
	if err != nil {
		if tmdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, tmdb.AsUpstreamError(tmdb.OpGetMovie, err)
	}
	return newMovieResolver(*m, r.converter), nil
}

func (r *Resolver) movieByIMDbID(ctx context.Context, imdbID string) (*MovieResolver, error) {
	found, err := r.client.FindByIMDbID(ctx, imdbID)
	if err != nil {
		return nil, tmdb.AsUpstreamError(tmdb.OpFindByIMDbID, err)
	}
	id, ok := found.FirstMovieID()
	if !ok {
		return nil, nil
	}
	return r.movieByID(ctx, strconv.Itoa(id))
}

// Movies resolves Query.movies over the configured release window.
func (r *Resolver) Movies(ctx context.Context) (res *[]*MovieResolver, err error) {
	start := time.Now()
	defer func() { observe(ctx, "movies", start, res == nil, err) }()

	movies, err := r.client.DiscoverMovies(ctx, r.window)
	if err != nil {
		return nil, tmdb.AsUpstreamError(tmdb.OpDiscoverMovies, err)
	}
	return newMovieList(movies, r.converter), nil
}

// RatedMovies resolves Query.ratedMovies for the shared guest session.
func (r *Resolver) RatedMovies(ctx context.Context) (res *[]*MovieResolver, err error) {
	start := time.Now()
	defer func() { observe(ctx, "ratedMovies", start, res == nil, err) }()

	sessionID, err := r.sessions.SessionID(ctx)
	if err != nil {
		return nil, tmdb.AsUpstreamError(tmdb.OpCreateGuestSession, err)
	}
	movies, err := r.client.GetGuestRatedMovies(ctx, sessionID)
	if err != nil {
		return nil, tmdb.AsUpstreamError(tmdb.OpGetGuestRatedMovies, err)
	}
	return newMovieList(movies, r.converter), nil
}

// RateMovieArgs are the arguments of Mutation.rateMovie.
type RateMovieArgs struct {
	ID     graphql.ID
	Rating int32
}

// RateMovie resolves Mutation.rateMovie. On success it echoes the submitted
// rating; TMDB validates the range.
func (r *Resolver) RateMovie(ctx context.Context, args RateMovieArgs) (res *int32, err error) {
	start := time.Now()
	defer func() { observe(ctx, "rateMovie", start, res == nil, err) }()

	sessionID, err := r.sessions.SessionID(ctx)
	if err != nil {
		return nil, tmdb.AsUpstreamError(tmdb.OpCreateGuestSession, err)
	}
	if err := r.client.RateMovie(ctx, string(args.ID), sessionID, int(args.Rating)); err != nil {
		return nil, tmdb.AsUpstreamError(tmdb.OpRateMovie, err)
	}
	rating := args.Rating
	return &rating, nil
}
