// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tomtom215/cinegraph/internal/tmdb"
)

// MovieResolver resolves the Movie type.
type MovieResolver struct {
	m         tmdb.Movie
	converter *CurrencyConverter
}

func newMovieResolver(m tmdb.Movie, converter *CurrencyConverter) *MovieResolver {
	return &MovieResolver{m: m, converter: converter}
}

// newMovieList maps an upstream listing. A nil listing stays null.
func newMovieList(movies []tmdb.Movie, converter *CurrencyConverter) *[]*MovieResolver {
	if movies == nil {
		return nil
	}
	out := make([]*MovieResolver, len(movies))
	for i := range movies {
		out[i] = newMovieResolver(movies[i], converter)
	}
	return &out
}

func (r *MovieResolver) ID() graphql.ID {
	return graphql.ID(strconv.Itoa(r.m.ID))
}

func (r *MovieResolver) ImdbID() *string {
	return r.m.ImdbID
}

func (r *MovieResolver) Budget(args struct{ Currency string }) *int32 {
	if r.m.Budget == nil {
		return nil
	}
	v, ok := r.converter.Convert(*r.m.Budget, args.Currency)
	if !ok {
		return nil
	}
	return &v
}

func (r *MovieResolver) Title() string {
	return r.m.Title
}

func (r *MovieResolver) ReleaseDate() *string {
	return r.m.ReleaseDate
}

func (r *MovieResolver) ProductionCompanies() *[]*ProductionCompanyResolver {
	if r.m.ProductionCompanies == nil {
		return nil
	}
	out := make([]*ProductionCompanyResolver, len(r.m.ProductionCompanies))
	for i := range r.m.ProductionCompanies {
		out[i] = &ProductionCompanyResolver{c: r.m.ProductionCompanies[i]}
	}
	return &out
}

func (r *MovieResolver) Rating() *float64 {
	return r.m.Rating
}

// ProductionCompanyResolver resolves the ProductionCompany type.
type ProductionCompanyResolver struct {
	c tmdb.ProductionCompany
}

func (r *ProductionCompanyResolver) ID() int32 {
	return int32(r.c.ID)
}

func (r *ProductionCompanyResolver) LogoPath() *string {
	return r.c.LogoPath
}

func (r *ProductionCompanyResolver) Name() string {
	return r.c.Name
}

func (r *ProductionCompanyResolver) OriginCountry() *string {
	return r.c.OriginCountry
}
