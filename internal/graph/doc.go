// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package graph implements the GraphQL schema and resolvers on top of the TMDB client.

# Schema

	type Query {
	  movies: [Movie]
	  movie(id: ID, imdb_id: String): Movie
	  ratedMovies: [Movie]
	}
	type Mutation { rateMovie(id: ID!, rating: Int!): Int }

The full definition, including Movie, ProductionCompany and the Currency enum,
is embedded from schema.graphql.

# Resolution

Each top-level field makes the fewest upstream calls that answer it:

  - movie(id): GET /movie/{id}. A 404 resolves to null.
  - movie(imdb_id): /find/{imdb_id}, then the detail call for the first match.
    No match resolves to null without a detail call.
  - movies: one discover call over the configured release window.
  - ratedMovies and rateMovie: obtain the shared guest session id first.

Upstream failures are returned as *tmdb.UpstreamError so the GraphQL response
error carries extensions.code = "UPSTREAM_ERROR".

# Budget

Movie.budget converts TMDB's USD budget with CurrencyConverter. A zero
budget stays 0 in every supported currency. A currency without a configured
rate or a value outside the GraphQL Int range resolves to null.
*/
package graph
