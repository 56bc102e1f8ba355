// Cinegraph - GraphQL Gateway for The Movie Database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/tomtom215/cinegraph/internal/config"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaSDL returns the schema definition served by this package.
func SchemaSDL() string {
	return schemaSDL
}

// NewSchema parses the schema against resolver. The resolver's methods are
// checked against every field at parse time, so a mismatch fails startup.
func NewSchema(resolver *Resolver, cfg *config.GraphQLConfig) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.Logger(panicLogger{}),
	}
	if cfg != nil {
		if cfg.MaxDepth > 0 {
			opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
		}
		if cfg.MaxParallelism > 0 {
			opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
		}
	}

	schema, err := graphql.ParseSchema(schemaSDL, resolver, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	return schema, nil
}
