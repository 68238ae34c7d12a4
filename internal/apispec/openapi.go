// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apispec

import (
	"fmt"

	"github.com/pdiddy/profile-engine/internal/textutil"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// schemaName derives the entity schema name for a collection.
func schemaName(collection string) string {
	return textutil.UpperCamel(collection) + "Feature"
}

// openAPIDocument builds the OpenAPI 3.0 document tree. Maps are encoded
// with sorted keys, so the rendered YAML is byte-deterministic.
func openAPIDocument(cfg *types.Configuration, schemas []entitySchema) map[string]any {
	title := textutil.Title(cfg.ProfileName)

	paths := make(map[string]any)
	for _, coll := range cfg.Collections {
		addCollectionPaths(paths, coll)
	}

	schemaMap := make(map[string]any, len(schemas))
	for _, s := range schemas {
		schemaMap[s.Name] = featureSchema(cfg, s)
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       fmt.Sprintf("%s Profile API", title),
			"version":     "1.0.0",
			"description": fmt.Sprintf("OGC API - EDR %s Profile", title),
		},
		"servers": []any{
			map[string]any{"url": "http://localhost:5000", "description": "Development server"},
		},
		"paths":      paths,
		"components": map[string]any{"schemas": schemaMap},
	}
}

// addCollectionPaths emits the metadata path plus one path per query type
// (two for items and locations, which have an instance sub-path).
func addCollectionPaths(paths map[string]any, coll types.Collection) {
	name := coll.Name

	paths[fmt.Sprintf("/collections/%s", name)] = map[string]any{
		"get": map[string]any{
			"summary":   fmt.Sprintf("Get %s metadata", name),
			"responses": responses200("Collection metadata"),
		},
	}

	for _, qt := range coll.QueryTypes {
		switch qt {
		case "items":
			paths[fmt.Sprintf("/collections/%s/items", name)] = map[string]any{
				"get": map[string]any{
					"summary": fmt.Sprintf("Query %s items", name),
					"parameters": []any{
						queryParam("datetime", false),
						queryParam("bbox", false),
					},
					"responses": responses200("GeoJSON FeatureCollection"),
				},
			}
			paths[fmt.Sprintf("/collections/%s/items/{featureId}", name)] = map[string]any{
				"get": map[string]any{
					"summary":    fmt.Sprintf("Get specific %s item", name),
					"parameters": []any{pathParam("featureId")},
					"responses":  responses200("GeoJSON Feature"),
				},
			}
		case "locations":
			paths[fmt.Sprintf("/collections/%s/locations", name)] = map[string]any{
				"get": map[string]any{
					"summary":   fmt.Sprintf("Get available locations for %s", name),
					"responses": responses200("GeoJSON FeatureCollection of available locations"),
				},
			}
			paths[fmt.Sprintf("/collections/%s/locations/{locationId}", name)] = map[string]any{
				"get": map[string]any{
					"summary": fmt.Sprintf("Query %s data by location", name),
					"parameters": []any{
						pathParam("locationId"),
						queryParam("datetime", false),
					},
					"responses": responses200("Query results"),
				},
			}
		default:
			paths[fmt.Sprintf("/collections/%s/%s", name, qt)] = map[string]any{
				"get": map[string]any{
					"summary": fmt.Sprintf("Query %s by %s", name, qt),
					"parameters": []any{
						queryParam("coords", true),
						queryParam("datetime", false),
					},
					"responses": responses200("Query results"),
				},
			}
		}
	}
}

// featureSchema builds a collection's GeoJSON feature schema, carrying the
// channel pointer extension when messaging is enabled.
func featureSchema(cfg *types.Configuration, s entitySchema) map[string]any {
	props := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		props[p] = map[string]any{"type": "string"}
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{"type": "string", "const": "Feature"},
			"properties": map[string]any{
				"type":       "object",
				"properties": props,
			},
		},
	}

	if s.Channel != "" {
		schema[fmt.Sprintf("x-ogc-edr-%s-pubsub", cfg.ProfileName)] = map[string]any{
			"asyncapi": "/" + AsyncAPIFile,
			"channel":  string(s.Channel),
		}
	}
	return schema
}

func responses200(description string) map[string]any {
	return map[string]any{
		"200": map[string]any{"description": description},
	}
}

func queryParam(name string, required bool) map[string]any {
	p := map[string]any{
		"name":   name,
		"in":     "query",
		"schema": map[string]any{"type": "string"},
	}
	if required {
		p["required"] = true
	}
	return p
}

func pathParam(name string) map[string]any {
	return map[string]any{
		"name":     name,
		"in":       "path",
		"required": true,
		"schema":   map[string]any{"type": "string"},
	}
}
