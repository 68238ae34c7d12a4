// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apispec generates the machine-readable interface descriptions
// for a profile: an OpenAPI 3.0 document describing the HTTP surface and,
// when messaging is enabled, an AsyncAPI 3.0 document describing the
// event channels. Cross-references between the two are resolved as typed
// channel identifiers and validated before any YAML is emitted.
package apispec

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-engine/internal/fileset"
	"github.com/pdiddy/profile-engine/internal/ident"
	"github.com/pdiddy/profile-engine/internal/synth"
	"github.com/pdiddy/profile-engine/pkg/types"
)

const (
	// OpenAPIFile and AsyncAPIFile are the artifact paths relative to the
	// profile root.
	OpenAPIFile  = "openapi.yaml"
	AsyncAPIFile = "asyncapi.yaml"
)

// channel is the resolved description of one event channel.
type channel struct {
	ID         types.ChannelID
	Collection string
	Address    string
	Filters    []types.Filter
}

// entitySchema is the resolved description of one collection's feature
// schema, including its channel pointer when messaging is enabled.
type entitySchema struct {
	Name       string
	Collection string
	Properties []string

	// Channel is the referenced event channel, empty without messaging.
	Channel types.ChannelID
}

// Generate renders the interface documents for a configuration. The
// returned set holds openapi.yaml and, when messaging is enabled,
// asyncapi.yaml.
func Generate(cfg *types.Configuration) (*fileset.Set, error) {
	channels := resolveChannels(cfg)
	schemas := resolveSchemas(cfg)

	if err := checkCrossLinks(cfg, schemas, channels); err != nil {
		return nil, err
	}

	out := fileset.New()

	openapi, err := yaml.Marshal(openAPIDocument(cfg, schemas))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", OpenAPIFile, err)
	}
	out.Add(OpenAPIFile, openapi)

	if cfg.IncludeMessaging {
		asyncapi, err := yaml.Marshal(asyncAPIDocument(cfg, channels))
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", AsyncAPIFile, err)
		}
		out.Add(AsyncAPIFile, asyncapi)
	}

	return out, nil
}

// resolveChannels projects the configuration onto its event channels, one
// per collection. Without messaging there are none.
func resolveChannels(cfg *types.Configuration) []channel {
	if !cfg.IncludeMessaging {
		return nil
	}
	channels := make([]channel, len(cfg.Collections))
	for i, coll := range cfg.Collections {
		channels[i] = channel{
			ID:         ident.Channel(coll.Name),
			Collection: coll.Name,
			Address:    fmt.Sprintf("collections/%s/items/#", coll.Name),
			Filters:    cfg.Filters,
		}
	}
	return channels
}

// resolveSchemas projects the configuration onto its entity schemas, one
// per collection.
func resolveSchemas(cfg *types.Configuration) []entitySchema {
	schemas := make([]entitySchema, len(cfg.Collections))
	for i, coll := range cfg.Collections {
		s := entitySchema{
			Name:       schemaName(coll.Name),
			Collection: coll.Name,
			Properties: coll.Properties,
		}
		if cfg.IncludeMessaging {
			s.Channel = ident.Channel(coll.Name)
		}
		schemas[i] = s
	}
	return schemas
}

// checkCrossLinks verifies that every schema channel pointer resolves to a
// channel in this run and that each channel carries exactly the configured
// filter set. A violation is a synthesis defect, not bad input.
func checkCrossLinks(cfg *types.Configuration, schemas []entitySchema, channels []channel) error {
	byID := make(map[types.ChannelID]channel, len(channels))
	for _, ch := range channels {
		byID[ch.ID] = ch
	}

	for _, s := range schemas {
		if s.Channel == "" {
			continue
		}
		ch, ok := byID[s.Channel]
		if !ok {
			return &synth.DanglingReferenceError{
				Source: fmt.Sprintf("entity schema %s", s.Name),
				Target: string(s.Channel),
			}
		}
		if len(ch.Filters) != len(cfg.Filters) {
			return fmt.Errorf("channel %s declares %d filters, configuration declares %d",
				ch.ID, len(ch.Filters), len(cfg.Filters))
		}
		for i, f := range ch.Filters {
			if f.Name != cfg.Filters[i].Name {
				return fmt.Errorf("channel %s filter %d is %q, configuration declares %q",
					ch.ID, i, f.Name, cfg.Filters[i].Name)
			}
		}
	}
	return nil
}

// filterValueSchema maps a declared filter type to its value schema.
func filterValueSchema(f types.Filter) map[string]any {
	switch f.Type {
	case types.FilterNumber:
		return map[string]any{"type": "number"}
	case types.FilterEnum:
		schema := map[string]any{"type": "string"}
		if len(f.Values) > 0 {
			values := make([]any, len(f.Values))
			for i, v := range f.Values {
				values[i] = v
			}
			schema["enum"] = values
		}
		return schema
	default:
		return map[string]any{"type": "string"}
	}
}
