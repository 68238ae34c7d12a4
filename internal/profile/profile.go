// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile loads, validates, and persists profile configurations.
// Serialization and deserialization are exact inverses for any valid
// configuration, so regenerating from an unmodified persisted form
// reproduces the artifact set byte for byte. A persisted form referencing
// an unknown query type or format fails loudly instead of dropping the
// entry.
package profile

import (
	"fmt"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-engine/internal/catalog"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// ConfigFileName is the persisted configuration file written into each
// generated profile directory.
const ConfigFileName = "profile_config.yml"

// slugPattern constrains profile names to URL- and filesystem-safe slugs.
var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Load reads and validates a configuration from a YAML file.
func Load(path string) (*types.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	return Unmarshal(data)
}

// Save persists a configuration to a YAML file.
func Save(path string, cfg *types.Configuration) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}

// Marshal serializes a configuration. Struct fields encode in declaration
// order, so output is deterministic.
func Marshal(cfg *types.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return data, nil
}

// Unmarshal parses and validates a serialized configuration.
func Unmarshal(data []byte) (*types.Configuration, error) {
	var cfg types.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills the optional fields a hand-written configuration may
// omit.
func applyDefaults(cfg *types.Configuration) {
	for i := range cfg.Filters {
		if cfg.Filters[i].Type == "" {
			cfg.Filters[i].Type = types.FilterString
		}
	}
}

// Validate enforces the configuration invariants at the boundary, so the
// synthesizer never needs defensive checks internally.
func Validate(cfg *types.Configuration) error {
	if cfg.ProfileName == "" {
		return fmt.Errorf("profile_name is required")
	}
	if !slugPattern.MatchString(cfg.ProfileName) {
		return fmt.Errorf("profile_name %q is not a valid slug: use lowercase letters, digits, and hyphens", cfg.ProfileName)
	}
	if len(cfg.Collections) == 0 {
		return fmt.Errorf("profile %s declares no collections: at least one is required", cfg.ProfileName)
	}

	collNames := make(map[string]bool, len(cfg.Collections))
	for _, coll := range cfg.Collections {
		if coll.Name == "" {
			return fmt.Errorf("profile %s has a collection without a name", cfg.ProfileName)
		}
		if collNames[coll.Name] {
			return fmt.Errorf("duplicate collection name %q", coll.Name)
		}
		collNames[coll.Name] = true

		if len(coll.QueryTypes) == 0 {
			return fmt.Errorf("collection %s declares no query types: at least one is required", coll.Name)
		}
		for _, qt := range coll.QueryTypes {
			if _, err := catalog.QueryType(qt); err != nil {
				return fmt.Errorf("collection %s: %w", coll.Name, err)
			}
		}
		for _, format := range coll.Formats {
			if _, err := catalog.Format(format); err != nil {
				return fmt.Errorf("collection %s: %w", coll.Name, err)
			}
		}
	}

	filterNames := make(map[string]bool, len(cfg.Filters))
	for _, f := range cfg.Filters {
		if f.Name == "" {
			return fmt.Errorf("profile %s has a filter without a name", cfg.ProfileName)
		}
		if filterNames[f.Name] {
			return fmt.Errorf("duplicate filter name %q", f.Name)
		}
		filterNames[f.Name] = true

		switch f.Type {
		case types.FilterString, types.FilterNumber, types.FilterEnum:
		default:
			return fmt.Errorf("filter %s has unsupported type %q: use string, number, or enum", f.Name, f.Type)
		}
	}

	return nil
}
