// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared value types exchanged between the profile
// engine's components: the profile configuration consumed by one synthesis
// run and the requirement/test artifacts it produces.
package types

// FilterType declares the value type of a subscription filter.
type FilterType string

const (
	FilterString FilterType = "string"
	FilterNumber FilterType = "number"
	FilterEnum   FilterType = "enum"
)

// Filter is a named, typed parameter that narrows which events a
// subscriber receives. Filters are only meaningful when messaging is
// enabled; the API spec generator ignores them otherwise.
type Filter struct {
	// Name is unique within a Configuration (e.g. "vessel_type").
	Name string `json:"name" yaml:"name"`

	// Description is the human-readable filter purpose.
	Description string `json:"description" yaml:"description"`

	// Type is the declared value type: string, number, or enum.
	Type FilterType `json:"type" yaml:"type"`

	// Values lists the admissible values for enum filters.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// Collection describes one data collection exposed by the profile.
type Collection struct {
	// Name is unique within a Configuration (e.g. "stations").
	Name string `json:"name" yaml:"name"`

	// QueryTypes is the ordered, non-empty set of query-type identifiers
	// (items, position, area, ...). Each must exist in the query-type catalog.
	QueryTypes []string `json:"query_types" yaml:"query_types"`

	// Formats is the ordered set of output-format identifiers (GeoJSON,
	// CSV, ...). Each must exist in the format catalog.
	Formats []string `json:"formats,omitempty" yaml:"formats,omitempty"`

	// Properties lists feature property names. Only used when "items" is
	// among the query types.
	Properties []string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Configuration is the immutable input to one synthesis run. It is produced
// by the configuration-loading collaborator (config file or init command)
// and persisted alongside the generated profile for re-entrant regeneration.
type Configuration struct {
	// ProfileName is a URL/filesystem-safe slug (lowercase, hyphen-delimited).
	ProfileName string `json:"profile_name" yaml:"profile_name"`

	// ProfileTitle is the human-readable profile title.
	ProfileTitle string `json:"profile_title" yaml:"profile_title"`

	// Author and Email identify the profile editor.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Email  string `json:"email,omitempty" yaml:"email,omitempty"`

	// Collections is the non-empty list of collections in the profile.
	Collections []Collection `json:"collections" yaml:"collections"`

	// IncludeMessaging enables the AsyncAPI/PubSub layer.
	IncludeMessaging bool `json:"include_messaging" yaml:"include_messaging"`

	// Filters declares subscription filters. Ignored unless messaging is
	// enabled.
	Filters []Filter `json:"filters,omitempty" yaml:"filters,omitempty"`

	// Requirements and Tests hold user-edited artifact sets. When present
	// they are authoritative: the synthesizer emits them verbatim instead
	// of generating suggestions. A regeneration from a saved configuration
	// therefore reproduces any edits exactly.
	Requirements []Requirement  `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Tests        []AbstractTest `json:"tests,omitempty" yaml:"tests,omitempty"`
}

// HasItems reports whether any collection declares the items query type.
func (c *Configuration) HasItems() bool {
	for _, coll := range c.Collections {
		for _, qt := range coll.QueryTypes {
			if qt == "items" {
				return true
			}
		}
	}
	return false
}
