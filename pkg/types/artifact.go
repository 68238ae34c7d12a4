// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RequirementID is the canonical URI path of a requirement
// (e.g. "/req/weather-stations/data-query-items-stations").
type RequirementID string

// TestID is the canonical URI path of an abstract test
// (e.g. "/conf/weather-stations/data-query-items-stations").
type TestID string

// AnchorID is the document anchor derived from a requirement or test
// identifier (e.g. "req_weather-stations_openapi").
type AnchorID string

// ChannelID names an event channel in the AsyncAPI document
// (e.g. "stations_notifications").
type ChannelID string

// Requirement is one normative statement an implementation has to satisfy.
// Requirements are immutable once synthesized for a given Configuration.
type Requirement struct {
	// Key is the identifier segment below the profile namespace
	// (e.g. "data-query-items-stations").
	Key string `json:"id" yaml:"id"`

	// ID is the canonical requirement URI.
	ID RequirementID `json:"identifier,omitempty" yaml:"identifier,omitempty"`

	// Statement is the human-readable requirement summary.
	Statement string `json:"statement" yaml:"statement"`

	// Parts are the normative provisions, each beginning with a modal verb.
	Parts []string `json:"parts" yaml:"parts"`
}

// AbstractTest is a procedure verifying exactly one Requirement.
type AbstractTest struct {
	// Key is the identifier segment below the profile namespace. By
	// convention it matches the paired requirement's Key.
	Key string `json:"id" yaml:"id"`

	// ID is the canonical test URI.
	ID TestID `json:"identifier,omitempty" yaml:"identifier,omitempty"`

	// Target references the requirement this test verifies. It must
	// resolve to an existing Requirement in the same run.
	Target RequirementID `json:"target" yaml:"target"`

	// Steps are the ordered verification steps.
	Steps []string `json:"steps" yaml:"steps"`
}

// Pair couples a Requirement with its abstract test. Synthesis emits pairs
// in canonical order; downstream components never reorder them.
type Pair struct {
	Requirement Requirement
	Test        AbstractTest
}
