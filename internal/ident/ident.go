// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ident is the identifier scheme shared by every profile artifact.
// All functions are pure: the same (profile, key) input always yields the
// same requirement URI, test URI, and document anchor, and a test
// identifier is derived from its paired requirement identifier by a fixed
// prefix swap rather than a lookup table. Keys are namespaced by scope and
// collection name, so any two distinct concerns within one profile map to
// distinct identifiers by construction.
package ident

import (
	"strings"

	"github.com/pdiddy/profile-engine/pkg/types"
)

// SpecBaseURI roots the requirements-class and conformance-class
// identifiers published in the rendered document.
const SpecBaseURI = "http://www.opengis.net/spec/ogcapi-edr-3/1.0"

const (
	reqPrefix  = "/req/"
	confPrefix = "/conf/"
)

// Requirement returns the canonical requirement URI for a key within a
// profile namespace.
func Requirement(profile, key string) types.RequirementID {
	return types.RequirementID(reqPrefix + profile + "/" + key)
}

// Test returns the canonical abstract-test URI for a key within a profile
// namespace.
func Test(profile, key string) types.TestID {
	return types.TestID(confPrefix + profile + "/" + key)
}

// TestFor derives the abstract-test URI paired with a requirement URI by
// swapping the /req/ prefix for /conf/.
func TestFor(id types.RequirementID) types.TestID {
	return types.TestID(confPrefix + strings.TrimPrefix(string(id), reqPrefix))
}

// RequirementFor derives the requirement URI targeted by an abstract-test
// URI. It is the inverse of TestFor.
func RequirementFor(id types.TestID) types.RequirementID {
	return types.RequirementID(reqPrefix + strings.TrimPrefix(string(id), confPrefix))
}

// RequirementAnchor returns the document anchor for a requirement.
func RequirementAnchor(profile, key string) types.AnchorID {
	return types.AnchorID(flatten("req_" + profile + "_" + key))
}

// TestAnchor returns the document anchor for an abstract test.
func TestAnchor(profile, key string) types.AnchorID {
	return types.AnchorID(flatten("ats_" + profile + "_" + key))
}

// RequirementsClass returns the published identifier of the profile's
// requirements class.
func RequirementsClass(profile string) string {
	return SpecBaseURI + reqPrefix[:len(reqPrefix)-1] + "/" + profile
}

// ConformanceClass returns the published identifier of the profile's
// conformance class.
func ConformanceClass(profile string) string {
	return SpecBaseURI + confPrefix[:len(confPrefix)-1] + "/" + profile
}

// Channel returns the event-channel identifier for a collection.
func Channel(collection string) types.ChannelID {
	return types.ChannelID(collection + "_notifications")
}

// Key builders. Each scope namespaces its keys so distinct (scope, key)
// pairs cannot collide within a profile.

// OpenAPIKey is the fixed key of the OpenAPI-presence requirement.
const OpenAPIKey = "openapi"

// AsyncAPIKey is the fixed key of the AsyncAPI-presence requirement.
const AsyncAPIKey = "asyncapi"

// CollectionKey returns the key of a collection-metadata requirement.
func CollectionKey(collection string) string {
	return "collection-" + slug(collection)
}

// QueryTypeKey returns the key of a (collection, query type) requirement.
func QueryTypeKey(queryType, collection string) string {
	return "data-query-" + queryType + "-" + slug(collection)
}

// FormatKey returns the key of a (collection, format) requirement.
func FormatKey(format, collection string) string {
	return "output-format-" + slug(format) + "-" + slug(collection)
}

// FilterKey returns the key of a filter requirement.
func FilterKey(filter string) string {
	return "filter-" + slug(filter)
}

// slug lowercases a name and replaces underscores with hyphens, keeping
// keys URL- and filesystem-safe.
func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}

// flatten makes an identifier usable as an AsciiDoc anchor: path
// separators become underscores.
func flatten(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}
