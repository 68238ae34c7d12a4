// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth expands a profile configuration into the complete, ordered
// requirement and abstract-test set. Synthesis is deterministic: the same
// configuration always yields the same artifact graph in the same canonical
// order, and any catalog miss aborts the run before anything is emitted
// downstream.
package synth

import (
	"fmt"
	"strings"

	"github.com/pdiddy/profile-engine/internal/catalog"
	"github.com/pdiddy/profile-engine/internal/ident"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// Artifacts is the immutable output of one synthesis run: requirement/test
// pairs in canonical emission order. Downstream components (document
// assembler, API spec generator) read it; nothing mutates it after
// Synthesize returns.
type Artifacts struct {
	// Profile is the owning profile name.
	Profile string

	// Pairs holds the requirement/test pairs in canonical order:
	// OpenAPI presence, collection metadata, collection query types,
	// collection formats, AsyncAPI presence, filters.
	Pairs []types.Pair
}

// Requirements returns the requirements in canonical order.
func (a *Artifacts) Requirements() []types.Requirement {
	reqs := make([]types.Requirement, len(a.Pairs))
	for i, p := range a.Pairs {
		reqs[i] = p.Requirement
	}
	return reqs
}

// Tests returns the abstract tests in canonical order.
func (a *Artifacts) Tests() []types.AbstractTest {
	tests := make([]types.AbstractTest, len(a.Pairs))
	for i, p := range a.Pairs {
		tests[i] = p.Test
	}
	return tests
}

// Lookup resolves a requirement identifier within this run.
func (a *Artifacts) Lookup(id types.RequirementID) (types.Requirement, bool) {
	for _, p := range a.Pairs {
		if p.Requirement.ID == id {
			return p.Requirement, true
		}
	}
	return types.Requirement{}, false
}

// Synthesize expands a validated configuration into its artifact set. When
// the configuration carries user-edited requirements (a regeneration from a
// persisted form), those are authoritative and reproduced verbatim;
// otherwise the suggested set is generated from the catalogs.
func Synthesize(cfg *types.Configuration) (*Artifacts, error) {
	var pairs []types.Pair
	var err error
	if len(cfg.Requirements) > 0 {
		pairs, err = pairsFromConfig(cfg)
	} else {
		pairs, err = suggestedPairs(cfg)
	}
	if err != nil {
		return nil, err
	}

	a := &Artifacts{Profile: cfg.ProfileName, Pairs: pairs}
	if err := a.check(); err != nil {
		return nil, err
	}
	return a, nil
}

// check enforces the graph invariants before the artifact set is handed
// downstream: identifiers are unique and every test target resolves.
func (a *Artifacts) check() error {
	seen := make(map[types.RequirementID]bool, len(a.Pairs))
	for _, p := range a.Pairs {
		if seen[p.Requirement.ID] {
			return &DuplicateIdentifierError{ID: p.Requirement.ID}
		}
		seen[p.Requirement.ID] = true
	}
	for _, p := range a.Pairs {
		if !seen[p.Test.Target] {
			return &DanglingReferenceError{
				Source: fmt.Sprintf("abstract test %s", p.Test.ID),
				Target: string(p.Test.Target),
			}
		}
	}
	return nil
}

// newPair stamps identifiers onto a requirement/test pair. The test
// identifier is derived from the requirement identifier by prefix swap, so
// the two can never drift apart.
func newPair(profile, key, statement string, parts, steps []string) types.Pair {
	reqID := ident.Requirement(profile, key)
	return types.Pair{
		Requirement: types.Requirement{
			Key:       key,
			ID:        reqID,
			Statement: statement,
			Parts:     parts,
		},
		Test: types.AbstractTest{
			Key:    key,
			ID:     ident.TestFor(reqID),
			Target: reqID,
			Steps:  steps,
		},
	}
}

// suggestedPairs generates the full suggested artifact set in canonical
// emission order.
func suggestedPairs(cfg *types.Configuration) ([]types.Pair, error) {
	profile := cfg.ProfileName
	var pairs []types.Pair

	pairs = append(pairs, openAPIPair(profile))

	for _, coll := range cfg.Collections {
		pairs = append(pairs, collectionPair(profile, coll.Name))
	}

	for _, coll := range cfg.Collections {
		for _, qt := range coll.QueryTypes {
			p, err := queryTypePair(profile, coll, qt)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
	}

	for _, coll := range cfg.Collections {
		for _, format := range coll.Formats {
			p, err := formatPair(profile, coll.Name, format)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
	}

	if cfg.IncludeMessaging {
		pairs = append(pairs, asyncAPIPair(profile, cfg.Collections))
		for _, f := range cfg.Filters {
			pairs = append(pairs, filterPair(profile, f))
		}
	}

	return pairs, nil
}

// pairsFromConfig reproduces user-edited requirements and tests verbatim.
// Tests are matched to requirements by key; a requirement without an edited
// test gets a generic verification procedure, and an edited test whose key
// matches no requirement is a dangling reference.
func pairsFromConfig(cfg *types.Configuration) ([]types.Pair, error) {
	profile := cfg.ProfileName

	reqKeys := make(map[string]bool, len(cfg.Requirements))
	for _, r := range cfg.Requirements {
		reqKeys[r.Key] = true
	}
	testsByKey := make(map[string]types.AbstractTest, len(cfg.Tests))
	for _, t := range cfg.Tests {
		if !reqKeys[t.Key] {
			return nil, &DanglingReferenceError{
				Source: fmt.Sprintf("abstract test %s", ident.Test(profile, t.Key)),
				Target: string(ident.Requirement(profile, t.Key)),
			}
		}
		testsByKey[t.Key] = t
	}

	pairs := make([]types.Pair, 0, len(cfg.Requirements))
	for _, r := range cfg.Requirements {
		steps := []string{
			fmt.Sprintf("Verify requirement %s is implemented", r.Key),
			"Test basic functionality",
			"Verify conformance",
		}
		if t, ok := testsByKey[r.Key]; ok {
			steps = t.Steps
		}
		pairs = append(pairs, newPair(profile, r.Key, r.Statement, r.Parts, steps))
	}
	return pairs, nil
}

func openAPIPair(profile string) types.Pair {
	return newPair(profile, ident.OpenAPIKey,
		"OpenAPI specification",
		[]string{
			"The service SHALL provide an OpenAPI 3.0 specification",
			"The OpenAPI SHALL document all collection endpoints",
			"The OpenAPI SHALL include GeoJSON schemas",
		},
		[]string{
			"Send GET request to /openapi",
			"Verify response is valid OpenAPI 3.0 document",
			"Verify all collection endpoints are documented",
			"Verify GeoJSON schemas are defined",
		})
}

func collectionPair(profile, collection string) types.Pair {
	return newPair(profile, ident.CollectionKey(collection),
		fmt.Sprintf("%s collection metadata", collection),
		[]string{
			fmt.Sprintf("The service SHALL provide a /collections/%s endpoint", collection),
			"The endpoint SHALL return collection metadata including extent and available query types",
			"The response SHALL conform to OGC API - EDR collection schema",
		},
		[]string{
			fmt.Sprintf("Send GET request to /collections/%s", collection),
			"Verify response contains collection metadata including extent and available query types",
			"Verify response conforms to OGC API - EDR collection schema",
		})
}

func queryTypePair(profile string, coll types.Collection, queryType string) (types.Pair, error) {
	entry, err := catalog.QueryType(queryType)
	if err != nil {
		return types.Pair{}, err
	}

	parts := expandAll(entry.Parts, coll.Name)
	if queryType == "items" && len(coll.Properties) > 0 {
		parts = append(parts, fmt.Sprintf(
			"The response SHALL include properties: %s", strings.Join(coll.Properties, ", ")))
	}

	return newPair(profile, ident.QueryTypeKey(queryType, coll.Name),
		expand(entry.Statement, coll.Name),
		parts,
		expandAll(entry.Steps, coll.Name)), nil
}

func formatPair(profile, collection, format string) (types.Pair, error) {
	entry, err := catalog.Format(format)
	if err != nil {
		return types.Pair{}, err
	}

	parts := append(
		[]string{fmt.Sprintf("Collection %s SHALL support the %s output format", collection, entry.Name)},
		entry.Parts...)

	return newPair(profile, ident.FormatKey(format, collection),
		fmt.Sprintf("%s output format support for %s", entry.Name, collection),
		parts,
		[]string{
			fmt.Sprintf("Request data from collection %s with the %s output format", collection, entry.Name),
			fmt.Sprintf("Verify the response conforms to the %s format requirements", entry.Name),
			"Verify the HTTP Content-Type header matches the negotiated format",
		}), nil
}

func asyncAPIPair(profile string, collections []types.Collection) types.Pair {
	names := make([]string, len(collections))
	addresses := make([]string, len(collections))
	for i, c := range collections {
		names[i] = c.Name
		addresses[i] = fmt.Sprintf("collections/%s/items/#", c.Name)
	}
	return newPair(profile, ident.AsyncAPIKey,
		"AsyncAPI specification and PubSub messaging",
		[]string{
			"The service SHALL provide an AsyncAPI 3.0 specification",
			fmt.Sprintf("The AsyncAPI SHALL define notification channels for: %s", strings.Join(names, ", ")),
			"The service SHALL support AMQP protocol",
			fmt.Sprintf("The service SHALL publish messages to: %s", strings.Join(addresses, ", ")),
			"Messages SHALL conform to the AsyncAPI schema",
		},
		[]string{
			"Send GET request to /asyncapi.yaml",
			"Verify response is valid AsyncAPI 3.0 document",
			"Verify channels are defined for notifications",
			"Verify AMQP server is configured",
			"Connect to AMQP broker",
			"Subscribe to notification channel",
			"Verify messages are received",
			"Verify messages conform to AsyncAPI schema",
		})
}

func filterPair(profile string, f types.Filter) types.Pair {
	parts := []string{
		fmt.Sprintf("The service SHALL support the %s subscription filter", f.Name),
		fmt.Sprintf("The %s filter SHALL accept %s values", f.Name, f.Type),
		"The filter SHALL be declared in the x-ogc-subscription extension",
	}
	if f.Description != "" {
		parts = append(parts, fmt.Sprintf("The %s filter SHALL select events by %s", f.Name, f.Description))
	}
	return newPair(profile, ident.FilterKey(f.Name),
		fmt.Sprintf("%s subscription filter support", f.Name),
		parts,
		[]string{
			fmt.Sprintf("Verify the x-ogc-subscription extension declares the %s filter", f.Name),
			fmt.Sprintf("Subscribe to a notification channel with the %s filter set", f.Name),
			"Publish a message matching the filter value and verify it is received",
			"Publish a message not matching the filter value and verify it is not received",
		})
}

// expand substitutes the collection placeholder in one template.
func expand(template, collection string) string {
	return strings.ReplaceAll(template, catalog.PlaceholderCollection, collection)
}

// expandAll substitutes the collection placeholder across templates.
func expandAll(templates []string, collection string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = expand(t, collection)
	}
	return out
}
