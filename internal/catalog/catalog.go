// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the static query-type and output-format tables the
// synthesizer instantiates requirements and tests from. The tables are
// package-level and read-only after init; extending the profile engine with
// a new query type or format is a data addition here, never a control-flow
// change elsewhere.
package catalog

import (
	"fmt"
	"sort"
)

// Placeholder markers used by catalog templates. Substitution is textual;
// the document assembler rejects any rendered output still carrying one.
const (
	PlaceholderCollection = "{collection}"
	PlaceholderProperties = "{properties}"
)

// QueryTypeEntry is the requirement and test template for one query type.
type QueryTypeEntry struct {
	// Name is the query-type identifier (e.g. "position").
	Name string

	// Statement is the requirement statement template.
	Statement string

	// Parts are the normative provision templates.
	Parts []string

	// Steps are the abstract test step templates.
	Steps []string
}

// FormatEntry is the requirement template for one output format.
type FormatEntry struct {
	// Name is the canonical format label (e.g. "GeoJSON").
	Name string

	// Parts are the normative provision templates.
	Parts []string
}

// UnknownQueryTypeError reports a configuration referencing a query type
// the catalog does not define.
type UnknownQueryTypeError struct {
	Name string
}

func (e *UnknownQueryTypeError) Error() string {
	return fmt.Sprintf("unknown query type %q: supported types are %v", e.Name, QueryTypeNames())
}

// UnknownFormatError reports a configuration referencing an output format
// the catalog does not define.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q: supported formats are %v", e.Name, FormatNames())
}

// QueryType looks up the catalog entry for a query-type identifier.
func QueryType(name string) (QueryTypeEntry, error) {
	entry, ok := queryTypes[name]
	if !ok {
		return QueryTypeEntry{}, &UnknownQueryTypeError{Name: name}
	}
	return entry, nil
}

// Format looks up the catalog entry for an output-format identifier.
// Lookup is exact on the canonical label (case matters: "GeoJSON", not
// "geojson"), matching how configurations declare formats.
func Format(name string) (FormatEntry, error) {
	entry, ok := formats[name]
	if !ok {
		return FormatEntry{}, &UnknownFormatError{Name: name}
	}
	return entry, nil
}

// QueryTypeNames returns the sorted list of supported query-type identifiers.
func QueryTypeNames() []string {
	names := make([]string, 0, len(queryTypes))
	for name := range queryTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatNames returns the sorted list of supported format labels.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
