// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the deterministic name casings used across
// rendered artifacts: document titles from profile slugs and schema names
// from collection names.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title turns a slug or snake_case name into a document title:
// "weather-stations" becomes "Weather Stations".
func Title(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return titleCaser.String(name)
}

// UpperCamel turns a collection name into a schema name:
// "river_gauges" becomes "RiverGauges".
func UpperCamel(name string) string {
	return strings.ReplaceAll(Title(name), " ", "")
}

// Words turns a requirement key into prose: "data-query-items-stations"
// becomes "data query items stations".
func Words(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "-", " "), "_", " ")
}
