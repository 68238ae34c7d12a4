// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apispec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-engine/pkg/types"
)

func stationsConfig(messaging bool) *types.Configuration {
	cfg := &types.Configuration{
		ProfileName:  "weather-stations",
		ProfileTitle: "Weather Stations",
		Collections: []types.Collection{
			{
				Name:       "stations",
				QueryTypes: []string{"items"},
				Formats:    []string{"GeoJSON"},
				Properties: []string{"station_id", "temperature"},
			},
		},
		IncludeMessaging: messaging,
	}
	if messaging {
		cfg.Filters = []types.Filter{
			{Name: "vessel_type", Description: "vessel category", Type: types.FilterString},
		}
	}
	return cfg
}

func decodeYAML(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	return doc
}

func TestGenerateWithoutMessaging(t *testing.T) {
	out, err := Generate(stationsConfig(false))
	require.NoError(t, err)

	_, ok := out.Get(OpenAPIFile)
	assert.True(t, ok, "openapi.yaml should be generated")
	_, ok = out.Get(AsyncAPIFile)
	assert.False(t, ok, "asyncapi.yaml should not be generated without messaging")
}

func TestOpenAPIPaths(t *testing.T) {
	out, err := Generate(stationsConfig(false))
	require.NoError(t, err)

	data, _ := out.Get(OpenAPIFile)
	doc := decodeYAML(t, data)

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/collections/stations")
	assert.Contains(t, paths, "/collections/stations/items")
	assert.Contains(t, paths, "/collections/stations/items/{featureId}")
	assert.Len(t, paths, 3)
}

func TestOpenAPINonItemsPaths(t *testing.T) {
	cfg := stationsConfig(false)
	cfg.Collections[0].QueryTypes = []string{"position", "locations"}

	out, err := Generate(cfg)
	require.NoError(t, err)

	data, _ := out.Get(OpenAPIFile)
	doc := decodeYAML(t, data)
	paths := doc["paths"].(map[string]any)

	assert.Contains(t, paths, "/collections/stations/position")
	assert.Contains(t, paths, "/collections/stations/locations")
	assert.Contains(t, paths, "/collections/stations/locations/{locationId}")
}

func TestEntitySchemaProperties(t *testing.T) {
	out, err := Generate(stationsConfig(false))
	require.NoError(t, err)

	data, _ := out.Get(OpenAPIFile)
	doc := decodeYAML(t, data)

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	require.Contains(t, schemas, "StationsFeature")

	feature := schemas["StationsFeature"].(map[string]any)
	assert.NotContains(t, feature, "x-ogc-edr-weather-stations-pubsub")

	props := feature["properties"].(map[string]any)["properties"].(map[string]any)["properties"].(map[string]any)
	assert.Contains(t, props, "station_id")
	assert.Contains(t, props, "temperature")
}

func TestAsyncAPIChannelAndFilters(t *testing.T) {
	out, err := Generate(stationsConfig(true))
	require.NoError(t, err)

	data, ok := out.Get(AsyncAPIFile)
	require.True(t, ok, "asyncapi.yaml should be generated with messaging")
	doc := decodeYAML(t, data)

	channels := doc["channels"].(map[string]any)
	require.Contains(t, channels, "stations_notifications")

	ch := channels["stations_notifications"].(map[string]any)
	assert.Equal(t, "collections/stations/items/#", ch["address"])

	filters := ch["x-ogc-subscription"].(map[string]any)["filters"].([]any)
	require.Len(t, filters, 1)
	f := filters[0].(map[string]any)
	assert.Equal(t, "vessel_type", f["name"])
	assert.Equal(t, map[string]any{"type": "string"}, f["schema"])
}

func TestCrossLinkPointer(t *testing.T) {
	out, err := Generate(stationsConfig(true))
	require.NoError(t, err)

	openapiData, _ := out.Get(OpenAPIFile)
	openapi := decodeYAML(t, openapiData)
	feature := openapi["components"].(map[string]any)["schemas"].(map[string]any)["StationsFeature"].(map[string]any)

	pubsub, ok := feature["x-ogc-edr-weather-stations-pubsub"].(map[string]any)
	require.True(t, ok, "entity schema should carry the pubsub pointer")
	channelRef := pubsub["channel"].(string)

	asyncapiData, _ := out.Get(AsyncAPIFile)
	asyncapi := decodeYAML(t, asyncapiData)
	channels := asyncapi["channels"].(map[string]any)
	assert.Contains(t, channels, channelRef, "pointer target must exist in the event-channel document")
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := stationsConfig(true)

	out1, err := Generate(cfg)
	require.NoError(t, err)
	out2, err := Generate(cfg)
	require.NoError(t, err)

	for _, f := range out1.Files() {
		other, ok := out2.Get(f.Path)
		require.True(t, ok)
		assert.Equal(t, string(f.Content), string(other), "rendered %s differs between runs", f.Path)
	}
}

func TestFilterValueSchema(t *testing.T) {
	tests := []struct {
		name   string
		filter types.Filter
		want   map[string]any
	}{
		{"string", types.Filter{Type: types.FilterString}, map[string]any{"type": "string"}},
		{"number", types.Filter{Type: types.FilterNumber}, map[string]any{"type": "number"}},
		{
			"enum",
			types.Filter{Type: types.FilterEnum, Values: []string{"gale", "storm"}},
			map[string]any{"type": "string", "enum": []any{"gale", "storm"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterValueSchema(tt.filter))
		})
	}
}
