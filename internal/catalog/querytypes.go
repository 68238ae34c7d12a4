// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// queryTypes maps each supported EDR query-type identifier to its
// requirement and test templates. {collection} is substituted with the
// collection name at synthesis time.
var queryTypes = map[string]QueryTypeEntry{
	"items": {
		Name:      "items",
		Statement: "{collection} items query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/items endpoint",
			"The Items query SHALL return GeoJSON FeatureCollection formatted data",
			"The Items query SHALL support GET method",
			"Each Feature SHALL contain the required properties defined in the profile",
			"The service SHALL provide a /collections/{collection}/items/{featureId} endpoint for individual items",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/items",
			"Verify response is valid GeoJSON FeatureCollection",
			"Verify response contains required properties",
			"Send GET request to /collections/{collection}/items/{featureId}",
			"Verify response is valid GeoJSON Feature",
		},
	},
	"position": {
		Name:      "position",
		Statement: "{collection} position query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/position endpoint",
			"The Position query SHALL accept coords parameter with POINT geometry",
			"The Position query SHALL support datetime parameter",
			"The response SHALL return data for the specified position",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/position with coords parameter",
			"Verify response contains data for the specified position",
			"Verify datetime parameter is supported",
		},
	},
	"area": {
		Name:      "area",
		Statement: "{collection} area query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/area endpoint",
			"The Area query SHALL accept coords parameter with POLYGON or MULTIPOLYGON geometry",
			"The Area query SHALL support datetime parameter",
			"The response SHALL return data within the specified area",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/area with coords parameter",
			"Verify response contains data within the specified area",
			"Verify POLYGON and MULTIPOLYGON geometries are supported",
		},
	},
	"radius": {
		Name:      "radius",
		Statement: "{collection} radius query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/radius endpoint",
			"The Radius query SHALL accept coords parameter with POINT geometry",
			"The Radius query SHALL accept within and within-units parameters",
			"The Radius query SHALL support datetime parameter",
			"The response SHALL return data within the specified radius",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/radius with coords, within, and within-units parameters",
			"Verify response contains data within the specified radius",
			"Verify datetime parameter is supported",
		},
	},
	"cube": {
		Name:      "cube",
		Statement: "{collection} cube query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/cube endpoint",
			"The Cube query SHALL accept bbox parameter",
			"The Cube query SHALL support datetime and z parameters",
			"The response SHALL return data within the specified cube",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/cube with bbox parameter",
			"Verify response contains data within the specified cube",
			"Verify datetime and z parameters are supported",
		},
	},
	"trajectory": {
		Name:      "trajectory",
		Statement: "{collection} trajectory query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/trajectory endpoint",
			"The Trajectory query SHALL accept coords parameter with LINESTRING geometry",
			"The Trajectory query SHALL support datetime parameter",
			"The response SHALL return data along the specified trajectory",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/trajectory with coords parameter",
			"Verify response contains data along the trajectory",
			"Verify LINESTRING geometry is supported",
		},
	},
	"corridor": {
		Name:      "corridor",
		Statement: "{collection} corridor query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/corridor endpoint",
			"The Corridor query SHALL accept coords and corridor-width parameters",
			"The Corridor query SHALL support datetime parameter",
			"The response SHALL return data within the specified corridor",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/corridor with coords and corridor-width parameters",
			"Verify response contains data within the corridor",
			"Verify datetime parameter is supported",
		},
	},
	"locations": {
		Name:      "locations",
		Statement: "{collection} locations query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/locations endpoint",
			"The Locations query SHALL accept locationId parameter",
			"The Locations query SHALL support datetime parameter",
			"The response SHALL return data for the specified location",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/locations",
			"Verify response lists available locations",
			"Send GET request to /collections/{collection}/locations/{locationId}",
			"Verify response contains data for the specified location",
		},
	},
	"instances": {
		Name:      "instances",
		Statement: "{collection} instances query support",
		Parts: []string{
			"The service SHALL provide a /collections/{collection}/instances endpoint",
			"The Instances endpoint SHALL list available time instances",
			"Each instance SHALL support the same query types as the collection",
		},
		Steps: []string{
			"Send GET request to /collections/{collection}/instances",
			"Verify response lists available time instances",
			"Verify each instance supports the collection's query types",
		},
	},
}
