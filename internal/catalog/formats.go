// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// formats maps each supported output-format label to its requirement
// template parts.
var formats = map[string]FormatEntry{
	"GeoJSON": {
		Name: "GeoJSON",
		Parts: []string{
			"A format with the label json SHALL provide GeoJSON output",
			"The GeoJSON output SHALL include standard GeoJSON properties: type, features, geometry, properties, and id",
			"The GeoJSON output SHALL include pagination metadata: numberMatched, numberReturned, and links array",
		},
	},
	"CoverageJSON": {
		Name: "CoverageJSON",
		Parts: []string{
			"A format with the label covjson SHALL provide CoverageJSON output conforming to the CoverageJSON specification",
		},
	},
	"CSV": {
		Name: "CSV",
		Parts: []string{
			"A format with the label csv SHALL provide CSV output with appropriate headers",
		},
	},
	"NetCDF": {
		Name: "NetCDF",
		Parts: []string{
			"A format with the label netcdf SHALL provide NetCDF output conforming to CF conventions",
		},
	},
	"GRIB": {
		Name: "GRIB",
		Parts: []string{
			"A format with the label grib SHALL provide GRIB2 output conforming to WMO GRIB2 specification",
		},
	},
	"GRIB2": {
		Name: "GRIB2",
		Parts: []string{
			"A format with the label grib SHALL provide GRIB2 output conforming to WMO GRIB2 specification",
		},
	},
	"Zarr": {
		Name: "Zarr",
		Parts: []string{
			"A format with the label zarr SHALL provide Zarr output conforming to Zarr specification",
		},
	},
}
