// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/pdiddy/profile-engine/internal/synth"
	"github.com/pdiddy/profile-engine/pkg/types"
)

func stationsConfig() *types.Configuration {
	return &types.Configuration{
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
	}
}

func mustSynthesize(t *testing.T, cfg *types.Configuration) *synth.Artifacts {
	t.Helper()
	a, err := synth.Synthesize(cfg)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return a
}

func TestRenderRequirementGolden(t *testing.T) {
	cfg := stationsConfig()
	a := mustSynthesize(t, cfg)

	g := goldie.New(t)
	g.Assert(t, "requirement_openapi", []byte(RenderRequirement(cfg.ProfileName, a.Pairs[0].Requirement)))
}

func TestRenderTestGolden(t *testing.T) {
	cfg := stationsConfig()
	a := mustSynthesize(t, cfg)

	g := goldie.New(t)
	g.Assert(t, "abstract_test_openapi", []byte(RenderTest(cfg.ProfileName, a.Pairs[0].Test)))
}

func TestAssembleFileInventory(t *testing.T) {
	cfg := stationsConfig()
	out, err := Assemble(cfg, mustSynthesize(t, cfg))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := []string{
		"requirements/core/REQ_openapi.adoc",
		"requirements/core/REQ_collection-stations.adoc",
		"requirements/core/REQ_data-query-items-stations.adoc",
		"requirements/core/REQ_output-format-geojson-stations.adoc",
		"requirements/requirements_class_core.adoc",
		"abstract_tests/core/ATS_openapi.adoc",
		"abstract_tests/core/ATS_collection-stations.adoc",
		"abstract_tests/core/ATS_data-query-items-stations.adoc",
		"abstract_tests/core/ATS_output-format-geojson-stations.adoc",
		"abstract_tests/ATS_class_core.adoc",
		"weather-stations_profile.adoc",
	}
	for _, p := range want {
		if _, ok := out.Get(p); !ok {
			t.Errorf("missing generated file %s", p)
		}
	}
}

func TestAssembleDeterministic(t *testing.T) {
	cfg := stationsConfig()
	a := mustSynthesize(t, cfg)

	out1, err := Assemble(cfg, a)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	out2, err := Assemble(cfg, a)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	files1, files2 := out1.Files(), out2.Files()
	if len(files1) != len(files2) {
		t.Fatalf("file counts differ: %d vs %d", len(files1), len(files2))
	}
	for i := range files1 {
		if files1[i].Path != files2[i].Path {
			t.Errorf("path order differs at %d: %q vs %q", i, files1[i].Path, files2[i].Path)
		}
		if !bytes.Equal(files1[i].Content, files2[i].Content) {
			t.Errorf("content differs for %s", files1[i].Path)
		}
	}
}

func TestAssembleIncludesEveryFragment(t *testing.T) {
	cfg := stationsConfig()
	cfg.IncludeMessaging = true
	cfg.Filters = []types.Filter{{Name: "vessel_type", Type: types.FilterString}}

	out, err := Assemble(cfg, mustSynthesize(t, cfg))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	clause7, ok := out.Get("sections/clause_7_weather-stations.adoc")
	if !ok {
		t.Fatal("missing clause 7")
	}
	if !strings.Contains(string(clause7), "include::../requirements/core/REQ_filter-vessel-type.adoc[]") {
		t.Error("clause 7 does not include the filter requirement")
	}

	annex, ok := out.Get("sections/annex-a.adoc")
	if !ok {
		t.Fatal("missing annex A")
	}
	if !strings.Contains(string(annex), "include::../abstract_tests/core/ATS_asyncapi.adoc[]") {
		t.Error("annex A does not include the asyncapi test")
	}
}

func TestCheckIncludesDetectsOrphan(t *testing.T) {
	cfg := stationsConfig()
	out, err := Assemble(cfg, mustSynthesize(t, cfg))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	// A fragment nothing references must fail the symmetric-difference check.
	out.Add("requirements/core/REQ_stray.adoc", []byte("[[stray]]\n"))
	err = checkIncludes(out, "weather-stations_profile.adoc")
	var mismatch *IncludeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *IncludeMismatchError", err)
	}
	if len(mismatch.Orphaned) != 1 || mismatch.Orphaned[0] != "requirements/core/REQ_stray.adoc" {
		t.Errorf("Orphaned = %v", mismatch.Orphaned)
	}
	if !strings.Contains(err.Error(), "REQ_stray") {
		t.Errorf("error %q does not name the orphaned file", err)
	}
}

func TestCheckPlaceholdersDetectsLeftoverMarker(t *testing.T) {
	cfg := stationsConfig()
	out, err := Assemble(cfg, mustSynthesize(t, cfg))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	out.Add("requirements/core/REQ_openapi.adoc", []byte("part:: The {collection} SHALL exist\n"))
	err = checkPlaceholders(out)
	var unresolved *UnresolvedPlaceholderError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error = %v, want *UnresolvedPlaceholderError", err)
	}
	if unresolved.Marker != "{collection}" {
		t.Errorf("Marker = %q", unresolved.Marker)
	}
}

func TestMainDocumentGolden(t *testing.T) {
	cfg := stationsConfig()
	a := mustSynthesize(t, cfg)
	sections := narrativeSections(cfg, a.Requirements(), a.Tests())

	g := goldie.New(t)
	g.Assert(t, "main_document", []byte(mainDocument(cfg, sections)))
}
