// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/profile-engine/internal/profile"
	"github.com/pdiddy/profile-engine/internal/synth"
	"github.com/pdiddy/profile-engine/pkg/types"
)

func marineConfig() *types.Configuration {
	return &types.Configuration{
		ProfileName:  "marine-traffic",
		ProfileTitle: "Marine Traffic",
		Author:       "Editor Name",
		Email:        "editor@example.com",
		Collections: []types.Collection{
			{
				Name:       "vessels",
				QueryTypes: []string{"items", "position"},
				Formats:    []string{"GeoJSON"},
				Properties: []string{"mmsi", "speed_over_ground"},
			},
		},
		IncludeMessaging: true,
		Filters: []types.Filter{
			{Name: "vessel_type", Description: "vessel category", Type: types.FilterString},
		},
	}
}

func TestRunWritesCompleteProfile(t *testing.T) {
	out := t.TempDir()

	result, err := Run(marineConfig(), Options{OutputDir: out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Dir != filepath.Join(out, "marine-traffic") {
		t.Errorf("Dir = %s", result.Dir)
	}
	if result.Requirements == 0 || result.Requirements != result.Tests {
		t.Errorf("counts = %d requirements, %d tests", result.Requirements, result.Tests)
	}

	for _, rel := range []string{
		"marine-traffic_profile.adoc",
		"openapi.yaml",
		"asyncapi.yaml",
		"profile_config.yml",
		"Makefile",
		"README.md",
		filepath.Join("requirements", "core", "REQ_openapi.adoc"),
		filepath.Join("abstract_tests", "core", "ATS_openapi.adoc"),
	} {
		if _, err := os.Stat(filepath.Join(result.Dir, rel)); err != nil {
			t.Errorf("missing artifact %s: %v", rel, err)
		}
	}
}

func TestRunInvalidConfigWritesNothing(t *testing.T) {
	out := t.TempDir()
	cfg := marineConfig()
	cfg.Collections[0].QueryTypes = []string{"speed"}

	if _, err := Run(cfg, Options{OutputDir: out}); err == nil {
		t.Fatal("expected error for unknown query type")
	}

	if _, err := os.Stat(filepath.Join(out, "marine-traffic")); !os.IsNotExist(err) {
		t.Error("failed run left output behind")
	}
}

func TestRunRefusesExistingProfileDir(t *testing.T) {
	out := t.TempDir()
	if _, err := Run(marineConfig(), Options{OutputDir: out}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	_, err := Run(marineConfig(), Options{OutputDir: out})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second run error = %v, want refusal", err)
	}

	if _, err := Run(marineConfig(), Options{OutputDir: out, Overwrite: true}); err != nil {
		t.Errorf("overwrite run: %v", err)
	}
}

// Regenerating from the persisted configuration of a previous run must
// reproduce every artifact byte for byte.
func TestRegenerateFromPersistedForm(t *testing.T) {
	out := t.TempDir()

	first, err := Run(marineConfig(), Options{OutputDir: out})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	persisted, err := profile.Load(filepath.Join(first.Dir, profile.ConfigFileName))
	if err != nil {
		t.Fatalf("loading persisted form: %v", err)
	}

	second, err := Run(persisted, Options{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(first.Files) != len(second.Files) {
		t.Fatalf("file counts differ: %d vs %d", len(first.Files), len(second.Files))
	}
	for i, rel := range first.Files {
		if second.Files[i] != rel {
			t.Fatalf("file lists diverge at %s vs %s", rel, second.Files[i])
		}
		a, err := os.ReadFile(filepath.Join(first.Dir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second.Dir, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("artifact %s differs between runs", rel)
		}
	}
}

// Edited requirement text in the persisted form survives regeneration.
func TestRegenerateKeepsEditedRequirements(t *testing.T) {
	cfg := marineConfig()
	artifacts, err := synth.Synthesize(cfg)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	cfg.Requirements = artifacts.Requirements()
	cfg.Tests = artifacts.Tests()
	cfg.Requirements[0].Statement = "The server SHALL comply with the amended statement."

	first, err := Run(cfg, Options{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	fragment := filepath.Join(first.Dir, "requirements", "core",
		"REQ_"+cfg.Requirements[0].Key+".adoc")
	data, err := os.ReadFile(fragment)
	if err != nil {
		t.Fatalf("reading fragment: %v", err)
	}
	if !strings.Contains(string(data), "amended statement") {
		t.Error("edited statement missing from regenerated fragment")
	}
}
