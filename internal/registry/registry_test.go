// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"errors"
	"testing"
)

func openTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func sampleRun() Run {
	return Run{
		Name:         "weather-stations",
		Title:        "Weather Stations",
		Dir:          "/tmp/weather-stations",
		Requirements: 4,
		Tests:        4,
		Files:        []string{"openapi.yaml", "profile_config.yml", "weather-stations_profile.adoc"},
	}
}

func TestRecordAndShow(t *testing.T) {
	ctx := context.Background()
	r := openTestRegistry(t)

	runID, err := r.Record(ctx, sampleRun())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if runID == "" {
		t.Error("empty run ID")
	}

	entry, err := r.Show(ctx, "weather-stations")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if entry.Title != "Weather Stations" || entry.RunID != runID {
		t.Errorf("entry = %+v", entry)
	}
	if entry.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not recorded")
	}
	if len(entry.Files) != 3 || entry.Files[0] != "openapi.yaml" {
		t.Errorf("Files = %v", entry.Files)
	}
}

func TestRecordReplacesPreviousRun(t *testing.T) {
	ctx := context.Background()
	r := openTestRegistry(t)

	first, err := r.Record(ctx, sampleRun())
	if err != nil {
		t.Fatalf("first record: %v", err)
	}

	run := sampleRun()
	run.Requirements = 6
	run.Tests = 6
	run.Files = []string{"openapi.yaml", "asyncapi.yaml"}
	second, err := r.Record(ctx, run)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if first == second {
		t.Error("run IDs should differ across runs")
	}

	entry, err := r.Show(ctx, "weather-stations")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if entry.Requirements != 6 {
		t.Errorf("Requirements = %d, want 6", entry.Requirements)
	}
	if len(entry.Files) != 2 {
		t.Errorf("Files = %v, want replaced list", entry.Files)
	}

	entries, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("list length = %d, want 1", len(entries))
	}
}

func TestListOrdersByName(t *testing.T) {
	ctx := context.Background()
	r := openTestRegistry(t)

	for _, name := range []string{"marine-traffic", "air-quality"} {
		run := sampleRun()
		run.Name = name
		if _, err := r.Record(ctx, run); err != nil {
			t.Fatalf("record %s: %v", name, err)
		}
	}

	entries, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "air-quality" || entries[1].Name != "marine-traffic" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestShowUnknownProfile(t *testing.T) {
	r := openTestRegistry(t)

	_, err := r.Show(context.Background(), "absent")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if notFound.Name != "absent" {
		t.Errorf("Name = %q", notFound.Name)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	r := openTestRegistry(t)

	if _, err := r.Record(ctx, sampleRun()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := r.Remove(ctx, "weather-stations"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	var notFound *NotFoundError
	if _, err := r.Show(ctx, "weather-stations"); !errors.As(err, &notFound) {
		t.Errorf("show after remove = %v, want *NotFoundError", err)
	}
	if err := r.Remove(ctx, "weather-stations"); !errors.As(err, &notFound) {
		t.Errorf("second remove = %v, want *NotFoundError", err)
	}
}
