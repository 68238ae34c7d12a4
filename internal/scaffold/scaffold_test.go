// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/profile-engine/internal/fileset"
	"github.com/pdiddy/profile-engine/pkg/types"
)

func testConfig(messaging bool) *types.Configuration {
	return &types.Configuration{
		ProfileName:  "weather-stations",
		ProfileTitle: "Weather Stations",
		Collections: []types.Collection{
			{Name: "stations", QueryTypes: []string{"items"}, Formats: []string{"GeoJSON"}},
		},
		IncludeMessaging: messaging,
	}
}

func TestSupportingFiles(t *testing.T) {
	out := SupportingFiles(testConfig(false))

	makefile, ok := out.Get("Makefile")
	if !ok {
		t.Fatal("missing Makefile")
	}
	if !strings.Contains(string(makefile), "weather-stations_profile.adoc") {
		t.Error("Makefile does not reference the profile document")
	}

	readme, ok := out.Get("README.md")
	if !ok {
		t.Fatal("missing README.md")
	}
	if !strings.Contains(string(readme), "**stations**") {
		t.Error("README does not list the collection")
	}
	if strings.Contains(string(readme), "asyncapi.yaml") {
		t.Error("README mentions asyncapi.yaml without messaging")
	}

	if _, ok := out.Get("custom_amqp_test/test_asyncapi_amqp.py"); ok {
		t.Error("AMQP script generated without messaging")
	}
}

func TestSupportingFilesWithMessaging(t *testing.T) {
	out := SupportingFiles(testConfig(true))

	var script fileset.File
	for _, f := range out.Files() {
		if f.Path == "custom_amqp_test/test_asyncapi_amqp.py" {
			script = f
		}
	}
	if script.Path == "" {
		t.Fatal("missing AMQP test script")
	}
	if script.Mode != 0o755 {
		t.Errorf("script mode = %o, want 755", script.Mode)
	}
}

func TestWriteRefusesExistingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "weather-stations")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	err := Write(dir, fileset.New(), false)
	if err == nil {
		t.Fatal("expected error for existing directory")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error %q does not mention --force", err)
	}

	if err := Write(dir, fileset.New(), true); err != nil {
		t.Errorf("overwrite should succeed: %v", err)
	}
}

func TestWriteCreatesLayoutAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "weather-stations")

	files := fileset.New()
	files.Add("requirements/core/REQ_openapi.adoc", []byte("content\n"))

	if err := Write(dir, files, false); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, sub := range []string{"requirements/core", "abstract_tests/core", "sections", "examples"} {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(sub)))
		if err != nil || !info.IsDir() {
			t.Errorf("layout directory %s missing", sub)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "requirements", "core", "REQ_openapi.adoc"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "content\n" {
		t.Errorf("content = %q", data)
	}
}
