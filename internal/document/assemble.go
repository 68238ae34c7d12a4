// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/profile-engine/internal/catalog"
	"github.com/pdiddy/profile-engine/internal/fileset"
	"github.com/pdiddy/profile-engine/internal/synth"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// includePattern matches AsciiDoc include directives.
var includePattern = regexp.MustCompile(`include::([^\[\]]+)\[\]`)

// placeholders that must never survive into rendered output.
var placeholders = []string{
	catalog.PlaceholderCollection,
	catalog.PlaceholderProperties,
}

// Assemble renders the complete narrative document set for one synthesis
// run: every requirement and test fragment, the requirements and
// conformance class files, the narrative sections, and the top-level
// document. Before returning, it verifies that the document's transitive
// include list is exactly the generated fragment set and that no rendered
// file carries an unresolved template placeholder.
func Assemble(cfg *types.Configuration, a *synth.Artifacts) (*fileset.Set, error) {
	profile := cfg.ProfileName
	reqs := a.Requirements()
	tests := a.Tests()

	out := fileset.New()

	for _, req := range reqs {
		out.Add(path.Join("requirements", "core", fmt.Sprintf("REQ_%s.adoc", req.Key)),
			[]byte(RenderRequirement(profile, req)))
	}
	out.Add("requirements/requirements_class_core.adoc",
		[]byte(RenderRequirementsClass(profile, reqs)))

	for _, test := range tests {
		out.Add(path.Join("abstract_tests", "core", fmt.Sprintf("ATS_%s.adoc", test.Key)),
			[]byte(RenderTest(profile, test)))
	}
	out.Add("abstract_tests/ATS_class_core.adoc",
		[]byte(RenderConformanceClass(profile, tests)))

	sections := narrativeSections(cfg, reqs, tests)
	for _, s := range sections {
		out.Add(path.Join("sections", s.Name), []byte(s.Content))
	}

	rootDoc := fmt.Sprintf("%s_profile.adoc", profile)
	out.Add(rootDoc, []byte(mainDocument(cfg, sections)))

	if err := checkPlaceholders(out); err != nil {
		return nil, err
	}
	if err := checkIncludes(out, rootDoc); err != nil {
		return nil, err
	}
	return out, nil
}

// checkPlaceholders scans every rendered file for leftover substitution
// markers.
func checkPlaceholders(out *fileset.Set) error {
	for _, f := range out.Files() {
		content := string(f.Content)
		for _, marker := range placeholders {
			if strings.Contains(content, marker) {
				return &UnresolvedPlaceholderError{Path: f.Path, Marker: marker}
			}
		}
	}
	return nil
}

// checkIncludes verifies the include-completeness invariant: every
// generated AsciiDoc file except the top-level document is referenced by
// an include directive, and every include directive resolves to a file
// generated this run.
func checkIncludes(out *fileset.Set, rootDoc string) error {
	generated := make(map[string]bool)
	for _, p := range out.PathsWithSuffix(".adoc") {
		if p != rootDoc {
			generated[p] = true
		}
	}

	referenced := make(map[string]bool)
	for _, f := range out.Files() {
		if !strings.HasSuffix(f.Path, ".adoc") {
			continue
		}
		for _, m := range includePattern.FindAllStringSubmatch(string(f.Content), -1) {
			target := path.Clean(path.Join(path.Dir(f.Path), m[1]))
			referenced[target] = true
		}
	}

	var orphaned, missing []string
	for p := range generated {
		if !referenced[p] {
			orphaned = append(orphaned, p)
		}
	}
	for p := range referenced {
		if !generated[p] {
			missing = append(missing, p)
		}
	}
	if len(orphaned) > 0 || len(missing) > 0 {
		sort.Strings(orphaned)
		sort.Strings(missing)
		return &IncludeMismatchError{Orphaned: orphaned, Missing: missing}
	}
	return nil
}
