// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document renders the synthesized artifact graph into the
// normative AsciiDoc dialect and assembles the narrative document that
// includes every generated fragment. Rendering is pure string assembly;
// the package performs no I/O.
package document

import (
	"fmt"
	"strings"

	"github.com/pdiddy/profile-engine/internal/ident"
	"github.com/pdiddy/profile-engine/internal/textutil"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// RenderRequirement renders one requirement fragment.
func RenderRequirement(profile string, req types.Requirement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[[%s]]\n", ident.RequirementAnchor(profile, req.Key))
	b.WriteString("[requirement]\n====\n[%metadata]\n")
	fmt.Fprintf(&b, "identifier:: %s\n", req.ID)
	fmt.Fprintf(&b, "statement:: %s\n", req.Statement)
	for _, part := range req.Parts {
		fmt.Fprintf(&b, "part:: %s\n", part)
	}
	b.WriteString("====\n")
	return b.String()
}

// RenderTest renders one abstract-test fragment.
func RenderTest(profile string, test types.AbstractTest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[[%s]]\n", ident.TestAnchor(profile, test.Key))
	b.WriteString("[abstract_test]\n====\n[%metadata]\n")
	fmt.Fprintf(&b, "identifier:: %s\n", test.ID)
	fmt.Fprintf(&b, "target:: %s\n", test.Target)
	fmt.Fprintf(&b, "test-purpose:: Validate that %s requirement is correctly implemented.\n",
		textutil.Words(test.Key))
	b.WriteString("test-method::\n")
	for _, step := range test.Steps {
		fmt.Fprintf(&b, "step:: %s\n", step)
	}
	b.WriteString("====\n")
	return b.String()
}

// RenderRequirementsClass renders the requirements-class fragment listing
// every requirement of the profile.
func RenderRequirementsClass(profile string, reqs []types.Requirement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[[req_class_%s_core]]\n", flattenAnchor(profile))
	b.WriteString("[requirements_class]\n====\n[%metadata]\n")
	fmt.Fprintf(&b, "identifier:: %s\n", ident.RequirementsClass(profile))
	fmt.Fprintf(&b, "target-type:: %s Profile Standard\n", textutil.Title(profile))
	for _, req := range reqs {
		fmt.Fprintf(&b, "requirement:: %s\n", req.ID)
	}
	b.WriteString("====\n")
	return b.String()
}

// RenderConformanceClass renders the conformance-class fragment listing
// every abstract test of the profile.
func RenderConformanceClass(profile string, tests []types.AbstractTest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[[ats_class_%s_core]]\n", flattenAnchor(profile))
	b.WriteString("[conformance_class]\n====\n[%metadata]\n")
	fmt.Fprintf(&b, "identifier:: %s\n", ident.ConformanceClass(profile))
	fmt.Fprintf(&b, "target:: %s\n", ident.RequirementsClass(profile))
	for _, test := range tests {
		fmt.Fprintf(&b, "abstract-test:: %s\n", test.ID)
	}
	b.WriteString("====\n")
	return b.String()
}

// flattenAnchor keeps class anchors to word characters.
func flattenAnchor(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}
