// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"

	"github.com/pdiddy/profile-engine/internal/ident"
	"github.com/pdiddy/profile-engine/internal/textutil"
	"github.com/pdiddy/profile-engine/pkg/types"
)

// section is one narrative file under sections/.
type section struct {
	Name    string
	Content string
}

// mainDocument renders the top-level AsciiDoc file. Its include list is
// the complete ordered section set; the sections in turn include every
// requirement and test fragment.
func mainDocument(cfg *types.Configuration, sections []section) string {
	title := cfg.ProfileTitle
	if title == "" {
		title = textutil.Title(cfg.ProfileName)
	}
	editor := cfg.Author
	if editor == "" {
		editor = "Editor Name (Organization)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "= OGC API-Environmental Data Retrieval - Part 3: %s\n", title)
	b.WriteString(`:doctype: best-practice
:encoding: utf-8
:lang: en
:status: published
:committee: technical
:draft: 1.0
:external-id: http://www.opengis.net/doc/spec/ogcapi-edr-3/1.0
:received-date:
:issued-date:
:published-date:
`)
	fmt.Fprintf(&b, ":fullname: %s\n", editor)
	b.WriteString(":docsubtype: general\n")
	fmt.Fprintf(&b, ":keywords: ogcdoc, OGC document, API, openapi, html, profile, %s\n", strings.ToLower(title))
	b.WriteString(`:submitting-organizations: Organization Name
:mn-document-class: ogc
:mn-output-extensions: xml,html,doc,pdf
:local-cache-only:
:data-uri-image:
`)
	fmt.Fprintf(&b, ":html-uri: ./%s_profile.html\n", cfg.ProfileName)
	fmt.Fprintf(&b, ":pdf-uri: ./%s_profile.pdf\n", cfg.ProfileName)
	fmt.Fprintf(&b, ":xml-uri: ./%s_profile.xml\n", cfg.ProfileName)
	fmt.Fprintf(&b, ":doc-uri: ./%s_profile.doc\n", cfg.ProfileName)
	b.WriteString(":edition: 1.0\n")

	for _, s := range sections {
		fmt.Fprintf(&b, "\ninclude::sections/%s[]\n", s.Name)
	}
	return b.String()
}

// narrativeSections renders the ordered clause and annex files.
func narrativeSections(cfg *types.Configuration, reqs []types.Requirement, tests []types.AbstractTest) []section {
	title := cfg.ProfileTitle
	if title == "" {
		title = textutil.Title(cfg.ProfileName)
	}
	lower := strings.ToLower(title)

	return []section{
		{"clause_0_front_material.adoc", frontMaterial(title)},
		{"clause_1_scope.adoc", fmt.Sprintf(`== Scope

This profile extends OGC API - Environmental Data Retrieval (EDR) Part 1 for %s applications.

The profile defines:

* Collection structure for %s data
* Query patterns and parameters
* Response formats and schemas
`, lower, lower)},
		{"clause_2_conformance.adoc", fmt.Sprintf(`== Conformance

Conformance to the %s (this document) can be tested by inspection. The test suite is provided in <<annex-a>>.

This Standard contains normative language and thus places requirements on conformance, or mechanism for adoption, of candidate standards to which this Standard applies. In particular:

* <<core-section,OGC API-EDR Requirements Class: Core>> specifies the core requirements which shall be met by all standards claiming conformance to this Standard.
`, title)},
		{"clause_3_references.adoc", `[bibliography]
== Normative References

The following normative documents contain provisions that, through reference in this text, constitute provisions of this document.

* [[[ogc19-086,OGC 19-086r6]]], OGC API - Environmental Data Retrieval Standard - Part 1: Core
`},
		{"clause_4_terms_and_definitions.adoc", `== Terms and Definitions

For the purposes of this document, the terms and definitions given in OGC API - EDR Part 1 apply.
`},
		{"clause_5_conventions.adoc", fmt.Sprintf(`== Conventions

This document uses the standard conventions defined in OGC API - Common.

=== Identifiers

The normative provisions in this standard are denoted by the URI:

`+"`%s`\n", ident.SpecBaseURI)},
		{"clause_6_context.adoc", fmt.Sprintf(`== Context

=== Overview

This profile addresses %s use cases requiring standardized access to environmental data.
`, lower)},
		{fmt.Sprintf("clause_7_%s.adoc", cfg.ProfileName), coreClause(cfg, title, lower, reqs)},
		{"annex-a.adoc", annexA(tests)},
		{"annex-history.adoc", `[appendix]
== Revision History

.Revision History
[width="90%",options="header"]
|===
|Date |Release |Editor | Primary clauses modified |Description
|2024-XX-XX |0.1 |Editor Name |all |initial version
|===
`},
		{"annex-bibliography.adoc", `[bibliography]
== Bibliography

* [[[asyncapi,AsyncAPI]]], AsyncAPI Specification. https://www.asyncapi.com/
* [[[ogc-edr,OGC EDR]]], OGC API - EDR. https://ogcapi.ogc.org/edr/
`},
	}
}

func frontMaterial(title string) string {
	const patentNote = "Attention is drawn to the possibility that some of the elements of this document may be the subject of patent rights. The Open Geospatial Consortium shall not be held responsible for identifying any or all such patent rights.\n\nRecipients of this document are requested to submit, with their comments, notification of any relevant patent claims or other intellectual property rights of which they may be aware that might be infringed by any implementation of the standard set forth in this document, and to provide supporting documentation."

	return fmt.Sprintf(`.Preface

%s

[abstract]
== Abstract

The aim of the %s service profile is to provide a standard interface for accessing %s data based on OGC API-EDR standard.

== Preface

[NOTE]
%s

== Security considerations

No security considerations have been made for this Service Profile.

== Submitters

All questions regarding this submission should be directed to the editor or the submitters:

.Submitters
|===
|*Editor Name* |*Organization Name*
|===

== Contributors

Additional contributors to this Profile include the following:

Individual name(s), Organization
`, patentNote, title, strings.ToLower(title), patentNote)
}

// coreClause renders clause 7: collections overview plus the include list
// of every requirement fragment, in canonical order.
func coreClause(cfg *types.Configuration, title, lower string, reqs []types.Requirement) string {
	var collections strings.Builder
	for _, coll := range cfg.Collections {
		fmt.Fprintf(&collections, "==== %s\n\nQuery types: %s\n\n",
			coll.Name, strings.Join(coll.QueryTypes, ", "))
		if len(coll.Formats) > 0 {
			fmt.Fprintf(&collections, "Output formats: %s\n\n", strings.Join(coll.Formats, ", "))
		}
	}

	var includes strings.Builder
	for _, req := range reqs {
		fmt.Fprintf(&includes, "include::../requirements/core/REQ_%s.adoc[]\n\n", req.Key)
	}

	return fmt.Sprintf(`[[core-section]]
== %s

include::../requirements/requirements_class_core.adoc[]

=== Overview

This profile extends OGC API - EDR Part 1 to support %s data access patterns.

=== Collections

This profile defines the following collections:

%s=== Requirements

%s=== Platform Resources

OGC API — Common defines a set of common capabilities which are applicable to any OGC Web API.

.Platform Resource Paths
[width="100%%",options="header,footer"]
|====================
|PATH TEMPLATE |METHOD |RESOURCE
|{{root}}/ |GET |Landing page
|{{root}}/api |GET |API Description
|{{root}}/conformance |GET |Conformance Classes
|====================

=== General Requirements

==== HTTP Status Codes

HTTP response status codes SHALL conform to OGC API - Common standards.

==== Links

Response links SHALL conform to OGC API - Common standards.
`, title, lower, collections.String(), includes.String())
}

// annexA renders the normative test suite annex including the conformance
// class and every test fragment.
func annexA(tests []types.AbstractTest) string {
	var includes strings.Builder
	for _, test := range tests {
		fmt.Fprintf(&includes, "include::../abstract_tests/core/ATS_%s.adoc[]\n", test.Key)
	}

	return fmt.Sprintf(`[[annex-a]]
[appendix]
== Conformance Class Abstract Test Suite (Normative)

=== Conformance Class Core

include::../abstract_tests/ATS_class_core.adoc[]

%s`, includes.String())
}
