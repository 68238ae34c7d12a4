// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"
)

// IncludeMismatchError reports a disagreement between the set of generated
// fragment files and the set of files the assembled document includes.
// Orphaned files were generated but never referenced; missing files are
// referenced but were not generated this run.
type IncludeMismatchError struct {
	Orphaned []string
	Missing  []string
}

func (e *IncludeMismatchError) Error() string {
	var b strings.Builder
	b.WriteString("document include list does not match generated files")
	if len(e.Orphaned) > 0 {
		fmt.Fprintf(&b, "; orphaned (generated, never included): %s", strings.Join(e.Orphaned, ", "))
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing (included, never generated): %s", strings.Join(e.Missing, ", "))
	}
	return b.String()
}

// UnresolvedPlaceholderError reports a rendered file still carrying a
// template substitution marker.
type UnresolvedPlaceholderError struct {
	Path   string
	Marker string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("rendered file %s contains unresolved placeholder %s", e.Path, e.Marker)
}
