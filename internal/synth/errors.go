// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"

	"github.com/pdiddy/profile-engine/pkg/types"
)

// DuplicateIdentifierError reports two distinct concerns mapping to the
// same requirement identifier. The identifier scheme is collision-free by
// construction, so hitting this indicates a synthesizer bug rather than
// bad input.
type DuplicateIdentifierError struct {
	ID types.RequirementID
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate requirement identifier %q", e.ID)
}

// DanglingReferenceError reports a reference whose target does not exist
// in the current run: an abstract test targeting a missing requirement, or
// an API schema pointing at a missing event channel.
type DanglingReferenceError struct {
	// Source identifies the referring artifact.
	Source string

	// Target is the identifier that failed to resolve.
	Target string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s references %q, which does not exist in this run", e.Source, e.Target)
}
