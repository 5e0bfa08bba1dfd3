package gateway

import "fmt"

// MalformedStepError reports an observed step whose uses value cannot be
// split into name@reference. Malformed steps are never silently skipped.
type MalformedStepError struct {
	// Index is the step's position in the observed list, zero-based.
	Index int

	// Uses is the offending value.
	Uses string
}

func (e *MalformedStepError) Error() string {
	return fmt.Sprintf("step %d: uses %q is not of the form name@reference", e.Index, e.Uses)
}
