// Package synthesis orchestrates a full synthesis run: validation, theme
// reconciliation, categorization, Johari construction, narrative composition
// and scoring, assembled into one immutable CareerSynthesis. The package
// guarantees the always-succeeds contract: callers receive either a complete
// result or a complete, clearly marked fallback result, never an error from
// the analysis itself.
package synthesis

import "fmt"

// ValidationError reports unusable input (an empty response list). It is
// fatal to the run and triggers the fallback path; it is never surfaced to
// the end caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("synthesis validation failed: %s", e.Message)
}

// InternalComputationError wraps an unexpected failure (including a
// recovered panic) inside one of the computation stages. It is caught at the
// assembler boundary and converted to a fallback synthesis.
type InternalComputationError struct {
	Stage string
	Cause error
}

func (e *InternalComputationError) Error() string {
	return fmt.Sprintf("internal computation error in %s: %v", e.Stage, e.Cause)
}

func (e *InternalComputationError) Unwrap() error {
	return e.Cause
}
