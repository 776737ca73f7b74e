package collab

import (
	"fmt"
	"time"
)

// TimeoutError reports that a collaborator call exceeded its deadline. The
// engine recovers from it with the local fallback.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("collaborator timeout: %s exceeded %s: %v", e.Op, e.Timeout, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// ParseError reports that the collaborator returned content the engine could
// not decode, even after repair.
type ParseError struct {
	Op      string
	Content string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("collaborator parse error in %s: %v", e.Op, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
