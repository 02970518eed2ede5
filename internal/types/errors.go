package types

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the operator declines a confirmation gate.
// It is a clean exit (code 0), not an error condition.
var ErrCancelled = errors.New("cancelled by operator")

// ErrToolUnavailable marks a missing external tool (hypervisor CLI, reload
// command). Callers degrade to skip/defer instead of failing.
var ErrToolUnavailable = errors.New("tool unavailable")

// ValidationError reports bad operator input. Recoverable: the collector
// re-prompts instead of aborting.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// PreconditionError reports a fatal condition detected before any mutation
// (missing privilege, missing required file, no detectable interface). The
// filesystem is untouched when it is raised.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// ApplyError reports a failed reload. By the time it is returned the backup
// has already been restored.
type ApplyError struct {
	Reason string
	Err    error
}

func (e *ApplyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("apply failed: %s: %v", e.Reason, e.Err)
	}
	return "apply failed: " + e.Reason
}

func (e *ApplyError) Unwrap() error { return e.Err }
