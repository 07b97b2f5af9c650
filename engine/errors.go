package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine package; branch via errors.Is.
var (
	// ErrWrongState indicates an operation was requested while the
	// engine was in a state that does not permit it (spec.md §7
	// StateError — e.g. run() while already RUNNING).
	ErrWrongState = errors.New("engine: invalid state for requested operation")

	// ErrBarrierTimeout indicates a pooled-engine phase barrier
	// elapsed before every worker reported completion (spec.md §7
	// InternalBarrierTimeout). The engine transitions to ERROR.
	ErrBarrierTimeout = errors.New("engine: phase barrier timed out")
)

// ComponentError wraps a panic or error recovered from one
// component's SimulateLogic call (spec.md §7 TransientComponentError).
// It is counted in Statistics.ComponentErrors and logged, never
// propagated to the caller of Run.
type ComponentError struct {
	ComponentID string
	Err         error
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("engine: component %s: %v", e.ComponentID, e.Err)
}

func (e *ComponentError) Unwrap() error { return e.Err }
