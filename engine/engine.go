package engine

import (
	"time"

	"github.com/katalvlaran/relaysim/model"
)

// Engine is the capability every simulation driver exposes (spec.md
// §4.7/§4.8): SingleEngine and PooledEngine both implement it, and
// New picks between them transparently — the
// functional outcome of a document must not depend on which variant
// ran it, only its timing.
type Engine interface {
	// Initialize resets statistics, calls SimStart on every component
	// in document order, marks every VNET dirty, and leaves the
	// engine STOPPED (ready to Run). Returns ErrWrongState if the
	// engine is not already STOPPED.
	Initialize() error
	// Run executes the fixed-point loop until STABLE, OSCILLATING,
	// TIMEOUT, or an external Stop. Returns ErrWrongState if the
	// engine is not STOPPED or STABLE.
	Run() (Statistics, error)
	// Stop requests the running loop terminate at its next phase
	// boundary (state becomes STOPPED). A no-op if not RUNNING.
	Stop()
	// Shutdown tears the engine down: resets the update coordinator,
	// calls SimStop on every component, and leaves the engine STOPPED.
	// It does not wait for in-flight delayed component effects (e.g. a
	// DPDT relay's switching delay) and does not use timeout; those run
	// on the timer.Scheduler the components were built with, which its
	// owner shuts down.
	Shutdown(timeout time.Duration) error
	// Interact forwards a user action to one component. Legal at any
	// time (spec.md §6); the resulting state change, if any, is
	// picked up on the next Run pass.
	Interact(componentID, action string, params map[string]interface{}) (bool, error)
	// VisualState returns one component's GUI-facing snapshot.
	VisualState(componentID string) (model.VisualState, bool)
	// State returns the engine's current lifecycle state.
	State() State
	// Warnings returns the dangling-link warnings produced when this
	// engine's vnet topology was built (spec.md §4.2 rule 1).
	Warnings() []string
}
