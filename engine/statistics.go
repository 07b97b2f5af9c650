package engine

import "time"

// Statistics reports what one Run call did (spec.md §4.7 step 3),
// recovered in full from the Python original's SimulationStatistics
// dataclass (original_source/relay_simulator/simulation/
// threaded_simulation_engine.py) since spec.md names only a subset of
// its fields explicitly.
type Statistics struct {
	Iterations    int
	ComponentsUpdated int

	TimeToStability time.Duration
	TotalTime       time.Duration

	Stable               bool
	MaxIterationsReached bool
	TimeoutReached       bool

	ComponentErrors    int
	SuccessfulComponents int

	// VnetsProcessedParallel / ComponentsProcessedParallel are only
	// non-zero for PooledEngine; SingleEngine leaves them at zero
	// since nothing ran off its own goroutine.
	VnetsProcessedParallel      int
	ComponentsProcessedParallel int
}
