// Package engine drives the fixed-point simulation loop (spec.md
// §4.7–§4.8): over a model.Document whose components are already
// built, it owns the per-run vnet.Manager, bridge.Manager and
// coordinator.UpdateCoordinator (the timer.Scheduler behind delayed
// component effects belongs to whoever built the components), and
// repeatedly evaluates → propagates → runs component logic until the
// dirty set is empty (STABLE), the iteration cap is hit
// (OSCILLATING), or the wall-clock budget expires (TIMEOUT).
//
// SingleEngine runs every phase on the caller's goroutine. PooledEngine
// parallelizes each phase's independent units of work (one VNET
// evaluation, one VNET propagation, one component's simulate_logic)
// across a worker pool via golang.org/x/sync/errgroup, bounded by
// golang.org/x/sync/semaphore, grounded on
// original_source/relay_simulator/simulation/threaded_simulation_engine.py's
// three-phase parallel structure. Both variants share the same
// setup/teardown and statistics machinery; New picks
// between them by component count, per spec.md §4.8's factory.
package engine
