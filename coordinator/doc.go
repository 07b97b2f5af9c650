// Package coordinator implements UpdateCoordinator (spec.md §4.6): the
// per-pass bookkeeping that decides which components must run
// simulate_logic, suppresses duplicate enqueues, and lets the engine
// synchronize on pass completion (single-threaded: synchronous;
// pooled: `WaitUntilComplete` on a worker-driven pass).
package coordinator
