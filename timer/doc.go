// Package timer implements the delayed-effect scheduler spec.md §9
// calls for: the DPDT relay's 10 ms switching delay (and any other
// component wanting a cancellable delayed side effect) runs through
// Scheduler rather than a raw time.Sleep or time.AfterFunc per call,
// so cancellation is explicit and tests can inject a fake clock
// instead of sleeping for real.
//
// The min-heap ordered by fire time, with lazy deletion of cancelled
// entries, is grounded on the teacher's dijkstra.go nodePQ
// (container/heap, "outdated entry remains but is ignored when
// popped") — adapted from a distance-ordered priority queue to a
// time-ordered one.
package timer
