// Package vnet implements the equivalence-class core of the simulator
// (spec.md §3 VNET / §4.1–§4.5): VNET itself, the BFS-based builder
// that turns a page's wires/junctions into VNETs, the link resolver
// that fans out cross-page link names, the pure evaluator, and the
// propagator that writes a verdict back into the data model.
//
// VNET carries its own sync.RWMutex, mirroring the teacher's
// core.Graph per-vertex locking idiom (muVert/muEdgeAdj): readers
// (the evaluator) acquire-read-release per VNET rather than holding
// one global lock across a whole eval/propagate pass. Manager is the
// arena that owns every VNET plus the tab/pin/link secondary indexes,
// behind its own short-held structural lock — analogous to
// core.Graph's own map-level lock guarding vertices/edges while
// per-vertex locks guard their contents.
package vnet
