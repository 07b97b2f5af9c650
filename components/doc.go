// Package components implements the concrete, active schematic parts
// that sit on top of the passive data model (spec.md §3): VCC,
// Switch, Indicator, DPDTRelay, and SubCircuit. Each one is a plain
// struct implementing model.Component; Registry implements
// model.ComponentFactory and dispatches construction by the
// ComponentSpec's Type string, mirroring the teacher's single
// construction entry point (core.NewMixedGraph folding GraphOptions)
// adapted to a type-keyed table instead of functional options, since
// a factory builds from an already-fully-described ComponentSpec
// rather than from caller-supplied option funcs.
//
// Every component that mutates its own state outside of a single
// call (DPDTRelay's delayed transition fires on the timer package's
// dispatcher goroutine, concurrently with a fresh SimulateLogic call
// from the engine) guards its mutable fields with its own
// sync.Mutex. This is the same per-entity lock discipline
// model.Pin/vnet.VNET use, applied at the component granularity the
// spec's "components never co-execute with themselves" rule (§5)
// singles out DPDTRelay for: it is the only component with a
// background-goroutine writer.
package components
