// Package relaysim is a discrete, event-driven engine that computes
// the electrical state of a schematic made of pins, wires, relays,
// switches, and indicators, spread across multiple pages.
//
// The module is organized leaf-first, mirroring the dependency chain
// it implements:
//
//	state/       — two-valued logic (HIGH/FLOAT) and HIGH-wins OR
//	model/       — tabs, pins, wires, junctions, pages, documents
//	bridge/      — dynamic runtime edges between VNETs
//	vnet/        — VNET construction, link resolution, evaluation, propagation
//	timer/       — cancellable delayed effects (a relay's 10ms contact delay)
//	coordinator/ — which components need simulate_logic this pass
//	components/  — VCC, Switch, Indicator, DPDTRelay, SubCircuit
//	engine/      — the fixed-point scheduler, single-threaded or pooled
//	config/      — viper-backed engine.Config loading for the CLI
//	cmd/relaysim — a cobra CLI driving the engine over a document file
//
// A document's pages, components, and wires are turned into a set of
// virtual nets (VNETs) by vnet.Builder; engine.Engine repeatedly
// evaluates the dirty subset of those VNETs, propagates the results
// back into pins, and drives any component whose inputs changed, until
// no VNET is dirty (STABLE), the iteration cap is hit (OSCILLATING), or
// the wall-clock budget elapses (TIMEOUT).
package relaysim
