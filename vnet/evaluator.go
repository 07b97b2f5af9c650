package vnet

import (
	"github.com/katalvlaran/relaysim/bridge"
	"github.com/katalvlaran/relaysim/state"
)

// Evaluator computes a vnet's resolved state, treating links and
// bridges as transitive (spec.md §4.3). It is a pure function of the
// current data model snapshot: it reads tabs, links, and bridges but
// never mutates them.
type Evaluator struct {
	mgr     *Manager
	bridges *bridge.Manager
}

// NewEvaluator creates an Evaluator over mgr's vnets, reading bridge
// fan-out from bridges.
func NewEvaluator(mgr *Manager, bridges *bridge.Manager) *Evaluator {
	return &Evaluator{mgr: mgr, bridges: bridges}
}

// Eval computes eval(v) for the vnet with the given id (spec.md §4.3
// steps 1-6). An unknown id evaluates FLOAT, matching a vnet with no
// tabs.
func (e *Evaluator) Eval(vnetID string) state.PinState {
	return e.eval(vnetID, make(map[string]struct{}))
}

// EvalMany evaluates every id in ids and returns the {id → state} map
// the propagator consumes (spec.md §4.3 batch form). Each top-level
// id starts its own visited set, matching the single-vnet contract of
// Eval.
func (e *Evaluator) EvalMany(ids []string) map[string]state.PinState {
	out := make(map[string]state.PinState, len(ids))
	for _, id := range ids {
		out[id] = e.Eval(id)
	}
	return out
}

func (e *Evaluator) eval(id string, seen map[string]struct{}) state.PinState {
	if _, ok := seen[id]; ok {
		return state.FLOAT
	}
	seen[id] = struct{}{}

	v, ok := e.mgr.Get(id)
	if !ok {
		return state.FLOAT
	}

	for _, tabID := range v.TabIDs() {
		if tab, ok := e.mgr.Tab(tabID); ok && tab.State() == state.HIGH {
			return state.HIGH
		}
	}

	for _, name := range v.LinkNames() {
		for _, other := range e.mgr.VnetsForLink(name) {
			if other == id {
				continue
			}
			if e.eval(other, seen) == state.HIGH {
				return state.HIGH
			}
		}
	}

	if e.bridges != nil {
		for _, bid := range e.bridges.BridgesForVnet(id) {
			b, ok := e.bridges.Get(bid)
			if !ok {
				continue
			}
			if e.eval(b.Other(id), seen) == state.HIGH {
				return state.HIGH
			}
		}
	}

	return state.FLOAT
}
