package vnet

import (
	"github.com/katalvlaran/relaysim/bridge"
	"github.com/katalvlaran/relaysim/state"
)

// Propagator applies an evaluator verdict back into the live data
// model (spec.md §4.4): it does not recompute, it applies. If the
// supplied state later turns out inconsistent with the vnet's actual
// sources, the next evaluation pass discovers and corrects it.
type Propagator struct {
	mgr     *Manager
	bridges *bridge.Manager
}

// NewPropagator creates a Propagator over mgr's vnets, fanning out
// through bridges.
func NewPropagator(mgr *Manager, bridges *bridge.Manager) *Propagator {
	return &Propagator{mgr: mgr, bridges: bridges}
}

// Propagate applies newState to vnetID and recursively to every linked
// and bridged vnet (spec.md §4.4 steps 1-5), guarded by a visited set.
// Returns the ids of every vnet whose state actually changed.
func (p *Propagator) Propagate(vnetID string, newState state.PinState) []string {
	return p.propagate(vnetID, newState, make(map[string]struct{}))
}

func (p *Propagator) propagate(id string, newState state.PinState, seen map[string]struct{}) []string {
	if _, ok := seen[id]; ok {
		return nil
	}
	seen[id] = struct{}{}

	v, ok := p.mgr.Get(id)
	if !ok {
		return nil
	}
	if v.State() == newState {
		return nil
	}

	p.mgr.ApplyState(id, newState)
	affected := []string{id}

	for _, tabID := range v.TabIDs() {
		if tab, ok := p.mgr.Tab(tabID); ok {
			tab.SetState(newState)
		}
	}

	for _, name := range v.LinkNames() {
		for _, other := range p.mgr.VnetsForLink(name) {
			if other == id {
				continue
			}
			affected = append(affected, p.propagate(other, newState, seen)...)
		}
	}

	if p.bridges != nil {
		for _, bid := range p.bridges.BridgesForVnet(id) {
			b, ok := p.bridges.Get(bid)
			if !ok {
				continue
			}
			affected = append(affected, p.propagate(b.Other(id), newState, seen)...)
		}
	}

	return affected
}
