package model

import (
	"sync"

	"github.com/katalvlaran/relaysim/state"
)

// Point is a 2D coordinate, relative to whatever frame the owning
// entity documents (component-local for a tab, page-local for
// everything else). It carries no electrical meaning.
type Point struct {
	X float64
	Y float64
}

// Tab is the smallest electrical endpoint: one connection point owned
// by exactly one Pin. A Tab has no state of its own — it always
// mirrors its parent Pin's state, so State()/SetState() simply proxy
// through the pin. This keeps the pin↔tab coherence invariant
// (spec.md §3) true by construction rather than by discipline.
type Tab struct {
	id       string
	position Point
	pin      *Pin
}

// NewTab creates a Tab at the given position. Call Pin.AddTab to
// attach it; AddTab sets the back-reference.
func NewTab(id string, position Point) *Tab {
	return &Tab{id: id, position: position}
}

// ID returns the tab's stable identifier.
func (t *Tab) ID() string { return t.id }

// Position returns the tab's position in its owning pin's local frame.
func (t *Tab) Position() Point { return t.position }

// Pin returns the owning pin.
func (t *Tab) Pin() *Pin { return t.pin }

// State returns the tab's current state, which is always its parent
// pin's state.
func (t *Tab) State() state.PinState {
	if t.pin == nil {
		return state.FLOAT
	}
	return t.pin.State()
}

// SetState drives the tab's state by driving its parent pin, which
// cascades to every sibling tab sharing that pin.
func (t *Tab) SetState(s state.PinState) {
	if t.pin != nil {
		t.pin.Set(s)
	}
}

// Pin is a logical bundle of tabs owned by one component; all of a
// pin's tabs always share its state (spec.md §3 pin↔tabs coherence).
type Pin struct {
	id          string
	componentID string

	mu   sync.Mutex
	tabs []*Tab
	st   state.PinState
}

// NewPin creates an empty pin (FLOAT, no tabs) owned by componentID.
func NewPin(id, componentID string) *Pin {
	return &Pin{id: id, componentID: componentID, st: state.FLOAT}
}

// ID returns the pin's stable identifier.
func (p *Pin) ID() string { return p.id }

// ComponentID returns the id of the component that owns this pin.
func (p *Pin) ComponentID() string { return p.componentID }

// AddTab attaches a tab to this pin, setting the tab's back-reference
// and initializing its effective state to the pin's current state.
func (p *Pin) AddTab(t *Tab) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t.pin = p
	p.tabs = append(p.tabs, t)
}

// Tabs returns the pin's tabs in attachment order. The returned slice
// must be treated as read-only by callers.
func (p *Pin) Tabs() []*Tab {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Tab, len(p.tabs))
	copy(out, p.tabs)
	return out
}

// State returns the pin's current state.
func (p *Pin) State() state.PinState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.st
}

// Set drives the pin to s. Every tab sharing this pin now reports s
// (tabs read through to the pin, see Tab.State), so this single write
// is the entire fan-out — no further dirtying is required by this
// call alone; the caller (typically a component or the propagator) is
// responsible for marking any VNET containing this pin's tabs dirty.
func (p *Pin) Set(s state.PinState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st = s
}

// Resolve recomputes the pin's state as the HIGH-wins OR of its
// tabs' states and returns it without mutating the pin. Since tabs
// mirror the pin exactly, this is an identity read used by invariant
// tests (spec.md §8 property 1) and by components that want to
// sanity-check coherence rather than assume it.
func (p *Pin) Resolve() state.PinState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.tabs) == 0 {
		return state.FLOAT
	}
	return p.st
}
