package vnet

import (
	"sync"

	"github.com/katalvlaran/relaysim/state"
)

// VNET is an equivalence class of electrically-connected tabs (spec.md
// §3): a set of tab ids produced by Builder, plus a set of link names
// and a resolved state. Bridge ids are not duplicated here — they are
// owned by bridge.Manager, which already indexes vnet→bridge-ids; the
// evaluator and propagator consult it directly rather than keeping a
// second copy in sync (spec.md §9's "one arena owns the entity" rule,
// applied one layer up).
type VNET struct {
	id     string
	pageID string // the page Builder built it from; link resolution never changes it

	mu        sync.RWMutex
	tabIDs    map[string]struct{}
	linkNames map[string]struct{}
	st        state.PinState
}

// NewVNET creates an empty, FLOAT vnet with no tabs or links.
func NewVNET(id, pageID string) *VNET {
	return &VNET{
		id:        id,
		pageID:    pageID,
		tabIDs:    make(map[string]struct{}),
		linkNames: make(map[string]struct{}),
		st:        state.FLOAT,
	}
}

// ID returns the vnet's stable identifier.
func (v *VNET) ID() string { return v.id }

// PageID returns the page this vnet was built from.
func (v *VNET) PageID() string { return v.pageID }

// State returns the vnet's current resolved state.
func (v *VNET) State() state.PinState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.st
}

// HasTab reports whether tabID is a member of this vnet.
func (v *VNET) HasTab(tabID string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.tabIDs[tabID]
	return ok
}

// TabIDs returns the vnet's member tab ids. Order is unspecified.
func (v *VNET) TabIDs() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, 0, len(v.tabIDs))
	for id := range v.tabIDs {
		out = append(out, id)
	}
	return out
}

// LinkNames returns the vnet's link names. Order is unspecified.
func (v *VNET) LinkNames() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, 0, len(v.linkNames))
	for name := range v.linkNames {
		out = append(out, name)
	}
	return out
}

// HasLinkName reports whether name is carried by this vnet.
func (v *VNET) HasLinkName(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.linkNames[name]
	return ok
}

// addTab registers a tab id directly, bypassing dirtying — used only
// by Builder while assembling a fresh vnet, before it is handed to a
// Manager (so there is nothing yet to dirty).
func (v *VNET) addTab(tabID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tabIDs[tabID] = struct{}{}
}

func (v *VNET) addLinkNameLocked(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.linkNames[name]; ok {
		return false
	}
	v.linkNames[name] = struct{}{}
	return true
}

func (v *VNET) removeLinkNameLocked(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.linkNames[name]; !ok {
		return false
	}
	delete(v.linkNames, name)
	return true
}

func (v *VNET) setState(s state.PinState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st = s
}
