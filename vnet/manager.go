package vnet

import (
	"sync"

	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
)

// Manager is the process-wide (per-engine) vnet arena: it owns every
// VNET plus the secondary indexes (tab→vnet, link-name→vnet-ids,
// pin→tab-ids) the evaluator, propagator, and link resolver need. Its
// own mutex is short-held and structural only — it is released before
// a caller acquires any individual VNET's lock, so it never
// participates in the VNET-lock-ordering rule (spec.md §5).
//
// Manager satisfies model.VnetAccess structurally; model never imports
// this package.
type Manager struct {
	mu sync.RWMutex

	vnets     map[string]*VNET
	tabToVnet map[string]string
	linkIndex map[string]map[string]struct{} // link name -> vnet ids carrying it
	tabs      map[string]*model.Tab          // for the evaluator's driver reads
	pinTabs   map[string][]string            // pin id -> its tab ids

	Dirty *DirtyFlagManager
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		vnets:     make(map[string]*VNET),
		tabToVnet: make(map[string]string),
		linkIndex: make(map[string]map[string]struct{}),
		tabs:      make(map[string]*model.Tab),
		pinTabs:   make(map[string][]string),
		Dirty:     NewDirtyFlagManager(),
	}
}

// Register adds a freshly-built vnet to the arena, indexing its
// current tab membership. Membership is static after this call except
// via bridges, which are orthogonal to vnet membership (spec.md §3).
func (m *Manager) Register(v *VNET) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vnets[v.id] = v
	for tabID := range v.tabIDs {
		m.tabToVnet[tabID] = v.id
	}
	m.Dirty.Register(v.id)
}

// RegisterTab indexes a tab for the evaluator's driver reads.
func (m *Manager) RegisterTab(tabID string, tab *model.Tab) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tabs[tabID] = tab
}

// RegisterPin indexes a pin's tab ids, needed by VnetForPin.
func (m *Manager) RegisterPin(pinID string, tabIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(tabIDs))
	copy(cp, tabIDs)
	m.pinTabs[pinID] = cp
}

// Get returns the vnet with the given id.
func (m *Manager) Get(id string) (*VNET, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vnets[id]
	return v, ok
}

// All returns every registered vnet. Order is unspecified.
func (m *Manager) All() []*VNET {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*VNET, 0, len(m.vnets))
	for _, v := range m.vnets {
		out = append(out, v)
	}
	return out
}

// Tab returns the tab registered under tabID.
func (m *Manager) Tab(tabID string) (*model.Tab, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tabs[tabID]
	return t, ok
}

// VnetForTab returns the id of the vnet containing tabID.
func (m *Manager) VnetForTab(tabID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.tabToVnet[tabID]
	return id, ok
}

// VnetForPin returns the id of the vnet containing any tab of pinID.
// Satisfies model.VnetAccess. All of a pin's tabs live in the same
// vnet (pin↔tab coherence, spec.md §3), so the first match suffices.
func (m *Manager) VnetForPin(pinID string) (string, bool) {
	m.mu.RLock()
	tabIDs := m.pinTabs[pinID]
	m.mu.RUnlock()

	for _, tabID := range tabIDs {
		if id, ok := m.VnetForTab(tabID); ok {
			return id, true
		}
	}
	return "", false
}

// MarkTabDirty marks dirty whichever vnet currently contains tabID.
// Satisfies model.VnetAccess.
func (m *Manager) MarkTabDirty(tabID string) {
	if id, ok := m.VnetForTab(tabID); ok {
		m.Dirty.MarkDirty(id)
	}
}

// MarkVnetDirty marks a vnet dirty directly by id. Satisfies
// model.VnetAccess.
func (m *Manager) MarkVnetDirty(vnetID string) {
	m.Dirty.MarkDirty(vnetID)
}

// VnetsForLink returns the ids of every vnet carrying the given link name.
func (m *Manager) VnetsForLink(name string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := m.linkIndex[name]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// AddLinkName adds name to vnetID's link-name set, indexes it, and
// marks the vnet dirty (spec.md §3 dirty-flag invariant). A no-op if
// the vnet already carries the name.
func (m *Manager) AddLinkName(vnetID, name string) {
	v, ok := m.Get(vnetID)
	if !ok {
		return
	}
	if !v.addLinkNameLocked(name) {
		return
	}

	m.mu.Lock()
	set, ok := m.linkIndex[name]
	if !ok {
		set = make(map[string]struct{})
		m.linkIndex[name] = set
	}
	set[vnetID] = struct{}{}
	m.mu.Unlock()

	m.Dirty.MarkDirty(vnetID)
}

// RemoveLinkName removes name from vnetID's link-name set, updates the
// index, and marks the vnet dirty. A no-op if the vnet does not carry
// the name.
func (m *Manager) RemoveLinkName(vnetID, name string) {
	v, ok := m.Get(vnetID)
	if !ok {
		return
	}
	if !v.removeLinkNameLocked(name) {
		return
	}

	m.mu.Lock()
	if set, ok := m.linkIndex[name]; ok {
		delete(set, vnetID)
		if len(set) == 0 {
			delete(m.linkIndex, name)
		}
	}
	m.mu.Unlock()

	m.Dirty.MarkDirty(vnetID)
}

// DetectChangeAndMark marks vnetID dirty iff newState differs from
// its current resolved state, and reports whether it did (spec.md
// §4.5 detect_change_and_mark).
func (m *Manager) DetectChangeAndMark(vnetID string, newState state.PinState) bool {
	v, ok := m.Get(vnetID)
	if !ok {
		return false
	}
	if v.State() == newState {
		return false
	}
	m.Dirty.MarkDirty(vnetID)
	return true
}

// ApplyState sets vnetID's resolved state and clears its dirty flag,
// per the propagator's contract (spec.md §4.4 step 2): the engine
// re-dirties a vnet only if a future event demands it.
func (m *Manager) ApplyState(vnetID string, s state.PinState) {
	v, ok := m.Get(vnetID)
	if !ok {
		return
	}
	v.setState(s)
	m.Dirty.ClearDirty(vnetID)
}
