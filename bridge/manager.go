package bridge

import (
	"sync"

	"github.com/google/uuid"
)

// DirtyMarker is the narrow view Manager needs of the dirty-flag
// subsystem: creating or removing a bridge marks both endpoint VNETs
// dirty (spec.md §3 VNET dirty-flag invariant). vnet.DirtyFlagManager
// satisfies this structurally.
type DirtyMarker interface {
	MarkDirty(vnetID string)
}

// Manager is the process-wide (per-engine) bridge registry: an
// id→Bridge map plus two secondary indexes (vnet→bridge-ids,
// owner-component→bridge-ids), guarded by one coarse lock per
// spec.md §5.
type Manager struct {
	mu sync.RWMutex

	bridges    map[string]*Bridge
	byVnet     map[string]map[string]struct{} // vnet id -> bridge ids touching it
	byOwner    map[string]map[string]struct{} // owner component id -> bridge ids
	dirty      DirtyMarker
}

// NewManager creates an empty bridge manager. dirty may be nil, in
// which case Create/Remove simply skip dirtying (used by tests that
// only care about bridge bookkeeping).
func NewManager(dirty DirtyMarker) *Manager {
	return &Manager{
		bridges: make(map[string]*Bridge),
		byVnet:  make(map[string]map[string]struct{}),
		byOwner: make(map[string]map[string]struct{}),
		dirty:   dirty,
	}
}

// CreateBridge creates a bridge between two distinct VNETs owned by
// ownerComponentID, indexes it, and marks both VNETs dirty.
func (m *Manager) CreateBridge(vnetA, vnetB, ownerComponentID string) (string, error) {
	if vnetA == vnetB {
		return "", ErrSameVnet
	}

	m.mu.Lock()
	id := uuid.NewString()
	b := &Bridge{ID: id, VnetA: vnetA, VnetB: vnetB, OwnerComponentID: ownerComponentID}
	m.bridges[id] = b
	m.index(vnetA, id)
	m.index(vnetB, id)
	m.indexOwner(ownerComponentID, id)
	m.mu.Unlock()

	m.markDirty(vnetA)
	m.markDirty(vnetB)

	return id, nil
}

// RemoveBridge removes a bridge by id, updates indexes, and marks
// both (former) endpoint VNETs dirty. A missing id is a no-op.
func (m *Manager) RemoveBridge(id string) error {
	m.mu.Lock()
	b, ok := m.bridges[id]
	if !ok {
		m.mu.Unlock()
		return nil
	}
	delete(m.bridges, id)
	m.unindex(b.VnetA, id)
	m.unindex(b.VnetB, id)
	m.unindexOwner(b.OwnerComponentID, id)
	m.mu.Unlock()

	m.markDirty(b.VnetA)
	m.markDirty(b.VnetB)

	return nil
}

// RemoveAllForComponent removes every bridge owned by componentID.
// Used by the engine at sim_stop / component teardown, per spec.md §3
// ("Bridges owned by the component are removed by the engine").
func (m *Manager) RemoveAllForComponent(componentID string) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.byOwner[componentID]))
	for id := range m.byOwner[componentID] {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		_ = m.RemoveBridge(id)
	}
}

// Get returns the bridge with the given id.
func (m *Manager) Get(id string) (*Bridge, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bridges[id]
	return b, ok
}

// BridgesForVnet returns the ids of every bridge touching the given VNET.
func (m *Manager) BridgesForVnet(vnetID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := m.byVnet[vnetID]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Count returns the number of live bridges.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bridges)
}

func (m *Manager) index(vnetID, bridgeID string) {
	set, ok := m.byVnet[vnetID]
	if !ok {
		set = make(map[string]struct{})
		m.byVnet[vnetID] = set
	}
	set[bridgeID] = struct{}{}
}

func (m *Manager) unindex(vnetID, bridgeID string) {
	set, ok := m.byVnet[vnetID]
	if !ok {
		return
	}
	delete(set, bridgeID)
	if len(set) == 0 {
		delete(m.byVnet, vnetID)
	}
}

func (m *Manager) indexOwner(ownerID, bridgeID string) {
	set, ok := m.byOwner[ownerID]
	if !ok {
		set = make(map[string]struct{})
		m.byOwner[ownerID] = set
	}
	set[bridgeID] = struct{}{}
}

func (m *Manager) unindexOwner(ownerID, bridgeID string) {
	set, ok := m.byOwner[ownerID]
	if !ok {
		return
	}
	delete(set, bridgeID)
	if len(set) == 0 {
		delete(m.byOwner, ownerID)
	}
}

func (m *Manager) markDirty(vnetID string) {
	if m.dirty != nil {
		m.dirty.MarkDirty(vnetID)
	}
}
