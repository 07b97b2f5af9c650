package components

import (
	"sync"

	"github.com/katalvlaran/relaysim/model"
)

// PortSeeder is implemented by SubCircuit so a document instantiator
// can hand it the port->internal-pin mapping once a sub-circuit
// definition's pages have been copied, per instance, into the
// simulated document (mirroring sub_circuit.py's instantiation step,
// which runs before sim_start, not inside it). No such instantiator
// exists in this repo yet (see DESIGN.md's "SubCircuit instantiation
// is unwired" entry) — SeedPortPinMap is exercised today only by
// sub_circuit_test.go calling it directly. A SubCircuit built by
// Registry alone, with no seeding, bridges nothing on SimStart —
// matching a not-yet-wired instance rather than panicking.
type PortSeeder interface {
	SeedPortPinMap(portToInternalPinID map[string]string)
}

// SubCircuit is a composite component whose pins ("ports") correspond
// 1:1 to the link-named tabs on its definition's FOOTPRINT page
// (recovered from
// original_source/relay_simulator/components/sub_circuit.py). Unlike
// the original's per-instance external/internal tab bridge list
// rebuilt at sim_start, here a single persistent bridge per port
// created once at SimStart keeps both sides merged for every later
// evaluation pass — the bridge mechanism itself is what the spec's
// "wires its own pins' states every simulate_logic" requirement
// reduces to, so SimulateLogic stays passive.
type SubCircuit struct {
	id       string
	pageID   string
	linkName string
	position model.Point
	rotation int
	flipH    bool
	flipV    bool
	props    map[string]interface{}

	subCircuitName string
	instanceID     string
	pins           map[string]*model.Pin

	mu          sync.Mutex
	portPinMap  map[string]string // port name -> internal pin id
	bridgeIDs   []string
}

// NewSubCircuit builds a SubCircuit from a fully-resolved spec. Pins
// are whatever ports the document's author declared for this
// instance; a SubCircuit with zero pins is valid (a sub-circuit with
// no external connections).
func NewSubCircuit(spec model.ComponentSpec) (*SubCircuit, error) {
	return &SubCircuit{
		id:             spec.ID,
		pageID:         spec.PageID,
		linkName:       spec.LinkName,
		position:       spec.Position,
		rotation:       spec.Rotation,
		flipH:          spec.FlipH,
		flipV:          spec.FlipV,
		props:          spec.Properties,
		subCircuitName: stringProp(spec.Properties, "sub_circuit_name", ""),
		instanceID:     stringProp(spec.Properties, "instance_id", ""),
		pins:           spec.Pins,
	}, nil
}

// SeedPortPinMap records, for each port name, the id of the internal
// pin (on the flattened instance pages) it bridges to. Satisfies
// PortSeeder.
func (c *SubCircuit) SeedPortPinMap(m map[string]string) {
	c.mu.Lock()
	c.portPinMap = m
	c.mu.Unlock()
}

func (c *SubCircuit) ID() string       { return c.id }
func (c *SubCircuit) Type() string     { return "SubCircuit" }
func (c *SubCircuit) PageID() string   { return c.pageID }
func (c *SubCircuit) LinkName() string { return c.linkName }
func (c *SubCircuit) Pins() []*model.Pin {
	out := make([]*model.Pin, 0, len(c.pins))
	for _, p := range c.pins {
		out = append(out, p)
	}
	return out
}
func (c *SubCircuit) Properties() map[string]interface{} { return c.props }
func (c *SubCircuit) Position() model.Point              { return c.position }
func (c *SubCircuit) Rotation() int                      { return c.rotation }
func (c *SubCircuit) FlipHorizontal() bool               { return c.flipH }
func (c *SubCircuit) FlipVertical() bool                 { return c.flipV }

// SimStart creates one bridge per seeded port, connecting the port's
// own VNET to its matching internal pin's VNET. Ports with no seeded
// mapping (instance not yet flattened, or definition missing that
// port) are silently skipped.
func (c *SubCircuit) SimStart(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.mu.Lock()
	portPinMap := c.portPinMap
	c.bridgeIDs = nil
	c.mu.Unlock()

	if portPinMap == nil {
		return
	}

	var created []string
	for port, pin := range c.pins {
		internalPinID, ok := portPinMap[port]
		if !ok {
			continue
		}
		vA, ok := vnets.VnetForPin(pin.ID())
		if !ok {
			continue
		}
		vB, ok := vnets.VnetForPin(internalPinID)
		if !ok {
			continue
		}
		id, err := bridges.CreateBridge(vA, vB, c.id)
		if err != nil {
			continue
		}
		created = append(created, id)
	}

	c.mu.Lock()
	c.bridgeIDs = created
	c.mu.Unlock()
}

// SimulateLogic is passive: the persistent bridges created at
// SimStart already keep every port merged with its internal VNET, so
// there is nothing left to re-copy each pass.
func (c *SubCircuit) SimulateLogic(vnets model.VnetAccess, bridges model.BridgeAccess) {}

// SimStop clears the instance's own bookkeeping; the engine removes
// the bridges themselves via RemoveAllForComponent.
func (c *SubCircuit) SimStop() {
	c.mu.Lock()
	c.bridgeIDs = nil
	c.mu.Unlock()
}

// Interact has no effect; a sub-circuit is driven only through its ports.
func (c *SubCircuit) Interact(action string, params map[string]interface{}) (bool, error) {
	return false, nil
}

// VisualState exports the instance's pin states and identity.
func (c *SubCircuit) VisualState() model.VisualState {
	pinStates := make(map[string]string, len(c.pins))
	for name, p := range c.pins {
		pinStates[name] = p.State().String()
	}
	return model.VisualState{
		Type:       c.Type(),
		Position:   c.position,
		Rotation:   c.rotation,
		Properties: c.props,
		PinStates:  pinStates,
		Extra: map[string]interface{}{
			"sub_circuit_name": c.subCircuitName,
			"instance_id":      c.instanceID,
		},
	}
}
