package components

import (
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
)

// VCC is a fixed HIGH source: one pin, always driven (spec.md §3).
// It never reads anything; simulate_logic simply re-asserts HIGH in
// case something else (a bridge, a relay contact) perturbed its pin.
type VCC struct {
	id       string
	pageID   string
	linkName string
	position model.Point
	rotation int
	flipH    bool
	flipV    bool
	props    map[string]interface{}

	pin *model.Pin
}

// NewVCC builds a VCC from a fully-resolved spec. Returns
// ErrMissingPin if the spec has no "OUT" pin.
func NewVCC(spec model.ComponentSpec) (*VCC, error) {
	pin, ok := spec.Pins["OUT"]
	if !ok {
		return nil, ErrMissingPin
	}
	return &VCC{
		id:       spec.ID,
		pageID:   spec.PageID,
		linkName: spec.LinkName,
		position: spec.Position,
		rotation: spec.Rotation,
		flipH:    spec.FlipH,
		flipV:    spec.FlipV,
		props:    spec.Properties,
		pin:      pin,
	}, nil
}

func (c *VCC) ID() string                     { return c.id }
func (c *VCC) Type() string                   { return "VCC" }
func (c *VCC) PageID() string                 { return c.pageID }
func (c *VCC) LinkName() string               { return c.linkName }
func (c *VCC) Pins() []*model.Pin             { return []*model.Pin{c.pin} }
func (c *VCC) Properties() map[string]interface{} { return c.props }
func (c *VCC) Position() model.Point          { return c.position }
func (c *VCC) Rotation() int                  { return c.rotation }
func (c *VCC) FlipHorizontal() bool           { return c.flipH }
func (c *VCC) FlipVertical() bool             { return c.flipV }

// SimStart drives the pin HIGH and marks its VNET dirty so the
// engine's first evaluation pass sees the source already asserted.
func (c *VCC) SimStart(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.pin.Set(state.HIGH)
	vnets.MarkTabDirty(firstTabID(c.pin))
}

// SimulateLogic re-asserts HIGH; a VCC never floats regardless of
// what else is connected to its VNET.
func (c *VCC) SimulateLogic(vnets model.VnetAccess, bridges model.BridgeAccess) {
	if c.pin.State() != state.HIGH {
		c.pin.Set(state.HIGH)
		vnets.MarkTabDirty(firstTabID(c.pin))
	}
}

// SimStop is a no-op; a VCC owns no bridges and no background state.
func (c *VCC) SimStop() {}

// Interact has nothing to do with a fixed source; always returns false.
func (c *VCC) Interact(action string, params map[string]interface{}) (bool, error) {
	return false, nil
}

// VisualState exports the pin state for the GUI snapshot.
func (c *VCC) VisualState() model.VisualState {
	return model.VisualState{
		Type:       c.Type(),
		Position:   c.position,
		Rotation:   c.rotation,
		Properties: c.props,
		PinStates:  map[string]string{"OUT": c.pin.State().String()},
	}
}

// firstTabID returns the id of a pin's first tab, used when any tab
// of the pin is a valid key into VnetAccess.MarkTabDirty (all of a
// pin's tabs resolve to the same VNET once wired).
func firstTabID(pin *model.Pin) string {
	tabs := pin.Tabs()
	if len(tabs) == 0 {
		return ""
	}
	return tabs[0].ID()
}
