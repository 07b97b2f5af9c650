package components

import (
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
)

// Indicator is a passive one-pin, four-tab sink (spec.md §3). It
// never drives; simulate_logic only reads the pin and exports it.
type Indicator struct {
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

// NewIndicator builds an Indicator from a fully-resolved spec.
func NewIndicator(spec model.ComponentSpec) (*Indicator, error) {
	pin, ok := spec.Pins["LED"]
	if !ok {
		return nil, ErrMissingPin
	}
	return &Indicator{
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

func (c *Indicator) ID() string                     { return c.id }
func (c *Indicator) Type() string                   { return "Indicator" }
func (c *Indicator) PageID() string                 { return c.pageID }
func (c *Indicator) LinkName() string               { return c.linkName }
func (c *Indicator) Pins() []*model.Pin             { return []*model.Pin{c.pin} }
func (c *Indicator) Properties() map[string]interface{} { return c.props }
func (c *Indicator) Position() model.Point          { return c.position }
func (c *Indicator) Rotation() int                  { return c.rotation }
func (c *Indicator) FlipHorizontal() bool           { return c.flipH }
func (c *Indicator) FlipVertical() bool             { return c.flipV }

// SimStart leaves the pin as the data model / VNET construction set
// it; an indicator has no state of its own to reset.
func (c *Indicator) SimStart(vnets model.VnetAccess, bridges model.BridgeAccess) {}

// SimulateLogic is a read-only observer; it never writes the pin or
// marks anything dirty.
func (c *Indicator) SimulateLogic(vnets model.VnetAccess, bridges model.BridgeAccess) {}

// SimStop is a no-op.
func (c *Indicator) SimStop() {}

// Interact has no effect on a passive sink; always returns false.
func (c *Indicator) Interact(action string, params map[string]interface{}) (bool, error) {
	return false, nil
}

// VisualState exports the pin's current state as ON/OFF.
func (c *Indicator) VisualState() model.VisualState {
	on := "OFF"
	if c.pin.State() == state.HIGH {
		on = "ON"
	}
	return model.VisualState{
		Type:       c.Type(),
		Position:   c.position,
		Rotation:   c.rotation,
		Properties: c.props,
		PinStates:  map[string]string{"LED": c.pin.State().String()},
		Extra:      map[string]interface{}{"indicator_state": on},
	}
}
