package components

import (
	"sync"

	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
)

// Switch is a one-pin, four-tab momentary or toggling source
// (spec.md §3). Its mode property picks how interact's actions map
// onto the internal is_on bit: "toggle" flips on toggle/click,
// "pushbutton" sets on press and clears on release.
type Switch struct {
	id       string
	pageID   string
	linkName string
	position model.Point
	rotation int
	flipH    bool
	flipV    bool
	props    map[string]interface{}
	mode     string

	pin *model.Pin

	mu    sync.Mutex
	isOn  bool
	drove state.PinState
}

// NewSwitch builds a Switch from a fully-resolved spec. The mode
// property defaults to "toggle" if absent or not one of the two
// recognized values.
func NewSwitch(spec model.ComponentSpec) (*Switch, error) {
	pin, ok := spec.Pins["SW"]
	if !ok {
		return nil, ErrMissingPin
	}
	mode := stringProp(spec.Properties, "mode", "toggle")
	if mode != "toggle" && mode != "pushbutton" {
		mode = "toggle"
	}
	return &Switch{
		id:       spec.ID,
		pageID:   spec.PageID,
		linkName: spec.LinkName,
		position: spec.Position,
		rotation: spec.Rotation,
		flipH:    spec.FlipH,
		flipV:    spec.FlipV,
		props:    spec.Properties,
		mode:     mode,
		pin:      pin,
		drove:    state.FLOAT,
	}, nil
}

func (c *Switch) ID() string                     { return c.id }
func (c *Switch) Type() string                   { return "Switch" }
func (c *Switch) PageID() string                 { return c.pageID }
func (c *Switch) LinkName() string               { return c.linkName }
func (c *Switch) Pins() []*model.Pin             { return []*model.Pin{c.pin} }
func (c *Switch) Properties() map[string]interface{} { return c.props }
func (c *Switch) Position() model.Point          { return c.position }
func (c *Switch) Rotation() int                  { return c.rotation }
func (c *Switch) FlipHorizontal() bool           { return c.flipH }
func (c *Switch) FlipVertical() bool             { return c.flipV }

// SimStart resets to off and floats the pin.
func (c *Switch) SimStart(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.mu.Lock()
	c.isOn = false
	c.mu.Unlock()

	c.pin.Set(state.FLOAT)
	c.drove = state.FLOAT
	vnets.MarkTabDirty(firstTabID(c.pin))
}

// SimulateLogic drives the pin HIGH if on, FLOAT if off, and marks
// its VNET dirty only on an effective change (spec.md §3).
func (c *Switch) SimulateLogic(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.mu.Lock()
	want := state.FromBool(c.isOn)
	c.mu.Unlock()

	if want == c.drove {
		return
	}
	c.drove = want
	c.pin.Set(want)
	vnets.MarkTabDirty(firstTabID(c.pin))
}

// SimStop is a no-op; a switch owns no bridges.
func (c *Switch) SimStop() {}

// Interact applies a user action per the switch's mode, returning
// whether it produced an effective is_on change.
func (c *Switch) Interact(action string, params map[string]interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.isOn
	switch c.mode {
	case "pushbutton":
		switch action {
		case "press":
			c.isOn = true
		case "release":
			c.isOn = false
		}
	default: // toggle
		switch action {
		case "toggle", "click":
			c.isOn = !c.isOn
		}
	}
	return c.isOn != before, nil
}

// VisualState exports the switch's on/off bit and driven pin state.
func (c *Switch) VisualState() model.VisualState {
	c.mu.Lock()
	isOn := c.isOn
	c.mu.Unlock()

	return model.VisualState{
		Type:       c.Type(),
		Position:   c.position,
		Rotation:   c.rotation,
		Properties: c.props,
		PinStates:  map[string]string{"SW": c.pin.State().String()},
		Extra:      map[string]interface{}{"switch_state": isOn},
	}
}
