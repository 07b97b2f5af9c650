package components

import (
	"sync"
	"time"

	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/state"
	"github.com/katalvlaran/relaysim/timer"
)

// switchingDelay is the DPDT relay's coil-to-contact switching delay
// (spec.md §3, §9).
const switchingDelay = 10 * time.Millisecond

// DPDTRelay is a seven-pin electromechanical relay: COIL plus two
// poles (COM/NO/NC each), each pin carrying four tabs (spec.md §3).
// Energizing the coil schedules a delayed contact transition on the
// shared timer.Scheduler; only the latest coil reading at fire time
// matters, so a coil that flips twice within the switching delay
// produces one transition, not two (coalescing grounded on
// original_source/relay_simulator/components/dpdt_relay.py's
// _timer_callback).
type DPDTRelay struct {
	id       string
	pageID   string
	linkName string
	position model.Point
	rotation int
	flipH    bool
	flipV    bool
	props    map[string]interface{}

	coil, com1, no1, nc1, com2, no2, nc2 *model.Pin

	scheduler *timer.Scheduler

	mu              sync.Mutex
	isEnergized     bool
	targetEnergized bool
	handle          *timer.Handle
	pole1BridgeID   string
	pole2BridgeID   string
}

// NewDPDTRelay builds a DPDTRelay from a fully-resolved spec. scheduler
// is the shared delayed-effect dispatcher (typically one per engine
// run) the relay arms its 10 ms transitions on.
func NewDPDTRelay(spec model.ComponentSpec, scheduler *timer.Scheduler) (*DPDTRelay, error) {
	pins := make(map[string]*model.Pin, 7)
	for _, name := range []string{"COIL", "COM1", "NO1", "NC1", "COM2", "NO2", "NC2"} {
		pin, ok := spec.Pins[name]
		if !ok {
			return nil, ErrMissingPin
		}
		pins[name] = pin
	}
	return &DPDTRelay{
		id:        spec.ID,
		pageID:    spec.PageID,
		linkName:  spec.LinkName,
		position:  spec.Position,
		rotation:  spec.Rotation,
		flipH:     spec.FlipH,
		flipV:     spec.FlipV,
		props:     spec.Properties,
		coil:      pins["COIL"],
		com1:      pins["COM1"],
		no1:       pins["NO1"],
		nc1:       pins["NC1"],
		com2:      pins["COM2"],
		no2:       pins["NO2"],
		nc2:       pins["NC2"],
		scheduler: scheduler,
	}, nil
}

func (c *DPDTRelay) ID() string       { return c.id }
func (c *DPDTRelay) Type() string     { return "DPDTRelay" }
func (c *DPDTRelay) PageID() string   { return c.pageID }
func (c *DPDTRelay) LinkName() string { return c.linkName }
func (c *DPDTRelay) Pins() []*model.Pin {
	return []*model.Pin{c.coil, c.com1, c.no1, c.nc1, c.com2, c.no2, c.nc2}
}
func (c *DPDTRelay) Properties() map[string]interface{} { return c.props }
func (c *DPDTRelay) Position() model.Point              { return c.position }
func (c *DPDTRelay) Rotation() int                      { return c.rotation }
func (c *DPDTRelay) FlipHorizontal() bool               { return c.flipH }
func (c *DPDTRelay) FlipVertical() bool                 { return c.flipV }

// SimStart floats every pin, resets to de-energized, and creates the
// initial COM1↔NC1 / COM2↔NC2 bridges.
func (c *DPDTRelay) SimStart(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.mu.Lock()
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
	c.isEnergized = false
	c.targetEnergized = false
	c.mu.Unlock()

	for _, p := range c.Pins() {
		p.Set(state.FLOAT)
		vnets.MarkTabDirty(firstTabID(p))
	}

	c.switchContacts(vnets, bridges)
}

// SimulateLogic reads the coil and, on a target change, arms (or lets
// ride) a single in-flight 10 ms delayed transition.
func (c *DPDTRelay) SimulateLogic(vnets model.VnetAccess, bridges model.BridgeAccess) {
	target := c.coil.State() == state.HIGH

	c.mu.Lock()
	defer c.mu.Unlock()

	if target == c.targetEnergized {
		return
	}
	c.targetEnergized = target

	if c.handle != nil {
		// A transition is already in flight; it will read the
		// updated targetEnergized when it fires. No new timer.
		return
	}
	c.handle = c.scheduler.Schedule(switchingDelay, func() {
		c.onSwitchingDelayElapsed(vnets, bridges)
	})
}

// onSwitchingDelayElapsed runs on the timer package's dispatcher
// goroutine, potentially concurrently with a fresh SimulateLogic call
// from the engine — hence the same mutex guards both.
func (c *DPDTRelay) onSwitchingDelayElapsed(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.mu.Lock()
	c.handle = nil
	changed := c.targetEnergized != c.isEnergized
	if changed {
		c.isEnergized = c.targetEnergized
	}
	c.mu.Unlock()

	if changed {
		c.switchContacts(vnets, bridges)
	}
}

// switchContacts removes the current pole bridges and creates the
// pair matching the current energized state. bridge.Manager marks
// every touched VNET dirty as part of Create/RemoveBridge, so the
// engine re-evaluates on its own without an extra mark here.
func (c *DPDTRelay) switchContacts(vnets model.VnetAccess, bridges model.BridgeAccess) {
	c.mu.Lock()
	pole1, pole2 := c.pole1BridgeID, c.pole2BridgeID
	c.pole1BridgeID, c.pole2BridgeID = "", ""
	energized := c.isEnergized
	c.mu.Unlock()

	if pole1 != "" {
		_ = bridges.RemoveBridge(pole1)
	}
	if pole2 != "" {
		_ = bridges.RemoveBridge(pole2)
	}

	throwPin1, throwPin2 := c.nc1, c.nc2
	if energized {
		throwPin1, throwPin2 = c.no1, c.no2
	}

	newPole1 := bridgeVnets(vnets, bridges, c.com1, throwPin1, c.id)
	newPole2 := bridgeVnets(vnets, bridges, c.com2, throwPin2, c.id)

	c.mu.Lock()
	c.pole1BridgeID, c.pole2BridgeID = newPole1, newPole2
	c.mu.Unlock()
}

// bridgeVnets creates a bridge between the VNETs currently containing
// a's and b's tabs, owned by ownerID. Returns "" if either pin has no
// VNET yet (not wired into any page's tab graph).
func bridgeVnets(vnets model.VnetAccess, bridges model.BridgeAccess, a, b *model.Pin, ownerID string) string {
	vA, ok := vnets.VnetForPin(a.ID())
	if !ok {
		return ""
	}
	vB, ok := vnets.VnetForPin(b.ID())
	if !ok {
		return ""
	}
	id, err := bridges.CreateBridge(vA, vB, ownerID)
	if err != nil {
		return ""
	}
	return id
}

// SimStop cancels any in-flight delayed transition. The engine, not
// SimStop, removes the relay's owned bridges via RemoveAllForComponent.
func (c *DPDTRelay) SimStop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
	c.isEnergized = false
	c.targetEnergized = false
	c.pole1BridgeID, c.pole2BridgeID = "", ""
}

// Interact has no effect; the relay is driven only by its coil.
func (c *DPDTRelay) Interact(action string, params map[string]interface{}) (bool, error) {
	return false, nil
}

// VisualState exports the relay's energized state, coil reading, and
// whether a transition is currently in flight.
func (c *DPDTRelay) VisualState() model.VisualState {
	c.mu.Lock()
	energized := c.isEnergized
	inFlight := c.handle != nil
	c.mu.Unlock()

	relayState := "DE-ENERGIZED"
	if energized {
		relayState = "ENERGIZED"
	}
	return model.VisualState{
		Type:       c.Type(),
		Position:   c.position,
		Rotation:   c.rotation,
		Properties: c.props,
		PinStates: map[string]string{
			"COIL": c.coil.State().String(),
			"COM1": c.com1.State().String(),
			"NO1":  c.no1.State().String(),
			"NC1":  c.nc1.State().String(),
			"COM2": c.com2.State().String(),
			"NO2":  c.no2.State().String(),
			"NC2":  c.nc2.State().String(),
		},
		Extra: map[string]interface{}{
			"relay_state":   relayState,
			"timer_active":  inFlight,
		},
	}
}
