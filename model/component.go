package model

// VnetAccess is the narrow view of the VNET subsystem a component
// needs during its lifecycle hooks. vnet.Manager satisfies this
// interface structurally; model never imports the vnet package.
type VnetAccess interface {
	// VnetForPin returns the id of the VNET currently containing any
	// tab of the given pin, and whether one was found.
	VnetForPin(pinID string) (vnetID string, ok bool)
	// MarkTabDirty marks dirty whichever VNET currently contains the
	// given tab, per spec.md §4.7's "components must mark VNETs dirty
	// themselves" discipline.
	MarkTabDirty(tabID string)
	// MarkVnetDirty marks a VNET dirty directly by id.
	MarkVnetDirty(vnetID string)
}

// BridgeAccess is the narrow view of the bridge subsystem a component
// needs. bridge.Manager satisfies this interface structurally.
type BridgeAccess interface {
	// CreateBridge creates a bridge between two distinct VNETs, owned
	// by ownerComponentID. Returns ErrSameVnet (bridge package) if
	// vnetA == vnetB.
	CreateBridge(vnetA, vnetB, ownerComponentID string) (bridgeID string, err error)
	// RemoveBridge removes a bridge by id. A missing id is not an error.
	RemoveBridge(bridgeID string) error
	// RemoveAllForComponent removes every bridge owned by componentID.
	RemoveAllForComponent(componentID string)
}

// VisualState is what a component exports for the GUI snapshot
// (spec.md §6 "Produced for the GUI"). Extra carries component-type-
// specific fields (relay_state, switch_state, indicator_state, ...).
type VisualState struct {
	Type       string
	Position   Point
	Rotation   int
	Properties map[string]interface{}
	PinStates  map[string]string
	Extra      map[string]interface{}
}

// Component is the capability interface every schematic component
// implements. It replaces the source's inheritance hierarchy
// (Component → Switch/Indicator/VCC/DPDTRelay/SubCircuit, spec.md §9)
// with a single Go interface; concrete variants live in the
// components package.
type Component interface {
	ID() string
	Type() string
	PageID() string
	LinkName() string
	Pins() []*Pin
	Properties() map[string]interface{}
	Position() Point
	Rotation() int
	FlipHorizontal() bool
	FlipVertical() bool

	// SimStart is called once when a simulation begins.
	SimStart(vnets VnetAccess, bridges BridgeAccess)
	// SimulateLogic is called whenever one of the component's input
	// VNETs becomes dirty.
	SimulateLogic(vnets VnetAccess, bridges BridgeAccess)
	// SimStop is called once when a simulation ends. Bridges owned by
	// the component are removed by the engine, not by SimStop itself.
	SimStop()
	// Interact is the GUI side-channel for user actions. It returns
	// whether the action produced an effective state change.
	Interact(action string, params map[string]interface{}) (bool, error)
	// VisualState exports the component's current GUI-facing state.
	VisualState() VisualState
}

// ComponentSpec is the fully-resolved description a ComponentFactory
// uses to build a concrete Component: every Pin (with its Tabs already
// attached) has been constructed from the document already, so
// factories need only pick pins apart by name and wrap behavior
// around them.
type ComponentSpec struct {
	ID       string
	Type     string
	PageID   string
	LinkName string
	Position Point
	Rotation int
	FlipH    bool
	FlipV    bool

	Properties map[string]interface{}
	// Pins is keyed by the pin-name suffix of each pin's id (the part
	// after the last '.', e.g. "COIL" for "R1.COIL"), matching the
	// "{component_id}.{pin_name}" convention the document schema uses.
	Pins map[string]*Pin
}

// ComponentFactory builds a concrete Component from a ComponentSpec.
// components.Registry implements this; model depends only on the
// interface so it never imports components.
type ComponentFactory interface {
	Build(spec ComponentSpec) (Component, error)
}
