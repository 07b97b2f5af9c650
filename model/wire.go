package model

// Waypoint is a bend in a wire: purely visual routing, no electrical role.
type Waypoint struct {
	ID       string
	Position Point
}

// Junction is a branching point on a wire. It electrically fuses its
// parent wire with every one of its child wires. ChildWireIDs is
// ordered to match the document's serialization order, though
// electrical fusion is order-independent.
type Junction struct {
	ID           string
	Position     Point
	ChildWireIDs []string
}

// Wire is a connectivity edge on a page. EndTabID may be "" when the
// wire terminates in a junction instead of a second tab.
type Wire struct {
	ID               string
	StartTabID       string
	EndTabID         string // "" means absent
	WaypointIDs      []string
	JunctionIDs      []string
	ParentJunctionID string // "" means this wire is not a junction child
}

// HasEndTab reports whether the wire has a second terminating tab.
func (w *Wire) HasEndTab() bool { return w.EndTabID != "" }
