package model

// The DTO types mirror the JSON-like wire schema spec.md §6 fixes as
// the consumed document format. They are deliberately flat copies of
// the schema (not the in-memory model types) so that Decode can
// validate the raw tree before committing to pointer-linked
// in-memory entities.

// PointDTO is the wire form of Point.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TabDTO is the wire form of a Tab.
type TabDTO struct {
	TabID    string   `json:"tab_id"`
	Position PointDTO `json:"position"`
}

// PinDTO is the wire form of a Pin.
type PinDTO struct {
	PinID string   `json:"pin_id"`
	Tabs  []TabDTO `json:"tabs"`
}

// WaypointDTO is the wire form of a Waypoint.
type WaypointDTO struct {
	WaypointID string   `json:"waypoint_id"`
	Position   PointDTO `json:"position"`
}

// JunctionDTO is the wire form of a Junction; ChildWires recurses
// using the same WireDTO schema, per spec.md §6.
type JunctionDTO struct {
	JunctionID string    `json:"junction_id"`
	Position   PointDTO  `json:"position"`
	ChildWires []WireDTO `json:"child_wires,omitempty"`
}

// WireDTO is the wire form of a Wire.
type WireDTO struct {
	WireID     string        `json:"wire_id"`
	StartTabID string        `json:"start_tab_id"`
	EndTabID   string        `json:"end_tab_id,omitempty"`
	Waypoints  []WaypointDTO `json:"waypoints,omitempty"`
	Junctions  []JunctionDTO `json:"junctions,omitempty"`
}

// ComponentDTO is the wire form of a Component.
type ComponentDTO struct {
	ComponentID     string                 `json:"component_id"`
	ComponentType   string                 `json:"component_type"`
	Position        PointDTO               `json:"position"`
	Rotation        int                    `json:"rotation"`
	LinkName        string                 `json:"link_name,omitempty"`
	FlipHorizontal  bool                   `json:"flip_horizontal,omitempty"`
	FlipVertical    bool                   `json:"flip_vertical,omitempty"`
	Pins            []PinDTO               `json:"pins"`
	Properties      map[string]interface{} `json:"properties,omitempty"`
}

// CanvasViewDTO is the persisted pan/zoom state. It has no electrical
// meaning and is preserved only for round-tripping through the GUI.
type CanvasViewDTO struct {
	PanX float64 `json:"pan_x"`
	PanY float64 `json:"pan_y"`
	Zoom float64 `json:"zoom"`
}

// PageDTO is the wire form of a Page.
type PageDTO struct {
	PageID     string         `json:"page_id"`
	Name       string         `json:"name"`
	Components []ComponentDTO `json:"components"`
	Wires      []WireDTO      `json:"wires"`
	CanvasView *CanvasViewDTO `json:"canvas_view,omitempty"`
}

// DocumentDTO is the wire form of a Document.
type DocumentDTO struct {
	Version     string                 `json:"version"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Pages       []PageDTO              `json:"pages"`
	SubCircuits map[string]DocumentDTO `json:"sub_circuits,omitempty"`
}
