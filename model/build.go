package model

import "strings"

// Build turns a validated DocumentDTO (see Decode) into the
// pointer-linked, in-memory Document the rest of the core operates
// on, instantiating each component via factory.
//
// Build also performs the one semantic (non-structural) validation
// spec.md §4.2 calls for at load time: a link name on a component
// with zero tabs is unconnectable and is reported as a
// *ConfigurationError (ErrMissingPin-flavored, see below); dangling
// links (a link name used by only one component) are NOT an error —
// LinkResolver reports those as a warning once VNETs exist, since a
// single-component link cannot be detected as "dangling" until VNET
// construction groups tabs across pages.
func Build(dto *DocumentDTO, factory ComponentFactory) (*Document, error) {
	doc := NewDocument(dto.Version)
	doc.Metadata = dto.Metadata
	if doc.Metadata == nil {
		doc.Metadata = make(map[string]interface{})
	}

	for _, pageDTO := range dto.Pages {
		page, err := buildPage(pageDTO, factory)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, page)
	}

	for name, subDTO := range dto.SubCircuits {
		subDTO := subDTO
		sub, err := Build(&subDTO, factory)
		if err != nil {
			return nil, err
		}
		doc.SubCircuits[name] = sub
	}

	return doc, nil
}

func buildPage(pageDTO PageDTO, factory ComponentFactory) (*Page, error) {
	page := NewPage(pageDTO.PageID, pageDTO.Name)

	for _, compDTO := range pageDTO.Components {
		comp, err := buildComponent(compDTO, pageDTO.PageID, factory)
		if err != nil {
			return nil, err
		}
		page.AddComponent(comp)

		tabCount := 0
		for _, p := range comp.Pins() {
			tabCount += len(p.Tabs())
		}
		if compDTO.LinkName != "" && tabCount == 0 {
			return nil, configErrorf(ErrMissingPin,
				"component "+compDTO.ComponentID+" has link_name "+compDTO.LinkName+" but no tabs")
		}
	}

	for _, wireDTO := range pageDTO.Wires {
		wire := buildWire(wireDTO, page)
		page.AddWire(wire)
	}

	return page, nil
}

func buildComponent(compDTO ComponentDTO, pageID string, factory ComponentFactory) (Component, error) {
	pins := make(map[string]*Pin, len(compDTO.Pins))
	for _, pinDTO := range compDTO.Pins {
		pin := NewPin(pinDTO.PinID, compDTO.ComponentID)
		for _, tabDTO := range pinDTO.Tabs {
			tab := NewTab(tabDTO.TabID, Point{X: tabDTO.Position.X, Y: tabDTO.Position.Y})
			pin.AddTab(tab)
		}
		pins[pinName(pinDTO.PinID)] = pin
	}

	spec := ComponentSpec{
		ID:         compDTO.ComponentID,
		Type:       compDTO.ComponentType,
		PageID:     pageID,
		LinkName:   compDTO.LinkName,
		Position:   Point{X: compDTO.Position.X, Y: compDTO.Position.Y},
		Rotation:   compDTO.Rotation,
		FlipH:      compDTO.FlipHorizontal,
		FlipV:      compDTO.FlipVertical,
		Properties: compDTO.Properties,
		Pins:       pins,
	}
	if spec.Properties == nil {
		spec.Properties = make(map[string]interface{})
	}

	return factory.Build(spec)
}

// pinName extracts the "{pin_name}" suffix from a "{component_id}.{pin_name}" id.
func pinName(pinID string) string {
	if idx := strings.LastIndexByte(pinID, '.'); idx >= 0 {
		return pinID[idx+1:]
	}
	return pinID
}

func buildWire(wireDTO WireDTO, page *Page) *Wire {
	wire := &Wire{
		ID:         wireDTO.WireID,
		StartTabID: wireDTO.StartTabID,
		EndTabID:   wireDTO.EndTabID,
	}
	for _, wpDTO := range wireDTO.Waypoints {
		wp := &Waypoint{ID: wpDTO.WaypointID, Position: Point{X: wpDTO.Position.X, Y: wpDTO.Position.Y}}
		page.AddWaypoint(wp)
		wire.WaypointIDs = append(wire.WaypointIDs, wp.ID)
	}
	for _, jDTO := range wireDTO.Junctions {
		junction := &Junction{ID: jDTO.JunctionID, Position: Point{X: jDTO.Position.X, Y: jDTO.Position.Y}}
		for _, childDTO := range jDTO.ChildWires {
			child := buildWire(childDTO, page)
			child.ParentJunctionID = junction.ID
			page.AddWire(child)
			junction.ChildWireIDs = append(junction.ChildWireIDs, child.ID)
		}
		page.AddJunction(junction)
		wire.JunctionIDs = append(wire.JunctionIDs, junction.ID)
	}
	return wire
}
