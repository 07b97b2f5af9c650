// Package model defines the static data model of a schematic: tabs,
// pins, waypoints, junctions, wires, components, pages, and documents
// (spec layers L1-L4).
//
// Ownership follows an arena style: a Page owns its Pins, Tabs,
// Waypoints, and Junctions in id-keyed maps; Wires and Junctions
// reference each other and their tabs by id, never by pointer, so
// that cyclic wire/junction graphs (spec.md §9) cannot produce
// reference cycles in the Go heap. Pin→Tab is the one exception: a
// Tab is owned outright by exactly one Pin and is never re-parented,
// so a direct pointer is safe and avoids a map lookup on every state
// read.
//
// Component is a capability interface (sim_start/simulate_logic/
// sim_stop/interact/get_visual_state); concrete behaviors live in the
// sibling components package. model itself only defines the
// interface and the two narrow access-interfaces a component needs
// from the simulation (VnetAccess, BridgeAccess), which the vnet and
// bridge packages satisfy structurally — model never imports them.
package model
