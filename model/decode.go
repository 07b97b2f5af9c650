package model

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// SupportedMajorVersion is the only document major version this core
// accepts. Decode rejects any document whose Version's leading
// component differs.
const SupportedMajorVersion = 2

// Decode parses and structurally validates a document from the wire
// schema spec.md §6 fixes. It rejects an incompatible major version,
// duplicate ids anywhere in the document, and dangling tab references
// on wires — all via a *ConfigurationError wrapping a specific
// sentinel, per spec.md §7. Decode does not build the in-memory,
// pointer-linked Document; call Build with the result for that.
func Decode(r io.Reader) (*DocumentDTO, error) {
	var dto DocumentDTO
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dto); err != nil {
		return nil, configErrorf(err, "decoding document JSON")
	}

	if err := checkVersion(dto.Version); err != nil {
		return nil, err
	}
	if err := checkDuplicateIDs(&dto); err != nil {
		return nil, err
	}
	if err := checkDanglingReferences(&dto); err != nil {
		return nil, err
	}

	return &dto, nil
}

func checkVersion(version string) error {
	major := version
	if idx := strings.IndexByte(version, '.'); idx >= 0 {
		major = version[:idx]
	}
	n, err := strconv.Atoi(major)
	if err != nil {
		return configErrorf(ErrIncompatibleVersion, "version "+strconv.Quote(version)+" is not parseable")
	}
	if n != SupportedMajorVersion {
		return configErrorf(ErrIncompatibleVersion, "document major version "+major)
	}
	return nil
}

// idCollector accumulates every id in a document so duplicates can be
// detected in one pass.
type idCollector struct {
	seen map[string]bool
}

func newIDCollector() *idCollector { return &idCollector{seen: make(map[string]bool)} }

func (c *idCollector) add(id string) error {
	if id == "" {
		return configErrorf(ErrEmptyID, "")
	}
	if c.seen[id] {
		return configErrorf(ErrDuplicateID, id)
	}
	c.seen[id] = true
	return nil
}

func checkDuplicateIDs(dto *DocumentDTO) error {
	c := newIDCollector()
	for _, page := range dto.Pages {
		if err := c.add(page.PageID); err != nil {
			return err
		}
		for _, comp := range page.Components {
			if err := c.add(comp.ComponentID); err != nil {
				return err
			}
			for _, pin := range comp.Pins {
				if err := c.add(pin.PinID); err != nil {
					return err
				}
				for _, tab := range pin.Tabs {
					if err := c.add(tab.TabID); err != nil {
						return err
					}
				}
			}
		}
		for _, wire := range page.Wires {
			if err := checkWireIDs(wire, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkWireIDs(w WireDTO, c *idCollector) error {
	if err := c.add(w.WireID); err != nil {
		return err
	}
	for _, wp := range w.Waypoints {
		if err := c.add(wp.WaypointID); err != nil {
			return err
		}
	}
	for _, j := range w.Junctions {
		if err := c.add(j.JunctionID); err != nil {
			return err
		}
		for _, child := range j.ChildWires {
			if err := checkWireIDs(child, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkDanglingReferences(dto *DocumentDTO) error {
	for _, page := range dto.Pages {
		tabIDs := make(map[string]bool)
		for _, comp := range page.Components {
			for _, pin := range comp.Pins {
				for _, tab := range pin.Tabs {
					tabIDs[tab.TabID] = true
				}
			}
		}
		for _, wire := range page.Wires {
			if err := checkWireDangling(wire, tabIDs); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkWireDangling(w WireDTO, tabIDs map[string]bool) error {
	if w.StartTabID == "" || !tabIDs[w.StartTabID] {
		return configErrorf(ErrDanglingReference, "wire "+w.WireID+" start_tab_id "+w.StartTabID)
	}
	if w.EndTabID != "" && !tabIDs[w.EndTabID] {
		return configErrorf(ErrDanglingReference, "wire "+w.WireID+" end_tab_id "+w.EndTabID)
	}
	for _, j := range w.Junctions {
		for _, child := range j.ChildWires {
			if err := checkWireDangling(child, tabIDs); err != nil {
				return err
			}
		}
	}
	return nil
}
