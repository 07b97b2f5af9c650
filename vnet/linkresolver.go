package vnet

import "fmt"

// LinkResolver merges VNETs across pages via shared link names
// (spec.md §4.2). It never merges membership directly — it only fans
// out each vnet's link_names set so the evaluator and propagator can
// treat linked vnets as mutual contributors.
type LinkResolver struct{}

// NewLinkResolver creates a LinkResolver. It carries no state.
func NewLinkResolver() *LinkResolver {
	return &LinkResolver{}
}

// Resolve augments mgr's vnets with link names, given tabLinkNames: a
// map from tab id to the link name of the component owning that tab
// (only tabs belonging to a linked component need an entry). This is
// an equivalent, tab-granular restatement of spec.md §4.2's
// "link_name → [components with that link]" input — a component's
// link name reaches a vnet exactly through the tabs of that
// component's pins, so indexing by tab id instead of by component
// produces the identical vnet→link-names result without needing the
// component objects themselves.
//
// Returns a warning per link name carried by only one vnet (dangling,
// spec.md §4.2 rule 1) — not an error.
func (r *LinkResolver) Resolve(mgr *Manager, tabLinkNames map[string]string) []string {
	byLink := make(map[string]map[string]struct{})

	for tabID, linkName := range tabLinkNames {
		if linkName == "" {
			continue
		}
		vnetID, ok := mgr.VnetForTab(tabID)
		if !ok {
			continue
		}
		set, ok := byLink[linkName]
		if !ok {
			set = make(map[string]struct{})
			byLink[linkName] = set
		}
		set[vnetID] = struct{}{}
	}

	var warnings []string
	for linkName, vnetIDs := range byLink {
		for vnetID := range vnetIDs {
			mgr.AddLinkName(vnetID, linkName)
		}
		if len(vnetIDs) < 2 {
			warnings = append(warnings, fmt.Sprintf("link name %q is carried by only one vnet (dangling)", linkName))
		}
	}

	return warnings
}
