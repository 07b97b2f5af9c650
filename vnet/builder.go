package vnet

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/relaysim/model"
)

// Builder turns a page's components + wires + junctions into its VNET
// set (spec.md §4.1). The connected-component walk is grounded on the
// teacher corpus's gridgraph.ConnectedComponents (BFS over an implicit
// grid adjacency) and dfs.Walk's visited-set/recursion-through-
// structure idiom, adapted from a 2-D grid to the wire/junction
// adjacency graph.
type Builder struct{}

// NewBuilder creates a Builder. Builder carries no state; a single
// instance may build every page of a document.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildPage builds the VNET set for one page. Tabs not reachable from
// any wire still each form a singleton VNET (spec.md §4.1 output
// contract).
func (b *Builder) BuildPage(page *model.Page) []*VNET {
	adjacency := make(map[string]map[string]struct{})
	ensure := func(id string) {
		if _, ok := adjacency[id]; !ok {
			adjacency[id] = make(map[string]struct{})
		}
	}
	addEdge := func(a, bID string) {
		ensure(a)
		ensure(bID)
		adjacency[a][bID] = struct{}{}
		adjacency[bID][a] = struct{}{}
	}

	tabs := page.Tabs()
	for _, t := range tabs {
		ensure(t.ID())
	}

	var walkWire func(w *model.Wire, inheritedEndpoints []string)
	walkWire = func(w *model.Wire, inheritedEndpoints []string) {
		endpoints := inheritedEndpoints
		if w.StartTabID != "" {
			for _, e := range endpoints {
				addEdge(e, w.StartTabID)
			}
			endpoints = append(endpoints, w.StartTabID)
		}
		if w.HasEndTab() {
			for _, e := range endpoints {
				addEdge(e, w.EndTabID)
			}
			endpoints = append(endpoints, w.EndTabID)
		}

		for _, jid := range w.JunctionIDs {
			j, ok := page.Junction(jid)
			if !ok {
				continue
			}
			for _, childID := range j.ChildWireIDs {
				child, ok := page.Wire(childID)
				if !ok {
					continue
				}
				walkWire(child, endpoints)
			}
		}
	}

	for _, w := range page.Wires {
		if w.ParentJunctionID == "" {
			walkWire(w, nil)
		}
	}

	unvisited := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		unvisited[t.ID()] = true
	}

	var vnets []*VNET
	for start := range unvisited {
		if !unvisited[start] {
			continue
		}

		queue := []string{start}
		unvisited[start] = false
		group := []string{start}

		for i := 0; i < len(queue); i++ {
			cur := queue[i]
			for neighbor := range adjacency[cur] {
				if unvisited[neighbor] {
					unvisited[neighbor] = false
					queue = append(queue, neighbor)
					group = append(group, neighbor)
				}
			}
		}

		v := NewVNET(uuid.NewString(), page.ID)
		for _, tabID := range group {
			v.addTab(tabID)
		}
		vnets = append(vnets, v)
	}

	return vnets
}
