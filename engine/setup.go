package engine

import (
	"github.com/katalvlaran/relaysim/bridge"
	"github.com/katalvlaran/relaysim/coordinator"
	"github.com/katalvlaran/relaysim/model"
	"github.com/katalvlaran/relaysim/vnet"
)

// runtime is the per-engine-instance collection of L7 components
// (spec.md §4.7's "dependency injections of all L7 components"):
// the vnet arena, the bridge registry, the evaluator/propagator pair,
// the update coordinator, and a flat, document-order index of every
// component across every page. Built once by newRuntime and shared by
// SingleEngine and PooledEngine alike.
type runtime struct {
	doc *model.Document

	vnets   *vnet.Manager
	bridges *bridge.Manager
	eval    *vnet.Evaluator
	prop    *vnet.Propagator
	coord   *coordinator.UpdateCoordinator

	components     map[string]model.Component
	componentOrder []string // document (page, then within-page) order
	warnings       []string
}

// newRuntime builds the vnet/bridge/coordinator wiring for doc
// (spec.md §4.1/§4.2 construction, plus the component/vnet ownership
// index QueueForVnet needs). doc's components must already be built
// (model.Build already instantiated them via a model.ComponentFactory
// — engine only wires the topology, it does not construct components).
func newRuntime(doc *model.Document) *runtime {
	vnets, warnings := vnet.BuildDocument(doc)
	bridges := bridge.NewManager(vnets.Dirty)
	coord := coordinator.NewUpdateCoordinator()

	r := &runtime{
		doc:        doc,
		vnets:      vnets,
		bridges:    bridges,
		eval:       vnet.NewEvaluator(vnets, bridges),
		prop:       vnet.NewPropagator(vnets, bridges),
		coord:      coord,
		components: make(map[string]model.Component),
		warnings:   warnings,
	}

	owners := make(map[string][]string) // vnet id -> owning component ids
	for _, page := range doc.Pages {
		for _, comp := range page.Components {
			r.components[comp.ID()] = comp
			r.componentOrder = append(r.componentOrder, comp.ID())

			for _, pin := range comp.Pins() {
				for _, tab := range pin.Tabs() {
					vnetID, ok := vnets.VnetForTab(tab.ID())
					if !ok {
						continue
					}
					owners[vnetID] = appendUnique(owners[vnetID], comp.ID())
				}
			}
		}
	}
	for vnetID, ids := range owners {
		coord.SetOwnership(vnetID, ids)
	}

	return r
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
