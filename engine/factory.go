package engine

import "github.com/katalvlaran/relaysim/model"

// New builds the simulation engine best suited to doc's size (spec.md
// §4.8): SingleEngine below cfg.PooledThreshold components, PooledEngine
// at or above it. Component count, not vnet or page count, is the
// threshold's unit, since component-logic calls are the phase that
// dominates a large document's per-pass cost.
func New(doc *model.Document, cfg Config) Engine {
	if countComponents(doc) >= cfg.PooledThreshold {
		return NewPooledEngine(doc, cfg)
	}
	return NewSingleEngine(doc, cfg)
}

func countComponents(doc *model.Document) int {
	n := 0
	for _, page := range doc.Pages {
		n += len(page.Components)
	}
	return n
}
