// Package bridge implements the dynamic, runtime-created edges
// between VNETs (spec.md §3 Bridge / BridgeManager). A bridge merges
// two VNETs for evaluation purposes without destroying their
// identity: removing it restores the bridge-free evaluator
// equivalence (spec.md §8 property 3).
//
// Manager mirrors the teacher's core.Graph secondary-index pattern
// (adjacencyList keyed by vertex, here keyed by vnet and by owner
// component) behind one coarse sync.RWMutex — bridges change rarely
// (only on relay transitions), so a single lock is deliberately
// simpler than lvlath's split muVert/muEdgeAdj, per spec.md §5's
// "coarse lock is fine" guidance.
package bridge
