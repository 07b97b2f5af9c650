package bridge

// Bridge is a dynamic, non-directed edge between two distinct VNETs,
// introduced at runtime (typically by a relay). It does not own the
// VNETs it connects; it is itself owned by Manager and referenced by
// id from Manager's vnet→bridge-ids index.
type Bridge struct {
	ID               string
	VnetA            string
	VnetB            string
	OwnerComponentID string
}

// Other returns the bridge's endpoint opposite the given vnet id. It
// panics if vnetID is neither endpoint — callers always derive vnetID
// from one of Bridge.VnetA/VnetB, so this indicates a programmer error,
// not a runtime condition to recover from.
func (b *Bridge) Other(vnetID string) string {
	switch vnetID {
	case b.VnetA:
		return b.VnetB
	case b.VnetB:
		return b.VnetA
	default:
		panic("bridge: " + vnetID + " is not an endpoint of bridge " + b.ID)
	}
}
