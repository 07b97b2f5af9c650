package bridge

import "errors"

// Sentinel errors for the bridge package; branch via errors.Is.
var (
	// ErrSameVnet indicates a bridge was requested between a VNET and itself.
	ErrSameVnet = errors.New("bridge: vnet_a and vnet_b must differ")

	// ErrNotFound indicates a bridge id was not found. No function in
	// this package returns it: RemoveBridge treats a missing id as a
	// no-op, and Get reports a miss through its bool result.
	ErrNotFound = errors.New("bridge: bridge not found")
)
