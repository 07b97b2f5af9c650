package vnet

import "errors"

// Sentinel errors for the vnet package; branch via errors.Is.
var (
	// ErrNotFound indicates a vnet id was not registered with the manager.
	ErrNotFound = errors.New("vnet: vnet not found")
)
