package components

import "errors"

// Sentinel errors for the components package; branch via errors.Is.
var (
	// ErrUnknownType indicates Registry.Build was asked for a
	// component type it has no constructor for.
	ErrUnknownType = errors.New("components: unknown component type")

	// ErrMissingPin indicates a ComponentSpec is missing a pin name a
	// component's constructor requires (document/factory mismatch).
	ErrMissingPin = errors.New("components: spec missing required pin")

	// ErrUnknownSubCircuit indicates a SubCircuit spec names a
	// sub-circuit definition the document's catalog does not contain.
	ErrUnknownSubCircuit = errors.New("components: unknown sub-circuit definition")
)
