// Package state defines the two-valued logic used across the relay
// simulation core.
//
//   - PinState: HIGH or FLOAT, no LOW, no tri-state conflict.
//   - Combine: the HIGH-wins OR combinator — HIGH ⊔ x = HIGH,
//     FLOAT ⊔ FLOAT = FLOAT.
//
// Every tab, pin, and VNET in the system carries a value of this type
// at all times; there is no "unset" state.
package state
