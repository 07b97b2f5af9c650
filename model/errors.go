package model

import "errors"

// Sentinel errors for the model package. Callers should branch on
// these via errors.Is, never on error message text.
var (
	// ErrEmptyID indicates a blank id was supplied where one is required.
	ErrEmptyID = errors.New("model: id is empty")

	// ErrDuplicateID indicates two entities in the same document share an id.
	ErrDuplicateID = errors.New("model: duplicate id")

	// ErrDanglingReference indicates a wire, junction, or pin referenced
	// a tab/pin/wire id that does not exist in the document.
	ErrDanglingReference = errors.New("model: dangling reference")

	// ErrIncompatibleVersion indicates the document's major version is
	// not one this core can load.
	ErrIncompatibleVersion = errors.New("model: incompatible document version")

	// ErrUnknownComponentType indicates a ComponentFactory has no
	// builder registered for the requested component type.
	ErrUnknownComponentType = errors.New("model: unknown component type")

	// ErrMissingPin indicates a component factory expected a pin by
	// name (e.g. "COIL") that the document did not provide.
	ErrMissingPin = errors.New("model: missing required pin")
)

// ConfigurationError wraps a lower-level sentinel with context,
// corresponding to spec.md §7's ConfigurationError taxonomy entry:
// malformed data from the loader. It always unwraps (errors.Is/As) to
// the sentinel that caused it.
type ConfigurationError struct {
	Err     error
	Context string
}

func (e *ConfigurationError) Error() string {
	if e.Context == "" {
		return "model: configuration error: " + e.Err.Error()
	}
	return "model: configuration error: " + e.Context + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// configErrorf builds a *ConfigurationError wrapping sentinel with context.
func configErrorf(sentinel error, context string) error {
	return &ConfigurationError{Err: sentinel, Context: context}
}
