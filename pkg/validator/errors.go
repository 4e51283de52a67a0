package validator

import "errors"

// Structural errors. They describe a misconfigured validator or registry
// and are returned from New, Add and Register, never from Run.
var (
	// ErrInvalidRule is returned when a rule has no recognizable shape.
	ErrInvalidRule = errors.New("invalid rule item")

	// ErrUnknownKind is returned when no strategy is registered for a rule kind.
	ErrUnknownKind = errors.New("no strategy registered for rule kind")

	// ErrNotBuiltin is returned by Registry.Builtin for kinds it cannot instantiate.
	ErrNotBuiltin = errors.New("not a built-in rule kind")

	// ErrNilStrategy is returned when registering a nil strategy.
	ErrNilStrategy = errors.New("nil strategy")

	// ErrEmptyKind is returned when registering a strategy without a kind.
	ErrEmptyKind = errors.New("strategy kind is empty")
)

// ErrValidationFailed matches every ValidationError through errors.Is.
var ErrValidationFailed = errors.New("validation failed")
