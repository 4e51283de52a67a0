package strategies

import "errors"

// ErrInvalidParams is returned when a rule's parameters do not fit its kind.
// Registry.Resolve reports it at add time, joined with validator.ErrInvalidRule.
var ErrInvalidParams = errors.New("invalid rule parameters")
