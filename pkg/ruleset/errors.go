package ruleset

import "errors"

var (
	// ErrParse is returned when a document or expression cannot be parsed.
	ErrParse = errors.New("failed to parse rule set")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported rule set format")

	// ErrUnknownList is returned when a set has no list with the requested name.
	ErrUnknownList = errors.New("unknown rule list")

	// ErrDuplicateList is returned when a document defines the same list twice.
	ErrDuplicateList = errors.New("duplicate rule list")
)
