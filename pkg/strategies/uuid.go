package strategies

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// KindUUID is the kind of UUID rules.
const KindUUID validator.Kind = "uuid"

// UUID accepts RFC 4122 UUIDs in the canonical 36 character form.
// The optional "version" param restricts the accepted version.
func UUID() validator.Strategy {
	return uuidStrategy{}
}

type uuidStrategy struct{}

func (uuidStrategy) Kind() validator.Kind { return KindUUID }

func (uuidStrategy) CheckRule(rule validator.Rule) error {
	version, ok, err := intParam(rule, "version")
	if err != nil {
		return err
	}
	if ok && (version < 1 || version > 8) {
		return fmt.Errorf("%w: uuid version must be between 1 and 8, got %d", ErrInvalidParams, version)
	}
	return nil
}

func (uuidStrategy) Validate(rule validator.Rule, value any) error {
	s := validator.AsString(value)
	if s == "" {
		return nil
	}

	// Only the hyphenated form; uuid.Parse also accepts urn: and braced input.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return validator.Fail(rule, "must be a valid UUID")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return validator.Fail(rule, "must be a valid UUID")
	}

	version, ok, err := intParam(rule, "version")
	if err != nil {
		return err
	}
	if ok && id.Version() != uuid.Version(version) {
		return validator.Fail(rule, fmt.Sprintf("must be a version %d UUID", version))
	}
	return nil
}
