package strategies

import (
	"github.com/leodido/go-urn"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// KindURN is the kind of URN rules.
const KindURN validator.Kind = "urn"

// URN accepts RFC 2141 URNs such as "urn:isbn:0451450523".
func URN() validator.Strategy {
	return urnStrategy{}
}

type urnStrategy struct{}

func (urnStrategy) Kind() validator.Kind { return KindURN }

func (urnStrategy) Validate(rule validator.Rule, value any) error {
	s := validator.AsString(value)
	if s == "" {
		return nil
	}
	if _, ok := urn.Parse([]byte(s)); !ok {
		return validator.Fail(rule, "must be a valid URN")
	}
	return nil
}
