package strategies

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// KindPhone is the kind of phone number rules.
const KindPhone validator.Kind = "phone"

// unknownRegion only accepts numbers in international format.
const unknownRegion = "ZZ"

// Phone accepts numbers that libphonenumber considers valid. Numbers
// without a country code are parsed for defaultRegion, which a rule can
// override with the "region" param. An empty defaultRegion requires the
// international format.
func Phone(defaultRegion string) validator.Strategy {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = unknownRegion
	}
	return phoneStrategy{region: region}
}

type phoneStrategy struct {
	region string
}

func (phoneStrategy) Kind() validator.Kind { return KindPhone }

func (s phoneStrategy) CheckRule(rule validator.Rule) error {
	_, err := s.regionFor(rule)
	return err
}

func (s phoneStrategy) Validate(rule validator.Rule, value any) error {
	raw := strings.TrimSpace(validator.AsString(value))
	if raw == "" {
		return nil
	}

	region, err := s.regionFor(rule)
	if err != nil {
		return err
	}

	number, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return validator.Fail(rule, "must be a valid phone number")
	}
	return nil
}

func (s phoneStrategy) regionFor(rule validator.Rule) (string, error) {
	region, ok, err := stringParam(rule, "region")
	if err != nil {
		return "", err
	}
	if !ok || region == "" {
		return s.region, nil
	}
	region = strings.ToUpper(strings.TrimSpace(region))
	if !knownRegion(region) {
		return "", fmt.Errorf("%w: unknown phone region %q", ErrInvalidParams, region)
	}
	return region, nil
}

func knownRegion(region string) bool {
	return region == unknownRegion || phonenumbers.GetCountryCodeForRegion(region) != 0
}
