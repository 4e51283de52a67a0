package strategies

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// Kinds of the string strategies.
const (
	// KindLength bounds the character count.
	KindLength validator.Kind = "length"
	// KindOneOf restricts values to a fixed list.
	KindOneOf validator.Kind = "oneof"
)

// Length bounds the number of characters (runes) with the "min" and "max"
// params. At least one of them must be set.
func Length() validator.Strategy {
	return lengthStrategy{}
}

type lengthStrategy struct{}

func (lengthStrategy) Kind() validator.Kind { return KindLength }

func (lengthStrategy) CheckRule(rule validator.Rule) error {
	_, _, _, _, err := lengthBounds(rule)
	return err
}

func (lengthStrategy) Validate(rule validator.Rule, value any) error {
	s := validator.AsString(value)
	if s == "" {
		return nil
	}

	lo, hasLo, hi, hasHi, err := lengthBounds(rule)
	if err != nil {
		return err
	}

	n := utf8.RuneCountInString(s)
	switch {
	case hasLo && hasHi && (n < lo || n > hi):
		return validator.Fail(rule, fmt.Sprintf("must be between %d and %d characters", lo, hi))
	case hasLo && n < lo:
		return validator.Fail(rule, fmt.Sprintf("must be at least %d characters long", lo))
	case hasHi && n > hi:
		return validator.Fail(rule, fmt.Sprintf("must be at most %d characters long", hi))
	}
	return nil
}

func lengthBounds(rule validator.Rule) (lo int, hasLo bool, hi int, hasHi bool, err error) {
	if lo, hasLo, err = intParam(rule, "min"); err != nil {
		return
	}
	if hi, hasHi, err = intParam(rule, "max"); err != nil {
		return
	}
	switch {
	case !hasLo && !hasHi:
		err = fmt.Errorf("%w: length rule needs min or max", ErrInvalidParams)
	case lo < 0 || hi < 0:
		err = fmt.Errorf("%w: length bounds must not be negative", ErrInvalidParams)
	case hasLo && hasHi && lo > hi:
		err = fmt.Errorf("%w: length min %d is greater than max %d", ErrInvalidParams, lo, hi)
	}
	return
}

// OneOf accepts values whose string form is listed in the "values" param.
func OneOf() validator.Strategy {
	return oneOfStrategy{}
}

type oneOfStrategy struct{}

func (oneOfStrategy) Kind() validator.Kind { return KindOneOf }

func (oneOfStrategy) CheckRule(rule validator.Rule) error {
	_, err := allowedValues(rule)
	return err
}

func (oneOfStrategy) Validate(rule validator.Rule, value any) error {
	s := validator.AsString(value)
	if s == "" {
		return nil
	}

	allowed, err := allowedValues(rule)
	if err != nil {
		return err
	}
	if !slices.Contains(allowed, s) {
		return validator.Fail(rule, "must be one of: "+strings.Join(allowed, ", "))
	}
	return nil
}

func allowedValues(rule validator.Rule) ([]string, error) {
	values, ok, err := stringsParam(rule, "values")
	if err != nil {
		return nil, err
	}
	if !ok || len(values) == 0 {
		return nil, fmt.Errorf("%w: oneof rule needs a non-empty values list", ErrInvalidParams)
	}
	return values, nil
}
