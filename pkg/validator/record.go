package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// Record keys understood by FromMap. Aliases follow older rule formats.
const (
	KeyRequired  = "required"
	KeyPattern   = "pattern"
	KeyReg       = "reg"
	KeyValidator = "validator"
	KeyKind      = "kind"
	KeyType      = "type"
	KeyMessage   = "message"
)

// FromMap converts a loosely typed rule record into a Rule.
//
// The shape is decided by field presence in a fixed order: a truthy
// "required", then "pattern" (or "reg"), then "validator", then "kind"
// (or "type"). The first match wins; later fields are ignored. Keys that
// are not part of the matched shape end up in Params for named rules.
func FromMap(rec map[string]any) (Rule, error) {
	if rec == nil {
		return Rule{}, fmt.Errorf("%w: nil record", ErrInvalidRule)
	}

	message, err := stringField(rec, KeyMessage)
	if err != nil {
		return Rule{}, err
	}

	if truthy(rec[KeyRequired]) {
		return Required(message), nil
	}

	if raw, ok := firstKey(rec, KeyPattern, KeyReg); ok {
		re, err := compilePattern(raw)
		if err != nil {
			return Rule{}, err
		}
		return Pattern(re, message), nil
	}

	if raw, ok := rec[KeyValidator]; ok && raw != nil {
		fn, err := customFunc(raw)
		if err != nil {
			return Rule{}, err
		}
		rule := Custom(fn)
		rule.Message = message
		return rule, nil
	}

	if raw, ok := firstKey(rec, KeyKind, KeyType); ok {
		kind, isString := raw.(string)
		if !isString || kind == "" {
			return Rule{}, fmt.Errorf("%w: kind must be a non-empty string, got %T", ErrInvalidRule, raw)
		}
		return Named(Kind(kind), message, extraParams(rec)), nil
	}

	return Rule{}, fmt.Errorf("%w: record has none of required, pattern, validator or kind", ErrInvalidRule)
}

// FromMaps converts every record, failing on the first malformed one.
func FromMaps(recs []map[string]any) ([]Rule, error) {
	rules := make([]Rule, 0, len(recs))
	for i, rec := range recs {
		rule, err := FromMap(rec)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func firstKey(rec map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0
	default:
		return true
	}
}

func stringField(rec map[string]any, key string) (string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidRule, key, v)
	}
	return s, nil
}

func compilePattern(raw any) (*regexp.Regexp, error) {
	switch p := raw.(type) {
	case *regexp.Regexp:
		return p, nil
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Join(ErrInvalidRule, fmt.Errorf("pattern %q: %w", p, err))
		}
		return re, nil
	default:
		return nil, fmt.Errorf("%w: pattern must be a string or *regexp.Regexp, got %T", ErrInvalidRule, raw)
	}
}

func customFunc(raw any) (CustomFunc, error) {
	switch fn := raw.(type) {
	case CustomFunc:
		return fn, nil
	case func(Rule, any) error:
		return fn, nil
	case func(any) error:
		return func(_ Rule, value any) error { return fn(value) }, nil
	default:
		return nil, fmt.Errorf("%w: validator must be a function, got %T", ErrInvalidRule, raw)
	}
}

func extraParams(rec map[string]any) map[string]any {
	var params map[string]any
	for k, v := range rec {
		switch k {
		case KeyRequired, KeyPattern, KeyReg, KeyValidator, KeyKind, KeyType, KeyMessage:
			continue
		}
		if params == nil {
			params = make(map[string]any, len(rec))
		}
		params[k] = v
	}
	return params
}
