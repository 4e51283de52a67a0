package strategies

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// intParam reads an integer parameter. Decoders produce int, int64 or
// float64 depending on the source format; all of them are accepted.
func intParam(rule validator.Rule, name string) (int, bool, error) {
	raw, ok := rule.Param(name)
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case uint:
		return int(n), true, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, false, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidParams, name, n)
		}
		return int(n), true, nil
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParams, name, n)
		}
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidParams, name, raw)
	}
}

func stringParam(rule validator.Rule, name string) (string, bool, error) {
	raw, ok := rule.Param(name)
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidParams, name, raw)
	}
	return s, true, nil
}

// stringsParam reads a list parameter. A single string is split on commas.
func stringsParam(rule validator.Rule, name string) ([]string, bool, error) {
	raw, ok := rule.Param(name)
	if !ok || raw == nil {
		return nil, false, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, true, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, validator.AsString(item))
		}
		return out, true, nil
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %s must be a list, got %T", ErrInvalidParams, name, raw)
	}
}
