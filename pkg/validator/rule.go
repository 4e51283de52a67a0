package validator

import (
	"fmt"
	"regexp"
)

// Kind identifies the strategy that validates a rule.
type Kind string

// Built-in rule kinds. They are resolved without prior registration.
const (
	KindRequired Kind = "required"
	KindPattern  Kind = "pattern"
	KindCustom   Kind = "custom"
)

// IsBuiltin reports whether k is one of the built-in kinds.
func (k Kind) IsBuiltin() bool {
	switch k {
	case KindRequired, KindPattern, KindCustom:
		return true
	default:
		return false
	}
}

// CustomFunc checks a value for a custom rule. A non-nil error is the
// validation failure and is reported as-is.
type CustomFunc func(rule Rule, value any) error

// Rule describes a single validation check.
//
// Kind is the discriminant. Pattern is only meaningful for KindPattern,
// Validator only for KindCustom, Params only for registered kinds.
type Rule struct {
	Kind      Kind
	Message   string
	Pattern   *regexp.Regexp
	Validator CustomFunc
	Params    map[string]any
}

// Required fails on the empty string.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

// Pattern fails when the value does not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{Kind: KindPattern, Pattern: re, Message: message}
}

// MatchString compiles expr and returns a pattern rule. Panics if expr does not compile.
func MatchString(expr, message string) Rule {
	return Pattern(regexp.MustCompile(expr), message)
}

// Custom wraps fn into a rule.
func Custom(fn CustomFunc) Rule {
	return Rule{Kind: KindCustom, Validator: fn}
}

// Named returns a rule that is dispatched to the strategy registered under kind.
func Named(kind Kind, message string, params map[string]any) Rule {
	return Rule{Kind: kind, Message: message, Params: params}
}

// Param returns the named parameter and whether it is set.
func (r Rule) Param(name string) (any, bool) {
	if r.Params == nil {
		return nil, false
	}
	v, ok := r.Params[name]
	return v, ok
}

// check verifies the rule carries the payload its kind needs.
func (r Rule) check() error {
	switch r.Kind {
	case "":
		return fmt.Errorf("%w: missing kind", ErrInvalidRule)
	case KindPattern:
		if r.Pattern == nil {
			return fmt.Errorf("%w: pattern rule without a pattern", ErrInvalidRule)
		}
	case KindCustom:
		if r.Validator == nil {
			return fmt.Errorf("%w: custom rule without a validator function", ErrInvalidRule)
		}
	}
	return nil
}

func (r Rule) messageOr(def string) string {
	if r.Message != "" {
		return r.Message
	}
	return def
}
