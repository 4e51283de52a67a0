package validator

import (
	"errors"
	"fmt"
)

// Default messages of the built-in strategies.
const (
	DefaultRequiredMessage = "Required"
	DefaultPatternMessage  = "Invalid"
)

// Strategy validates values for one rule kind.
// Validate returns nil when value satisfies rule.
type Strategy interface {
	Kind() Kind
	Validate(rule Rule, value any) error
}

// RuleChecker is implemented by strategies that can reject a rule's
// parameters when the rule is added. Registry.Resolve calls it.
type RuleChecker interface {
	CheckRule(rule Rule) error
}

// StrategyFunc adapts a function into a Strategy for the given kind.
func StrategyFunc(kind Kind, fn func(rule Rule, value any) error) Strategy {
	return funcStrategy{kind: kind, fn: fn}
}

type funcStrategy struct {
	kind Kind
	fn   func(rule Rule, value any) error
}

func (s funcStrategy) Kind() Kind { return s.kind }

func (s funcStrategy) Validate(rule Rule, value any) error {
	if s.fn == nil {
		return nil
	}
	return s.fn(rule, value)
}

// ValidationError is the failure reported by the built-in strategies.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// Is makes every ValidationError match ErrValidationFailed.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fail builds a ValidationError for rule, using its message or def.
func Fail(rule Rule, def string) error {
	return ValidationError{Kind: rule.Kind, Message: rule.messageOr(def)}
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	_, ok := ExtractValidationError(err)
	return ok
}

// ExtractValidationError unwraps a ValidationError from err.
func ExtractValidationError(err error) (ValidationError, bool) {
	if err == nil {
		return ValidationError{}, false
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return ValidationError{}, false
}

type requiredStrategy struct{}

func (requiredStrategy) Kind() Kind { return KindRequired }

// Validate fails only on the empty string. No trimming, other types pass.
func (requiredStrategy) Validate(rule Rule, value any) error {
	if s, ok := value.(string); ok && s == "" {
		return Fail(rule, DefaultRequiredMessage)
	}
	return nil
}

type patternStrategy struct{}

func (patternStrategy) Kind() Kind { return KindPattern }

func (patternStrategy) Validate(rule Rule, value any) error {
	if rule.Pattern == nil {
		return Fail(rule, DefaultPatternMessage)
	}
	if !rule.Pattern.MatchString(AsString(value)) {
		return Fail(rule, DefaultPatternMessage)
	}
	return nil
}

type customStrategy struct{}

func (customStrategy) Kind() Kind { return KindCustom }

// Validate calls the rule's function and recovers from panics, so a
// panicking validator reports its panic value as the failure.
func (customStrategy) Validate(rule Rule, value any) (err error) {
	if rule.Validator == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return rule.Validator(rule, value)
}

// AsString returns the string form used for matching.
// nil becomes the empty string.
func AsString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
