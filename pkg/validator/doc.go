// Package validator checks a single value against an ordered list of
// declarative rules and reports the first rule that fails.
//
// Each Rule carries an explicit Kind. The kind is resolved to a Strategy
// through a Registry when the rule is added, so a misconfigured rule is
// rejected immediately instead of surfacing during validation.
//
// # Architecture
//
// Core building blocks:
//   - Rule              – kind, optional message, pattern, function or params
//   - Strategy          – the check behind one kind
//   - Registry          – kind → strategy catalog, safe for concurrent use
//   - Validator         – ordered (rule, strategy) pairs with short-circuit Run
//   - ValidationError   – failure reported by the built-in strategies
//
// Three kinds are built in: "required" fails on the empty string, "pattern"
// fails when the value's string form does not match a regular expression,
// and "custom" delegates to a caller-supplied function. Any other kind must be
// registered first, either in the process-wide default registry with
// AddStrategies or in a dedicated Registry passed with WithRegistry.
//
// # Usage
//
//	v, err := validator.New([]validator.Rule{
//	    validator.Required("Code is required"),
//	    validator.MatchString(`^\d+$`, "Digits only"),
//	})
//	if err != nil {
//	    // misconfigured rules
//	}
//	if err := v.Run("12a"); err != nil {
//	    fmt.Println(err) // Digits only
//	}
//
// Loosely typed records, as decoded from YAML or JSON, are converted with
// FromMap, which picks the rule shape by field presence: required, then
// pattern, then validator, then kind.
//
// # Error Handling
//
// Structural problems (unknown kind, missing pattern, nil strategy) are
// returned by New, Add and Register and match ErrInvalidRule and friends via
// errors.Is. Validation failures are returned by Run: built-in strategies
// return ValidationError, which matches ErrValidationFailed; custom functions
// have their error passed through unchanged.
package validator
