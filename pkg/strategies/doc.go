// Package strategies provides ready-made named strategies for the validator
// package. None of them is registered implicitly; call Register with the
// registry your validators use:
//
//	reg := validator.NewRegistry()
//	if err := strategies.Register(reg, strategies.WithPhoneRegion("NL")); err != nil {
//	    return err
//	}
//	v, err := validator.New([]validator.Rule{
//	    validator.Required(""),
//	    validator.Named(strategies.KindLength, "", map[string]any{"max": 64}),
//	    validator.Named(strategies.KindEmail, "Enter a valid email", nil),
//	}, validator.WithRegistry(reg))
//
// Kinds:
//   - uuid   – canonical UUID, optional "version" param (google/uuid)
//   - urn    – RFC 2141 URN (leodido/go-urn)
//   - phone  – valid phone number, optional "region" param (nyaruka/phonenumbers)
//   - tag    – go-playground/validator tag expression in the "tag" param
//   - email  – bare email address
//   - length – rune count within "min" and/or "max"
//   - oneof  – string form listed in "values"
//
// The empty string passes every kind except tag, leaving emptiness to the
// required rule. Strategies with params implement validator.RuleChecker, so
// bad params are rejected when the rule is added.
package strategies
