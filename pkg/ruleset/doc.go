// Package ruleset loads named rule lists from YAML or JSON documents and
// from a compact expression syntax.
//
// A document maps list names to either a sequence of rule records or an
// expression string:
//
//	code:
//	  - required: true
//	    message: Code is required
//	  - pattern: '^\d+$'
//	    message: Digits only
//	email: required("Email is required") | email | length(max=64)
//	color: oneof(values=[red, green, blue])
//
// Records are classified by validator.FromMap, so the usual field
// precedence applies (required, pattern, validator, kind). Expressions are
// pipe-separated calls; regular expressions are easiest to write as
// backtick strings: pattern(`^\d+$`, "Digits only").
//
// Custom function rules cannot be expressed in documents; add them to the
// validator returned by Set.Validator.
package ruleset
