package strategies

import (
	"net/mail"
	"strings"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// KindEmail is the kind of email address rules.
const KindEmail validator.Kind = "email"

// Email accepts a bare RFC 5322 address with a dotted domain.
// Display names ("Bob <bob@example.com>") are rejected.
func Email() validator.Strategy {
	return emailStrategy{}
}

type emailStrategy struct{}

func (emailStrategy) Kind() validator.Kind { return KindEmail }

func (emailStrategy) Validate(rule validator.Rule, value any) error {
	s := validator.AsString(value)
	if s == "" {
		return nil
	}
	if !validEmail(s) {
		return validator.Fail(rule, "must be a valid email address")
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start or end with one
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
