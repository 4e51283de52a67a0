package strategies

import (
	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// Option configures the strategies returned by All.
type Option func(*options)

type options struct {
	phoneRegion string
	playground  *playground.Validate
}

// WithPhoneRegion sets the default region of the phone strategy (ISO 3166 code).
func WithPhoneRegion(region string) Option {
	return func(o *options) { o.phoneRegion = region }
}

// WithPlayground shares a go-playground validator, e.g. one with custom
// validations registered, with the tag strategy.
func WithPlayground(v *playground.Validate) Option {
	return func(o *options) {
		if v != nil {
			o.playground = v
		}
	}
}

// All returns every strategy of the package.
func All(opts ...Option) []validator.Strategy {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return []validator.Strategy{
		UUID(),
		URN(),
		Phone(o.phoneRegion),
		Tag(o.playground),
		Email(),
		Length(),
		OneOf(),
	}
}

// Register adds every strategy of the package to reg.
func Register(reg *validator.Registry, opts ...Option) error {
	return reg.Register(All(opts...)...)
}
