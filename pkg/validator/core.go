package validator

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
)

type entry struct {
	rule     Rule
	strategy Strategy
}

// Validator runs an ordered list of rules against a value and reports the
// first failure.
//
// Run may be called concurrently. Add must not be called concurrently with
// Run; configure the validator first, then share it.
type Validator struct {
	registry *Registry
	logger   *slog.Logger
	entries  []entry
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry resolves rules against r instead of the default registry.
// Nil registries are ignored.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithLogger sets the logger used to report rejected rules.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator seeded with rules.
//
// Every rule is checked for a valid shape and resolved to a strategy before
// any of them is stored, so a failing call leaves nothing behind.
func New(rules []Rule, opts ...Option) (*Validator, error) {
	v := &Validator{
		registry: defaultRegistry,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}

	for i, rule := range rules {
		if err := rule.check(); err != nil {
			v.logger.Debug("rule rejected", logger.RuleIndex(i), logger.Error(err))
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	if err := v.Add(rules...); err != nil {
		return nil, err
	}
	return v, nil
}

// MustNew works like New but panics on error.
func MustNew(rules []Rule, opts ...Option) *Validator {
	v, err := New(rules, opts...)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}

// Add resolves and appends rules. New rules are evaluated after the existing
// ones. If any rule cannot be resolved, none of them is added.
func (v *Validator) Add(rules ...Rule) error {
	resolved := make([]entry, 0, len(rules))
	for i, rule := range rules {
		strategy, err := v.registry.Resolve(rule)
		if err != nil {
			v.logger.Debug("rule rejected",
				logger.RuleIndex(i),
				logger.Kind(string(rule.Kind)),
				logger.Error(err),
			)
			return fmt.Errorf("rule %d: %w", i, err)
		}
		resolved = append(resolved, entry{rule: rule, strategy: strategy})
	}

	v.entries = append(v.entries, resolved...)
	return nil
}

// Run validates value against the rules in insertion order and returns the
// first failure, or nil if every rule passes.
func (v *Validator) Run(value any) error {
	for _, e := range v.entries {
		if err := e.strategy.Validate(e.rule, value); err != nil {
			return err
		}
	}
	return nil
}

// Check is Run rendered as a message. The empty string means success.
func (v *Validator) Check(value any) string {
	if err := v.Run(value); err != nil {
		return err.Error()
	}
	return ""
}

// Rules returns a copy of the rules in evaluation order.
func (v *Validator) Rules() []Rule {
	rules := make([]Rule, len(v.entries))
	for i, e := range v.entries {
		rules[i] = e.rule
	}
	return rules
}

// Len returns the number of rules.
func (v *Validator) Len() int {
	return len(v.entries)
}
