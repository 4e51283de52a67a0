package ruleset

import (
	"fmt"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// Set is an ordered collection of named rule lists.
type Set struct {
	names []string
	lists map[string][]validator.Rule
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{lists: make(map[string][]validator.Rule)}
}

// Add stores rules under name. Names must be unique within a set.
func (s *Set) Add(name string, rules []validator.Rule) error {
	if _, exists := s.lists[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateList, name)
	}
	s.names = append(s.names, name)
	s.lists[name] = append([]validator.Rule(nil), rules...)
	return nil
}

// Names returns the list names in definition order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of lists.
func (s *Set) Len() int {
	return len(s.names)
}

// Rules returns a copy of the named list.
func (s *Set) Rules(name string) ([]validator.Rule, bool) {
	rules, ok := s.lists[name]
	if !ok {
		return nil, false
	}
	return append([]validator.Rule(nil), rules...), true
}

// Validator builds a validator for the named list. Named kinds are resolved
// against the registry given in opts, or the default registry.
func (s *Set) Validator(name string, opts ...validator.Option) (*validator.Validator, error) {
	rules, ok := s.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	v, err := validator.New(rules, opts...)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", name, err)
	}
	return v, nil
}

// Validators builds a validator for every list, failing on the first list
// whose rules cannot be resolved.
func (s *Set) Validators(opts ...validator.Option) (map[string]*validator.Validator, error) {
	out := make(map[string]*validator.Validator, len(s.names))
	for _, name := range s.names {
		v, err := s.Validator(name, opts...)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}
