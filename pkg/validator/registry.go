package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
)

var builtinFactories = map[Kind]func() Strategy{
	KindRequired: func() Strategy { return requiredStrategy{} },
	KindPattern:  func() Strategy { return patternStrategy{} },
	KindCustom:   func() Strategy { return customStrategy{} },
}

// Registry maps rule kinds to strategies. Built-in strategies are created on
// first use and cached; registered strategies replace entries of the same kind.
// A Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies map[Kind]Strategy
	logger     *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for registration events.
// Nil loggers are ignored.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		strategies: make(map[Kind]Strategy),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// defaultRegistry is created at package init and lives for the whole process.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by validators that
// were not given one explicitly.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// AddStrategies registers strategies in the default registry. Validators
// resolve against it at Add time, so only rules added afterwards see them.
func AddStrategies(strategies ...Strategy) error {
	return defaultRegistry.Register(strategies...)
}

// Register adds or replaces the entry for each strategy's kind.
// Either all strategies are registered or none is.
func (r *Registry) Register(strategies ...Strategy) error {
	for i, s := range strategies {
		if s == nil {
			return fmt.Errorf("strategy %d: %w", i, ErrNilStrategy)
		}
		if s.Kind() == "" {
			return fmt.Errorf("strategy %d (%T): %w", i, s, ErrEmptyKind)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range strategies {
		kind := s.Kind()
		if _, exists := r.strategies[kind]; exists {
			r.logger.Debug("strategy replaced", logger.Kind(string(kind)))
		} else {
			r.logger.Debug("strategy registered", logger.Kind(string(kind)))
		}
		r.strategies[kind] = s
	}
	return nil
}

// Lookup returns the strategy registered for kind. It never instantiates
// built-ins.
func (r *Registry) Lookup(kind Kind) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[kind]
	return s, ok
}

// Builtin returns the cached strategy for a built-in kind, creating it on
// first call. A registered override of a built-in kind is returned instead.
func (r *Registry) Builtin(kind Kind) (Strategy, error) {
	if s, ok := r.Lookup(kind); ok {
		return s, nil
	}

	factory, ok := builtinFactories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotBuiltin, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.strategies[kind]; ok {
		return s, nil
	}
	s := factory()
	r.strategies[kind] = s
	return s, nil
}

// Resolve returns the strategy that validates rule.
func (r *Registry) Resolve(rule Rule) (Strategy, error) {
	if err := rule.check(); err != nil {
		return nil, err
	}

	if rule.Kind.IsBuiltin() {
		return r.Builtin(rule.Kind)
	}

	s, ok := r.Lookup(rule.Kind)
	if !ok {
		return nil, errors.Join(ErrInvalidRule, fmt.Errorf("%w: %q", ErrUnknownKind, rule.Kind))
	}
	if rc, ok := s.(RuleChecker); ok {
		if err := rc.CheckRule(rule); err != nil {
			return nil, errors.Join(ErrInvalidRule, err)
		}
	}
	return s, nil
}

// Kinds returns the registered kinds in sorted order, including built-ins
// that have been instantiated.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.strategies))
	for k := range r.strategies {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
