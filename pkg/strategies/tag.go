package strategies

import (
	"errors"
	"fmt"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// KindTag is the kind of rules checked with a go-playground tag expression.
const KindTag validator.Kind = "tag"

// Tag runs a go-playground/validator tag expression, given in the "tag"
// param, against the value: {kind: tag, tag: "email,max=64"}.
//
// Unlike the other strategies the empty string is not skipped; the tag
// decides (use omitempty). A nil v creates a fresh playground validator.
func Tag(v *playground.Validate) validator.Strategy {
	if v == nil {
		v = playground.New()
	}
	return &tagStrategy{v: v}
}

type tagStrategy struct {
	v *playground.Validate
	// playground panics on undefined tags; known-good tags are cached.
	checked sync.Map
}

func (*tagStrategy) Kind() validator.Kind { return KindTag }

func (s *tagStrategy) CheckRule(rule validator.Rule) error {
	tag, err := tagParam(rule)
	if err != nil {
		return err
	}
	return s.probe(tag)
}

func (s *tagStrategy) Validate(rule validator.Rule, value any) error {
	tag, err := tagParam(rule)
	if err != nil {
		return err
	}
	if err := s.probe(tag); err != nil {
		return err
	}

	failed, err := s.run(value, tag)
	if err != nil {
		return err
	}
	if failed {
		return validator.Fail(rule, fmt.Sprintf("must satisfy %q", tag))
	}
	return nil
}

// run reports whether value fails tag. playground panics when a tag cannot
// handle the value's type (gt on a bool); that counts as a failure.
func (s *tagStrategy) run(value any, tag string) (failed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			failed, err = true, nil
		}
	}()

	if err := s.v.Var(value, tag); err != nil {
		var verrs playground.ValidationErrors
		if errors.As(err, &verrs) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// probe runs the tag once against an empty string to surface undefined
// validation functions as ErrInvalidParams instead of a panic.
func (s *tagStrategy) probe(tag string) (err error) {
	if _, ok := s.checked.Load(tag); ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: tag %q: %v", ErrInvalidParams, tag, r)
		}
	}()
	_ = s.v.Var("", tag)
	s.checked.Store(tag, struct{}{})
	return nil
}

func tagParam(rule validator.Rule) (string, error) {
	tag, ok, err := stringParam(rule, "tag")
	if err != nil {
		return "", err
	}
	if !ok || tag == "" {
		return "", fmt.Errorf("%w: tag rule needs a non-empty tag param", ErrInvalidParams)
	}
	return tag, nil
}
