package validator_test

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

func builtin(t *testing.T, kind validator.Kind) validator.Strategy {
	t.Helper()
	s, err := validator.NewRegistry().Builtin(kind)
	require.NoError(t, err)
	return s
}

func TestRequiredStrategy(t *testing.T) {
	s := builtin(t, validator.KindRequired)

	t.Run("fails on empty string with default message", func(t *testing.T) {
		err := s.Validate(validator.Required(""), "")
		require.Error(t, err)
		assert.Equal(t, "Required", err.Error())
	})

	t.Run("uses rule message", func(t *testing.T) {
		err := s.Validate(validator.Required("Name is required"), "")
		require.Error(t, err)
		assert.Equal(t, "Name is required", err.Error())
	})

	t.Run("does not trim", func(t *testing.T) {
		assert.NoError(t, s.Validate(validator.Required(""), "   "))
	})

	t.Run("non-string values pass", func(t *testing.T) {
		assert.NoError(t, s.Validate(validator.Required(""), nil))
		assert.NoError(t, s.Validate(validator.Required(""), 0))
		assert.NoError(t, s.Validate(validator.Required(""), []byte{}))
	})
}

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestPatternStrategy(t *testing.T) {
	s := builtin(t, validator.KindPattern)
	rule := validator.MatchString(`^\d+$`, "")

	t.Run("fails when value does not match", func(t *testing.T) {
		err := s.Validate(rule, "abc")
		require.Error(t, err)
		assert.Equal(t, "Invalid", err.Error())
	})

	t.Run("passes when value matches", func(t *testing.T) {
		assert.NoError(t, s.Validate(rule, "123"))
	})

	t.Run("uses rule message", func(t *testing.T) {
		err := s.Validate(validator.MatchString(`^\d+$`, "digits only"), "x")
		require.Error(t, err)
		assert.Equal(t, "digits only", err.Error())
	})

	t.Run("matches string form of other types", func(t *testing.T) {
		assert.NoError(t, s.Validate(rule, 42))
		assert.NoError(t, s.Validate(rule, []byte("7")))
		assert.NoError(t, s.Validate(rule, stringer{"99"}))
		assert.Error(t, s.Validate(rule, 4.5))
		assert.Error(t, s.Validate(rule, nil))
	})

	t.Run("anchoring is up to the pattern", func(t *testing.T) {
		loose := validator.Pattern(regexp.MustCompile(`\d`), "")
		assert.NoError(t, s.Validate(loose, "a1b"))
	})
}

func TestCustomStrategy(t *testing.T) {
	s := builtin(t, validator.KindCustom)

	t.Run("passes through returned error", func(t *testing.T) {
		want := &net.AddrError{Err: "bad", Addr: "x"}
		rule := validator.Custom(func(validator.Rule, any) error { return want })

		err := s.Validate(rule, "v")
		var addrErr *net.AddrError
		require.True(t, errors.As(err, &addrErr))
		assert.Same(t, want, addrErr)
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("receives rule and value", func(t *testing.T) {
		var gotRule validator.Rule
		var gotValue any
		rule := validator.Custom(func(r validator.Rule, v any) error {
			gotRule, gotValue = r, v
			return nil
		})
		rule.Message = "m"

		require.NoError(t, s.Validate(rule, "hello"))
		assert.Equal(t, "m", gotRule.Message)
		assert.Equal(t, "hello", gotValue)
	})

	t.Run("recovers panicked error", func(t *testing.T) {
		boom := errors.New("boom")
		rule := validator.Custom(func(validator.Rule, any) error { panic(boom) })
		assert.Same(t, boom, s.Validate(rule, "v"))
	})

	t.Run("recovers panicked string", func(t *testing.T) {
		rule := validator.Custom(func(validator.Rule, any) error { panic("X") })
		err := s.Validate(rule, "world")
		require.Error(t, err)
		assert.Equal(t, "X", err.Error())
	})
}

func TestStrategyFunc(t *testing.T) {
	s := validator.StrategyFunc("even", func(rule validator.Rule, value any) error {
		n, ok := value.(int)
		if !ok || n%2 != 0 {
			return validator.Fail(rule, "must be even")
		}
		return nil
	})

	assert.Equal(t, validator.Kind("even"), s.Kind())
	assert.NoError(t, s.Validate(validator.Named("even", "", nil), 4))

	err := s.Validate(validator.Named("even", "", nil), 3)
	assert.EqualError(t, err, "must be even")
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
}

func TestExtractValidationError(t *testing.T) {
	wrapped := fmt.Errorf("field code: %w", validator.ValidationError{Kind: "k", Message: "bad"})

	verr, ok := validator.ExtractValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "bad", verr.Message)
	assert.True(t, validator.IsValidationError(wrapped))

	_, ok = validator.ExtractValidationError(nil)
	assert.False(t, ok)
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "", validator.AsString(nil))
	assert.Equal(t, "a", validator.AsString("a"))
	assert.Equal(t, "b", validator.AsString([]byte("b")))
	assert.Equal(t, "c", validator.AsString(stringer{"c"}))
	assert.Equal(t, "12", validator.AsString(12))
	assert.Equal(t, "true", validator.AsString(true))
}
