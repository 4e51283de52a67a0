package validator_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

var digits = regexp.MustCompile(`^\d+$`)

func TestNew(t *testing.T) {
	t.Run("creates validator with rules", func(t *testing.T) {
		rules := []validator.Rule{
			validator.Required(""),
			validator.Pattern(digits, ""),
		}

		v, err := validator.New(rules)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, rules, v.Rules())
	})

	t.Run("accepts nil rules", func(t *testing.T) {
		v, err := validator.New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
		assert.NoError(t, v.Run("anything"))
	})

	t.Run("rejects malformed rule before storing anything", func(t *testing.T) {
		rules := []validator.Rule{
			validator.Required(""),
			{Message: "no kind"},
		}

		v, err := validator.New(rules)
		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
		assert.Contains(t, err.Error(), "rule 1")
	})

	t.Run("rejects pattern rule without pattern", func(t *testing.T) {
		_, err := validator.New([]validator.Rule{{Kind: validator.KindPattern}})
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
	})

	t.Run("rejects custom rule without function", func(t *testing.T) {
		_, err := validator.New([]validator.Rule{{Kind: validator.KindCustom}})
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		reg := validator.NewRegistry()
		_, err := validator.New(
			[]validator.Rule{validator.Named("nope", "", nil)},
			validator.WithRegistry(reg),
		)
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
		assert.ErrorIs(t, err, validator.ErrUnknownKind)
	})

	t.Run("logs rejected rules", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment(""), logger.WithOutput(buf))

		_, err := validator.New([]validator.Rule{{}}, validator.WithLogger(log))
		require.Error(t, err)
		assert.Contains(t, buf.String(), "rule rejected")
		assert.Contains(t, buf.String(), "rule_index=0")
	})
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() {
		validator.MustNew([]validator.Rule{validator.Required("")})
	})
	assert.Panics(t, func() {
		validator.MustNew([]validator.Rule{{}})
	})
}

func TestValidator_Add(t *testing.T) {
	t.Run("appends rules after existing ones", func(t *testing.T) {
		v, err := validator.New([]validator.Rule{validator.Required("first")})
		require.NoError(t, err)

		require.NoError(t, v.Add(validator.Pattern(digits, "second")))
		assert.Equal(t, 2, v.Len())

		assert.Equal(t, "first", v.Check(""))
		assert.Equal(t, "second", v.Check("abc"))
	})

	t.Run("adds several rules at once", func(t *testing.T) {
		v, err := validator.New(nil)
		require.NoError(t, err)

		require.NoError(t, v.Add(validator.Required(""), validator.Pattern(digits, "")))
		assert.Equal(t, 2, v.Len())
	})

	t.Run("is atomic per call", func(t *testing.T) {
		v, err := validator.New(nil, validator.WithRegistry(validator.NewRegistry()))
		require.NoError(t, err)

		err = v.Add(validator.Required(""), validator.Named("missing", "", nil))
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
		assert.Equal(t, 0, v.Len())
	})

	t.Run("rejects malformed rule", func(t *testing.T) {
		v, err := validator.New(nil)
		require.NoError(t, err)

		err = v.Add(validator.Rule{})
		assert.ErrorIs(t, err, validator.ErrInvalidRule)
	})
}

func TestValidator_Run(t *testing.T) {
	rules := []validator.Rule{
		validator.Required(""),
		validator.Pattern(digits, ""),
	}

	t.Run("returns first failing rule", func(t *testing.T) {
		v := validator.MustNew(rules)
		assert.Equal(t, "Required", v.Check(""))
		assert.Equal(t, "Invalid", v.Check("abc"))
	})

	t.Run("passes when all rules pass", func(t *testing.T) {
		v := validator.MustNew(rules)
		assert.NoError(t, v.Run("123"))
		assert.Equal(t, "", v.Check("123"))
	})

	t.Run("passes with no rules", func(t *testing.T) {
		v := validator.MustNew(nil)
		assert.Equal(t, "", v.Check("value"))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		calls := 0
		v := validator.MustNew([]validator.Rule{
			validator.Pattern(digits, "digits"),
			validator.Custom(func(validator.Rule, any) error {
				calls++
				return nil
			}),
		})

		assert.Equal(t, "digits", v.Check("abc"))
		assert.Equal(t, 0, calls)

		assert.Equal(t, "", v.Check("42"))
		assert.Equal(t, 1, calls)
	})

	t.Run("order decides which error is reported", func(t *testing.T) {
		short := regexp.MustCompile(`^.{0,2}$`)
		a := validator.MustNew([]validator.Rule{
			validator.Pattern(digits, "digits"),
			validator.Pattern(short, "short"),
		})
		b := validator.MustNew([]validator.Rule{
			validator.Pattern(short, "short"),
			validator.Pattern(digits, "digits"),
		})

		assert.Equal(t, "digits", a.Check("abcd"))
		assert.Equal(t, "short", b.Check("abcd"))
	})

	t.Run("custom function error is returned verbatim", func(t *testing.T) {
		errWorld := errors.New("Value must be hello")
		v := validator.MustNew([]validator.Rule{
			validator.Custom(func(_ validator.Rule, value any) error {
				if value != "hello" {
					return errWorld
				}
				return nil
			}),
		})

		assert.Same(t, errWorld, v.Run("world"))
		assert.NoError(t, v.Run("hello"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		v := validator.MustNew(rules)
		first := v.Run("abc")
		second := v.Run("abc")
		assert.Equal(t, first, second)
		assert.Equal(t, 2, v.Len())
	})

	t.Run("built-in failures are validation errors", func(t *testing.T) {
		v := validator.MustNew(rules)
		err := v.Run("")
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verr, ok := validator.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, validator.KindRequired, verr.Kind)
	})
}

func TestValidator_Rules(t *testing.T) {
	v := validator.MustNew([]validator.Rule{validator.Required("a")})
	rules := v.Rules()
	rules[0].Message = "changed"

	assert.Equal(t, "a", v.Check(""))
}
