package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/askit/pkg/validate"
)

func TestNonZero(t *testing.T) {
	t.Parallel()

	t.Run("passes for non-zero int", func(t *testing.T) {
		assert.True(t, validate.NonZero[int]()(5))
	})

	t.Run("fails for zero int", func(t *testing.T) {
		assert.False(t, validate.NonZero[int]()(0))
	})

	t.Run("passes for non-empty string", func(t *testing.T) {
		assert.True(t, validate.NonZero[string]()("x"))
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validate.NonZero[string]()(""))
	})
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	t.Run("passes for allowed value", func(t *testing.T) {
		assert.True(t, validate.OneOf("red", "green", "blue")("green"))
	})

	t.Run("fails for other value", func(t *testing.T) {
		assert.False(t, validate.OneOf("red", "green", "blue")("yellow"))
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		assert.False(t, validate.OneOf("red")("RED"))
	})

	t.Run("works with ints", func(t *testing.T) {
		assert.True(t, validate.OneOf(1, 2, 3)(2))
		assert.False(t, validate.OneOf(1, 2, 3)(4))
	})

	t.Run("fails with no allowed values", func(t *testing.T) {
		assert.False(t, validate.OneOf[int]()(1))
	})
}

func TestOneOfFold(t *testing.T) {
	t.Parallel()

	t.Run("matches regardless of casing", func(t *testing.T) {
		rule := validate.OneOfFold("red", "green")
		assert.True(t, rule("RED"))
		assert.True(t, rule("Green"))
	})

	t.Run("fails for other value", func(t *testing.T) {
		assert.False(t, validate.OneOfFold("red", "green")("blue"))
	})
}
