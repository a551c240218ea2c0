package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/askit/pkg/validate"
)

func TestMin(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals minimum", func(t *testing.T) {
		assert.True(t, validate.Min(18)(18))
	})

	t.Run("passes when value exceeds minimum", func(t *testing.T) {
		assert.True(t, validate.Min(18)(30))
	})

	t.Run("fails when value is below minimum", func(t *testing.T) {
		assert.False(t, validate.Min(18)(17))
	})

	t.Run("works with floats", func(t *testing.T) {
		assert.True(t, validate.Min(0.5)(0.75))
		assert.False(t, validate.Min(0.5)(0.25))
	})

	t.Run("works with unsigned ints", func(t *testing.T) {
		assert.True(t, validate.Min(uint(10))(uint(10)))
		assert.False(t, validate.Min(uint(10))(uint(9)))
	})
}

func TestMax(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals maximum", func(t *testing.T) {
		assert.True(t, validate.Max(100)(100))
	})

	t.Run("passes when value is below maximum", func(t *testing.T) {
		assert.True(t, validate.Max(100)(50))
	})

	t.Run("fails when value exceeds maximum", func(t *testing.T) {
		assert.False(t, validate.Max(100)(101))
	})
}

func TestBetween(t *testing.T) {
	t.Parallel()

	t.Run("passes inside the range", func(t *testing.T) {
		assert.True(t, validate.Between(1, 10)(5))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, validate.Between(1, 10)(1))
		assert.True(t, validate.Between(1, 10)(10))
	})

	t.Run("fails outside the range", func(t *testing.T) {
		assert.False(t, validate.Between(1, 10)(0))
		assert.False(t, validate.Between(1, 10)(11))
	})

	t.Run("works with negative ranges", func(t *testing.T) {
		assert.True(t, validate.Between(-10, -1)(-5))
		assert.False(t, validate.Between(-10, -1)(0))
	})
}

func TestPositive(t *testing.T) {
	t.Parallel()

	t.Run("passes for positive values", func(t *testing.T) {
		assert.True(t, validate.Positive[int]()(1))
		assert.True(t, validate.Positive[float64]()(0.001))
	})

	t.Run("fails for zero", func(t *testing.T) {
		assert.False(t, validate.Positive[int]()(0))
	})

	t.Run("fails for negative values", func(t *testing.T) {
		assert.False(t, validate.Positive[int]()(-1))
	})
}
