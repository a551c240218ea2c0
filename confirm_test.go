package askit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/askit"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	t.Run("accepts yes forms", func(t *testing.T) {
		for _, answer := range []string{"y", "Y", "yes", "YES", "Yes"} {
			p, _, _ := newTestPrompter(answer + "\n")

			v, err := askit.Confirm(p, "Proceed? ", false)

			require.NoError(t, err)
			assert.True(t, v, "answer %q", answer)
		}
	})

	t.Run("accepts no forms", func(t *testing.T) {
		for _, answer := range []string{"n", "N", "no", "NO", "No"} {
			p, _, _ := newTestPrompter(answer + "\n")

			v, err := askit.Confirm(p, "Proceed? ", true)

			require.NoError(t, err)
			assert.False(t, v, "answer %q", answer)
		}
	})

	t.Run("empty line takes the default", func(t *testing.T) {
		p, _, _ := newTestPrompter("\n")

		v, err := askit.Confirm(p, "Proceed? ", true)

		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		p, _, _ := newTestPrompter("  yes \n")

		v, err := askit.Confirm(p, "Proceed? ", false)

		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("re-asks on anything else", func(t *testing.T) {
		p, out, _ := newTestPrompter("maybe\nnope\nn\n")

		v, err := askit.Confirm(p, "Proceed? ", true)

		require.NoError(t, err)
		assert.False(t, v)
		assert.Equal(t, 2, strings.Count(out.String(), "please answer yes or no"))
		assert.Equal(t, 3, strings.Count(out.String(), "Proceed? "))
	})

	t.Run("custom retry message", func(t *testing.T) {
		p, out, _ := newTestPrompter("huh\ny\n")

		v, err := askit.Confirm(p, "Proceed? ", false,
			askit.WithParseError("[y/n] only"))

		require.NoError(t, err)
		assert.True(t, v)
		assert.Contains(t, out.String(), "[y/n] only")
	})

	t.Run("end of input propagates", func(t *testing.T) {
		p, _, _ := newTestPrompter("")

		_, err := askit.Confirm(p, "Proceed? ", false)

		assert.ErrorIs(t, err, askit.ErrEndOfInput)
	})
}
