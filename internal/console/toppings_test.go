package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza-palace/internal/console"
)

func TestParseSelection(t *testing.T) {
	t.Parallel()

	t.Run("mixed valid, unparseable and out-of-range tokens", func(t *testing.T) {
		t.Parallel()

		indices, diags := console.ParseSelection("1,x,9,3", 6)

		assert.Equal(t, []int{1, 3}, indices)

		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, "Invalid topping choice: x", diags.Warnings[0].Message)

		// Out-of-range indices are dropped without a user-facing message.
		require.Len(t, diags.Infos, 1)
		assert.Equal(t, "9", diags.Infos[0].Subject)

		assert.False(t, diags.HasErrors())
	})

	t.Run("zero means no toppings", func(t *testing.T) {
		t.Parallel()

		indices, diags := console.ParseSelection("0", 6)
		assert.Empty(t, indices)
		assert.Empty(t, diags.Warnings)
		assert.Empty(t, diags.Infos)
	})

	t.Run("whitespace around tokens", func(t *testing.T) {
		t.Parallel()

		indices, diags := console.ParseSelection(" 1 , 2 ", 6)
		assert.Equal(t, []int{1, 2}, indices)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("selection order preserved", func(t *testing.T) {
		t.Parallel()

		indices, _ := console.ParseSelection("3,1,2", 6)
		assert.Equal(t, []int{3, 1, 2}, indices)
	})

	t.Run("negative and zero indices inside a list", func(t *testing.T) {
		t.Parallel()

		indices, diags := console.ParseSelection("-1,0,2", 6)
		assert.Equal(t, []int{2}, indices)
		assert.Len(t, diags.Infos, 2)
	})
}
