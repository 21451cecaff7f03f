package console_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza-palace/internal/console"
	"pizza-palace/internal/logger"
	"pizza-palace/internal/menu"
	"pizza-palace/internal/order"
	"pizza-palace/internal/pricing"
)

// runSession feeds the scripted tokens to a fresh session over the
// default menu and returns the resulting order plus everything printed.
func runSession(t *testing.T, input string) (*order.Order, string, error) {
	t.Helper()

	var out strings.Builder
	session := console.NewSession(menu.Default(), strings.NewReader(input), &out, logger.New(io.Discard, "error"))

	ord, err := session.Run()

	return ord, out.String(), err
}

func TestRun_DineInSingleItem(t *testing.T) {
	t.Parallel()

	// Dine in, veg, Margherita, Medium, quantity 1, no cheese, no
	// toppings, no more items.
	ord, out, err := runSession(t, "1 1 1 2 1 n n n")
	require.NoError(t, err)

	assert.Contains(t, out, "=== WELCOME TO PIZZA PALACE ===")
	assert.Contains(t, out, "------- VEGETARIAN PIZZAS -------")
	assert.Contains(t, out, "1. Margherita           - Rs.200 (Medium)")

	assert.Equal(t, order.DineIn, ord.Type())
	require.Len(t, ord.Items(), 1)

	item := ord.Items()[0]
	assert.Equal(t, "Margherita", item.Pizza().Name)
	assert.Equal(t, pricing.Medium, item.Size())
	assert.Equal(t, 1, item.Quantity())
	assert.False(t, item.ExtraCheese())
	assert.Empty(t, item.Toppings())

	assert.Equal(t, "236.00", ord.Total().StringFixed(2))
}

func TestRun_TakeAwayWithToppings(t *testing.T) {
	t.Parallel()

	// Take away, non-veg, Chicken Tikka, Large, quantity 2, extra
	// cheese, toppings 7 (Extra Chicken) and 8 (Pepperoni); "x" is
	// reported, 99 is dropped silently.
	ord, out, err := runSession(t, "2 2 1 3 2 y y 7,x,99,8 n")
	require.NoError(t, err)

	assert.Contains(t, out, "------- NON-VEGETARIAN PIZZAS -------")
	assert.Contains(t, out, "------- AVAILABLE TOPPINGS -------")
	assert.Contains(t, out, "Invalid topping choice: x")
	assert.NotContains(t, out, "99")

	assert.Equal(t, order.TakeAway, ord.Type())
	require.Len(t, ord.Items(), 1)

	item := ord.Items()[0]
	assert.Equal(t, "Chicken Tikka", item.Pizza().Name)
	assert.Equal(t, pricing.Large, item.Size())
	assert.Equal(t, 2, item.Quantity())
	assert.True(t, item.ExtraCheese())

	toppings := item.Toppings()
	require.Len(t, toppings, 2)
	assert.Equal(t, "Extra Chicken", toppings[0].Name)
	assert.Equal(t, "Pepperoni", toppings[1].Name)

	assert.Equal(t, "1662.62", ord.Total().StringFixed(2))
}

func TestRun_MultipleItems(t *testing.T) {
	t.Parallel()

	// Two items: Margherita then Veggie Supreme, both Medium x1.
	ord, _, err := runSession(t, "1 1 1 2 1 n n y 1 2 2 1 n n n")
	require.NoError(t, err)

	require.Len(t, ord.Items(), 2)
	assert.Equal(t, "Margherita", ord.Items()[0].Pizza().Name)
	assert.Equal(t, "Veggie Supreme", ord.Items()[1].Pizza().Name)
}

func TestRun_RepromptsOnInvalidInput(t *testing.T) {
	t.Parallel()

	// "abc" is not numeric, "9" is out of range for the order-type
	// prompt; the session recovers and completes.
	ord, out, err := runSession(t, "abc 9 1 1 1 2 1 n n n")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid input. Please enter a number between 1 and 2: ")
	assert.Contains(t, out, "Please enter a number between 1 and 2: ")
	assert.Equal(t, order.DineIn, ord.Type())
}

func TestRun_RepromptsOnQuantityOutOfRange(t *testing.T) {
	t.Parallel()

	// Quantity 11 exceeds the 1-10 bound and is re-prompted.
	ord, out, err := runSession(t, "1 1 1 2 11 10 n n n")
	require.NoError(t, err)

	assert.Contains(t, out, "Please enter a number between 1 and 10: ")
	assert.Equal(t, 10, ord.Items()[0].Quantity())
}

func TestRun_YesAnswersAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	ord, _, err := runSession(t, "1 1 1 2 1 YES n n")
	require.NoError(t, err)

	assert.True(t, ord.Items()[0].ExtraCheese())
}

func TestRun_InputClosed(t *testing.T) {
	t.Parallel()

	t.Run("immediately", func(t *testing.T) {
		t.Parallel()

		_, _, err := runSession(t, "")
		assert.ErrorIs(t, err, console.ErrInputClosed)
	})

	t.Run("mid-session", func(t *testing.T) {
		t.Parallel()

		_, _, err := runSession(t, "1 1 1")
		assert.ErrorIs(t, err, console.ErrInputClosed)
	})
}
