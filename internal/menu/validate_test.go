package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseForTest(t *testing.T, yaml string) *File {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return f
}

func TestValidate_ValidMenu(t *testing.T) {
	f := parseForTest(t, sampleMenuYAML)

	result := Validate(f)
	assert.True(t, result.IsValid(), "expected valid menu, got errors: %v", result.Errors)
	assert.NoError(t, result.Error())
}

func TestValidate_NilFile(t *testing.T) {
	result := Validate(nil)
	require.True(t, result.HasErrors())
	assert.Equal(t, "menu_is_nil", result.Errors[0].Code)
}

func TestValidate_DuplicatePizza(t *testing.T) {
	f := parseForTest(t, `
pizzas:
  - {name: Margherita, category: veg, base_price: "200"}
  - {name: Margherita, category: veg, base_price: "220"}
  - {name: Chicken Tikka, category: non-veg, base_price: "380", meat_type: Chicken}
`)

	result := Validate(f)
	require.True(t, result.HasErrors())
	assert.Equal(t, "duplicate_pizza", result.Errors[0].Code)
}

func TestValidate_BadPrices(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantCode string
	}{
		{
			name: "unparseable base price",
			yaml: `
pizzas:
  - {name: Margherita, category: veg, base_price: "cheap"}
  - {name: Chicken Tikka, category: non-veg, base_price: "380", meat_type: Chicken}
`,
			wantCode: "bad_base_price",
		},
		{
			name: "zero base price",
			yaml: `
pizzas:
  - {name: Margherita, category: veg, base_price: "0"}
  - {name: Chicken Tikka, category: non-veg, base_price: "380", meat_type: Chicken}
`,
			wantCode: "nonpositive_base_price",
		},
		{
			name: "negative topping price",
			yaml: `
pizzas:
  - {name: Margherita, category: veg, base_price: "200"}
  - {name: Chicken Tikka, category: non-veg, base_price: "380", meat_type: Chicken}
toppings:
  - {name: Olives, category: veg, price: "-1"}
`,
			wantCode: "negative_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(parseForTest(t, tt.yaml))
			require.True(t, result.HasErrors())

			codes := make([]string, 0, len(result.Errors))
			for _, e := range result.Errors {
				codes = append(codes, e.Code)
			}

			assert.Contains(t, codes, tt.wantCode)
		})
	}
}

func TestValidate_Categories(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		result := Validate(parseForTest(t, `
pizzas:
  - {name: Mystery, category: fish, base_price: "100"}
`))
		require.True(t, result.HasErrors())
		assert.Equal(t, "unknown_category", result.Errors[0].Code)
	})

	t.Run("one-sided menu", func(t *testing.T) {
		result := Validate(parseForTest(t, `
pizzas:
  - {name: Margherita, category: veg, base_price: "200"}
`))
		require.True(t, result.HasErrors())
		assert.Equal(t, "empty_category", result.Errors[0].Code)
	})
}

func TestValidate_MeatType(t *testing.T) {
	t.Run("missing on non-veg is a warning", func(t *testing.T) {
		result := Validate(parseForTest(t, `
pizzas:
  - {name: Margherita, category: veg, base_price: "200"}
  - {name: Chicken Tikka, category: non-veg, base_price: "380"}
`))
		assert.True(t, result.IsValid())
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, "meat_type_missing", result.Warnings[0].Code)
	})

	t.Run("declared on veg is an error", func(t *testing.T) {
		result := Validate(parseForTest(t, `
pizzas:
  - {name: Margherita, category: veg, base_price: "200", meat_type: Chicken}
  - {name: Chicken Tikka, category: non-veg, base_price: "380", meat_type: Chicken}
`))
		require.True(t, result.HasErrors())
		assert.Equal(t, "meat_type_on_veg", result.Errors[0].Code)
	})
}

func TestValidate_EmptyNames(t *testing.T) {
	result := Validate(parseForTest(t, `
pizzas:
  - {name: "", category: veg, base_price: "200"}
  - {name: Chicken Tikka, category: non-veg, base_price: "380", meat_type: Chicken}
toppings:
  - {name: "", category: veg, price: "30"}
`))

	require.True(t, result.HasErrors())

	codes := make([]string, 0, len(result.Errors))
	subjects := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		codes = append(codes, e.Code)
		subjects = append(subjects, e.Subject)
	}

	assert.Contains(t, codes, "pizza_name_empty")
	assert.Contains(t, codes, "topping_name_empty")
	assert.Contains(t, subjects, "pizzas[0]")
	assert.Contains(t, subjects, "toppings[0]")
}
