package menu

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pizza-palace/internal/diagnostic"
)

// Validate structurally validates a menu file. It checks names, prices
// and categories; it does not bound the number of offerings, the
// interactive prompts size themselves to the catalog.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("menu_is_nil", "menu file is nil", "")
		return res
	}

	pizzasPerCategory := map[Category]int{}
	seenPizzas := map[string]struct{}{}

	for i, e := range f.Pizzas {
		subject := pizzaSubject(i, e.Name)

		if e.Name == "" {
			res.AddError("pizza_name_empty", "pizza name must not be empty", subject)
		} else if _, ok := seenPizzas[e.Name]; ok {
			res.AddError("duplicate_pizza", fmt.Sprintf("duplicate pizza %q", e.Name), subject)
		} else {
			seenPizzas[e.Name] = struct{}{}
		}

		category, ok := parseCategory(e.Category)
		if !ok {
			res.AddError("unknown_category", fmt.Sprintf("unknown category %q", e.Category), subject)
		} else {
			pizzasPerCategory[category]++

			if category == NonVegetarian && e.MeatType == "" {
				res.AddWarning("meat_type_missing", "non-vegetarian pizza has no meat_type", subject)
			}
			if category == Vegetarian && e.MeatType != "" {
				res.AddError("meat_type_on_veg", "vegetarian pizza must not declare meat_type", subject)
			}
		}

		price, err := decimal.NewFromString(e.BasePrice)
		switch {
		case err != nil:
			res.AddError("bad_base_price", fmt.Sprintf("base_price %q is not a valid decimal", e.BasePrice), subject)
		case !price.IsPositive():
			res.AddError("nonpositive_base_price", fmt.Sprintf("base_price must be positive, got %s", price), subject)
		}
	}

	for _, c := range []Category{Vegetarian, NonVegetarian} {
		if pizzasPerCategory[c] == 0 {
			res.AddError("empty_category", fmt.Sprintf("menu has no %s pizzas", c), "")
		}
	}

	seenToppings := map[string]struct{}{}

	for i, e := range f.Toppings {
		subject := toppingSubject(i, e.Name)

		if e.Name == "" {
			res.AddError("topping_name_empty", "topping name must not be empty", subject)
		} else if _, ok := seenToppings[e.Name]; ok {
			res.AddError("duplicate_topping", fmt.Sprintf("duplicate topping %q", e.Name), subject)
		} else {
			seenToppings[e.Name] = struct{}{}
		}

		if _, ok := parseCategory(e.Category); !ok {
			res.AddError("unknown_category", fmt.Sprintf("unknown category %q", e.Category), subject)
		}

		price, err := decimal.NewFromString(e.Price)
		switch {
		case err != nil:
			res.AddError("bad_price", fmt.Sprintf("price %q is not a valid decimal", e.Price), subject)
		case price.IsNegative():
			res.AddError("negative_price", fmt.Sprintf("price must not be negative, got %s", price), subject)
		}
	}

	return res
}

func pizzaSubject(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("pizzas[%d]", index)
	}

	return name
}

func toppingSubject(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("toppings[%d]", index)
	}

	return name
}
