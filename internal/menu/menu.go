// Package menu holds the pizza and topping catalog.
//
// The catalog is built once at startup, either from the built-in menu
// (Default) or from a YAML menu file (LoadFile), and is never mutated
// afterwards. Accessors return copies so callers cannot corrupt the
// shared catalog.
package menu

import (
	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category partitions offerings by dietary class.
type Category int

const (
	_ Category = iota // skip zero value, use it as a default (invalid) value for Category

	Vegetarian    // Vegetarian
	NonVegetarian // Non-Vegetarian
)

// IsValid returns true if the category is a recognized value.
func (c Category) IsValid() bool {
	return c == Vegetarian || c == NonVegetarian
}

// PizzaOffering is a single pizza on the menu. BasePrice is the
// Medium-size reference price; other sizes derive from it via the
// pricing multipliers.
type PizzaOffering struct {
	Name      string
	Category  Category
	BasePrice decimal.Decimal

	// DefaultToppings are descriptive only and not priced.
	DefaultToppings []string

	// JainFriendly applies to vegetarian offerings only.
	JainFriendly bool
	// MeatType applies to non-vegetarian offerings only.
	MeatType string
}

// Description returns the menu description line for the offering.
func (p PizzaOffering) Description() string {
	if p.Category == NonVegetarian {
		return "Mouth-watering non-vegetarian pizza with " + p.MeatType
	}

	desc := "Delicious vegetarian pizza"
	if p.JainFriendly {
		desc += " (Jain Friendly)"
	}

	return desc
}

// ToppingOffering is a single priced topping on the menu.
type ToppingOffering struct {
	Name       string
	Price      decimal.Decimal
	Vegetarian bool
}

// Menu is the immutable catalog of offerings, partitioned by category
// and kept in fixed menu order.
type Menu struct {
	vegPizzas      []PizzaOffering
	nonVegPizzas   []PizzaOffering
	vegToppings    []ToppingOffering
	nonVegToppings []ToppingOffering
}

// New builds a Menu from the given collections. The slices are copied;
// the caller keeps ownership of its arguments.
func New(vegPizzas, nonVegPizzas []PizzaOffering, vegToppings, nonVegToppings []ToppingOffering) *Menu {
	return &Menu{
		vegPizzas:      clonePizzas(vegPizzas),
		nonVegPizzas:   clonePizzas(nonVegPizzas),
		vegToppings:    cloneToppings(vegToppings),
		nonVegToppings: cloneToppings(nonVegToppings),
	}
}

// VegPizzas returns the vegetarian pizzas in menu order.
func (m *Menu) VegPizzas() []PizzaOffering { return clonePizzas(m.vegPizzas) }

// NonVegPizzas returns the non-vegetarian pizzas in menu order.
func (m *Menu) NonVegPizzas() []PizzaOffering { return clonePizzas(m.nonVegPizzas) }

// VegToppings returns the vegetarian toppings in menu order.
func (m *Menu) VegToppings() []ToppingOffering { return cloneToppings(m.vegToppings) }

// NonVegToppings returns the non-vegetarian toppings in menu order.
func (m *Menu) NonVegToppings() []ToppingOffering { return cloneToppings(m.nonVegToppings) }

// PizzasByCategory returns the pizzas of the given category in menu order.
func (m *Menu) PizzasByCategory(c Category) []PizzaOffering {
	if c == NonVegetarian {
		return m.NonVegPizzas()
	}

	return m.VegPizzas()
}

// ToppingsFor returns the toppings selectable for a pizza of the given
// category: the vegetarian toppings always, with the non-vegetarian
// toppings appended for non-vegetarian pizzas.
func (m *Menu) ToppingsFor(c Category) []ToppingOffering {
	toppings := cloneToppings(m.vegToppings)
	if c == NonVegetarian {
		toppings = append(toppings, cloneToppings(m.nonVegToppings)...)
	}

	return toppings
}

func clonePizzas(src []PizzaOffering) []PizzaOffering {
	out := make([]PizzaOffering, len(src))
	for i, p := range src {
		p.DefaultToppings = append([]string(nil), p.DefaultToppings...)
		out[i] = p
	}

	return out
}

func cloneToppings(src []ToppingOffering) []ToppingOffering {
	return append([]ToppingOffering(nil), src...)
}
