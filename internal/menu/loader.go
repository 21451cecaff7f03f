package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File represents the root of a YAML menu definition file. It is the
// human-edited form of the catalog; Build turns it into a Menu after
// validation.
type File struct {
	// Version of the menu schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Pizzas lists every pizza offering, any category order.
	Pizzas []PizzaEntry `yaml:"pizzas"`

	// Toppings lists every topping offering, any category order.
	Toppings []ToppingEntry `yaml:"toppings"`
}

// PizzaEntry is one pizza in a menu file.
type PizzaEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	// BasePrice is the Medium reference price as a decimal string.
	BasePrice string `yaml:"base_price"`
	// DefaultToppings default to the house base when omitted.
	DefaultToppings []string `yaml:"default_toppings,omitempty"`
	JainFriendly    bool     `yaml:"jain_friendly,omitempty"`
	MeatType        string   `yaml:"meat_type,omitempty"`
}

// ToppingEntry is one topping in a menu file.
type ToppingEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
}

// LoadFile loads, parses, validates and builds a menu from a YAML file.
func LoadFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Build(f)
}

// Parse parses YAML data into a File and applies defaults.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse menu YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Build validates a File and constructs the immutable Menu from it.
func Build(f *File) (*Menu, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("invalid menu: %w", diags.Error())
	}

	var vegPizzas, nonVegPizzas []PizzaOffering

	for _, e := range f.Pizzas {
		category, _ := parseCategory(e.Category)
		offering := PizzaOffering{
			Name:            e.Name,
			Category:        category,
			BasePrice:       decimal.RequireFromString(e.BasePrice),
			DefaultToppings: append([]string(nil), e.DefaultToppings...),
			JainFriendly:    e.JainFriendly,
			MeatType:        e.MeatType,
		}

		if category == Vegetarian {
			vegPizzas = append(vegPizzas, offering)
		} else {
			nonVegPizzas = append(nonVegPizzas, offering)
		}
	}

	var vegToppings, nonVegToppings []ToppingOffering

	for _, e := range f.Toppings {
		category, _ := parseCategory(e.Category)
		offering := ToppingOffering{
			Name:       e.Name,
			Price:      decimal.RequireFromString(e.Price),
			Vegetarian: category == Vegetarian,
		}

		if category == Vegetarian {
			vegToppings = append(vegToppings, offering)
		} else {
			nonVegToppings = append(nonVegToppings, offering)
		}
	}

	return New(vegPizzas, nonVegPizzas, vegToppings, nonVegToppings), nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Pizzas {
		p := &f.Pizzas[i]
		if len(p.DefaultToppings) > 0 {
			continue
		}

		p.DefaultToppings = []string{"Cheese", "Tomato Sauce"}
		if p.MeatType != "" {
			p.DefaultToppings = append(p.DefaultToppings, p.MeatType)
		}
	}
}

// parseCategory maps the YAML category spelling to a Category value.
func parseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "veg", "vegetarian":
		return Vegetarian, true
	case "non-veg", "nonveg", "non-vegetarian":
		return NonVegetarian, true
	default:
		return 0, false
	}
}
