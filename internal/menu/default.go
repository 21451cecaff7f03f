package menu

import (
	"github.com/shopspring/decimal"
)

// Default returns the built-in Pizza Palace menu: four pizzas per
// dietary category, six vegetarian toppings and four non-vegetarian
// toppings, in fixed menu order.
func Default() *Menu {
	return New(
		[]PizzaOffering{
			vegPizza("Margherita", 200, true),
			vegPizza("Veggie Supreme", 280, false),
			vegPizza("Paneer Makhani", 320, true),
			vegPizza("Corn & Cheese", 250, true),
		},
		[]PizzaOffering{
			nonVegPizza("Chicken Tikka", 380, "Chicken"),
			nonVegPizza("Pepperoni Classic", 400, "Pepperoni"),
			nonVegPizza("Chicken BBQ", 420, "Chicken"),
			nonVegPizza("Meat Lovers", 480, "Mixed Meat"),
		},
		[]ToppingOffering{
			{Name: "Extra Mushrooms", Price: decimal.NewFromInt(30), Vegetarian: true},
			{Name: "Bell Peppers", Price: decimal.NewFromInt(25), Vegetarian: true},
			{Name: "Onions", Price: decimal.NewFromInt(20), Vegetarian: true},
			{Name: "Tomatoes", Price: decimal.NewFromInt(20), Vegetarian: true},
			{Name: "Olives", Price: decimal.NewFromInt(35), Vegetarian: true},
			{Name: "Corn", Price: decimal.NewFromInt(25), Vegetarian: true},
		},
		[]ToppingOffering{
			{Name: "Extra Chicken", Price: decimal.NewFromInt(60)},
			{Name: "Pepperoni", Price: decimal.NewFromInt(50)},
			{Name: "Sausage", Price: decimal.NewFromInt(55)},
			{Name: "Bacon", Price: decimal.NewFromInt(65)},
		},
	)
}

func vegPizza(name string, basePrice int64, jainFriendly bool) PizzaOffering {
	return PizzaOffering{
		Name:            name,
		Category:        Vegetarian,
		BasePrice:       decimal.NewFromInt(basePrice),
		DefaultToppings: []string{"Cheese", "Tomato Sauce"},
		JainFriendly:    jainFriendly,
	}
}

func nonVegPizza(name string, basePrice int64, meatType string) PizzaOffering {
	return PizzaOffering{
		Name:            name,
		Category:        NonVegetarian,
		BasePrice:       decimal.NewFromInt(basePrice),
		DefaultToppings: []string{"Cheese", "Tomato Sauce", meatType},
		MeatType:        meatType,
	}
}
