// Package console drives the interactive ordering session: it prompts
// over an input/output pair, validates input with re-prompt loops, and
// assembles an order from the catalog. Bad input never aborts the
// session; only the input stream ending does.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"pizza-palace/internal/menu"
	"pizza-palace/internal/order"
	"pizza-palace/internal/pricing"
)

// ErrInputClosed is returned when the input stream ends before the
// session completes.
var ErrInputClosed = errors.New("input stream closed")

// maxQuantity bounds the per-line-item quantity prompt.
const maxQuantity = 10

var sizeOptions = []pricing.Size{pricing.Small, pricing.Medium, pricing.Large, pricing.ExtraLarge}

// Session holds the state of one interactive ordering session.
type Session struct {
	menu *menu.Menu
	in   *bufio.Scanner
	out  io.Writer
	log  *slog.Logger
}

// NewSession builds a session reading whitespace-separated tokens from
// in and writing prompts to out.
func NewSession(m *menu.Menu, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Session{
		menu: m,
		in:   scanner,
		out:  out,
		log:  log,
	}
}

// Run drives the full prompt flow and returns the completed order:
// order type, then line items until the user declines to add more.
func (s *Session) Run() (*order.Order, error) {
	fmt.Fprintln(s.out, " ")
	fmt.Fprintln(s.out, "=== WELCOME TO PIZZA PALACE ===")
	fmt.Fprintln(s.out, "Your favorite pizza destination!")
	fmt.Fprint(s.out, "\n\n")

	orderType, err := s.promptOrderType()
	if err != nil {
		return nil, err
	}

	ord, err := order.New(orderType)
	if err != nil {
		return nil, err
	}

	s.log.Debug("order started", "number", ord.Number(), "type", orderType.String())

	for {
		item, err := s.promptLineItem()
		if err != nil {
			return nil, err
		}

		ord.AddItem(item)
		s.log.Debug("line item added",
			"pizza", item.Pizza().Name,
			"size", item.Size().String(),
			"quantity", item.Quantity())

		more, err := s.promptYesNo("\nAdd more pizzas to order? (y/n): ")
		if err != nil {
			return nil, err
		}

		if !more {
			break
		}
	}

	return ord, nil
}

func (s *Session) promptOrderType() (order.Type, error) {
	fmt.Fprint(s.out, "Dine in or Take away? \n1. Dine in\n2. Take away\n")

	choice, err := s.readIntInRange(1, 2)
	if err != nil {
		return 0, err
	}

	if choice == 1 {
		return order.DineIn, nil
	}

	return order.TakeAway, nil
}

func (s *Session) promptLineItem() (*order.LineItem, error) {
	fmt.Fprint(s.out, "\nChoose pizza category \n1. Veg\n2. Non-Veg\n ")

	choice, err := s.readIntInRange(1, 2)
	if err != nil {
		return nil, err
	}

	category := menu.Vegetarian
	if choice == 2 {
		category = menu.NonVegetarian
	}

	pizzas := s.menu.PizzasByCategory(category)
	s.printPizzas(category, pizzas)

	fmt.Fprintf(s.out, "Choose pizza (1-%d): ", len(pizzas))

	pizzaChoice, err := s.readIntInRange(1, len(pizzas))
	if err != nil {
		return nil, err
	}

	size, err := s.promptSize()
	if err != nil {
		return nil, err
	}

	fmt.Fprint(s.out, "\nEnter quantity: ")

	quantity, err := s.readIntInRange(1, maxQuantity)
	if err != nil {
		return nil, err
	}

	item, err := order.NewLineItem(pizzas[pizzaChoice-1], size, quantity)
	if err != nil {
		return nil, err
	}

	extraCheese, err := s.promptYesNo("\nAdd extra cheese? (y/n): ")
	if err != nil {
		return nil, err
	}

	item.SetExtraCheese(extraCheese)

	wantToppings, err := s.promptYesNo("\nAdd custom toppings? (y/n): ")
	if err != nil {
		return nil, err
	}

	if wantToppings {
		if err := s.promptToppings(item, category); err != nil {
			return nil, err
		}
	}

	return item, nil
}

func (s *Session) printPizzas(c menu.Category, pizzas []menu.PizzaOffering) {
	name := "VEGETARIAN"
	if c == menu.NonVegetarian {
		name = "NON-VEGETARIAN"
	}

	fmt.Fprintf(s.out, "\n------- %s PIZZAS -------\n\n", name)

	for i, p := range pizzas {
		// Pizza list shows the whole-unit Medium reference price.
		fmt.Fprintf(s.out, "%d. %-20s - Rs.%s (Medium)\n", i+1, p.Name, p.BasePrice.StringFixed(0))
	}

	fmt.Fprintln(s.out)
}

func (s *Session) promptSize() (pricing.Size, error) {
	fmt.Fprint(s.out, "\n------- SIZE OPTIONS -------\n\n")
	fmt.Fprintln(s.out, "1. Small (30% off)")
	fmt.Fprintln(s.out, "2. Medium (Base price)")
	fmt.Fprintln(s.out, "3. Large (40% extra)")
	fmt.Fprintln(s.out, "4. Extra Large (80% extra)")
	fmt.Fprint(s.out, "\nChoose size (1-4): ")

	choice, err := s.readIntInRange(1, len(sizeOptions))
	if err != nil {
		return 0, err
	}

	return sizeOptions[choice-1], nil
}

func (s *Session) promptToppings(item *order.LineItem, c menu.Category) error {
	available := s.menu.ToppingsFor(c)

	fmt.Fprintln(s.out, "\n------- AVAILABLE TOPPINGS -------")

	for i, t := range available {
		fmt.Fprintf(s.out, "%d. %-20s - Rs.%s\n", i+1, t.Name, t.Price.StringFixed(0))
	}

	fmt.Fprintln(s.out, "\nEnter topping numbers (comma-separated, e.g., 1,3,5) or 0 for no toppings:")

	input, err := s.next()
	if err != nil {
		return err
	}

	indices, diags := ParseSelection(input, len(available))

	for _, w := range diags.Warnings {
		fmt.Fprintln(s.out, w.Message)
	}

	for _, info := range diags.Infos {
		// Out-of-range indices are dropped without a user-visible message.
		s.log.Debug("topping index dropped", "token", info.Subject, "reason", info.Message)
	}

	for _, idx := range indices {
		item.AddTopping(available[idx-1])
	}

	return nil
}

// next returns the next whitespace-separated input token.
func (s *Session) next() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", ErrInputClosed
	}

	return s.in.Text(), nil
}

// readIntInRange reads tokens until one parses as an integer within
// [min, max], re-prompting on anything else.
func (s *Session) readIntInRange(min, max int) (int, error) {
	for {
		tok, err := s.next()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number between %d and %d: ", min, max)
			continue
		}

		if n < min || n > max {
			fmt.Fprintf(s.out, "Please enter a number between %d and %d: ", min, max)
			continue
		}

		return n, nil
	}
}

// promptYesNo prints the prompt and reads one token; "y" and "yes" in
// any case mean yes, anything else means no.
func (s *Session) promptYesNo(prompt string) (bool, error) {
	fmt.Fprint(s.out, prompt)

	tok, err := s.next()
	if err != nil {
		return false, err
	}

	tok = strings.ToLower(tok)

	return tok == "y" || tok == "yes", nil
}
