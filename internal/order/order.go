// Package order models a single customer order: an order type plus an
// append-only sequence of line items, with every money figure derived
// on demand from the items.
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizza-palace/internal/menu"
	"pizza-palace/internal/pricing"
)

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

// Type is the order type. The set is closed.
type Type int

const (
	_ Type = iota // skip zero value, use it as a default (invalid) value for Type

	DineIn   // Dine In
	TakeAway // Take Away
)

var (
	// ErrUnknownOrderType is returned by New for a Type outside the closed set.
	ErrUnknownOrderType = errors.New("unknown order type")
	// ErrInvalidQuantity is returned by NewLineItem for a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// TaxRate is the GST rate applied to subtotal plus packaging charges.
var TaxRate = decimal.RequireFromString("0.18")

var packagingChargeTakeAway = decimal.NewFromInt(25)

// IsValid returns true if the order type is a recognized value.
func (t Type) IsValid() bool {
	return t == DineIn || t == TakeAway
}

// PackagingCharge returns the packaging charge applied once per line
// item for orders of this type. It panics for a Type outside the closed
// set; New rejects those before an Order exists.
func (t Type) PackagingCharge() decimal.Decimal {
	switch t {
	case DineIn:
		return decimal.Zero
	case TakeAway:
		return packagingChargeTakeAway
	default:
		panic("packaging charge requested for " + t.String())
	}
}

// LineItem is one ordered pizza configuration. Instances are built via
// NewLineItem so that every LineItem inside an Order satisfies the size
// and quantity invariants; totals are recomputed from the fields on
// every call, never stored.
type LineItem struct {
	pizza       menu.PizzaOffering
	size        pricing.Size
	quantity    int
	toppings    []menu.ToppingOffering
	extraCheese bool
}

// NewLineItem builds a line item for quantity units of the given pizza
// and size. Toppings and extra cheese are added afterwards.
func NewLineItem(pizza menu.PizzaOffering, size pricing.Size, quantity int) (*LineItem, error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("%w: Size(%d)", pricing.ErrUnknownSize, int(size))
	}

	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	return &LineItem{
		pizza:    pizza,
		size:     size,
		quantity: quantity,
	}, nil
}

// AddTopping appends a topping. Selection order is preserved for the
// bill; it does not affect the total.
func (li *LineItem) AddTopping(t menu.ToppingOffering) {
	li.toppings = append(li.toppings, t)
}

// SetExtraCheese sets the extra-cheese flag.
func (li *LineItem) SetExtraCheese(extraCheese bool) {
	li.extraCheese = extraCheese
}

// Pizza returns the ordered pizza offering.
func (li *LineItem) Pizza() menu.PizzaOffering { return li.pizza }

// Size returns the chosen size.
func (li *LineItem) Size() pricing.Size { return li.size }

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int { return li.quantity }

// Toppings returns the selected toppings in selection order.
func (li *LineItem) Toppings() []menu.ToppingOffering {
	return append([]menu.ToppingOffering(nil), li.toppings...)
}

// ExtraCheese reports whether extra cheese was added.
func (li *LineItem) ExtraCheese() bool { return li.extraCheese }

// SizedPrice returns the pizza's base price adjusted for the chosen size.
func (li *LineItem) SizedPrice() decimal.Decimal {
	price, err := pricing.SizedPrice(li.pizza.BasePrice, li.size)
	if err != nil {
		// NewLineItem validates the size; this cannot happen.
		panic(err)
	}

	return price
}

// Total returns the line-item total: sized price plus toppings and the
// extra-cheese surcharge, times quantity.
func (li *LineItem) Total() decimal.Decimal {
	prices := make([]decimal.Decimal, len(li.toppings))
	for i, t := range li.toppings {
		prices[i] = t.Price
	}

	return pricing.LineTotal(li.SizedPrice(), prices, li.extraCheese, li.quantity)
}

// Order is one customer order. Items are append-only; once added, a
// line item stays for the order's lifetime.
type Order struct {
	number    string
	orderType Type
	placedAt  time.Time
	items     []*LineItem
}

// New creates an empty order of the given type with a fresh order
// number and the current time.
func New(t Type) (*Order, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: Type(%d)", ErrUnknownOrderType, int(t))
	}

	return &Order{
		number:    uuid.NewString(),
		orderType: t,
		placedAt:  time.Now(),
	}, nil
}

// AddItem appends a line item to the order.
func (o *Order) AddItem(item *LineItem) {
	o.items = append(o.items, item)
}

// Number returns the order number.
func (o *Order) Number() string { return o.number }

// Type returns the order type.
func (o *Order) Type() Type { return o.orderType }

// PlacedAt returns the time the order was created.
func (o *Order) PlacedAt() time.Time { return o.placedAt }

// Items returns the line items in the order they were added.
func (o *Order) Items() []*LineItem {
	return append([]*LineItem(nil), o.items...)
}

// Subtotal returns the sum of all line-item totals.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.Total())
	}

	return sum
}

// PackagingCharges returns the order type's packaging charge times the
// number of line items. The charge is per line item, not per pizza unit.
func (o *Order) PackagingCharges() decimal.Decimal {
	return o.orderType.PackagingCharge().Mul(decimal.NewFromInt(int64(len(o.items))))
}

// Tax returns the GST on subtotal plus packaging charges.
func (o *Order) Tax() decimal.Decimal {
	return o.Subtotal().Add(o.PackagingCharges()).Mul(TaxRate)
}

// Total returns subtotal plus packaging charges plus tax.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.PackagingCharges()).Add(o.Tax())
}
