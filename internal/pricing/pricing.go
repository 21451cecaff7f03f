// Package pricing computes sized pizza prices and line-item totals.
//
// All arithmetic is exact decimal arithmetic; values are rounded to two
// places only when displayed, never while accumulating.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=Size -linecomment -output=size_string.go

// Size is a pizza size. The set is closed; every price lookup matches
// exhaustively and rejects anything else.
type Size int

const (
	_ Size = iota // skip zero value, use it as a default (invalid) value for Size

	Small      // Small
	Medium     // Medium
	Large      // Large
	ExtraLarge // Extra Large
)

// ErrUnknownSize is returned when a price lookup receives a Size outside
// the closed set. The interactive flow cannot produce one; hitting this
// means direct API misuse.
var ErrUnknownSize = errors.New("unknown pizza size")

// ExtraCheesePrice is the flat extra-cheese surcharge, applied once per
// unit of quantity.
var ExtraCheesePrice = decimal.NewFromInt(50)

var (
	multiplierSmall      = decimal.RequireFromString("0.70")
	multiplierMedium     = decimal.RequireFromString("1.00")
	multiplierLarge      = decimal.RequireFromString("1.40")
	multiplierExtraLarge = decimal.RequireFromString("1.80")
)

// IsValid returns true if the size is a recognized value.
func (s Size) IsValid() bool {
	return s >= Small && s <= ExtraLarge
}

// Multiplier returns the base-price multiplier for the size.
func (s Size) Multiplier() (decimal.Decimal, error) {
	switch s {
	case Small:
		return multiplierSmall, nil
	case Medium:
		return multiplierMedium, nil
	case Large:
		return multiplierLarge, nil
	case ExtraLarge:
		return multiplierExtraLarge, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: Size(%d)", ErrUnknownSize, int(s))
	}
}

// SizedPrice returns the base price adjusted by the size multiplier.
func SizedPrice(basePrice decimal.Decimal, size Size) (decimal.Decimal, error) {
	multiplier, err := size.Multiplier()
	if err != nil {
		return decimal.Decimal{}, err
	}

	return basePrice.Mul(multiplier), nil
}

// LineTotal returns the total for one line item:
//
//	(sizedPrice + sum(toppingPrices) + extra cheese surcharge) * quantity
//
// The result is linear in quantity and carries no rounding.
func LineTotal(sizedPrice decimal.Decimal, toppingPrices []decimal.Decimal, extraCheese bool, quantity int) decimal.Decimal {
	unit := sizedPrice
	for _, p := range toppingPrices {
		unit = unit.Add(p)
	}

	if extraCheese {
		unit = unit.Add(ExtraCheesePrice)
	}

	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}
