package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Pricing is a value object holding a menu item's price configuration.
// Exactly one mode is populated: a flat base price, or a non-empty map of
// per-size prices. The constructors are the only way to build one.
type Pricing struct {
	base  *decimal.Decimal
	sizes map[Size]decimal.Decimal
}

// FlatPricing constructs a single-price configuration.
func FlatPricing(price decimal.Decimal) (Pricing, error) {
	if !price.IsPositive() {
		return Pricing{}, fmt.Errorf("price must be positive, got %s", price)
	}
	return Pricing{base: &price}, nil
}

// SizePricing constructs a size-variant configuration. At least one size must
// be present and every price must be positive.
func SizePricing(prices map[Size]decimal.Decimal) (Pricing, error) {
	if len(prices) == 0 {
		return Pricing{}, fmt.Errorf("size pricing requires at least one size")
	}
	sizes := make(map[Size]decimal.Decimal, len(prices))
	for s, p := range prices {
		if _, err := ParseSize(s.String()); err != nil {
			return Pricing{}, err
		}
		if !p.IsPositive() {
			return Pricing{}, fmt.Errorf("price for size %s must be positive, got %s", s, p)
		}
		sizes[s] = p
	}
	return Pricing{sizes: sizes}, nil
}

// HasSizes reports whether this pricing is size-variant.
func (p Pricing) HasSizes() bool {
	return p.sizes != nil
}
