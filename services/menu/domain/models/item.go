package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. Exactly one of BasePrice or SizePrices is
// populated at any time — never both, never neither. A SizePrices map, when
// present, is non-empty: deleting the last size deletes the whole item.
//
// The JSON shape mirrors the persisted catalog document: a flat item carries
// "price", a size-variant item carries "sizePrices".
type MenuItem struct {
	ID         int64                    `json:"id"`
	Name       ItemName                 `json:"name"`
	Category   string                   `json:"category"`
	BasePrice  *decimal.Decimal         `json:"price,omitempty"`
	SizePrices map[Size]decimal.Decimal `json:"sizePrices,omitempty"`
}

// NewMenuItem constructs a valid MenuItem from a validated name and pricing.
func NewMenuItem(id int64, name ItemName, category string, pricing Pricing) MenuItem {
	item := MenuItem{ID: id, Name: name, Category: category}
	if pricing.HasSizes() {
		item.SizePrices = make(map[Size]decimal.Decimal, len(pricing.sizes))
		for s, p := range pricing.sizes {
			item.SizePrices[s] = p
		}
	} else {
		p := *pricing.base
		item.BasePrice = &p
	}
	return item
}

// HasSizes reports whether the item is sold in size variants.
func (m MenuItem) HasSizes() bool {
	return len(m.SizePrices) > 0
}

// PriceFor resolves the unit price for the given size. size must be empty for
// a flat-priced item and a present label for a size-variant item.
func (m MenuItem) PriceFor(size Size) (decimal.Decimal, error) {
	if m.HasSizes() {
		if size == "" {
			return decimal.Decimal{}, fmt.Errorf("item %q requires a size", m.Name)
		}
		p, ok := m.SizePrices[size]
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("item %q has no %s size", m.Name, size)
		}
		return p, nil
	}
	if size != "" {
		return decimal.Decimal{}, fmt.Errorf("item %q has no size variants", m.Name)
	}
	return *m.BasePrice, nil
}

// Validate checks the exactly-one-pricing-mode invariant. Items built through
// NewMenuItem always pass; this guards records loaded from storage.
func (m MenuItem) Validate() error {
	if _, err := NewItemName(m.Name.String()); err != nil {
		return err
	}
	hasBase := m.BasePrice != nil
	hasSizes := len(m.SizePrices) > 0
	if hasBase == hasSizes {
		return fmt.Errorf("item %q must have exactly one of price or sizePrices", m.Name)
	}
	if hasBase && !m.BasePrice.IsPositive() {
		return fmt.Errorf("item %q price must be positive", m.Name)
	}
	for s, p := range m.SizePrices {
		if _, err := ParseSize(s.String()); err != nil {
			return fmt.Errorf("item %q: %w", m.Name, err)
		}
		if !p.IsPositive() {
			return fmt.Errorf("item %q price for %s must be positive", m.Name, s)
		}
	}
	return nil
}
