package models

import (
	"github.com/shopspring/decimal"
)

// OrderLine is one line of the current order. Lines are identified by the
// (ItemID, DisplayName) pair: a sized item contributes distinct display
// names per size, so "Chicken Tikka (Small)" and "Chicken Tikka (Large)"
// are separate lines even though they share an item id.
type OrderLine struct {
	ItemID      int64           `json:"itemId"`
	DisplayName string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// LineTotal returns unit price times quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is the single in-progress order: an ordered list of lines.
type Order struct {
	Lines []OrderLine `json:"lines"`
}

func (o *Order) find(itemID int64, displayName string) int {
	for i := range o.Lines {
		if o.Lines[i].ItemID == itemID && o.Lines[i].DisplayName == displayName {
			return i
		}
	}
	return -1
}

// Add appends a line, or merges into an existing line with the same
// identity. Merging sums quantities and takes the incoming unit price, so
// a price edited on the menu applies to lines added afterwards.
func (o *Order) Add(line OrderLine) {
	if i := o.find(line.ItemID, line.DisplayName); i >= 0 {
		o.Lines[i].Quantity += line.Quantity
		o.Lines[i].UnitPrice = line.UnitPrice
		return
	}
	o.Lines = append(o.Lines, line)
}

// SetQuantity sets a line's quantity. A quantity of zero or less removes
// the line. It reports whether the line existed.
func (o *Order) SetQuantity(itemID int64, displayName string, qty int) bool {
	i := o.find(itemID, displayName)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
		return true
	}
	o.Lines[i].Quantity = qty
	return true
}

// Remove deletes the line matching the identity exactly. Display names are
// compared in full, never by substring: the menu carries names like
// "Hot Wings (5 Piece)" whose parenthetical is not a size suffix. Removing
// an absent line is a no-op, reported via the return value.
func (o *Order) Remove(itemID int64, displayName string) bool {
	i := o.find(itemID, displayName)
	if i < 0 {
		return false
	}
	o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
	return true
}

// Total sums every line's total.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Clear drops every line.
func (o *Order) Clear() {
	o.Lines = nil
}

// IsEmpty reports whether the order has no lines.
func (o Order) IsEmpty() bool {
	return len(o.Lines) == 0
}
