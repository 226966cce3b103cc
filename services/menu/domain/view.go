package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain/models"
)

// SelectionRow is one orderable line on the menu board. A flat item yields
// a single row; a sized item yields one row per size in display order.
type SelectionRow struct {
	ItemID    int64           `json:"itemId"`
	Size      models.Size     `json:"size,omitempty"`
	Label     string          `json:"label"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// DisplayName renders an item name for a line, with the size suffix for
// size-priced variants, e.g. "Chicken Tikka (Large)".
func DisplayName(name models.ItemName, size models.Size) string {
	if size == "" {
		return name.String()
	}
	return name.String() + " (" + size.String() + ")"
}

// ItemsFor filters items by category. CategoryAll returns everything.
func ItemsFor(items []models.MenuItem, category string) []models.MenuItem {
	if category == CategoryAll {
		return items
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// ExpandForSelection flattens an item into orderable rows. Sized items
// expand in models.SizeOrder, skipping sizes the item does not carry.
func ExpandForSelection(item models.MenuItem) []SelectionRow {
	if !item.HasSizes() {
		return []SelectionRow{{
			ItemID:    item.ID,
			Label:     item.Name.String(),
			UnitPrice: *item.BasePrice,
		}}
	}
	rows := make([]SelectionRow, 0, len(item.SizePrices))
	for _, s := range models.SizeOrder {
		price, ok := item.SizePrices[s]
		if !ok {
			continue
		}
		rows = append(rows, SelectionRow{
			ItemID:    item.ID,
			Size:      s,
			Label:     DisplayName(item.Name, s),
			UnitPrice: price,
		})
	}
	return rows
}

// SearchItems matches items whose name or category contains term,
// case insensitively. A blank term matches everything.
func SearchItems(items []models.MenuItem, term string) []models.MenuItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name.String()), term) ||
			strings.Contains(strings.ToLower(it.Category), term) {
			out = append(out, it)
		}
	}
	return out
}

// CountByCategory tallies items per category name.
func CountByCategory(items []models.MenuItem) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Category]++
	}
	return counts
}
