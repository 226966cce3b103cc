package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain/models"
)

const (
	// CategoryAll is the virtual category that selects every item.
	// It never appears in a catalog's category list.
	CategoryAll = "all"

	// CategoryUncategorized receives items whose category is deleted.
	CategoryUncategorized = "Uncategorized"
)

// Catalog is the menu aggregate: the ordered item list plus the ordered
// category list. Mutations keep both consistent, so an item never points
// at a category the catalog does not know about.
type Catalog struct {
	Items      []models.MenuItem `json:"items"`
	Categories []string          `json:"categories"`
}

// FindItem returns the item with the given id.
func (c *Catalog) FindItem(id int64) (models.MenuItem, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// HasCategory reports whether name is a registered category.
// Matching is case sensitive, same as the category list itself.
func (c *Catalog) HasCategory(name string) bool {
	return slices.Contains(c.Categories, name)
}

// AddItem validates and appends a new item. Flat-priced items must not
// collide with an existing item of the same name and category; sized items
// may, since a sized entry can coexist with a flat one under the same name.
func (c *Catalog) AddItem(id int64, name models.ItemName, category string, pricing models.Pricing) (models.MenuItem, error) {
	if !c.HasCategory(category) {
		return models.MenuItem{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !pricing.HasSizes() {
		for _, it := range c.Items {
			if it.Category == category && strings.EqualFold(it.Name.String(), name.String()) {
				return models.MenuItem{}, fmt.Errorf("%w: %q in %q", ErrDuplicateItem, name, category)
			}
		}
	}

	item := models.NewMenuItem(id, name, category, pricing)
	c.Items = append(c.Items, item)
	return item, nil
}

// ItemUpdate carries the fields of a partial item update. Nil fields are
// left untouched. BasePrice and SizePrices are mutually exclusive: setting
// BasePrice converts the item to flat pricing, setting SizePrices merges
// into (or converts to) the size map.
type ItemUpdate struct {
	Name       *models.ItemName
	Category   *string
	BasePrice  *decimal.Decimal
	SizePrices map[models.Size]decimal.Decimal
}

// UpdateItem applies a partial update to the item with the given id.
// Duplicate names are deliberately not re-checked here: renames are a
// correction flow and blocking them on a collision helps nobody.
func (c *Catalog) UpdateItem(id int64, upd ItemUpdate) (models.MenuItem, error) {
	idx := -1
	for i := range c.Items {
		if c.Items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.MenuItem{}, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	if upd.BasePrice != nil && len(upd.SizePrices) > 0 {
		return models.MenuItem{}, fmt.Errorf("%w: price and size prices are mutually exclusive", ErrValidation)
	}

	item := c.Items[idx]
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Category != nil {
		if !c.HasCategory(*upd.Category) {
			return models.MenuItem{}, fmt.Errorf("%w: %q", ErrUnknownCategory, *upd.Category)
		}
		item.Category = *upd.Category
	}
	if upd.BasePrice != nil {
		if !upd.BasePrice.IsPositive() {
			return models.MenuItem{}, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		p := *upd.BasePrice
		item.BasePrice = &p
		item.SizePrices = nil
	}
	if len(upd.SizePrices) > 0 {
		sizes := make(map[models.Size]decimal.Decimal, len(item.SizePrices)+len(upd.SizePrices))
		for s, p := range item.SizePrices {
			sizes[s] = p
		}
		for s, p := range upd.SizePrices {
			if _, err := models.ParseSize(string(s)); err != nil {
				return models.MenuItem{}, fmt.Errorf("%w: %w", ErrValidation, err)
			}
			if !p.IsPositive() {
				return models.MenuItem{}, fmt.Errorf("%w: %s price must be positive", ErrValidation, s)
			}
			sizes[s] = p
		}
		item.SizePrices = sizes
		item.BasePrice = nil
	}

	c.Items[idx] = item
	return item, nil
}

// DeleteItem removes an item, or a single size variant when size is set and
// the item is size-priced. Removing the last size removes the item itself.
// Deleting something that is not there reports false and changes nothing.
func (c *Catalog) DeleteItem(id int64, size models.Size) bool {
	for i := range c.Items {
		if c.Items[i].ID != id {
			continue
		}
		if size != "" && c.Items[i].HasSizes() {
			if _, ok := c.Items[i].SizePrices[size]; !ok {
				return false
			}
			sizes := make(map[models.Size]decimal.Decimal, len(c.Items[i].SizePrices)-1)
			for s, p := range c.Items[i].SizePrices {
				if s != size {
					sizes[s] = p
				}
			}
			if len(sizes) > 0 {
				c.Items[i].SizePrices = sizes
				return true
			}
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	return false
}

// AddCategory appends a new category name. Matching is exact, so names
// differing only in case are distinct categories.
func (c *Catalog) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name must not be blank", ErrValidation)
	}
	if c.HasCategory(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	c.Categories = append(c.Categories, name)
	return nil
}

// DeleteCategory removes a category and reassigns its items to
// CategoryUncategorized, registering that category if needed so no item is
// ever left pointing at a name the catalog does not carry. It returns the
// number of reassigned items.
func (c *Catalog) DeleteCategory(name string, protected []string) (int, error) {
	if slices.Contains(protected, name) || name == CategoryUncategorized {
		return 0, fmt.Errorf("%w: %q", ErrProtectedCategory, name)
	}
	idx := slices.Index(c.Categories, name)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	c.Categories = append(c.Categories[:idx], c.Categories[idx+1:]...)

	reassigned := 0
	for i := range c.Items {
		if c.Items[i].Category == name {
			c.Items[i].Category = CategoryUncategorized
			reassigned++
		}
	}
	if reassigned > 0 && !c.HasCategory(CategoryUncategorized) {
		c.Categories = append(c.Categories, CategoryUncategorized)
	}
	return reassigned, nil
}

// NextItemID returns one past the highest item id in the catalog.
func (c *Catalog) NextItemID() int64 {
	var max int64
	for _, it := range c.Items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}
