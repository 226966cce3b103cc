package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain/models"
)

// CatalogService owns the menu catalog. All mutations go through a single
// mutex, so the snapshot written to the store is always internally
// consistent. When persistence fails the in-memory change stands and the
// storage error is surfaced to the caller.
type CatalogService struct {
	store     kv.Store
	log       logger.Logger
	protected []string

	mu      sync.Mutex
	catalog domain.Catalog
}

// NewCatalogService loads the catalog from the store, seeding the default
// menu when nothing (or nothing readable) is there.
func NewCatalogService(ctx context.Context, store kv.Store, log logger.Logger, protected []string) (*CatalogService, error) {
	s := &CatalogService{store: store, log: log, protected: protected}

	var items []models.MenuItem
	itemsFound, err := kv.GetJSON(ctx, store, kv.KeyItems, &items)
	if err != nil {
		return nil, err
	}
	var cats []string
	catsFound, err := kv.GetJSON(ctx, store, kv.KeyCategories, &cats)
	if err != nil {
		return nil, err
	}

	if !itemsFound || !catsFound {
		s.catalog = domain.DefaultCatalog()
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "catalog seeded with default menu",
			"items", len(s.catalog.Items), "categories", len(s.catalog.Categories))
		return s, nil
	}

	kept := items[:0]
	for _, it := range items {
		if err := it.Validate(); err != nil {
			log.WarnContext(ctx, "dropping invalid catalog record", "id", it.ID, "error", err)
			continue
		}
		kept = append(kept, it)
	}
	s.catalog = domain.Catalog{Items: kept, Categories: cats}
	log.InfoContext(ctx, "catalog loaded", "items", len(kept), "categories", len(cats))
	return s, nil
}

func (s *CatalogService) persist(ctx context.Context) error {
	if err := kv.SetJSON(ctx, s.store, kv.KeyItems, s.catalog.Items); err != nil {
		return err
	}
	return kv.SetJSON(ctx, s.store, kv.KeyCategories, s.catalog.Categories)
}

// Items lists catalog items, filtered by category (domain.CategoryAll for
// everything) and an optional case-insensitive search term.
func (s *CatalogService) Items(ctx context.Context, category, search string) []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := domain.ItemsFor(s.catalog.Items, category)
	items = domain.SearchItems(items, search)
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}

// Item returns a single catalog item by id.
func (s *CatalogService) Item(ctx context.Context, id int64) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.catalog.FindItem(id)
	if !ok {
		return models.MenuItem{}, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// Board returns the orderable rows for a category, size variants expanded
// in display order.
func (s *CatalogService) Board(ctx context.Context, category string) []domain.SelectionRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := domain.ItemsFor(s.catalog.Items, category)
	rows := make([]domain.SelectionRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, domain.ExpandForSelection(it)...)
	}
	return rows
}

// CategoryView is a category name with its current item count.
type CategoryView struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories lists categories in display order with per-category counts.
func (s *CatalogService) Categories(ctx context.Context) []CategoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := domain.CountByCategory(s.catalog.Items)
	out := make([]CategoryView, 0, len(s.catalog.Categories))
	for _, name := range s.catalog.Categories {
		out = append(out, CategoryView{Name: name, Count: counts[name]})
	}
	return out
}

// CreateItemParams carries the fields for a new catalog item. Exactly one
// of Price or SizePrices must be set.
type CreateItemParams struct {
	Name       string
	Category   string
	Price      *decimal.Decimal
	SizePrices map[string]decimal.Decimal
}

// CreateItem validates and adds a new item, then persists the catalog.
func (s *CatalogService) CreateItem(ctx context.Context, p CreateItemParams) (models.MenuItem, error) {
	name, err := models.NewItemName(p.Name)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	pricing, err := buildPricing(p.Price, p.SizePrices)
	if err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.catalog.AddItem(s.catalog.NextItemID(), name, p.Category, pricing)
	if err != nil {
		return models.MenuItem{}, err
	}
	if err := s.persist(ctx); err != nil {
		return item, err
	}
	s.log.InfoContext(ctx, "menu item created", "id", item.ID, "name", item.Name, "category", item.Category)
	return item, nil
}

// UpdateItemParams carries a partial item update. Nil fields stay as they
// are. Size labels are validated before they reach the catalog.
type UpdateItemParams struct {
	Name       *string
	Category   *string
	Price      *decimal.Decimal
	SizePrices map[string]decimal.Decimal
}

// UpdateItem applies a partial update and persists the catalog.
func (s *CatalogService) UpdateItem(ctx context.Context, id int64, p UpdateItemParams) (models.MenuItem, error) {
	upd := domain.ItemUpdate{Category: p.Category, BasePrice: p.Price}
	if p.Name != nil {
		name, err := models.NewItemName(*p.Name)
		if err != nil {
			return models.MenuItem{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		upd.Name = &name
	}
	if len(p.SizePrices) > 0 {
		upd.SizePrices = make(map[models.Size]decimal.Decimal, len(p.SizePrices))
		for label, price := range p.SizePrices {
			size, err := models.ParseSize(label)
			if err != nil {
				return models.MenuItem{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
			}
			upd.SizePrices[size] = price
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.catalog.UpdateItem(id, upd)
	if err != nil {
		return models.MenuItem{}, err
	}
	if err := s.persist(ctx); err != nil {
		return item, err
	}
	s.log.InfoContext(ctx, "menu item updated", "id", id)
	return item, nil
}

// DeleteItem removes an item or one of its size variants. Deleting
// something already gone is a no-op, reported via the removed flag.
func (s *CatalogService) DeleteItem(ctx context.Context, id int64, sizeLabel string) (bool, error) {
	var size models.Size
	if sizeLabel != "" {
		parsed, err := models.ParseSize(sizeLabel)
		if err != nil {
			return false, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		size = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.catalog.DeleteItem(id, size)
	if !removed {
		return false, nil
	}
	if err := s.persist(ctx); err != nil {
		return true, err
	}
	s.log.InfoContext(ctx, "menu item deleted", "id", id, "size", sizeLabel)
	return true, nil
}

// CreateCategory registers a new category name.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.AddCategory(name); err != nil {
		return err
	}
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "category created", "name", name)
	return nil
}

// DeleteCategory removes a category, moving its items to the fallback
// category. It returns how many items were reassigned.
func (s *CatalogService) DeleteCategory(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reassigned, err := s.catalog.DeleteCategory(name, s.protected)
	if err != nil {
		return 0, err
	}
	if err := s.persist(ctx); err != nil {
		return reassigned, err
	}
	s.log.InfoContext(ctx, "category deleted", "name", name, "reassigned", reassigned)
	return reassigned, nil
}

func buildPricing(price *decimal.Decimal, sizePrices map[string]decimal.Decimal) (models.Pricing, error) {
	switch {
	case price != nil && len(sizePrices) > 0:
		return models.Pricing{}, fmt.Errorf("%w: price and size prices are mutually exclusive", domain.ErrValidation)
	case price == nil && len(sizePrices) == 0:
		return models.Pricing{}, fmt.Errorf("%w: either price or size prices is required", domain.ErrValidation)
	case price != nil:
		pricing, err := models.FlatPricing(*price)
		if err != nil {
			return models.Pricing{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return pricing, nil
	default:
		sizes := make(map[models.Size]decimal.Decimal, len(sizePrices))
		for label, p := range sizePrices {
			size, err := models.ParseSize(label)
			if err != nil {
				return models.Pricing{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
			}
			sizes[size] = p
		}
		pricing, err := models.SizePricing(sizes)
		if err != nil {
			return models.Pricing{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		return pricing, nil
	}
}
