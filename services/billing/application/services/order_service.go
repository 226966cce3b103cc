package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/models"
	menudomain "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
	menumodels "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain/models"
)

// CatalogReader resolves catalog items for pricing. The menu context's
// CatalogService satisfies it.
type CatalogReader interface {
	Item(ctx context.Context, id int64) (menumodels.MenuItem, error)
}

// OrderService owns the single in-progress order. Lines are always priced
// from the catalog at add time, never from the client, so a tampered
// request cannot change what an item costs.
type OrderService struct {
	store   kv.Store
	log     logger.Logger
	catalog CatalogReader

	mu    sync.Mutex
	order models.Order
}

// NewOrderService loads the current order from the store, starting empty
// when nothing readable is there.
func NewOrderService(ctx context.Context, store kv.Store, log logger.Logger, catalog CatalogReader) (*OrderService, error) {
	s := &OrderService{store: store, log: log, catalog: catalog}
	var order models.Order
	found, err := kv.GetJSON(ctx, store, kv.KeyCurrentOrder, &order)
	if err != nil {
		return nil, err
	}
	if found {
		s.order = order
	}
	return s, nil
}

func (s *OrderService) persist(ctx context.Context) error {
	return kv.SetJSON(ctx, s.store, kv.KeyCurrentOrder, s.order)
}

func (s *OrderService) snapshot() models.Order {
	out := models.Order{Lines: make([]models.OrderLine, len(s.order.Lines))}
	copy(out.Lines, s.order.Lines)
	return out
}

// Current returns a copy of the in-progress order.
func (s *OrderService) Current(ctx context.Context) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddLine prices an item (and size, for size-priced items) from the catalog
// and adds it to the order, merging into an existing line with the same
// item and display name.
func (s *OrderService) AddLine(ctx context.Context, itemID int64, sizeLabel string, qty int) (models.Order, error) {
	if qty < 1 {
		return models.Order{}, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return models.Order{}, err
	}
	var size menumodels.Size
	if sizeLabel != "" {
		parsed, err := menumodels.ParseSize(sizeLabel)
		if err != nil {
			return models.Order{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		size = parsed
	}
	price, err := item.PriceFor(size)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	line := models.OrderLine{
		ItemID:      itemID,
		DisplayName: menudomain.DisplayName(item.Name, size),
		UnitPrice:   price,
		Quantity:    qty,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Add(line)
	if err := s.persist(ctx); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// SetQuantity sets a line's quantity; zero removes the line. Targeting a
// line that is not there is a no-op.
func (s *OrderService) SetQuantity(ctx context.Context, itemID int64, displayName string, qty int) (models.Order, error) {
	if qty < 0 {
		return models.Order{}, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.order.SetQuantity(itemID, displayName, qty) {
		return s.snapshot(), nil
	}
	if err := s.persist(ctx); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// RemoveLine removes the line matching the item and display name exactly.
// Removing an absent line succeeds without changing anything.
func (s *OrderService) RemoveLine(ctx context.Context, itemID int64, displayName string) (models.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.order.Remove(itemID, displayName)
	if !removed {
		return s.snapshot(), false, nil
	}
	if err := s.persist(ctx); err != nil {
		return s.snapshot(), true, err
	}
	return s.snapshot(), true, nil
}

// Clear empties the order.
func (s *OrderService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Clear()
	return s.persist(ctx)
}

// take empties the order and returns the lines it held. Invoice generation
// uses it so finalizing and clearing happen under one lock. When the cleared
// order cannot be persisted the lines are put back, leaving the order intact
// for a retry once storage recovers.
func (s *OrderService) take(ctx context.Context) ([]models.OrderLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.order.Lines
	s.order.Clear()
	if err := s.persist(ctx); err != nil {
		s.order.Lines = lines
		return nil, err
	}
	return lines, nil
}
