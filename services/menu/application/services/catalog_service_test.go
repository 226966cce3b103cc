package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
)

func newTestService(t *testing.T) (*CatalogService, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	svc, err := NewCatalogService(context.Background(), store, logger.NewNop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc, store
}

func TestNewCatalogService_SeedsDefaults(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	items := svc.Items(ctx, domain.CategoryAll, "")
	if len(items) != 59 {
		t.Fatalf("expected 59 seeded items, got %d", len(items))
	}

	// the seed must be durable, not just in memory
	if _, found, _ := store.Get(ctx, kv.KeyItems); !found {
		t.Fatal("seeded items not persisted")
	}
	if _, found, _ := store.Get(ctx, kv.KeyCategories); !found {
		t.Fatal("seeded categories not persisted")
	}
}

func TestNewCatalogService_LoadsExisting(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	first, err := NewCatalogService(ctx, store, logger.NewNop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := first.CreateCategory(ctx, "Desserts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := NewCatalogService(ctx, store, logger.NewNop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, c := range second.Categories(ctx) {
		if c.Name == "Desserts" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected reloaded service to keep Desserts")
	}
}

func TestNewCatalogService_CorruptStateReseeds(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, kv.KeyItems, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc, err := NewCatalogService(ctx, store, logger.NewNop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(svc.Items(ctx, domain.CategoryAll, "")); got != 59 {
		t.Fatalf("expected reseeded catalog, got %d items", got)
	}
}

func TestCatalogService_CreateItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("flat item", func(t *testing.T) {
		price := decimal.NewFromInt(450)
		item, err := svc.CreateItem(ctx, CreateItemParams{Name: "Club Sandwich", Category: "Burgers", Price: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 60 {
			t.Fatalf("expected next id 60, got %d", item.ID)
		}
	})

	t.Run("missing pricing", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, CreateItemParams{Name: "Mystery", Category: "Burgers"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("both pricing modes", func(t *testing.T) {
		price := decimal.NewFromInt(100)
		_, err := svc.CreateItem(ctx, CreateItemParams{
			Name: "Mystery", Category: "Burgers", Price: &price,
			SizePrices: map[string]decimal.Decimal{"Small": price},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("bad size label", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, CreateItemParams{
			Name: "Mystery", Category: "Burgers",
			SizePrices: map[string]decimal.Decimal{"Jumbo": decimal.NewFromInt(100)},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestCatalogService_PersistFailureKeepsEffect(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.FailWrites = errors.New("disk full")
	price := decimal.NewFromInt(450)
	_, err := svc.CreateItem(ctx, CreateItemParams{Name: "Club Sandwich", Category: "Burgers", Price: &price})
	if !errors.Is(err, kv.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	// the in-memory change stands despite the failed write
	store.FailWrites = nil
	items := svc.Items(ctx, "Burgers", "Club Sandwich")
	if len(items) != 1 {
		t.Fatalf("expected the item to survive the failed persist, got %d matches", len(items))
	}
}

func TestCatalogService_DeleteCategoryProtected(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	svc, err := NewCatalogService(ctx, store, logger.NewNop(), []string{"Cold Drinks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.DeleteCategory(ctx, "Cold Drinks"); !errors.Is(err, domain.ErrProtectedCategory) {
		t.Fatalf("expected ErrProtectedCategory, got %v", err)
	}

	reassigned, err := svc.DeleteCategory(ctx, "Burgers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reassigned != 9 {
		t.Fatalf("expected 9 reassigned burgers, got %d", reassigned)
	}
}

func TestCatalogService_Board(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rows := svc.Board(ctx, "Regular Pizzas")
	// 7 pizzas with 4 sizes each
	if len(rows) != 28 {
		t.Fatalf("expected 28 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Size == "" {
			t.Fatalf("expected every pizza row to carry a size: %+v", row)
		}
	}
}

func TestCatalogService_DeleteItemIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	removed, err := svc.DeleteItem(ctx, 1, "")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	removed, err = svc.DeleteItem(ctx, 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Fatal("second delete should be a no-op")
	}
}
