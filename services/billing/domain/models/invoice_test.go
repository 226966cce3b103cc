package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewInvoice(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)

	t.Run("groups lines by display name", func(t *testing.T) {
		inv := NewInvoice("INV-1", "Ali", at, []OrderLine{
			line(1, "Zinger Burger", 320, 1),
			line(19, "Chicken Tikka (Small)", 550, 1),
			line(1, "Zinger Burger", 320, 2),
		})
		if len(inv.Lines) != 2 {
			t.Fatalf("expected 2 grouped lines, got %d", len(inv.Lines))
		}
		if inv.Lines[0].Name != "Zinger Burger" || inv.Lines[0].Quantity != 3 {
			t.Fatalf("unexpected first line: %+v", inv.Lines[0])
		}
		if !inv.GrandTotal.Equal(decimal.NewFromInt(1510)) {
			t.Fatalf("expected total 1510, got %s", inv.GrandTotal)
		}
	})

	t.Run("grouping takes the latest unit price", func(t *testing.T) {
		inv := NewInvoice("INV-2", "Ali", at, []OrderLine{
			line(1, "Zinger Burger", 320, 1),
			line(1, "Zinger Burger", 350, 1),
		})
		if !inv.Lines[0].UnitPrice.Equal(decimal.NewFromInt(350)) {
			t.Fatalf("expected latest price 350, got %s", inv.Lines[0].UnitPrice)
		}
		// grand total prices all grouped units at the surviving price
		if !inv.GrandTotal.Equal(decimal.NewFromInt(700)) {
			t.Fatalf("expected total 700, got %s", inv.GrandTotal)
		}
	})

	t.Run("blank customer name defaults", func(t *testing.T) {
		inv := NewInvoice("INV-3", "", at, []OrderLine{line(1, "Zinger Burger", 320, 1)})
		if inv.CustomerName != DefaultCustomerName {
			t.Fatalf("expected %q, got %q", DefaultCustomerName, inv.CustomerName)
		}
	})

	t.Run("status and timestamps", func(t *testing.T) {
		inv := NewInvoice("INV-4", "Ali", at, []OrderLine{line(1, "Zinger Burger", 320, 1)})
		if inv.Status != StatusCompleted {
			t.Fatalf("expected status %q, got %q", StatusCompleted, inv.Status)
		}
		if !inv.SavedAt.Equal(at) || !inv.Date.Equal(at) {
			t.Fatalf("expected timestamps %v, got date=%v savedAt=%v", at, inv.Date, inv.SavedAt)
		}
	})
}
