package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(550), "550"},
		{decimal.NewFromFloat(550.5), "550.50"},
		{decimal.NewFromFloat(0.125), "0.13"},
		{decimal.NewFromInt(0), "0"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Fatalf("FormatPrice(%s): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestRenderText(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	inv := models.NewInvoice("INV-1741960800000", "Ali", at, []models.OrderLine{
		{ItemID: 19, DisplayName: "Chicken Tikka (Small)", UnitPrice: decimal.NewFromInt(550), Quantity: 2},
		{ItemID: 54, DisplayName: "Pepsi 1.5 Ltr", UnitPrice: decimal.NewFromInt(150), Quantity: 1},
	})

	text := RenderText(inv, DefaultShopInfo, "PKR")

	for _, want := range []string{
		"KASHI PIZZA HOME",
		"Invoice Number: INV-1741960800000",
		"Date: 3/14/2025",
		"Customer Name: Ali",
		"Chicken Tikka (Small)",
		"Grand Total: PKR 1250",
		"Address: Awan Shareef Road, Dawood Plazza",
		"Phone: +92304-0600910, +92313-6978075",
		"Thank you for your Order!",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered invoice missing %q:\n%s", want, text)
		}
	}

	t.Run("line columns", func(t *testing.T) {
		var lineRow string
		for _, row := range strings.Split(text, "\n") {
			if strings.HasPrefix(row, "Pepsi 1.5 Ltr") {
				lineRow = row
			}
		}
		if lineRow == "" {
			t.Fatalf("no row for Pepsi 1.5 Ltr:\n%s", text)
		}
		if !strings.Contains(lineRow, "PKR 150") {
			t.Fatalf("expected unit price column in %q", lineRow)
		}
	})
}
