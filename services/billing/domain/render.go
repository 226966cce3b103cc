package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/models"
)

// ShopInfo is the letterhead printed on receipts.
type ShopInfo struct {
	Name         string
	AddressLines []string
	Phone        string
}

// DefaultShopInfo matches the printed receipts at the counter.
var DefaultShopInfo = ShopInfo{
	Name: "KASHI PIZZA HOME",
	AddressLines: []string{
		"Awan Shareef Road, Dawood Plazza",
		"near Akhtar Public School, JalalPur Sobtain",
		"Gujrat, Pakistan",
	},
	Phone: "+92304-0600910, +92313-6978075",
}

// FormatPrice renders an amount the way the receipts do: whole amounts
// without decimals, fractional amounts with exactly two.
func FormatPrice(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}

const rule = "================================"

// RenderText renders an invoice as the plain-text receipt handed to the
// customer.
func RenderText(inv models.Invoice, shop ShopInfo, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", shop.Name)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Invoice Number: %s\n", inv.Number)
	fmt.Fprintf(&b, "Date: %s\n", inv.Date.Format("1/2/2006"))
	fmt.Fprintf(&b, "Customer Name: %s\n", inv.CustomerName)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Item Name                Qty   Price   Subtotal\n")
	fmt.Fprintf(&b, "--------------------------------\n")
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, "%-24s %-5d %s %-7s %s %s\n",
			l.Name, l.Quantity, currency, FormatPrice(l.UnitPrice), currency, FormatPrice(l.LineTotal()))
	}
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Grand Total: %s %s\n", currency, FormatPrice(inv.GrandTotal))
	fmt.Fprintf(&b, "%s\n", rule)
	for i, line := range shop.AddressLines {
		if i == 0 {
			line = "Address: " + line
		}
		fmt.Fprintf(&b, "%s\n", line)
	}
	fmt.Fprintf(&b, "Phone: %s\n\n", shop.Phone)
	fmt.Fprintf(&b, "Thank you for your Order!\n")
	return b.String()
}
