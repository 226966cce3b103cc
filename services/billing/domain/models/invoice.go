package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states. A deleted invoice stays in the log but is
// hidden from listings and excluded from revenue summaries.
const (
	StatusCompleted = "completed"
	StatusDeleted   = "deleted"
)

// DefaultCustomerName stands in when no customer name is given at the
// counter.
const DefaultCustomerName = "N/A"

// InvoiceLine is one printed line of an invoice: order lines sharing a
// display name collapse into a single line.
type InvoiceLine struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns unit price times quantity.
func (l InvoiceLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Invoice is a finalized bill. Once assembled it never changes, except for
// the soft-delete status flip.
type Invoice struct {
	Number       string          `json:"invoiceNumber"`
	CustomerName string          `json:"customerName"`
	Date         time.Time       `json:"date"`
	Lines        []InvoiceLine   `json:"items"`
	GrandTotal   decimal.Decimal `json:"total"`
	SavedAt      time.Time       `json:"savedAt"`
	Status       string          `json:"status"`
	Source       string          `json:"source,omitempty"`
}

// NewInvoice assembles an invoice from order lines. Lines with the same
// display name are grouped: quantities sum and the unit price of the latest
// occurrence wins. The grand total is computed from the grouped lines.
func NewInvoice(number, customerName string, at time.Time, lines []OrderLine) Invoice {
	if customerName == "" {
		customerName = DefaultCustomerName
	}

	grouped := make([]InvoiceLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		if i, ok := index[l.DisplayName]; ok {
			grouped[i].Quantity += l.Quantity
			grouped[i].UnitPrice = l.UnitPrice
			continue
		}
		index[l.DisplayName] = len(grouped)
		grouped = append(grouped, InvoiceLine{Name: l.DisplayName, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}

	total := decimal.Zero
	for _, l := range grouped {
		total = total.Add(l.LineTotal())
	}

	return Invoice{
		Number:       number,
		CustomerName: customerName,
		Date:         at,
		Lines:        grouped,
		GrandTotal:   total,
		SavedAt:      at,
		Status:       StatusCompleted,
	}
}
