package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopicInvoiceGenerated is the Watermill topic published when an invoice is
// finalized from the current order.
const TopicInvoiceGenerated = "invoice.generated"

// InvoiceGeneratedEvent is published after an invoice is assembled and
// persisted. The remote ledger mirror consumes it to append its side log.
type InvoiceGeneratedEvent struct {
	EventID      uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version      int             `json:"version"`  // Schema version; increment on breaking changes
	Number       string          `json:"invoice_number"`
	CustomerName string          `json:"customer_name"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	LineCount    int             `json:"line_count"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
