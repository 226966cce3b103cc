// Package ledger mirrors finalized invoices into a compact side log, the
// way a back-office ledger would receive them. It consumes
// invoice.generated events so billing never blocks on the mirror.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"

	pkgevents "github.com/TajHussain7/Kashi-Pizza-Home/pkg/events"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	billingevents "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/events"
)

// Entry is one mirrored invoice record.
type Entry struct {
	EventID      string          `json:"eventId"`
	Number       string          `json:"invoiceNumber"`
	CustomerName string          `json:"customerName"`
	GrandTotal   decimal.Decimal `json:"total"`
	MirroredAt   time.Time       `json:"mirroredAt"`
}

// Mirror subscribes to invoice.generated and appends entries to the remote
// ledger key. Duplicate deliveries are dropped by event id.
type Mirror struct {
	store kv.Store
	log   logger.Logger
	bus   *pkgevents.EventBus

	mu sync.Mutex
}

// NewMirror returns a Mirror writing through the given store.
func NewMirror(store kv.Store, log logger.Logger, bus *pkgevents.EventBus) *Mirror {
	return &Mirror{store: store, log: log, bus: bus}
}

// Start subscribes the mirror. It returns once the subscription is live;
// processing continues until ctx is cancelled or the bus closes.
func (m *Mirror) Start(ctx context.Context) error {
	errCh, err := m.bus.Subscribe(ctx, billingevents.TopicInvoiceGenerated, m.handle)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", billingevents.TopicInvoiceGenerated, err)
	}
	go func() {
		for err := range errCh {
			m.log.Error("ledger mirror handler gave up", "error", err)
		}
	}()
	return nil
}

func (m *Mirror) handle(ctx context.Context, msg *message.Message) error {
	var evt billingevents.InvoiceGeneratedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		// a payload that never parses would be redelivered forever
		m.log.ErrorContext(ctx, "ledger mirror: bad payload", "message_id", msg.UUID, "error", err)
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []Entry
	if _, err := kv.GetJSON(ctx, m.store, kv.KeyRemoteLedger, &entries); err != nil {
		return err
	}
	for _, e := range entries {
		if e.EventID == evt.EventID.String() {
			return nil
		}
	}
	entries = append(entries, Entry{
		EventID:      evt.EventID.String(),
		Number:       evt.Number,
		CustomerName: evt.CustomerName,
		GrandTotal:   evt.GrandTotal,
		MirroredAt:   time.Now(),
	})
	if err := kv.SetJSON(ctx, m.store, kv.KeyRemoteLedger, entries); err != nil {
		return err
	}

	m.log.InfoContext(ctx, "invoice mirrored to ledger", "number", evt.Number)
	return nil
}

// Entries returns the mirrored ledger, oldest first.
func (m *Mirror) Entries(ctx context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []Entry
	if _, err := kv.GetJSON(ctx, m.store, kv.KeyRemoteLedger, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
