package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/events"
)

func TestInvoiceGeneratedEvent_JSONRoundTrip(t *testing.T) {
	original := events.InvoiceGeneratedEvent{
		EventID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:      1,
		Number:       "INV-1736942400000",
		CustomerName: "Ali",
		GrandTotal:   decimal.NewFromInt(1550),
		LineCount:    3,
		OccurredAt:   time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.InvoiceGeneratedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.Number != original.Number {
		t.Errorf("Number: got %q, want %q", decoded.Number, original.Number)
	}
	if decoded.CustomerName != original.CustomerName {
		t.Errorf("CustomerName: got %q, want %q", decoded.CustomerName, original.CustomerName)
	}
	if !decoded.GrandTotal.Equal(original.GrandTotal) {
		t.Errorf("GrandTotal: got %s, want %s", decoded.GrandTotal, original.GrandTotal)
	}
	if decoded.LineCount != original.LineCount {
		t.Errorf("LineCount: got %d, want %d", decoded.LineCount, original.LineCount)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestInvoiceGeneratedEvent_JSONFieldNames(t *testing.T) {
	evt := events.InvoiceGeneratedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Number:     "INV-1",
		GrandTotal: decimal.NewFromInt(100),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "invoice_number", "customer_name", "grand_total", "line_count", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicInvoiceGenerated_Value(t *testing.T) {
	if events.TopicInvoiceGenerated != "invoice.generated" {
		t.Errorf("expected %q, got %q", "invoice.generated", events.TopicInvoiceGenerated)
	}
}
