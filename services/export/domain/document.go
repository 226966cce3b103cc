package domain

import (
	"context"
	"time"
)

// Tier names as recorded in the document index.
const (
	TierPrimary  = "primary"
	TierFallback = "fallback"
)

// Record describes one stored export document. The document bytes live in
// exactly one tier; the record says which.
type Record struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerName  string    `json:"customerName,omitempty"`
	Size          int64     `json:"size"`
	Tier          string    `json:"tier"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BlobTier stores opaque document bytes keyed by invoice number. Delete
// reports whether anything was removed; deleting an absent document is not
// an error.
type BlobTier interface {
	Name() string
	Put(ctx context.Context, invoiceNumber string, data []byte) error
	Get(ctx context.Context, invoiceNumber string) ([]byte, bool, error)
	Delete(ctx context.Context, invoiceNumber string) (bool, error)
}
