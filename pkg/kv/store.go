// Package kv is the persistence capability the point-of-sale state is written
// through: a string-keyed byte store with JSON codec helpers. Backends are
// injected (file-per-key on disk, or Redis); callers never see which one they
// got. Deserialization failure is treated as "absent" so a corrupt payload
// degrades to defaults instead of wedging the session.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the storage capability. Use errors.Is() to check these.
var (
	// ErrStorage indicates the persistence backend failed. The caller's
	// in-memory effect still stands; durability is not guaranteed until a
	// follow-up write succeeds.
	ErrStorage = errors.New("storage backend failed")
)

// Well-known keys. One document per key, mirroring the original dashboard's
// storage layout.
const (
	KeyItems        = "items"
	KeyCategories   = "categories"
	KeyCurrentOrder = "currentOrder"
	KeyInvoices     = "savedInvoices"
	KeyExportIndex  = "invoicePDFs"
	KeyRemoteLedger = "remoteLedger"
)

// Store is the injected key-value persistence capability.
// Get reports found=false for a missing key; implementations must not invent
// an error for plain absence. Ping probes the backend for health checks.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// GetJSON reads key and decodes it into v. A missing key or an undecodable
// payload leaves v untouched and reports found=false — callers fall back to
// their defaults. Only a backend failure is returned as an error.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: get %q: %w", ErrStorage, key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Corrupt payload: treat as absent rather than propagating a fatal error.
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and writes it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: set %q: %w", ErrStorage, key, err)
	}
	return nil
}
