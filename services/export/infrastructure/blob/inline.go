package blob

import (
	"context"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/export/domain"
)

const inlineKeyPrefix = "export-doc:"

// InlineTier stores documents inline in the key-value store. It is the
// fallback when the filesystem tier rejects a write, trading capacity for
// availability. Kept on a tighter retention cap than the primary tier.
type InlineTier struct {
	store kv.Store
}

// NewInlineTier returns an InlineTier backed by the given store.
func NewInlineTier(store kv.Store) *InlineTier {
	return &InlineTier{store: store}
}

// Name implements domain.BlobTier.
func (t *InlineTier) Name() string { return domain.TierFallback }

// Put implements domain.BlobTier.
func (t *InlineTier) Put(ctx context.Context, invoiceNumber string, data []byte) error {
	return t.store.Set(ctx, inlineKeyPrefix+invoiceNumber, data)
}

// Get implements domain.BlobTier.
func (t *InlineTier) Get(ctx context.Context, invoiceNumber string) ([]byte, bool, error) {
	return t.store.Get(ctx, inlineKeyPrefix+invoiceNumber)
}

// Delete implements domain.BlobTier.
func (t *InlineTier) Delete(ctx context.Context, invoiceNumber string) (bool, error) {
	_, found, err := t.store.Get(ctx, inlineKeyPrefix+invoiceNumber)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := t.store.Delete(ctx, inlineKeyPrefix+invoiceNumber); err != nil {
		return false, err
	}
	return true, nil
}
