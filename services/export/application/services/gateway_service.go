package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/export/domain"
)

// GatewayService stores finalized invoice documents across two tiers:
// documents go to the primary tier, falling back to the inline tier only
// when the primary rejects the write. A document lives in exactly one tier.
// Each tier keeps a bounded number of documents; when full, the oldest by
// creation time is evicted.
type GatewayService struct {
	store     kv.Store
	log       logger.Logger
	primary   domain.BlobTier
	fallback  domain.BlobTier
	retention int
	now       func() time.Time

	mu    sync.Mutex
	index []domain.Record
}

// GatewayParams collects the dependencies for NewGatewayService.
type GatewayParams struct {
	Store     kv.Store
	Log       logger.Logger
	Primary   domain.BlobTier
	Fallback  domain.BlobTier
	Retention int
	Now       func() time.Time
}

// NewGatewayService loads the document index from the store. Retention is
// the primary tier's document cap; the fallback tier keeps half that.
func NewGatewayService(ctx context.Context, p GatewayParams) (*GatewayService, error) {
	if p.Retention < 1 {
		p.Retention = 20
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	s := &GatewayService{
		store:     p.Store,
		log:       p.Log,
		primary:   p.Primary,
		fallback:  p.Fallback,
		retention: p.Retention,
		now:       p.Now,
	}
	if _, err := kv.GetJSON(ctx, p.Store, kv.KeyExportIndex, &s.index); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GatewayService) persist(ctx context.Context) error {
	return kv.SetJSON(ctx, s.store, kv.KeyExportIndex, s.index)
}

func (s *GatewayService) tier(name string) domain.BlobTier {
	if name == domain.TierFallback {
		return s.fallback
	}
	return s.primary
}

func (s *GatewayService) find(invoiceNumber string) int {
	for i := range s.index {
		if s.index[i].InvoiceNumber == invoiceNumber {
			return i
		}
	}
	return -1
}

func (s *GatewayService) cap(tierName string) int {
	if tierName == domain.TierFallback {
		half := s.retention / 2
		if half < 1 {
			half = 1
		}
		return half
	}
	return s.retention
}

// evict drops the oldest documents of a tier until it is back under its
// cap. Called with the lock held, after the new record is in the index.
func (s *GatewayService) evict(ctx context.Context, tierName string) {
	var inTier []int
	for i := range s.index {
		if s.index[i].Tier == tierName {
			inTier = append(inTier, i)
		}
	}
	over := len(inTier) - s.cap(tierName)
	if over <= 0 {
		return
	}

	sort.Slice(inTier, func(a, b int) bool {
		return s.index[inTier[a]].CreatedAt.Before(s.index[inTier[b]].CreatedAt)
	})

	doomed := make(map[string]bool, over)
	for _, i := range inTier[:over] {
		rec := s.index[i]
		doomed[rec.InvoiceNumber] = true
		if _, err := s.tier(tierName).Delete(ctx, rec.InvoiceNumber); err != nil {
			s.log.WarnContext(ctx, "evicting export document failed", "number", rec.InvoiceNumber, "error", err)
		}
		s.log.InfoContext(ctx, "export document evicted", "number", rec.InvoiceNumber, "tier", tierName)
	}

	kept := s.index[:0]
	for _, rec := range s.index {
		if !doomed[rec.InvoiceNumber] {
			kept = append(kept, rec)
		}
	}
	s.index = kept
}

// Store saves a document for an invoice. A re-export of the same invoice
// replaces the previous document. The primary tier is tried first; only
// when it fails does the document go to the fallback tier, never to both.
func (s *GatewayService) Store(ctx context.Context, invoiceNumber, customerName string, data []byte) (domain.Record, error) {
	if invoiceNumber == "" {
		return domain.Record{}, fmt.Errorf("%w: invoice number is required", domain.ErrValidation)
	}
	if len(data) == 0 {
		return domain.Record{}, fmt.Errorf("%w: document is empty", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tierName := domain.TierPrimary
	if err := s.primary.Put(ctx, invoiceNumber, data); err != nil {
		s.log.WarnContext(ctx, "primary export tier rejected document, using fallback",
			"number", invoiceNumber, "error", err)
		if err := s.fallback.Put(ctx, invoiceNumber, data); err != nil {
			return domain.Record{}, fmt.Errorf("%w: %w", domain.ErrExportUnavailable, err)
		}
		tierName = domain.TierFallback
	}

	rec := domain.Record{
		InvoiceNumber: invoiceNumber,
		CustomerName:  customerName,
		Size:          int64(len(data)),
		Tier:          tierName,
		CreatedAt:     s.now(),
	}

	if i := s.find(invoiceNumber); i >= 0 {
		// replacing a document that previously landed on the other tier
		// leaves a stale blob behind unless we clean it up
		if prev := s.index[i]; prev.Tier != tierName {
			if _, err := s.tier(prev.Tier).Delete(ctx, invoiceNumber); err != nil {
				s.log.WarnContext(ctx, "removing replaced export document failed",
					"number", invoiceNumber, "tier", prev.Tier, "error", err)
			}
		}
		s.index[i] = rec
	} else {
		s.index = append(s.index, rec)
	}

	s.evict(ctx, tierName)
	if err := s.persist(ctx); err != nil {
		return rec, err
	}
	s.log.InfoContext(ctx, "export document stored", "number", invoiceNumber, "tier", tierName, "bytes", rec.Size)
	return rec, nil
}

// Exists reports whether a document is stored for the invoice and, when it
// is, the index record naming the tier that holds it.
func (s *GatewayService) Exists(ctx context.Context, invoiceNumber string) (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(invoiceNumber); i >= 0 {
		return s.index[i], true
	}
	return domain.Record{}, false
}

// Fetch returns the document bytes and record for an invoice.
func (s *GatewayService) Fetch(ctx context.Context, invoiceNumber string) ([]byte, domain.Record, error) {
	s.mu.Lock()
	i := s.find(invoiceNumber)
	var rec domain.Record
	if i >= 0 {
		rec = s.index[i]
	}
	s.mu.Unlock()

	if i < 0 {
		return nil, domain.Record{}, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, invoiceNumber)
	}
	data, found, err := s.tier(rec.Tier).Get(ctx, invoiceNumber)
	if err != nil {
		return nil, rec, fmt.Errorf("%w: %w", domain.ErrExportUnavailable, err)
	}
	if !found {
		// index said it was there; the blob went missing underneath us
		return nil, rec, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, invoiceNumber)
	}
	return data, rec, nil
}

// Delete removes an invoice's document from whichever tier holds it. It
// reports whether anything was removed; deleting an absent document is a
// successful no-op.
func (s *GatewayService) Delete(ctx context.Context, invoiceNumber string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(invoiceNumber)
	if i < 0 {
		return false, nil
	}
	rec := s.index[i]
	removed, err := s.tier(rec.Tier).Delete(ctx, invoiceNumber)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrExportUnavailable, err)
	}
	s.index = append(s.index[:i], s.index[i+1:]...)
	if err := s.persist(ctx); err != nil {
		return removed, err
	}
	s.log.InfoContext(ctx, "export document deleted", "number", invoiceNumber, "tier", rec.Tier)
	return true, nil
}

// List returns the document records, newest first.
func (s *GatewayService) List(ctx context.Context) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Record, len(s.index))
	copy(out, s.index)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Stats summarizes stored documents per tier.
type Stats struct {
	TotalDocuments int   `json:"totalDocuments"`
	TotalBytes     int64 `json:"totalBytes"`
	PrimaryCount   int   `json:"primaryCount"`
	FallbackCount  int   `json:"fallbackCount"`
}

// Statistics tallies the document index.
func (s *GatewayService) Statistics(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st Stats
	for _, rec := range s.index {
		st.TotalDocuments++
		st.TotalBytes += rec.Size
		if rec.Tier == domain.TierFallback {
			st.FallbackCount++
		} else {
			st.PrimaryCount++
		}
	}
	return st
}
