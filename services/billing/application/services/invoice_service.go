package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgevents "github.com/TajHussain7/Kashi-Pizza-Home/pkg/events"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain"
	billingevents "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/events"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/models"
	domainsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/services"
)

// InvoiceService finalizes orders into invoices and owns the saved invoice
// log. Generation consumes the current order atomically: the invoice is
// appended and the order cleared before the call returns.
type InvoiceService struct {
	store    kv.Store
	log      logger.Logger
	bus      *pkgevents.EventBus
	orders   *OrderService
	numbers  *domainsvcs.NumberGenerator
	now      func() time.Time
	shop     domain.ShopInfo
	currency string
	pageSize int

	mu       sync.Mutex
	invoices []models.Invoice
}

// InvoiceServiceParams collects the dependencies for NewInvoiceService.
type InvoiceServiceParams struct {
	Store    kv.Store
	Log      logger.Logger
	Bus      *pkgevents.EventBus
	Orders   *OrderService
	Numbers  *domainsvcs.NumberGenerator
	Now      func() time.Time
	Shop     domain.ShopInfo
	Currency string
	PageSize int
}

// NewInvoiceService loads the saved invoice log from the store.
func NewInvoiceService(ctx context.Context, p InvoiceServiceParams) (*InvoiceService, error) {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	s := &InvoiceService{
		store:    p.Store,
		log:      p.Log,
		bus:      p.Bus,
		orders:   p.Orders,
		numbers:  p.Numbers,
		now:      p.Now,
		shop:     p.Shop,
		currency: p.Currency,
		pageSize: p.PageSize,
	}
	if _, err := kv.GetJSON(ctx, p.Store, kv.KeyInvoices, &s.invoices); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *InvoiceService) persist(ctx context.Context) error {
	return kv.SetJSON(ctx, s.store, kv.KeyInvoices, s.invoices)
}

// Generate finalizes the current order into an invoice. The order must have
// at least one line. On success the invoice is saved, the order is cleared
// and an invoice.generated event is published for the ledger mirror.
func (s *InvoiceService) Generate(ctx context.Context, customerName string) (models.Invoice, error) {
	lines, err := s.orders.take(ctx)
	if err != nil {
		return models.Invoice{}, err
	}
	if len(lines) == 0 {
		return models.Invoice{}, domain.ErrEmptyOrder
	}

	inv := models.NewInvoice(s.numbers.Next(), strings.TrimSpace(customerName), s.now(), lines)

	s.mu.Lock()
	s.invoices = append(s.invoices, inv)
	err = s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return inv, err
	}

	s.publishGenerated(ctx, inv)
	s.log.InfoContext(ctx, "invoice generated",
		"number", inv.Number, "customer", inv.CustomerName, "total", inv.GrandTotal)
	return inv, nil
}

// publishGenerated emits the invoice.generated event. Publish failures are
// logged and swallowed: the invoice is already saved and the mirror is a
// best-effort side log.
func (s *InvoiceService) publishGenerated(ctx context.Context, inv models.Invoice) {
	evt := billingevents.InvoiceGeneratedEvent{
		EventID:      uuid.New(),
		Version:      1,
		Number:       inv.Number,
		CustomerName: inv.CustomerName,
		GrandTotal:   inv.GrandTotal,
		LineCount:    len(inv.Lines),
		OccurredAt:   inv.SavedAt,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal invoice event", "number", inv.Number, "error", err)
		return
	}
	msg := message.NewMessage(evt.EventID.String(), payload)
	if err := s.bus.Publish(ctx, billingevents.TopicInvoiceGenerated, msg); err != nil {
		s.log.ErrorContext(ctx, "publish invoice event", "number", inv.Number, "error", err)
	}
}

// Get returns a saved invoice by number. Soft-deleted invoices are hidden.
func (s *InvoiceService) Get(ctx context.Context, number string) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.Number == number && inv.Status != models.StatusDeleted {
			return inv, nil
		}
	}
	return models.Invoice{}, fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, number)
}

// RenderText renders a saved invoice as the plain-text receipt.
func (s *InvoiceService) RenderText(ctx context.Context, number string) (string, error) {
	inv, err := s.Get(ctx, number)
	if err != nil {
		return "", err
	}
	return domain.RenderText(inv, s.shop, s.currency), nil
}

// Delete soft-deletes a saved invoice. It stays in the log but disappears
// from listings and summaries.
func (s *InvoiceService) Delete(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].Number == number && s.invoices[i].Status != models.StatusDeleted {
			s.invoices[i].Status = models.StatusDeleted
			if err := s.persist(ctx); err != nil {
				return err
			}
			s.log.InfoContext(ctx, "invoice deleted", "number", number)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, number)
}

// ListParams filters and paginates the invoice history. Page starts at 1.
// Search matches the invoice number or customer name, case insensitively.
// Date, when set, keeps only invoices saved on that calendar day (local
// time), format 2006-01-02.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Date   string
}

// ListResult is one page of invoice history, newest first.
type ListResult struct {
	Invoices   []models.Invoice `json:"invoices"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
	HasMore    bool             `json:"hasMore"`
}

// List returns a filtered page of the invoice history.
func (s *InvoiceService) List(ctx context.Context, p ListParams) (ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = s.pageSize
	}
	var day time.Time
	if p.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", p.Date, time.Local)
		if err != nil {
			return ListResult{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
		}
		day = parsed
	}
	search := strings.ToLower(strings.TrimSpace(p.Search))

	s.mu.Lock()
	matched := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if inv.Status == models.StatusDeleted {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.Number), search) &&
			!strings.Contains(strings.ToLower(inv.CustomerName), search) {
			continue
		}
		if !day.IsZero() {
			y1, m1, d1 := inv.SavedAt.In(time.Local).Date()
			y2, m2, d2 := day.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		matched = append(matched, inv)
	}
	s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SavedAt.After(matched[j].SavedAt)
	})

	total := len(matched)
	totalPages := (total + p.Limit - 1) / p.Limit
	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	return ListResult{
		Invoices:   matched[start:end],
		Page:       p.Page,
		TotalPages: totalPages,
		Total:      total,
		HasMore:    end < total,
	}, nil
}

// Summary aggregates the non-deleted invoice history.
type Summary struct {
	TotalInvoices int             `json:"totalInvoices"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TodayInvoices int             `json:"todayInvoices"`
	TodayRevenue  decimal.Decimal `json:"todayRevenue"`
}

// Summarize computes invoice counts and revenue, overall and for today.
func (s *InvoiceService) Summarize(ctx context.Context) Summary {
	now := s.now().In(time.Local)
	ty, tm, td := now.Date()

	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{TotalRevenue: decimal.Zero, TodayRevenue: decimal.Zero}
	for _, inv := range s.invoices {
		if inv.Status == models.StatusDeleted {
			continue
		}
		sum.TotalInvoices++
		sum.TotalRevenue = sum.TotalRevenue.Add(inv.GrandTotal)
		y, m, d := inv.SavedAt.In(time.Local).Date()
		if y == ty && m == tm && d == td {
			sum.TodayInvoices++
			sum.TodayRevenue = sum.TodayRevenue.Add(inv.GrandTotal)
		}
	}
	return sum
}
