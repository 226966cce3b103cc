package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	pkgvalidator "github.com/TajHussain7/Kashi-Pizza-Home/pkg/validator"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/application/services"
)

// GenerateInvoiceRequest is the request body for POST /invoices. The
// customer name is optional; a blank name is recorded as "N/A".
type GenerateInvoiceRequest struct {
	CustomerName string `json:"customerName" validate:"omitempty,max=255"`
} // @name GenerateInvoiceRequest

// PostInvoiceHandler handles POST /invoices requests.
type PostInvoiceHandler struct {
	svc *appsvcs.InvoiceService
}

// NewPostInvoiceHandler returns a PostInvoiceHandler backed by the given service.
func NewPostInvoiceHandler(svc *appsvcs.InvoiceService) *PostInvoiceHandler {
	return &PostInvoiceHandler{svc: svc}
}

// Execute finalizes the current order into an invoice and clears the order.
func (h *PostInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[GenerateInvoiceRequest](w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Generate(r.Context(), req.CustomerName)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// GetInvoicesHandler handles GET /invoices requests.
type GetInvoicesHandler struct {
	svc *appsvcs.InvoiceService
}

// NewGetInvoicesHandler returns a GetInvoicesHandler backed by the given service.
func NewGetInvoicesHandler(svc *appsvcs.InvoiceService) *GetInvoicesHandler {
	return &GetInvoicesHandler{svc: svc}
}

// Execute lists the invoice history, newest first. Supports page, limit,
// search (number or customer name) and date (YYYY-MM-DD) query parameters.
func (h *GetInvoicesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.svc.List(r.Context(), appsvcs.ListParams{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
		Date:   q.Get("date"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

// GetSummaryHandler handles GET /invoices/summary requests.
type GetSummaryHandler struct {
	svc *appsvcs.InvoiceService
}

// NewGetSummaryHandler returns a GetSummaryHandler backed by the given service.
func NewGetSummaryHandler(svc *appsvcs.InvoiceService) *GetSummaryHandler {
	return &GetSummaryHandler{svc: svc}
}

// Execute returns invoice counts and revenue, overall and for today.
func (h *GetSummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Summarize(r.Context()))
}

// GetInvoiceHandler handles GET /invoices/{number} requests.
type GetInvoiceHandler struct {
	svc *appsvcs.InvoiceService
}

// NewGetInvoiceHandler returns a GetInvoiceHandler backed by the given service.
func NewGetInvoiceHandler(svc *appsvcs.InvoiceService) *GetInvoiceHandler {
	return &GetInvoiceHandler{svc: svc}
}

// Execute returns a single saved invoice.
func (h *GetInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.Get(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// GetInvoiceTextHandler handles GET /invoices/{number}/text requests.
type GetInvoiceTextHandler struct {
	svc *appsvcs.InvoiceService
}

// NewGetInvoiceTextHandler returns a GetInvoiceTextHandler backed by the given service.
func NewGetInvoiceTextHandler(svc *appsvcs.InvoiceService) *GetInvoiceTextHandler {
	return &GetInvoiceTextHandler{svc: svc}
}

// Execute renders the plain-text receipt for a saved invoice.
func (h *GetInvoiceTextHandler) Execute(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	text, err := h.svc.RenderText(r.Context(), number)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="Invoice_`+number+`.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// DeleteInvoiceHandler handles DELETE /invoices/{number} requests.
type DeleteInvoiceHandler struct {
	svc *appsvcs.InvoiceService
}

// NewDeleteInvoiceHandler returns a DeleteInvoiceHandler backed by the given service.
func NewDeleteInvoiceHandler(svc *appsvcs.InvoiceService) *DeleteInvoiceHandler {
	return &DeleteInvoiceHandler{svc: svc}
}

// Execute soft-deletes a saved invoice.
func (h *DeleteInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "number")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
