package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/export/application/services"
)

// PutExportHandler handles PUT /exports/{number} requests.
type PutExportHandler struct {
	svc *appsvcs.GatewayService
}

// NewPutExportHandler returns a PutExportHandler backed by the given service.
func NewPutExportHandler(svc *appsvcs.GatewayService) *PutExportHandler {
	return &PutExportHandler{svc: svc}
}

// Execute stores the request body as the invoice's export document. The
// body is the raw document bytes; re-sending for the same invoice replaces
// the stored document. The customer query parameter is recorded alongside.
func (h *PutExportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unreadable request body")
		return
	}

	rec, err := h.svc.Store(r.Context(), chi.URLParam(r, "number"), r.URL.Query().Get("customer"), data)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, rec)
}

// GetExportHandler handles GET /exports/{number} requests.
type GetExportHandler struct {
	svc *appsvcs.GatewayService
}

// NewGetExportHandler returns a GetExportHandler backed by the given service.
func NewGetExportHandler(svc *appsvcs.GatewayService) *GetExportHandler {
	return &GetExportHandler{svc: svc}
}

// Execute streams the stored document back.
func (h *GetExportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	data, _, err := h.svc.Fetch(r.Context(), number)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Invoice_`+number+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExistsResponse reports whether a document is stored for an invoice and
// which tier holds it. Source is empty when the document is absent.
type ExistsResponse struct {
	Exists bool   `json:"exists"`
	Source string `json:"source,omitempty"`
} // @name ExistsResponse

// GetExportExistsHandler handles GET /exports/{number}/exists requests.
type GetExportExistsHandler struct {
	svc *appsvcs.GatewayService
}

// NewGetExportExistsHandler returns a GetExportExistsHandler backed by the given service.
func NewGetExportExistsHandler(svc *appsvcs.GatewayService) *GetExportExistsHandler {
	return &GetExportExistsHandler{svc: svc}
}

// Execute reports document presence without transferring it. The preview
// screen uses this to decide between download and re-render.
func (h *GetExportExistsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.svc.Exists(r.Context(), chi.URLParam(r, "number"))
	httpx.JSON(w, http.StatusOK, ExistsResponse{Exists: ok, Source: rec.Tier})
}

// DeleteExportResponse reports whether the delete removed anything.
type DeleteExportResponse struct {
	Removed bool `json:"removed"`
} // @name DeleteExportResponse

// DeleteExportHandler handles DELETE /exports/{number} requests.
type DeleteExportHandler struct {
	svc *appsvcs.GatewayService
}

// NewDeleteExportHandler returns a DeleteExportHandler backed by the given service.
func NewDeleteExportHandler(svc *appsvcs.GatewayService) *DeleteExportHandler {
	return &DeleteExportHandler{svc: svc}
}

// Execute removes a stored document. Deleting an absent document succeeds
// with removed=false.
func (h *DeleteExportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Delete(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DeleteExportResponse{Removed: removed})
}

// GetExportsHandler handles GET /exports requests.
type GetExportsHandler struct {
	svc *appsvcs.GatewayService
}

// NewGetExportsHandler returns a GetExportsHandler backed by the given service.
func NewGetExportsHandler(svc *appsvcs.GatewayService) *GetExportsHandler {
	return &GetExportsHandler{svc: svc}
}

// Execute lists stored document records, newest first.
func (h *GetExportsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.List(r.Context()))
}

// GetExportStatsHandler handles GET /exports/stats requests.
type GetExportStatsHandler struct {
	svc *appsvcs.GatewayService
}

// NewGetExportStatsHandler returns a GetExportStatsHandler backed by the given service.
func NewGetExportStatsHandler(svc *appsvcs.GatewayService) *GetExportStatsHandler {
	return &GetExportStatsHandler{svc: svc}
}

// Execute summarizes stored documents per tier.
func (h *GetExportStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Statistics(r.Context()))
}
