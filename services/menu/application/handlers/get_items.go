package handlers

import (
	"net/http"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
)

// GetItemsHandler handles GET /menu/items requests.
type GetItemsHandler struct {
	svc *appsvcs.CatalogService
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given service.
func NewGetItemsHandler(svc *appsvcs.CatalogService) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists catalog items. The category query parameter filters by
// category ("all" or empty for everything), search filters by name or
// category substring.
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}
	items := h.svc.Items(r.Context(), category, r.URL.Query().Get("search"))
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
