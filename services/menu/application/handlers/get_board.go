package handlers

import (
	"net/http"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
)

// GetBoardHandler handles GET /menu/board requests.
type GetBoardHandler struct {
	svc *appsvcs.CatalogService
}

// NewGetBoardHandler returns a GetBoardHandler backed by the given service.
func NewGetBoardHandler(svc *appsvcs.CatalogService) *GetBoardHandler {
	return &GetBoardHandler{svc: svc}
}

// Execute returns the orderable rows for a category, with size-priced items
// expanded into one row per size.
func (h *GetBoardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}
	httpx.JSON(w, http.StatusOK, h.svc.Board(r.Context(), category))
}
