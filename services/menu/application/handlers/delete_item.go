package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
)

// DeleteItemResponse reports whether the delete removed anything.
type DeleteItemResponse struct {
	Removed bool `json:"removed"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /menu/items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.CatalogService
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given service.
func NewDeleteItemHandler(svc *appsvcs.CatalogService) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item, or one size variant when the size query parameter
// is set. Deleting something already absent succeeds with removed=false.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	removed, err := h.svc.DeleteItem(r.Context(), id, r.URL.Query().Get("size"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemResponse{Removed: removed})
}
