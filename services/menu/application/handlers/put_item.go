package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	pkgvalidator "github.com/TajHussain7/Kashi-Pizza-Home/pkg/validator"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
)

// UpdateItemRequest is the request body for PUT /menu/items/{id}. Absent
// fields are left unchanged. price and sizePrices are mutually exclusive:
// price converts the item to flat pricing, sizePrices merges into (or
// converts to) size pricing.
type UpdateItemRequest struct {
	Name       *string                    `json:"name,omitempty" validate:"omitempty,max=255"`
	Category   *string                    `json:"category,omitempty"`
	Price      *decimal.Decimal           `json:"price,omitempty"`
	SizePrices map[string]decimal.Decimal `json:"sizePrices,omitempty"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /menu/items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.CatalogService
}

// NewPutItemHandler returns a PutItemHandler backed by the given service.
func NewPutItemHandler(svc *appsvcs.CatalogService) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute applies a partial update to a catalog item.
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, appsvcs.UpdateItemParams{
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		SizePrices: req.SizePrices,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
