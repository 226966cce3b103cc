package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	pkgvalidator "github.com/TajHussain7/Kashi-Pizza-Home/pkg/validator"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
)

// CreateItemRequest is the request body for POST /menu/items. Exactly one of
// price or sizePrices must be present.
type CreateItemRequest struct {
	Name       string                     `json:"name" validate:"required,max=255" example:"Chicken Tikka"`
	Category   string                     `json:"category" validate:"required" example:"Regular Pizzas"`
	Price      *decimal.Decimal           `json:"price,omitempty"`
	SizePrices map[string]decimal.Decimal `json:"sizePrices,omitempty"`
} // @name CreateItemRequest

// PostItemHandler handles POST /menu/items requests.
type PostItemHandler struct {
	svc *appsvcs.CatalogService
}

// NewPostItemHandler returns a PostItemHandler backed by the given service.
func NewPostItemHandler(svc *appsvcs.CatalogService) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new catalog item.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.CreateItem(r.Context(), appsvcs.CreateItemParams{
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		SizePrices: req.SizePrices,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
