package handlers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	pkgvalidator "github.com/TajHussain7/Kashi-Pizza-Home/pkg/validator"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/application/services"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/models"
)

// OrderResponse is the wire shape of the current order.
type OrderResponse struct {
	Lines []models.OrderLine `json:"lines"`
	Total decimal.Decimal    `json:"total"`
} // @name OrderResponse

func toOrderResponse(o models.Order) OrderResponse {
	if o.Lines == nil {
		o.Lines = []models.OrderLine{}
	}
	return OrderResponse{Lines: o.Lines, Total: o.Total()}
}

// GetOrderHandler handles GET /order requests.
type GetOrderHandler struct {
	svc *appsvcs.OrderService
}

// NewGetOrderHandler returns a GetOrderHandler backed by the given service.
func NewGetOrderHandler(svc *appsvcs.OrderService) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute returns the in-progress order with its running total.
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, toOrderResponse(h.svc.Current(r.Context())))
}

// AddLineRequest is the request body for POST /order/lines. Size is
// required for size-priced items and must be absent for flat-priced ones.
type AddLineRequest struct {
	ItemID   int64  `json:"itemId" validate:"required"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
} // @name AddLineRequest

// PostOrderLineHandler handles POST /order/lines requests.
type PostOrderLineHandler struct {
	svc *appsvcs.OrderService
}

// NewPostOrderLineHandler returns a PostOrderLineHandler backed by the given service.
func NewPostOrderLineHandler(svc *appsvcs.OrderService) *PostOrderLineHandler {
	return &PostOrderLineHandler{svc: svc}
}

// Execute adds an item to the order, priced from the catalog.
func (h *PostOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AddLineRequest](w, r)
	if !ok {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, err := h.svc.AddLine(r.Context(), req.ItemID, req.Size, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// SetQuantityRequest is the request body for PUT /order/lines. A quantity
// of zero removes the line.
type SetQuantityRequest struct {
	ItemID   int64  `json:"itemId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
} // @name SetQuantityRequest

// PutOrderLineHandler handles PUT /order/lines requests.
type PutOrderLineHandler struct {
	svc *appsvcs.OrderService
}

// NewPutOrderLineHandler returns a PutOrderLineHandler backed by the given service.
func NewPutOrderLineHandler(svc *appsvcs.OrderService) *PutOrderLineHandler {
	return &PutOrderLineHandler{svc: svc}
}

// Execute sets a line's quantity. Targeting an absent line changes nothing.
func (h *PutOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SetQuantityRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.SetQuantity(r.Context(), req.ItemID, req.Name, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// DeleteOrderLineHandler handles DELETE /order/lines requests.
type DeleteOrderLineHandler struct {
	svc *appsvcs.OrderService
}

// NewDeleteOrderLineHandler returns a DeleteOrderLineHandler backed by the given service.
func NewDeleteOrderLineHandler(svc *appsvcs.OrderService) *DeleteOrderLineHandler {
	return &DeleteOrderLineHandler{svc: svc}
}

// Execute removes the line named by the itemId and name query parameters.
// The name must match the display name exactly, size suffix included.
func (h *DeleteOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(r.URL.Query().Get("itemId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	order, _, err := h.svc.RemoveLine(r.Context(), itemID, name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toOrderResponse(order))
}

// DeleteOrderHandler handles DELETE /order requests.
type DeleteOrderHandler struct {
	svc *appsvcs.OrderService
}

// NewDeleteOrderHandler returns a DeleteOrderHandler backed by the given service.
func NewDeleteOrderHandler(svc *appsvcs.OrderService) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute empties the order.
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
