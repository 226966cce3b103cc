package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain/models"
)

// ItemResponse is the wire shape of a catalog item.
type ItemResponse struct {
	ID         int64                      `json:"id"`
	Name       string                     `json:"name"`
	Category   string                     `json:"category"`
	Price      *decimal.Decimal           `json:"price,omitempty"`
	SizePrices map[string]decimal.Decimal `json:"sizePrices,omitempty"`
} // @name ItemResponse

func toItemResponse(it models.MenuItem) ItemResponse {
	resp := ItemResponse{
		ID:       it.ID,
		Name:     it.Name.String(),
		Category: it.Category,
		Price:    it.BasePrice,
	}
	if len(it.SizePrices) > 0 {
		resp.SizePrices = make(map[string]decimal.Decimal, len(it.SizePrices))
		for s, p := range it.SizePrices {
			resp.SizePrices[s.String()] = p
		}
	}
	return resp
}

func toItemResponses(items []models.MenuItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
} // @name ErrorResponse
