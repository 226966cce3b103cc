// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	billingdomain "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain"
	exportdomain "github.com/TajHussain7/Kashi-Pizza-Home/services/export/domain"
	menudomain "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, menudomain.ErrItemNotFound),
		errors.Is(err, billingdomain.ErrInvoiceNotFound),
		errors.Is(err, exportdomain.ErrDocumentNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, menudomain.ErrUnknownCategory):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, menudomain.ErrDuplicateItem),
		errors.Is(err, menudomain.ErrDuplicateCategory):
		return http.StatusConflict // 409
	case errors.Is(err, menudomain.ErrProtectedCategory):
		return http.StatusForbidden // 403
	case errors.Is(err, menudomain.ErrValidation),
		errors.Is(err, billingdomain.ErrValidation),
		errors.Is(err, exportdomain.ErrValidation),
		errors.Is(err, billingdomain.ErrEmptyOrder):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, kv.ErrStorage):
		return http.StatusServiceUnavailable // 503
	case errors.Is(err, exportdomain.ErrExportUnavailable):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
