package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	billingdomain "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain"
	exportdomain "github.com/TajHussain7/Kashi-Pizza-Home/services/export/domain"
	menudomain "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", menudomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrInvoiceNotFound", billingdomain.ErrInvoiceNotFound, http.StatusNotFound},
		{"ErrDocumentNotFound", exportdomain.ErrDocumentNotFound, http.StatusNotFound},
		{"ErrUnknownCategory", menudomain.ErrUnknownCategory, http.StatusUnprocessableEntity},
		{"ErrDuplicateItem", menudomain.ErrDuplicateItem, http.StatusConflict},
		{"ErrDuplicateCategory", menudomain.ErrDuplicateCategory, http.StatusConflict},
		{"ErrProtectedCategory", menudomain.ErrProtectedCategory, http.StatusForbidden},
		{"menu ErrValidation", menudomain.ErrValidation, http.StatusUnprocessableEntity},
		{"billing ErrValidation", billingdomain.ErrValidation, http.StatusUnprocessableEntity},
		{"ErrEmptyOrder", billingdomain.ErrEmptyOrder, http.StatusUnprocessableEntity},
		{"ErrStorage", kv.ErrStorage, http.StatusServiceUnavailable},
		{"ErrExportUnavailable", exportdomain.ErrExportUnavailable, http.StatusBadGateway},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", menudomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrStorage", fmt.Errorf("%w: set %q: %w", kv.ErrStorage, "items", errors.New("disk full")), http.StatusServiceUnavailable},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, menudomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}
