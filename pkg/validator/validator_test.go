package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/TajHussain7/Kashi-Pizza-Home/pkg/validator"
)

type sampleStruct struct {
	Name     string `json:"name" validate:"required,min=1,max=10"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "Pasta", Category: "Fries & Sides"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["name"] != "This field is required" {
		t.Errorf("unexpected name message: %q", m["name"])
	}
	if m["category"] != "This field is required" {
		t.Errorf("unexpected category message: %q", m["category"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{Name: "12345678901", Category: "Burgers"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["name"] != "Maximum length is 10" {
		t.Errorf("unexpected name message: %q", m["name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Pasta","category":"Fries & Sides"}`))
		w := httptest.NewRecorder()
		req, ok := pkgvalidator.ValidateRequest[sampleStruct](w, r)
		if !ok {
			t.Fatalf("expected success, got %d: %s", w.Code, w.Body.String())
		}
		if req.Name != "Pasta" {
			t.Fatalf("unexpected decode: %+v", req)
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
		w := httptest.NewRecorder()
		if _, ok := pkgvalidator.ValidateRequest[sampleStruct](w, r); ok {
			t.Fatal("expected failure")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid body returns 422", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
		w := httptest.NewRecorder()
		if _, ok := pkgvalidator.ValidateRequest[sampleStruct](w, r); ok {
			t.Fatal("expected failure")
		}
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
