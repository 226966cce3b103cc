package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/errhttp"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	pkgvalidator "github.com/TajHussain7/Kashi-Pizza-Home/pkg/validator"
	appsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
)

// GetCategoriesHandler handles GET /menu/categories requests.
type GetCategoriesHandler struct {
	svc *appsvcs.CatalogService
}

// NewGetCategoriesHandler returns a GetCategoriesHandler backed by the given service.
func NewGetCategoriesHandler(svc *appsvcs.CatalogService) *GetCategoriesHandler {
	return &GetCategoriesHandler{svc: svc}
}

// Execute lists categories in display order with per-category item counts.
func (h *GetCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Categories(r.Context()))
}

// CreateCategoryRequest is the request body for POST /menu/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Desserts"`
} // @name CreateCategoryRequest

// PostCategoryHandler handles POST /menu/categories requests.
type PostCategoryHandler struct {
	svc *appsvcs.CatalogService
}

// NewPostCategoryHandler returns a PostCategoryHandler backed by the given service.
func NewPostCategoryHandler(svc *appsvcs.CatalogService) *PostCategoryHandler {
	return &PostCategoryHandler{svc: svc}
}

// Execute registers a new category name. Names are matched exactly, so a
// name differing only in case is a distinct category.
func (h *PostCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.CreateCategory(r.Context(), req.Name); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// DeleteCategoryResponse reports how many items moved to the fallback category.
type DeleteCategoryResponse struct {
	Reassigned int `json:"reassigned"`
} // @name DeleteCategoryResponse

// DeleteCategoryHandler handles DELETE /menu/categories/{name} requests.
type DeleteCategoryHandler struct {
	svc *appsvcs.CatalogService
}

// NewDeleteCategoryHandler returns a DeleteCategoryHandler backed by the given service.
func NewDeleteCategoryHandler(svc *appsvcs.CatalogService) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{svc: svc}
}

// Execute deletes a category and reassigns its items to the fallback
// category so none are left dangling.
func (h *DeleteCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// category names carry spaces and ampersands, so the path segment
	// arrives percent-encoded
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	reassigned, err := h.svc.DeleteCategory(r.Context(), name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteCategoryResponse{Reassigned: reassigned})
}
