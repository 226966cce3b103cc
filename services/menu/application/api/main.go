package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/app"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/handlers"
)

// MenuRoutes registers catalog endpoints on the provided chi router.
func MenuRoutes(r chi.Router, a *app.Application) {
	r.Group(func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/items", handlers.NewGetItemsHandler(a.Catalog).Execute)
			r.Post("/items", handlers.NewPostItemHandler(a.Catalog).Execute)
			r.Put("/items/{id}", handlers.NewPutItemHandler(a.Catalog).Execute)
			r.Delete("/items/{id}", handlers.NewDeleteItemHandler(a.Catalog).Execute)
			r.Get("/board", handlers.NewGetBoardHandler(a.Catalog).Execute)
			r.Get("/categories", handlers.NewGetCategoriesHandler(a.Catalog).Execute)
			r.Post("/categories", handlers.NewPostCategoryHandler(a.Catalog).Execute)
			r.Delete("/categories/{name}", handlers.NewDeleteCategoryHandler(a.Catalog).Execute)
		})
	})
}
