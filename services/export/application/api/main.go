package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/app"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/export/application/handlers"
)

// ExportRoutes registers export document endpoints on the provided chi
// router.
func ExportRoutes(r chi.Router, a *app.Application) {
	r.Group(func(r chi.Router) {
		r.Route("/exports", func(r chi.Router) {
			r.Get("/", handlers.NewGetExportsHandler(a.Exports).Execute)
			r.Get("/stats", handlers.NewGetExportStatsHandler(a.Exports).Execute)
			r.Put("/{number}", handlers.NewPutExportHandler(a.Exports).Execute)
			r.Get("/{number}", handlers.NewGetExportHandler(a.Exports).Execute)
			r.Get("/{number}/exists", handlers.NewGetExportExistsHandler(a.Exports).Execute)
			r.Delete("/{number}", handlers.NewDeleteExportHandler(a.Exports).Execute)
		})
	})
}
