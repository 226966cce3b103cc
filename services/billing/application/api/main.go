package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/app"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/application/handlers"
)

// BillingRoutes registers order and invoice endpoints on the provided chi
// router.
func BillingRoutes(r chi.Router, a *app.Application) {
	r.Group(func(r chi.Router) {
		r.Route("/order", func(r chi.Router) {
			r.Get("/", handlers.NewGetOrderHandler(a.Orders).Execute)
			r.Delete("/", handlers.NewDeleteOrderHandler(a.Orders).Execute)
			r.Post("/lines", handlers.NewPostOrderLineHandler(a.Orders).Execute)
			r.Put("/lines", handlers.NewPutOrderLineHandler(a.Orders).Execute)
			r.Delete("/lines", handlers.NewDeleteOrderLineHandler(a.Orders).Execute)
		})
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", handlers.NewPostInvoiceHandler(a.Invoices).Execute)
			r.Get("/", handlers.NewGetInvoicesHandler(a.Invoices).Execute)
			r.Get("/summary", handlers.NewGetSummaryHandler(a.Invoices).Execute)
			r.Get("/{number}", handlers.NewGetInvoiceHandler(a.Invoices).Execute)
			r.Get("/{number}/text", handlers.NewGetInvoiceTextHandler(a.Invoices).Execute)
			r.Delete("/{number}", handlers.NewDeleteInvoiceHandler(a.Invoices).Execute)
		})
	})
}
