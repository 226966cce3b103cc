package app

import (
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/config"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/events"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	billingsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/application/services"
	exportsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/export/application/services"
	menusvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
)

// Application holds shared dependencies for all services. Pass to all
// service *Routes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's
// context methods and trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "invoice generated", "number", n)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown
// messages.
//
// Services load their state in their constructors, so they are built once
// in main and carried here rather than rebuilt per route registration.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	Store    kv.Store
	EventBus *events.EventBus

	Catalog  *menusvcs.CatalogService
	Orders   *billingsvcs.OrderService
	Invoices *billingsvcs.InvoiceService
	Exports  *exportsvcs.GatewayService
}
