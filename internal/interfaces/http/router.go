package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gudangapp/gudang-api/internal/application/admin"
	"github.com/gudangapp/gudang-api/internal/application/auth"
	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/application/report"
	"github.com/gudangapp/gudang-api/internal/application/transfer"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	LedgerUC   *ledger.LedgerUseCase
	ReportUC   *report.ReportUseCase
	TransferUC *transfer.TransferUseCase
	AdminUC    *admin.AdminUseCase
	AuthUC     *auth.AuthUseCase
	Items      repository.ItemRepository
	JWTSecret  string
}

// Router registers the API routes. Everything except login and the health
// check sits behind the Bearer token middleware.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", authHandler.Register)

	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/inbound", ledgerHandler.RecordInbound)
	ledgerGroup.Post("/inbound/batch", ledgerHandler.RecordInboundBatch)
	ledgerGroup.Post("/outbound", ledgerHandler.RecordOutbound)
	ledgerGroup.Post("/outbound/batch", ledgerHandler.RecordOutboundBatch)

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.Items)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.ListLowStock)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/totals", reportHandler.Totals)
	reports.Get("/item-totals", reportHandler.ItemTotals)
	reports.Get("/stock.pdf", reportHandler.StockPDF)

	inventory := protected.Group("/inventory")
	transferHandler := NewTransferHandler(deps.TransferUC)
	inventory.Post("/import", transferHandler.Import)
	inventory.Get("/export", transferHandler.Export)

	adminGroup := protected.Group("/admin")
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Post("/reset", adminHandler.Reset)
}
