package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/internal/application/cash"
	"github.com/jhoicas/adega-api/internal/application/inventory"
	"github.com/jhoicas/adega-api/internal/application/usecase"
	"github.com/jhoicas/adega-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	StockUC     *inventory.StockUseCase
	CashUC      *cash.CashUseCase
	ReportUC    *analytics.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// Produtos
	products := app.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Estoque
	stock := app.Group("/estoque")
	inventoryHandler := NewInventoryHandler(deps.StockUC, log)
	stock.Get("/entradas", inventoryHandler.ListIn)
	stock.Post("/entradas", inventoryHandler.CreateIn)
	stock.Get("/saidas", inventoryHandler.ListOut)
	stock.Post("/saidas", inventoryHandler.CreateOut)
	stock.Get("/atual", inventoryHandler.CurrentStock)

	// Caixa
	cashGroup := app.Group("/caixa")
	cashHandler := NewCashHandler(deps.CashUC, log)
	cashGroup.Get("/transacoes", cashHandler.List)
	cashGroup.Post("/transacoes", cashHandler.Create)
	cashGroup.Get("/saldo", cashHandler.Balance)
	cashGroup.Get("/fluxo", cashHandler.CashFlow)

	// Relatórios
	reports := app.Group("/relatorios")
	reportHandler := NewReportHandler(deps.ReportUC, log)
	reports.Get("/vendas", reportHandler.Sales)
	reports.Get("/vendas/xlsx", reportHandler.SalesXLSX)
	reports.Get("/financeiro", reportHandler.Financial)
	reports.Get("/financeiro/pdf", reportHandler.FinancialPDF)
	reports.Get("/dashboard", NewDashboardHandler(deps.DashboardUC, log).GetSummary)
}
