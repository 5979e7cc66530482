package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/adega-api/docs"
	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/internal/application/cash"
	"github.com/jhoicas/adega-api/internal/application/inventory"
	"github.com/jhoicas/adega-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/adega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/adega-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/adega-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/adega-api/internal/interfaces/http"
	"github.com/jhoicas/adega-api/pkg/config"
	"github.com/jhoicas/adega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("stock_low_threshold", cfg.Stock.LowThreshold).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("aplicadas", applied).Msg("migraciones al día")
	}

	productRepo := postgres.NewProductRepository(pool)
	stockInRepo := postgres.NewStockInRepository(pool)
	stockOutRepo := postgres.NewStockOutRepository(pool)
	levelRepo := postgres.NewStockLevelRepository(pool)
	cashRepo := postgres.NewCashTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	stockUC := inventory.NewStockUseCase(txRunner, productRepo, stockInRepo, stockOutRepo, levelRepo)
	cashUC := cash.NewCashUseCase(cashRepo)

	// Exportaciones: PDF del relatório financeiro y XLSX del relatório de vendas
	reportUC := analytics.NewReportUseCase(
		stockOutRepo, cashRepo,
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		infraxlsx.NewExcelExporter(),
	)
	dashboardUC := analytics.NewDashboardUseCase(
		productRepo, stockOutRepo, cashRepo, levelRepo,
		cfg.Stock.LowThreshold, time.Now,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		StockUC:     stockUC,
		CashUC:      cashUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
