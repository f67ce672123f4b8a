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
	"github.com/jhoicas/Fieldservice-api/internal/application/auth"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/application/routing"
	"github.com/jhoicas/Fieldservice-api/internal/application/usecase"
	"github.com/jhoicas/Fieldservice-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Fieldservice-api/internal/interfaces/http"
	"github.com/jhoicas/Fieldservice-api/pkg/config"
	"github.com/jhoicas/Fieldservice-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	storeroomRepo := postgres.NewStoreroomRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	routeRepo := postgres.NewRouteRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	countRepo := postgres.NewInventoryCountRepository(pool)
	requestRepo := postgres.NewInventoryRequestRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, storeroomRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	workOrderUC := usecase.NewWorkOrderUseCase(workOrderRepo, customerRepo)

	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner, productRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(stockRepo, movementRepo)
	countUC := inventory.NewCountUseCase(countRepo, stockRepo)
	finalizeCountUC := inventory.NewFinalizeCountUseCase(txRunner, countRepo)
	requestUC := inventory.NewRequestUseCase(requestRepo)
	approveRequestUC := inventory.NewApproveRequestUseCase(txRunner, requestRepo)

	optimizeUC := routing.NewOptimizeUseCase(workOrderRepo, customerRepo)
	routeUC := routing.NewRouteUseCase(routeRepo, optimizeUC)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fieldservice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TenantUC:       tenantUC,
		WarehouseUC:    warehouseUC,
		ProductUC:      productUC,
		CustomerUC:     customerUC,
		WorkOrderUC:    workOrderUC,
		RecordMovement: recordMovementUC,
		StockQuery:     stockQueryUC,
		CountUC:        countUC,
		FinalizeCount:  finalizeCountUC,
		RequestUC:      requestUC,
		ApproveRequest: approveRequestUC,
		RouteUC:        routeUC,
		OptimizeUC:     optimizeUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
