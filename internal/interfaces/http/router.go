package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Fieldservice-api/internal/application/auth"
	"github.com/jhoicas/Fieldservice-api/internal/application/inventory"
	"github.com/jhoicas/Fieldservice-api/internal/application/routing"
	"github.com/jhoicas/Fieldservice-api/internal/application/usecase"
	"github.com/jhoicas/Fieldservice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TenantUC       *usecase.TenantUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	ProductUC      *usecase.ProductUseCase
	CustomerUC     *usecase.CustomerUseCase
	WorkOrderUC    *usecase.WorkOrderUseCase
	RecordMovement *inventory.RecordMovementUseCase
	StockQuery     *inventory.StockQueryUseCase
	CountUC        *inventory.CountUseCase
	FinalizeCount  *inventory.FinalizeCountUseCase
	RequestUC      *inventory.RequestUseCase
	ApproveRequest *inventory.ApproveRequestUseCase
	RouteUC        *routing.RouteUseCase
	OptimizeUC     *routing.OptimizeUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Tenants (público por ahora)
	tenants := api.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Get("/", tenantHandler.List)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/:id", tenantHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses y storerooms (protegido)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Delete("/:id", warehouseHandler.Delete)
	storerooms := protected.Group("/storerooms")
	storerooms.Post("/", warehouseHandler.CreateStoreroom)
	storerooms.Get("/", warehouseHandler.ListStorerooms)
	storerooms.Delete("/:id", warehouseHandler.DeleteStoreroom)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Inventory: movimientos y stock (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.StockQuery)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/stock/:type/:id", inventoryHandler.GetStock)

	// Inventory: contagens (protegido)
	countHandler := NewCountHandler(deps.CountUC, deps.FinalizeCount)
	invGroup.Post("/counts", countHandler.Create)
	invGroup.Get("/counts", countHandler.List)
	invGroup.Get("/counts/:id", countHandler.GetByID)
	invGroup.Put("/counts/:id/items", countHandler.EnterCounted)
	invGroup.Post("/counts/:id/finalize", countHandler.Finalize)

	// Inventory: solicitudes (protegido; aprobar/rechazar requiere supervisor o admin)
	requestHandler := NewRequestHandler(deps.RequestUC, deps.ApproveRequest)
	invGroup.Post("/requests", requestHandler.Create)
	invGroup.Get("/requests", requestHandler.List)
	invGroup.Get("/requests/:id", requestHandler.GetByID)
	approvers := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)
	invGroup.Post("/requests/:id/approve", approvers, requestHandler.Approve)
	invGroup.Post("/requests/:id/reject", approvers, requestHandler.Reject)

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)

	// Routes (protegido)
	routes := protected.Group("/routes")
	routeHandler := NewRouteHandler(deps.RouteUC, deps.OptimizeUC)
	routes.Post("/optimize", routeHandler.Optimize)
	routes.Post("/", routeHandler.Create)
	routes.Get("/", routeHandler.List)
	routes.Get("/:id", routeHandler.GetByID)
	routes.Patch("/:id/status", routeHandler.UpdateStatus)
}
