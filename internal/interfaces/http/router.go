package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/freshstock-api/internal/application/analytics"
	"github.com/jhoicas/freshstock-api/internal/application/auth"
	"github.com/jhoicas/freshstock-api/internal/application/export"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
	"github.com/jhoicas/freshstock-api/internal/application/usecase"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	OrderUC       *usecase.OrderUseCase
	SettingsUC    *usecase.SettingsUseCase
	ActivityUC    *usecase.ActivityUseCase
	AnalyticsUC   *usecase.AnalyticsUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	SalesUC       *inventory.SalesUseCase
	ReceiveUC     *inventory.ReceiveOrderUseCase
	Replenishment *inventory.ReplenishmentUseCase
	OrderExport   *export.OrderExportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/users", RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AnalyticsUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/analytics/charts", dashboardHandler.GetCharts)

	// Las rutas fijas van antes de /:id.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Replenishment)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/near-expiry", productHandler.NearExpiry)
	products.Get("/replenishment", productHandler.Replenishment)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiveUC, deps.OrderExport)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/receive", orderHandler.Receive)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Get("/:id/xml", orderHandler.XML)

	saleHandler := NewSaleHandler(deps.SalesUC)
	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", saleHandler.Record)

	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.ActivityUC)
	protected.Get("/activities", settingsHandler.Activities)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", RequireRole(entity.RoleAdmin), settingsHandler.Update)
}
