package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/estoque-api/internal/application/auth"
	"github.com/jcastro/estoque-api/internal/application/catalog"
	appinv "github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/application/purchase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CatalogUC     *catalog.UseCase
	StockUC       *appinv.StockUseCase
	ConsumptionUC *appinv.ConsumptionUseCase
	CorrectionUC  *appinv.CorrectionUseCase
	EntryImportUC *appinv.EntryImportUseCase
	HistoryUC     *appinv.HistoryUseCase
	ReplenishUC   *appinv.ReplenishmentUseCase
	OrderUC       *purchase.OrderUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Get("/stores", catalogHandler.ListStores)

	// Stock y consumo (protegido)
	stockHandler := NewStockHandler(deps.StockUC, deps.ConsumptionUC)
	protected.Get("/stores/:id/stock", stockHandler.GetStoreStock)
	protected.Get("/stores/:id/stock/:productId", stockHandler.GetStock)
	protected.Get("/stores/:id/consumption/:productId", stockHandler.GetConsumption)

	// Movimientos (protegido)
	movementHandler := NewMovementHandler(deps.CorrectionUC, deps.EntryImportUC, deps.HistoryUC)
	protected.Post("/stores/:id/corrections/add", movementHandler.AddStock)
	protected.Post("/stores/:id/corrections/remove", movementHandler.RemoveStock)
	protected.Post("/stores/:id/counts", movementHandler.RegisterCount)
	protected.Post("/stores/:id/entries/import", movementHandler.ImportEntries)
	protected.Get("/stores/:id/movements", movementHandler.ListMovements)
	protected.Post("/transfers", movementHandler.Transfer)

	// Reposición (protegido)
	replenishmentHandler := NewReplenishmentHandler(deps.ReplenishUC)
	protected.Get("/stores/:id/replenishment", replenishmentHandler.Suggest)

	// Pedidos de compra (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Post("/stores/:id/orders", orderHandler.CreateOrder)
	protected.Get("/stores/:id/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id/items", orderHandler.GetOrderItems)
}
