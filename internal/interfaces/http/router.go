package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/auth"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/inventory"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/usecase"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	LocationUC       *usecase.LocationUseCase
	ComponentUC      *usecase.ComponentUseCase
	SKUUC            *usecase.SKUUseCase
	BOMUC            *usecase.BOMUseCase
	TransactionUC    *usecase.TransactionUseCase
	BuildUC          *build.BuildUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	BalanceQuery     *inventory.BalanceQueryUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (creación/consulta pública para bootstrap; settings protegido)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Put("/settings", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), companyHandler.UpdateSettings)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escrituras solo para admin y operador; consulta es de solo lectura.
	writer := RequireRole(entity.RoleAdmin, entity.RoleOperador)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", writer, locationHandler.Create)
	locations.Get("/", locationHandler.List)

	// Components (protegido)
	components := protected.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	components.Post("/", writer, componentHandler.Create)
	components.Get("/", componentHandler.List)
	components.Get("/:id", componentHandler.GetByID)
	components.Put("/:id", writer, componentHandler.Update)
	components.Get("/:id/lots", componentHandler.ListLots)

	// SKUs y versiones de BOM (protegido)
	skus := protected.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	bomHandler := NewBOMHandler(deps.BOMUC)
	skus.Post("/", writer, skuHandler.Create)
	skus.Get("/", skuHandler.List)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Post("/:skuId/bom-versions", writer, bomHandler.CreateVersion)
	skus.Get("/:skuId/bom-versions", bomHandler.ListBySKU)
	protected.Get("/bom-versions/:id", bomHandler.GetVersion)

	// Inventory movements y saldos (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.BalanceQuery)
	invGroup.Post("/movements", writer, inventoryHandler.RegisterMovement)
	invGroup.Get("/balances", inventoryHandler.ListBalances)

	// Builds (protegido)
	builds := protected.Group("/builds")
	buildHandler := NewBuildHandler(deps.BuildUC)
	builds.Post("/", writer, buildHandler.Create)

	// Ledger (protegido, solo lectura)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
}
