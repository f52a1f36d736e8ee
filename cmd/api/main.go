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

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/auth"
	appbuild "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/inventory"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/usecase"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/interfaces/http"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/pkg/config"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	componentRepo := postgres.NewComponentRepository(pool)
	skuRepo := postgres.NewSKURepository(pool)
	bomRepo := postgres.NewBOMVersionRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	balanceRepo := postgres.NewInventoryBalanceRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, locationRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	componentUC := usecase.NewComponentUseCase(componentRepo, lotRepo)
	skuUC := usecase.NewSKUUseCase(skuRepo)
	bomUC := usecase.NewBOMUseCase(skuRepo, bomRepo, componentRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, componentRepo)

	buildUC := appbuild.NewBuildUseCase(
		txRunner, companyRepo, skuRepo, bomRepo, componentRepo, locationRepo, lotRepo,
	)
	registerMovementUC := inventory.NewRegisterMovementUseCase(
		txRunner, companyRepo, componentRepo, locationRepo,
	)
	balanceQueryUC := inventory.NewBalanceQueryUseCase(balanceRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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
		Title:    "SKU Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:        companyUC,
		LocationUC:       locationUC,
		ComponentUC:      componentUC,
		SKUUC:            skuUC,
		BOMUC:            bomUC,
		TransactionUC:    transactionUC,
		BuildUC:          buildUC,
		RegisterMovement: registerMovementUC,
		BalanceQuery:     balanceQueryUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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
