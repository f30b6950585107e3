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

	"github.com/jcastro/estoque-api/internal/application/auth"
	"github.com/jcastro/estoque-api/internal/application/catalog"
	appinv "github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/application/purchase"
	"github.com/jcastro/estoque-api/internal/domain/repository"
	"github.com/jcastro/estoque-api/internal/infrastructure/nfe"
	"github.com/jcastro/estoque-api/internal/infrastructure/postgres"
	"github.com/jcastro/estoque-api/internal/infrastructure/rediscache"
	httpRouter "github.com/jcastro/estoque-api/internal/interfaces/http"
	"github.com/jcastro/estoque-api/pkg/config"
	"github.com/jcastro/estoque-api/pkg/logger"
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

	storeRepo := postgres.NewStoreRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Catálogo con cache read-through opcional (REDIS_ADDR vacío la deshabilita).
	var productRepo repository.ProductRepository = postgres.NewProductRepository(pool)
	if cfg.Redis.Addr != "" {
		rdb, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.Redis.TTLSeconds) * time.Second
		productRepo = rediscache.NewCachedProductRepo(productRepo, rdb, ttl)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("cache de catálogo habilitada")
	}

	stockUC := appinv.NewStockUseCase(movementRepo, snapshotRepo, productRepo)
	consumptionUC := appinv.NewConsumptionUseCase(movementRepo, productRepo)
	replenishUC := appinv.NewReplenishmentUseCase(productRepo, stockUC, consumptionUC)
	correctionUC := appinv.NewCorrectionUseCase(txRunner, storeRepo, productRepo)
	entryImportUC := appinv.NewEntryImportUseCase(txRunner, nfe.NewParser(), storeRepo, productRepo)
	historyUC := appinv.NewHistoryUseCase(movementRepo, storeRepo)
	catalogUC := catalog.NewUseCase(productRepo, storeRepo)
	orderUC := purchase.NewOrderUseCase(txRunner, orderRepo, storeRepo, productRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
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
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		StockUC:       stockUC,
		ConsumptionUC: consumptionUC,
		CorrectionUC:  correctionUC,
		EntryImportUC: entryImportUC,
		HistoryUC:     historyUC,
		ReplenishUC:   replenishUC,
		OrderUC:       orderUC,
		JWTSecret:     cfg.JWT.Secret,
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
