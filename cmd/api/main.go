package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/application/usecase"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/ratelimit"
	infraredis "github.com/jhoicas/inventario-alertas/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/inventario-alertas/internal/interfaces/http"
	"github.com/jhoicas/inventario-alertas/pkg/config"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Sin Redis el límite es por proceso
	var limiter ratelimit.Limiter
	if cfg.RateLimit.PerMinute > 0 {
		limiter = ratelimit.NewLocalLimiter(cfg.RateLimit.PerMinute, time.Minute)
		if cfg.Redis.Enabled() {
			rdb, err := infraredis.NewClient(ctx, cfg.Redis.Addr)
			if err != nil {
				log.Warn().Err(err).Msg("Redis no disponible, rate limit en memoria")
			} else {
				defer rdb.Close()
				limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.PerMinute, time.Minute)
			}
		}
	}

	lowStockUC := inventory.NewLowStockUseCase(
		postgres.NewInventoryRepository(pool),
		postgres.NewInventoryTransactionRepository(pool),
		postgres.NewSupplierRepository(pool),
		inventory.WithRecentSalesWindow(cfg.Alerts.RecentSalesWindow()),
	)
	productUC := usecase.NewProductUseCase(postgres.NewTxRunner(pool), postgres.NewProductRepository(pool))

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Inventario Alertas API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		LowStock:    lowStockUC,
		ProductUC:   productUC,
		RateLimiter: limiter,
		Logger:      log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicación detenida")
}
