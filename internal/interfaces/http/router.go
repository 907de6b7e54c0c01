package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/application/usecase"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/ratelimit"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	LowStock    *inventory.LowStockUseCase
	ProductUC   *usecase.ProductUseCase
	RateLimiter ratelimit.Limiter // nil = sin límite
	Logger      *logger.Logger
}

// NewApp crea la aplicación Fiber con el manejador de errores JSON, recover y log de peticiones.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(RateLimit(deps.RateLimiter, log))
	}

	// Alerts
	alertHandler := NewAlertHandler(deps.LowStock, log.Named("alerts"))
	api.Get("/companies/:company_id/alerts/low-stock", alertHandler.GetLowStock)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log.Named("products"))
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
}
