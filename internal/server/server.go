package server

import (
	"time"

	"bookstore/internal/config"
	"bookstore/internal/handlers"
	"bookstore/internal/middleware"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// clientIdleTimeout is how long a rate limiter bucket survives without
// traffic before Sweep discards it.
const clientIdleTimeout = 3 * time.Minute

// Server bundles the Fiber app with the pieces the commands and tests need
// to reach directly.
type Server struct {
	App     *fiber.App
	Auth    *services.AuthService
	Limiter *middleware.RateLimiter
}

// New wires repositories, services and handlers on top of db. events may be
// nil, in which case no domain events are published.
func New(cfg *config.Config, db *gorm.DB, events services.Publisher) *Server {
	// --- Initialize Repositories ---
	bookRepo := repositories.NewGORMBookRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	catalogRepo := repositories.NewGORMCatalogRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Initialize Services ---
	bookService := services.NewBookService(bookRepo, catalogRepo, events)
	userService := services.NewUserService(userRepo, events)
	catalogService := services.NewCatalogService(catalogRepo)
	orderService := services.NewOrderService(orderRepo, bookRepo, events)
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// --- Initialize Handlers ---
	bookHandler := handlers.NewBookHandler(bookService)
	adminUserHandler := handlers.NewAdminUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New(fiber.Config{
		AppName:      "bookstore",
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(logger.New())

	app.Get("/health", healthHandler(db, events != nil))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, clientIdleTimeout)
	apiV1 := app.Group("/api/v1", limiter.Handler())

	// Public routes
	bookHandler.RegisterRoutes(apiV1)
	catalogHandler.RegisterRoutes(apiV1)

	// Authenticated customer routes
	orderHandler.RegisterRoutes(apiV1.Group("/orders", middleware.AuthRequired(authService)))

	// Administrator routes
	admin := apiV1.Group("/admin", middleware.AuthRequired(authService), middleware.AdminOnly())
	adminUserHandler.RegisterRoutes(admin)
	catalogHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)

	return &Server{
		App:     app,
		Auth:    authService,
		Limiter: limiter,
	}
}

func healthHandler(db *gorm.DB, eventsEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := fiber.StatusOK
		database := "connected"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = fiber.StatusServiceUnavailable
			database = "unreachable"
		}
		events := "disabled"
		if eventsEnabled {
			events = "enabled"
		}

		healthy := "healthy"
		if status != fiber.StatusOK {
			healthy = "unhealthy"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   healthy,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
			"events":   events,
		})
	}
}
