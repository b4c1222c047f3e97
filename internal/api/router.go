package api

import (
	"ecocart/docs"
	"ecocart/internal/api/handlers"
	"ecocart/pkg/auth"
	"ecocart/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	comparisonHandler *handlers.ComparisonHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger docs are registered via the docs package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")
	authenticated := middleware.AuthMiddleware(jwtManager, appLogger)
	adminOnly := middleware.AdminOnly(appLogger)

	// Auth routes (public)
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)

	api.Get("/users/me", authenticated, authHandler.Profile)

	// Product routes
	products := api.Group("/products")
	products.Get("", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("", authenticated, productHandler.Create)
	products.Put("/:id", authenticated, productHandler.Update)
	products.Delete("/:id", authenticated, adminOnly, productHandler.Delete)

	// Comparison routes; quick compare needs no authentication
	comparisons := api.Group("/comparisons")
	comparisons.Get("/quick", comparisonHandler.QuickCompare)
	comparisons.Post("/compare", authenticated, comparisonHandler.Compare)
	comparisons.Get("/stats", authenticated, adminOnly, comparisonHandler.Stats)
	comparisons.Get("/history", authenticated, comparisonHandler.History)
	// clear must be registered before the :id routes
	comparisons.Delete("/history/clear", authenticated, comparisonHandler.ClearHistory)
	comparisons.Get("/history/:id", authenticated, comparisonHandler.GetByID)
	comparisons.Delete("/history/:id", authenticated, comparisonHandler.Delete)

	return app
}
