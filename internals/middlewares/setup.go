package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"uniportal_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain. Route groups add
// auth/role middlewares on top of this in the route package.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
