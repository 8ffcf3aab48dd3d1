package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "azubiplan_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain. Order matters:
// recovery first so panics in later handlers still produce a response.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
