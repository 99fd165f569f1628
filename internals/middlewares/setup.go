package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide middleware chain, order matters:
// recovery first so it wraps everything else.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
