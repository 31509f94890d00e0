package calculator

import (
	"github.com/kdlibiran/gradecalculator/app/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupCalculatorRoutes sets up the keypad routes
func SetupCalculatorRoutes(app *fiber.App, log *logger.Logger) {
	log = log.With("component", "calculator")

	app.Post("/calculator/press", func(c *fiber.Ctx) error { return PressForm(c, log) })

	api := app.Group("/api/calculator")
	api.Post("/press", func(c *fiber.Ctx) error { return PressAPI(c, log) })
	api.Post("/evaluate", EvaluateAPI)
}
