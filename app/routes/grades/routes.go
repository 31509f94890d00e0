package grades

import (
	"github.com/kdlibiran/gradecalculator/app/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupGradesRoutes sets up the grade calculator page and its API
func SetupGradesRoutes(app *fiber.App, log *logger.Logger) {
	log = log.With("component", "grades")

	// Page routes (HTML forms)
	app.Get("/", func(c *fiber.Ctx) error { return IndexPage(c) })
	app.Post("/entries", func(c *fiber.Ctx) error { return AddEntryForm(c, log) })
	app.Get("/entries/:id/edit", func(c *fiber.Ctx) error { return EditEntryPage(c) })
	app.Post("/entries/:id/edit", func(c *fiber.Ctx) error { return EditEntryForm(c, log) })
	app.Post("/entries/:id/duplicate", func(c *fiber.Ctx) error { return DuplicateEntryForm(c, log) })
	app.Post("/entries/:id/delete", func(c *fiber.Ctx) error { return RemoveEntryForm(c, log) })
	app.Post("/goal", func(c *fiber.Ctx) error { return SetGoalForm(c) })
	app.Post("/clear", func(c *fiber.Ctx) error { return ClearForm(c, log) })

	// API routes
	api := app.Group("/api/grades")
	api.Get("/", GetSummaryAPI)
	api.Post("/entries", func(c *fiber.Ctx) error { return AddEntryAPI(c, log) })
	api.Delete("/entries", func(c *fiber.Ctx) error { return ClearAPI(c, log) })
	api.Get("/entries/:id", GetEntryAPI)
	api.Put("/entries/:id", func(c *fiber.Ctx) error { return EditEntryAPI(c, log) })
	api.Post("/entries/:id/duplicate", func(c *fiber.Ctx) error { return DuplicateEntryAPI(c, log) })
	api.Delete("/entries/:id", func(c *fiber.Ctx) error { return RemoveEntryAPI(c, log) })
	api.Put("/goal", SetGoalAPI)
}
