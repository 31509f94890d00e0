package settings

import (
	"time"

	"github.com/kdlibiran/gradecalculator/app/routes/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	settings := app.Group("/settings")
	settings.Post("/theme", ToggleThemeHandler)

	api := app.Group("/api/settings")
	api.Get("/theme", GetThemeAPI)
	api.Put("/theme", ToggleThemeAPI)
}

// ToggleThemeHandler switches between the light and dark theme and goes back to the page
func ToggleThemeHandler(c *fiber.Ctx) error {
	setTheme(c, string(middleware.CurrentTheme(c).Toggle()))
	return c.Redirect("/", fiber.StatusSeeOther)
}

func GetThemeAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"theme": middleware.CurrentTheme(c)})
}

func ToggleThemeAPI(c *fiber.Ctx) error {
	next := middleware.CurrentTheme(c).Toggle()
	setTheme(c, string(next))
	return c.JSON(fiber.Map{"theme": next})
}

func setTheme(c *fiber.Ctx, theme string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.ThemeCookie,
		Value:    theme,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: "Lax",
	})
}
