package middleware

import (
	"github.com/kdlibiran/gradecalculator/app/models"

	"github.com/gofiber/fiber/v2"
)

const (
	ThemeCookie = "theme"
	themeKey    = "theme"
)

// ThemeMiddleware reads the theme cookie into c.Locals("theme").
func ThemeMiddleware(defaultTheme models.Theme) fiber.Handler {
	return func(c *fiber.Ctx) error {
		theme := defaultTheme
		if v := c.Cookies(ThemeCookie); v != "" {
			theme = models.ParseTheme(v)
		}
		c.Locals(themeKey, theme)
		return c.Next()
	}
}

// CurrentTheme returns the theme set by ThemeMiddleware, or the light theme.
func CurrentTheme(c *fiber.Ctx) models.Theme {
	if t, ok := c.Locals(themeKey).(models.Theme); ok {
		return t
	}
	return models.LightTheme
}
