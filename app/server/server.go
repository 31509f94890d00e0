package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kdlibiran/gradecalculator/app/config"
	"github.com/kdlibiran/gradecalculator/app/logger"
	"github.com/kdlibiran/gradecalculator/app/models"
	"github.com/kdlibiran/gradecalculator/app/routes/calculator"
	"github.com/kdlibiran/gradecalculator/app/routes/grades"
	"github.com/kdlibiran/gradecalculator/app/routes/middleware"
	"github.com/kdlibiran/gradecalculator/app/routes/settings"
	"github.com/kdlibiran/gradecalculator/app/session"
	"github.com/kdlibiran/gradecalculator/app/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// TemplateFuncs are available in every page template.
var TemplateFuncs = map[string]interface{}{
	"json": func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"num": formatNumber,
}

// NewEngine loads the page templates, from dir when set (reloaded on every
// render, for development) or from the embedded copy otherwise.
func NewEngine(dir string) *html.Engine {
	var engine *html.Engine
	if dir != "" {
		engine = html.New(dir, ".html")
		engine.Reload(true)
	} else {
		engine = html.NewFileSystem(http.FS(templates.FS), ".html")
	}
	engine.AddFuncMap(TemplateFuncs)
	engine.Debug(false)
	return engine
}

// New creates the Fiber app with every route of the grade calculator.
func New(cfg *config.Config, log *logger.Logger, store *session.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:             NewEngine(cfg.TemplatesDir),
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		Immutable:         true, // form buffers outlive the request in the session
		ErrorHandler:      errorHandler(log),
		AppName:           "gradecalculator",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", cfg.StaticDir)

	app.Use(middleware.ThemeMiddleware(models.ParseTheme(cfg.DefaultTheme)))
	app.Use(middleware.SessionMiddleware(store, cfg.Session, log))

	// Routes
	grades.SetupGradesRoutes(app, log)
	calculator.SetupCalculatorRoutes(app, log)
	settings.SetupSettingsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

// errorHandler answers API requests with JSON and page requests with an error template
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"code":    code,
			})
		}

		theme := string(middleware.CurrentTheme(c))
		switch code {
		case fiber.StatusNotFound:
			return c.Status(code).Render("404", fiber.Map{
				"Title": "Page Not Found - Grade Calculator",
				"Theme": theme,
			})
		case fiber.StatusInternalServerError:
			return c.Status(code).Render("error", fiber.Map{
				"Title":        "Server Error - Grade Calculator",
				"Theme":        theme,
				"ErrorCode":    code,
				"ErrorTitle":   "Internal Server Error",
				"ErrorMessage": "Something went wrong. Please try again.",
			})
		default:
			return c.Status(code).Render("error", fiber.Map{
				"Title":        "Error - Grade Calculator",
				"Theme":        theme,
				"ErrorCode":    code,
				"ErrorTitle":   http.StatusText(code),
				"ErrorMessage": err.Error(),
			})
		}
	}
}

// formatNumber prints a number as entered, without trailing zeros.
func formatNumber(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprint(n)
	case *float64:
		if n == nil {
			return ""
		}
		return fmt.Sprint(*n)
	default:
		return fmt.Sprint(v)
	}
}
