package calculator

import (
	"errors"

	calc "github.com/kdlibiran/gradecalculator/app/calculator"
	"github.com/kdlibiran/gradecalculator/app/logger"
	"github.com/kdlibiran/gradecalculator/app/routes/middleware"

	"github.com/gofiber/fiber/v2"
)

// PressForm applies a keypad key from the page and goes back to it
func PressForm(c *fiber.Ctx, log *logger.Logger) error {
	key := c.FormValue("key")

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	if err := s.Keypad.Press(key); err != nil {
		if errors.Is(err, calc.ErrUnknownKey) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown key")
		}
		log.Debug("Expression failed", "session_id", s.ID, "error", err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// PressAPI applies a keypad key and returns the new display
func PressAPI(c *fiber.Ctx, log *logger.Logger) error {
	var req struct {
		Key string `json:"key"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	err := s.Keypad.Press(req.Key)
	if errors.Is(err, calc.ErrUnknownKey) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    fiber.StatusBadRequest,
		})
	}
	if err != nil {
		log.Debug("Expression failed", "session_id", s.ID, "error", err)
	}

	resp := fiber.Map{
		"display":    s.Keypad.Display(),
		"expression": s.Keypad.Expression(),
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	return c.JSON(resp)
}

// EvaluateAPI evaluates an arithmetic expression without touching the keypad
func EvaluateAPI(c *fiber.Ctx) error {
	var req struct {
		Expression string `json:"expression"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	v, err := calc.Eval(req.Expression)
	if err != nil {
		resp := fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    fiber.StatusUnprocessableEntity,
		}
		var pe *calc.ParseError
		if errors.As(err, &pe) {
			resp["position"] = pe.Pos
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  v,
		"display": calc.Format(v),
	})
}
