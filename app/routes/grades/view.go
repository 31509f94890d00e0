package grades

import (
	"github.com/kdlibiran/gradecalculator/app/calculator"
	"github.com/kdlibiran/gradecalculator/app/grading"
	"github.com/kdlibiran/gradecalculator/app/models"
	"github.com/kdlibiran/gradecalculator/app/routes/middleware"
	"github.com/kdlibiran/gradecalculator/app/session"

	"github.com/gofiber/fiber/v2"
)

const pageTitle = "Grade Calculator"

// NeededMessage renders the needed-grade line for a goal.
func NeededMessage(n *grading.Needed) string {
	if n == nil || !n.OK() {
		return "Goal grade is not achievable or invalid"
	}
	if n.Status == models.NeededAlreadyMet {
		return "Goal already met"
	}
	return ""
}

// pageData builds the template data shared by the index and edit pages.
// The caller holds the session lock.
func pageData(c *fiber.Ctx, s *session.Session) fiber.Map {
	summary := s.Model.Summary()

	alerts := []string{}
	if msg := s.TakeFlash(); msg != "" {
		alerts = append(alerts, msg)
	}
	if summary.Warning != "" {
		alerts = append(alerts, summary.Warning)
	}

	return fiber.Map{
		"Title":         pageTitle,
		"Theme":         string(middleware.CurrentTheme(c)),
		"Summary":       summary,
		"HasEntries":    len(summary.Entries) > 0,
		"Draft":         s.Draft,
		"GoalInput":     s.GoalInput,
		"NeededMessage": NeededMessage(summary.Needed),
		"Alerts":        alerts,
		"KeypadDisplay": s.Keypad.Display(),
		"KeypadError":   keypadError(&s.Keypad),
		"KeypadKeys":    calculator.Keys,
	}
}

func keypadError(k *calculator.Keypad) string {
	if err := k.Err(); err != nil {
		return err.Error()
	}
	return ""
}
