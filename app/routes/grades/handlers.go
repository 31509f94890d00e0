package grades

import (
	"errors"

	"github.com/kdlibiran/gradecalculator/app/grading"
	"github.com/kdlibiran/gradecalculator/app/logger"
	"github.com/kdlibiran/gradecalculator/app/routes/middleware"

	"github.com/gofiber/fiber/v2"
)

// IndexPage renders the calculator with the current entries and totals
func IndexPage(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	return c.Render("grades/index", pageData(c, s))
}

// AddEntryForm handles the add-score form. The input buffers are kept on
// failure so the user can correct them, and cleared on success.
func AddEntryForm(c *fiber.Ctx, log *logger.Logger) error {
	var in grading.EntryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	s.Draft = in
	entry, err := in.Parse()
	if err == nil {
		_, err = s.Model.Add(entry)
	}
	if err != nil {
		log.Debug("Entry rejected", "session_id", s.ID, "code", grading.Code(err))
		s.Flash = userMessage(err)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	s.Draft = grading.EntryInput{}
	s.Flash = ""
	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditEntryPage renders the edit form pre-filled with the entry
func EditEntryPage(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	e, err := s.Model.Entry(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Entry not found")
	}
	return renderEdit(c, fiber.StatusOK, e.ID, grading.InputFrom(grading.EntryOf(e)), "")
}

// EditEntryForm handles the edit form. On failure the edit page is shown
// again with the submitted values.
func EditEntryForm(c *fiber.Ctx, log *logger.Logger) error {
	id := c.Params("id")
	var in grading.EntryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	entry, err := in.Parse()
	if err == nil {
		_, err = s.Model.Edit(id, entry)
	}
	switch {
	case errors.Is(err, grading.ErrEntryNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Entry not found")
	case err != nil:
		log.Debug("Edit rejected", "session_id", s.ID, "entry_id", id, "code", grading.Code(err))
		return renderEdit(c, fiber.StatusUnprocessableEntity, id, in, userMessage(err))
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// DuplicateEntryForm appends a copy of an entry
func DuplicateEntryForm(c *fiber.Ctx, log *logger.Logger) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	if _, err := s.Model.Duplicate(c.Params("id")); err != nil {
		if errors.Is(err, grading.ErrEntryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Entry not found")
		}
		log.Debug("Duplicate rejected", "session_id", s.ID, "code", grading.Code(err))
		s.Flash = userMessage(err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// RemoveEntryForm removes an entry. Unknown ids are ignored.
func RemoveEntryForm(c *fiber.Ctx, log *logger.Logger) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	if !s.Model.Remove(c.Params("id")) {
		log.Debug("Remove of unknown entry ignored", "session_id", s.ID, "entry_id", c.Params("id"))
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// SetGoalForm stores the goal grade. Text that is not a number is kept in
// the field and reported through the needed-grade line.
func SetGoalForm(c *fiber.Ctx) error {
	raw := c.FormValue("goal")

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	s.GoalInput = raw
	goal, err := grading.ParseOptional("goal", raw)
	if err != nil {
		goal = nil
	}
	s.Model.SetGoal(goal)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ClearForm resets the entries, the goal and the input buffers
func ClearForm(c *fiber.Ctx, log *logger.Logger) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	log.Debug("Calculator cleared", "session_id", s.ID, "entries", s.Model.Len())
	s.Reset()
	return c.Redirect("/", fiber.StatusSeeOther)
}

func renderEdit(c *fiber.Ctx, status int, id string, in grading.EntryInput, msg string) error {
	s := middleware.CurrentSession(c)
	data := pageData(c, s)
	data["Title"] = "Edit Score - " + pageTitle
	data["EditID"] = id
	data["EditDraft"] = in
	if msg != "" {
		data["Alerts"] = append(data["Alerts"].([]string), msg)
	}
	return c.Status(status).Render("grades/edit", data)
}

// userMessage turns a grading error into the sentence shown in the alert.
func userMessage(err error) string {
	switch {
	case errors.Is(err, grading.ErrNotANumber):
		return "Score, total and weight must be numbers."
	case errors.Is(err, grading.ErrScoreExceedsTotal):
		return "Score cannot be greater than total."
	case errors.Is(err, grading.ErrPassingScoreExceedsTotal):
		return "Passing score cannot be greater than total."
	case errors.Is(err, grading.ErrPassingScoreEqualsTotal):
		return "Passing score must be lower than total."
	case errors.Is(err, grading.ErrInvalidTotal):
		return "Total must be greater than zero."
	case errors.Is(err, grading.ErrNegativeWeight):
		return "Weight cannot be negative."
	case errors.Is(err, grading.ErrWeightExceeded):
		return "Total weight cannot exceed 100%."
	default:
		return err.Error()
	}
}
