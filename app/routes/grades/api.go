package grades

import (
	"errors"
	"fmt"

	"github.com/kdlibiran/gradecalculator/app/grading"
	"github.com/kdlibiran/gradecalculator/app/logger"
	"github.com/kdlibiran/gradecalculator/app/routes/middleware"

	"github.com/gofiber/fiber/v2"
)

// EntryRequest is the JSON body of the add and edit endpoints.
type EntryRequest struct {
	Score        *float64 `json:"score"`
	Total        *float64 `json:"total"`
	Weight       *float64 `json:"weight"`
	PassingScore *float64 `json:"passing_score,omitempty"`
}

// Entry checks that the required numbers are present.
func (r EntryRequest) Entry() (grading.Entry, error) {
	required := []struct {
		name string
		v    *float64
	}{{"score", r.Score}, {"total", r.Total}, {"weight", r.Weight}}
	for _, f := range required {
		if f.v == nil {
			return grading.Entry{}, fmt.Errorf("%s is required: %w", f.name, grading.ErrNotANumber)
		}
	}
	return grading.Entry{
		Score:        *r.Score,
		Total:        *r.Total,
		Weight:       *r.Weight,
		PassingScore: r.PassingScore,
	}, nil
}

// GetSummaryAPI returns the entries with every derived value
func GetSummaryAPI(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	return c.JSON(s.Model.Summary())
}

// GetEntryAPI returns a single entry
func GetEntryAPI(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	e, err := s.Model.Entry(c.Params("id"))
	if err != nil {
		return gradingError(c, err)
	}
	return c.JSON(e)
}

// AddEntryAPI adds an entry
func AddEntryAPI(c *fiber.Ctx, log *logger.Logger) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	entry, err := req.Entry()
	if err != nil {
		return gradingError(c, err)
	}
	created, err := s.Model.Add(entry)
	if err != nil {
		log.Debug("Entry rejected", "session_id", s.ID, "code", grading.Code(err))
		return gradingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"entry":   created,
		"summary": s.Model.Summary(),
	})
}

// EditEntryAPI replaces the values of an entry
func EditEntryAPI(c *fiber.Ctx, log *logger.Logger) error {
	id := c.Params("id")
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	entry, err := req.Entry()
	if err != nil {
		return gradingError(c, err)
	}
	updated, err := s.Model.Edit(id, entry)
	if err != nil {
		log.Debug("Edit rejected", "session_id", s.ID, "entry_id", id, "code", grading.Code(err))
		return gradingError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entry":   updated,
		"summary": s.Model.Summary(),
	})
}

// DuplicateEntryAPI appends a copy of an entry under a new id
func DuplicateEntryAPI(c *fiber.Ctx, log *logger.Logger) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	dup, err := s.Model.Duplicate(c.Params("id"))
	if err != nil {
		log.Debug("Duplicate rejected", "session_id", s.ID, "code", grading.Code(err))
		return gradingError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"entry":   dup,
		"summary": s.Model.Summary(),
	})
}

// RemoveEntryAPI removes an entry. Removing an unknown id is not an error.
func RemoveEntryAPI(c *fiber.Ctx, log *logger.Logger) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	if !s.Model.Remove(c.Params("id")) {
		log.Debug("Remove of unknown entry ignored", "session_id", s.ID, "entry_id", c.Params("id"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearAPI removes every entry and the goal
func ClearAPI(c *fiber.Ctx, log *logger.Logger) error {
	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	log.Debug("Calculator cleared", "session_id", s.ID, "entries", s.Model.Len())
	s.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

// SetGoalAPI stores the goal and returns the updated summary. A null goal clears it.
func SetGoalAPI(c *fiber.Ctx) error {
	var req struct {
		Goal *float64 `json:"goal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	s := middleware.CurrentSession(c)
	s.Lock()
	defer s.Unlock()

	s.Model.SetGoal(req.Goal)
	if req.Goal == nil {
		s.GoalInput = ""
	} else {
		s.GoalInput = fmt.Sprint(*req.Goal)
	}
	return c.JSON(s.Model.Summary())
}

// gradingError answers with the status matching a grading error.
func gradingError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, grading.ErrEntryNotFound):
		status = fiber.StatusNotFound
	case grading.IsValidation(err):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"success":    false,
		"error":      userMessage(err),
		"error_code": grading.Code(err),
		"code":       status,
	})
}
