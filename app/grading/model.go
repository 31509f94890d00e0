package grading

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kdlibiran/gradecalculator/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxWeight is the cumulative weight of a fully graded course.
const MaxWeight = 100.0

// weightEpsilon absorbs float drift when weights such as 33.3+33.3+33.4 are summed.
const weightEpsilon = 1e-9

// Model owns the score entries and the goal of one grade calculator.
// It is not safe for concurrent use; callers serialize access.
type Model struct {
	entries []*models.ScoreEntry
	goal    *float64
	newID   func() string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{newID: func() string { return uuid.New().String() }}
}

// Add validates e and appends it as a new entry.
// A rejected entry leaves the model untouched.
func (m *Model) Add(e Entry) (*models.ScoreEntry, error) {
	if err := validateEntry(e); err != nil {
		return nil, err
	}
	if exceedsMaxWeight(m.TotalWeight() + e.Weight) {
		return nil, fmt.Errorf("adding %.2f%% to %.2f%%: %w", e.Weight, m.TotalWeight(), ErrWeightExceeded)
	}

	entry := m.newEntry(e)
	m.entries = append(m.entries, entry)
	return copyEntry(entry), nil
}

// Edit replaces the values of the entry with the given id, keeping its id and position.
func (m *Model) Edit(id string, e Entry) (*models.ScoreEntry, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("edit %s: %w", id, ErrEntryNotFound)
	}
	if err := validateEntry(e); err != nil {
		return nil, err
	}
	others := m.TotalWeight() - m.entries[idx].Weight
	if exceedsMaxWeight(others + e.Weight) {
		return nil, fmt.Errorf("editing weight to %.2f%% with %.2f%% elsewhere: %w", e.Weight, others, ErrWeightExceeded)
	}

	cur := m.entries[idx]
	cur.Score = e.Score
	cur.Total = e.Total
	cur.Weight = e.Weight
	cur.PassingScore = cloneFloat(e.PassingScore)
	return copyEntry(cur), nil
}

// Duplicate appends a copy of the entry with the given id under a new id.
func (m *Model) Duplicate(id string) (*models.ScoreEntry, error) {
	src := m.find(id)
	if src == nil {
		return nil, fmt.Errorf("duplicate %s: %w", id, ErrEntryNotFound)
	}
	if exceedsMaxWeight(m.TotalWeight() + src.Weight) {
		return nil, fmt.Errorf("duplicating %.2f%% onto %.2f%%: %w", src.Weight, m.TotalWeight(), ErrWeightExceeded)
	}

	entry := m.newEntry(EntryOf(src))
	m.entries = append(m.entries, entry)
	return copyEntry(entry), nil
}

// Remove deletes the entry with the given id. It reports whether an entry was removed.
func (m *Model) Remove(id string) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	return true
}

// Clear drops every entry and the goal.
func (m *Model) Clear() {
	m.entries = nil
	m.goal = nil
}

// Len returns the number of entries.
func (m *Model) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *Model) Entries() []models.ScoreEntry {
	out := make([]models.ScoreEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *copyEntry(e))
	}
	return out
}

// Entry looks up a single entry by id.
func (m *Model) Entry(id string) (*models.ScoreEntry, error) {
	e := m.find(id)
	if e == nil {
		return nil, fmt.Errorf("entry %s: %w", id, ErrEntryNotFound)
	}
	return copyEntry(e), nil
}

// SetGoal stores the goal percentage. Nil clears it.
// The goal is not validated here; NeededGrade reports an out of range goal.
func (m *Model) SetGoal(goal *float64) {
	m.goal = cloneFloat(goal)
}

// Goal returns the stored goal, or nil.
func (m *Model) Goal() *float64 {
	return cloneFloat(m.goal)
}

// TotalWeight sums the weight of every entry.
func (m *Model) TotalWeight() float64 {
	var sum float64
	for _, e := range m.entries {
		sum += e.Weight
	}
	return sum
}

// TotalGrade sums the weighted percentage of every entry.
func (m *Model) TotalGrade() float64 {
	var sum float64
	for _, e := range m.entries {
		sum += WeightedPercentage(e)
	}
	return sum
}

// HighestPossibleGrade assumes a perfect score on all remaining weight.
// It is not clamped, so it exceeds 100 only when the weights already do.
func (m *Model) HighestPossibleGrade() float64 {
	return m.TotalGrade() + (MaxWeight - m.TotalWeight())
}

// NeededGrade computes the average grade required on the remaining weight to reach goal.
func (m *Model) NeededGrade(goal *float64) Needed {
	if goal == nil || math.IsNaN(*goal) || *goal < 0 || *goal > 100 {
		return Needed{Status: models.NeededInvalidGoal}
	}
	remaining := MaxWeight - m.TotalWeight()
	if math.Abs(remaining) <= weightEpsilon {
		return Needed{Status: models.NeededNoRemainingWeight}
	}

	needed := (*goal - m.TotalGrade()) / remaining * 100
	switch {
	case needed > 100:
		return Needed{Value: needed, Status: models.NeededUnachievable}
	case needed <= 0:
		return Needed{Value: 0, Status: models.NeededAlreadyMet}
	default:
		return Needed{Value: needed, Status: models.NeededAchievable}
	}
}

// Warning returns ErrWeightOverLimit while the total weight is above 100.
func (m *Model) Warning() error {
	if exceedsMaxWeight(m.TotalWeight()) {
		return ErrWeightOverLimit
	}
	return nil
}

func (m *Model) newEntry(e Entry) *models.ScoreEntry {
	return &models.ScoreEntry{
		ID:           m.newID(),
		Score:        e.Score,
		Total:        e.Total,
		Weight:       e.Weight,
		PassingScore: cloneFloat(e.PassingScore),
		CreatedAt:    time.Now(),
	}
}

func (m *Model) find(id string) *models.ScoreEntry {
	if idx := m.indexOf(id); idx >= 0 {
		return m.entries[idx]
	}
	return nil
}

func (m *Model) indexOf(id string) int {
	for i, e := range m.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

var validate = validator.New()

// validateEntry reports the first broken rule, checked in the order
// total, weight, score, passing score.
func validateEntry(e Entry) error {
	for _, v := range []float64{e.Score, e.Total, e.Weight} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotANumber
		}
	}
	if p := e.PassingScore; p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
		return ErrNotANumber
	}

	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}
	switch {
	case failed["Total"]:
		return ErrInvalidTotal
	case failed["Weight"]:
		return ErrNegativeWeight
	case failed["Score"]:
		return ErrScoreExceedsTotal
	case failed["PassingScore"]:
		if *e.PassingScore == e.Total {
			return ErrPassingScoreEqualsTotal
		}
		return ErrPassingScoreExceedsTotal
	}
	return err
}

func exceedsMaxWeight(w float64) bool {
	return w > MaxWeight+weightEpsilon
}

// EntryOf extracts the editable values of a stored entry.
func EntryOf(e *models.ScoreEntry) Entry {
	return Entry{
		Score:        e.Score,
		Total:        e.Total,
		Weight:       e.Weight,
		PassingScore: cloneFloat(e.PassingScore),
	}
}

func copyEntry(e *models.ScoreEntry) *models.ScoreEntry {
	c := *e
	c.PassingScore = cloneFloat(e.PassingScore)
	return &c
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
