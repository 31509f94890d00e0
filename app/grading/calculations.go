package grading

import "github.com/kdlibiran/gradecalculator/app/models"

// Passing curve: a score at the passing threshold maps to CurveFloor and a
// perfect score maps to 100.
const (
	CurveFloor = 75.0
	curveSpan  = 100 - CurveFloor
)

// AdjustedGrade returns the entry grade in percent. Without a passing score it
// is the raw percentage. With one, scores below passing count as zero and the
// passing..total range is mapped linearly onto 75..100.
func AdjustedGrade(e *models.ScoreEntry) float64 {
	if !e.HasPassingScore() {
		return e.Score / e.Total * 100
	}
	passing := *e.PassingScore
	if e.Score < passing {
		return 0
	}
	return curveSpan/(e.Total-passing)*(e.Score-passing) + CurveFloor
}

// WeightedPercentage is the entry's contribution to the overall grade.
func WeightedPercentage(e *models.ScoreEntry) float64 {
	return AdjustedGrade(e) / 100 * e.Weight
}

// Needed is the result of Model.NeededGrade.
type Needed struct {
	Value  float64             `json:"value"`
	Status models.NeededStatus `json:"status"`
}

// OK reports whether Value is a grade worth showing.
func (n Needed) OK() bool {
	return n.Status == models.NeededAchievable || n.Status == models.NeededAlreadyMet
}

// Summary is a snapshot of every value derived from the model.
type Summary struct {
	Entries              []models.EntryView `json:"entries"`
	TotalGrade           float64            `json:"total_grade"`
	TotalWeight          float64            `json:"total_weight"`
	HighestPossibleGrade float64            `json:"highest_possible_grade"`
	Goal                 *float64           `json:"goal,omitempty"`
	Needed               *Needed            `json:"needed,omitempty"`
	Warning              string             `json:"warning,omitempty"`
}

// Summary recomputes all derived values from the current state.
func (m *Model) Summary() Summary {
	s := Summary{
		Entries:              make([]models.EntryView, 0, len(m.entries)),
		TotalGrade:           m.TotalGrade(),
		TotalWeight:          m.TotalWeight(),
		HighestPossibleGrade: m.HighestPossibleGrade(),
		Goal:                 m.Goal(),
	}
	for _, e := range m.entries {
		s.Entries = append(s.Entries, models.EntryView{
			ScoreEntry:         *copyEntry(e),
			AdjustedGrade:      AdjustedGrade(e),
			WeightedPercentage: WeightedPercentage(e),
		})
	}
	if m.goal != nil {
		n := m.NeededGrade(m.goal)
		s.Needed = &n
	}
	if err := m.Warning(); err != nil {
		s.Warning = err.Error()
	}
	return s
}
