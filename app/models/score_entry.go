package models

import "time"

// ScoreEntry is one graded component of a course, e.g. a quiz or a midterm
type ScoreEntry struct {
	ID           string    `json:"id"`
	Score        float64   `json:"score"`
	Total        float64   `json:"total"`
	Weight       float64   `json:"weight"` // Percentage, e.g., 30
	PassingScore *float64  `json:"passing_score,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasPassingScore reports whether the entry is graded on the passing curve.
func (e ScoreEntry) HasPassingScore() bool {
	return e.PassingScore != nil
}

// EntryView is a ScoreEntry with its derived values, as shown on the page and
// returned by the API.
type EntryView struct {
	ScoreEntry
	AdjustedGrade      float64 `json:"adjusted_grade"`
	WeightedPercentage float64 `json:"weighted_percentage"`
}
