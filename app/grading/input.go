package grading

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Entry holds the numeric values of an entry before it is added or edited.
type Entry struct {
	Score        float64  `json:"score" validate:"ltefield=Total"`
	Total        float64  `json:"total" validate:"gt=0"`
	Weight       float64  `json:"weight" validate:"gte=0"` // Percentage, e.g., 30
	PassingScore *float64 `json:"passing_score,omitempty" validate:"omitempty,ltfield=Total"`
}

// EntryInput holds the raw text of the add and edit forms.
type EntryInput struct {
	Score        string `form:"score"`
	Total        string `form:"total"`
	Weight       string `form:"weight"`
	PassingScore string `form:"passing_score"`
}

// IsBlank reports whether all buffers are empty.
func (in EntryInput) IsBlank() bool {
	return strings.TrimSpace(in.Score) == "" &&
		strings.TrimSpace(in.Total) == "" &&
		strings.TrimSpace(in.Weight) == "" &&
		strings.TrimSpace(in.PassingScore) == ""
}

// Parse converts the buffers to numbers. Score, total and weight are
// required; the passing score may be left blank.
func (in EntryInput) Parse() (Entry, error) {
	var out Entry
	var err error
	if out.Score, err = parseRequired("score", in.Score); err != nil {
		return Entry{}, err
	}
	if out.Total, err = parseRequired("total", in.Total); err != nil {
		return Entry{}, err
	}
	if out.Weight, err = parseRequired("weight", in.Weight); err != nil {
		return Entry{}, err
	}
	if out.PassingScore, err = ParseOptional("passing score", in.PassingScore); err != nil {
		return Entry{}, err
	}
	return out, nil
}

// InputFrom fills form buffers from an existing entry, for the edit form.
func InputFrom(e Entry) EntryInput {
	in := EntryInput{
		Score:  formatNumber(e.Score),
		Total:  formatNumber(e.Total),
		Weight: formatNumber(e.Weight),
	}
	if e.PassingScore != nil {
		in.PassingScore = formatNumber(*e.PassingScore)
	}
	return in
}

// ParseOptional parses a number that may be left blank. Blank yields nil.
func ParseOptional(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := parseRequired(field, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseRequired(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrNotANumber)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
