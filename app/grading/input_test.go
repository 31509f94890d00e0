package grading

import (
	"errors"
	"testing"
)

func TestEntryInput_Parse(t *testing.T) {
	got, err := EntryInput{Score: " 60 ", Total: "80", Weight: "40", PassingScore: "50"}.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got.Score != 60 || got.Total != 80 || got.Weight != 40 || got.PassingScore == nil || *got.PassingScore != 50 {
		t.Fatalf("Parse=%+v", got)
	}

	got, err = EntryInput{Score: "8.5", Total: "10", Weight: "5"}.Parse()
	if err != nil {
		t.Fatalf("Parse without passing error: %v", err)
	}
	if got.PassingScore != nil {
		t.Fatalf("blank passing score parsed as %v", *got.PassingScore)
	}
}

func TestEntryInput_ParseRejectsNonNumbers(t *testing.T) {
	inputs := []EntryInput{
		{Score: "", Total: "10", Weight: "5"},
		{Score: "abc", Total: "10", Weight: "5"},
		{Score: "1", Total: "NaN", Weight: "5"},
		{Score: "1", Total: "10", Weight: "Inf"},
		{Score: "1", Total: "10", Weight: "5", PassingScore: "half"},
	}
	for _, in := range inputs {
		if _, err := in.Parse(); !errors.Is(err, ErrNotANumber) {
			t.Fatalf("Parse(%+v) error=%v, want ErrNotANumber", in, err)
		}
	}
}

func TestInputFrom_RoundTripsThroughParse(t *testing.T) {
	e := Entry{Score: 60, Total: 80, Weight: 12.5, PassingScore: f(50)}
	in := InputFrom(e)
	if in.Weight != "12.5" || in.PassingScore != "50" {
		t.Fatalf("InputFrom=%+v", in)
	}
	back, err := in.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if back.Score != e.Score || back.Weight != e.Weight || *back.PassingScore != *e.PassingScore {
		t.Fatalf("round trip=%+v, want %+v", back, e)
	}
}

func TestParseOptional(t *testing.T) {
	if v, err := ParseOptional("goal", "  "); err != nil || v != nil {
		t.Fatalf("ParseOptional(blank)=%v, %v", v, err)
	}
	if v, err := ParseOptional("goal", "92.5"); err != nil || *v != 92.5 {
		t.Fatalf("ParseOptional(92.5)=%v, %v", v, err)
	}
	if _, err := ParseOptional("goal", "x"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("ParseOptional(x) error=%v", err)
	}
}

func TestCode(t *testing.T) {
	if got := Code(ErrWeightExceeded); got != "weight_exceeded" {
		t.Fatalf("Code=%q", got)
	}
	if !IsValidation(ErrScoreExceedsTotal) {
		t.Fatal("ErrScoreExceedsTotal should be a validation error")
	}
	if IsValidation(ErrEntryNotFound) || IsValidation(nil) || IsValidation(errors.New("boom")) {
		t.Fatal("IsValidation misclassified a non-validation error")
	}
}
