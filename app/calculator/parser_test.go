package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "1+2", want: 3},
		{in: "2+3*4", want: 14},
		{in: "(2+3)*4", want: 20},
		{in: "10/4", want: 2.5},
		{in: "10-4-3", want: 3},
		{in: "100/10/5", want: 2},
		{in: "-3+5", want: 2},
		{in: "2*-3", want: -6},
		{in: "--4", want: 4},
		{in: "+.5", want: 0.5},
		{in: " 1.25 * 4 ", want: 5},
		{in: "((7))", want: 7},
	}

	for _, tt := range tests {
		got, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Eval(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
		wantPos int
	}{
		{in: "", wantErr: ErrEmpty, wantPos: -1},
		{in: "   ", wantErr: ErrEmpty, wantPos: -1},
		{in: "1/0", wantErr: ErrDivisionByZero, wantPos: -1},
		{in: "1/(2-2)", wantErr: ErrDivisionByZero, wantPos: -1},
		{in: "1+", wantErr: ErrSyntax, wantPos: 2},
		{in: "(1+2", wantErr: ErrSyntax, wantPos: 4},
		{in: "1+2)", wantErr: ErrSyntax, wantPos: 3},
		{in: "2**3", wantErr: ErrSyntax, wantPos: 2},
		{in: "1.2.3", wantErr: ErrSyntax, wantPos: 3},
		{in: "alert(1)", wantErr: ErrSyntax, wantPos: 0},
		{in: "1;2", wantErr: ErrSyntax, wantPos: 1},
		{in: ".", wantErr: ErrSyntax, wantPos: 0},
	}

	for _, tt := range tests {
		_, err := Eval(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("Eval(%q) error=%v, want %v", tt.in, err, tt.wantErr)
		}
		if tt.wantPos < 0 {
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Eval(%q) error=%T, want *ParseError", tt.in, err)
		}
		if pe.Pos != tt.wantPos {
			t.Fatalf("Eval(%q) pos=%d, want %d", tt.in, pe.Pos, tt.wantPos)
		}
	}
}
