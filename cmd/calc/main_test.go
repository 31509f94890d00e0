package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	in := strings.NewReader("1+2\n\n(2+3)*4\n1/0\n10/4\n")
	var out bytes.Buffer
	if err := run(in, &out); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := "3\n20\nerror: division by zero\n2.5\n"
	if got := out.String(); got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}
