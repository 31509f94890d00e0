package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Special keys. Every other accepted key is appended to the expression as is.
const (
	KeyClear     = "C"
	KeyBackspace = "back"
	KeyEquals    = "="
)

// ErrorDisplay is shown after an expression fails to evaluate.
const ErrorDisplay = "Error"

var ErrUnknownKey = errors.New("unknown key")

// Keys lists the keypad layout row by row, as rendered on the page.
var Keys = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", KeyEquals, "+"},
	{"(", ")", KeyBackspace, KeyClear},
}

var appendable = map[string]bool{
	"0": true, "1": true, "2": true, "3": true, "4": true,
	"5": true, "6": true, "7": true, "8": true, "9": true,
	".": true, "+": true, "-": true, "*": true, "/": true,
	"(": true, ")": true,
}

// Keypad accumulates key presses into an expression string.
// The zero value is an empty keypad.
type Keypad struct {
	expr    string
	errored bool
	lastErr error
}

// Press applies one key.
func (k *Keypad) Press(key string) error {
	switch key {
	case KeyClear:
		k.reset()
		return nil
	case KeyBackspace:
		if k.errored {
			k.reset()
			return nil
		}
		if n := len(k.expr); n > 0 {
			k.expr = k.expr[:n-1]
		}
		return nil
	case KeyEquals:
		return k.evaluate()
	}

	if !appendable[key] {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if k.errored {
		k.reset()
	}
	k.expr += key
	return nil
}

// Expression returns the accumulated expression.
func (k *Keypad) Expression() string {
	return k.expr
}

// Display returns what the keypad screen shows.
func (k *Keypad) Display() string {
	if k.errored {
		return ErrorDisplay
	}
	if k.expr == "" {
		return "0"
	}
	return k.expr
}

// Err returns the evaluation error behind an Error display, if any.
func (k *Keypad) Err() error {
	if !k.errored {
		return nil
	}
	return k.lastErr
}

func (k *Keypad) evaluate() error {
	v, err := Eval(k.expr)
	if err != nil {
		k.errored = true
		k.lastErr = err
		return err
	}
	k.expr = Format(v)
	return nil
}

func (k *Keypad) reset() {
	k.expr = ""
	k.errored = false
	k.lastErr = nil
}

// Format renders a result without trailing zeros.
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'g', 12, 64)
	if strings.Contains(s, "e") {
		// Keep the result typeable: the grammar has no exponent form.
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return s
}
