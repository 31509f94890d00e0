package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

var (
	ErrEmpty          = errors.New("empty expression")
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
)

// ParseError reports where in the expression parsing stopped.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", ErrSyntax, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}

	start := l.i
	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+", pos: start}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-", pos: start}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*", pos: start}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/", pos: start}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "(", pos: start}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")", pos: start}
	}

	ch := l.s[l.i]
	if ch == '.' || isDigit(ch) {
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		n, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokInvalid, text: txt, pos: start}
		}
		return token{kind: tokNumber, text: txt, pos: start, num: n}
	}

	l.i++
	return token{kind: tokInvalid, text: string(ch), pos: start}
}

// scanNumber consumes digits with at most one decimal point.
func scanNumber(s string, i int) int {
	seenDot := false
	for i < len(s) {
		switch {
		case isDigit(s[i]):
		case s[i] == '.' && !seenDot:
			seenDot = true
		default:
			return i
		}
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

// Eval parses and evaluates an arithmetic expression over numbers,
// + - * / and parentheses, with the usual precedence and unary signs.
func Eval(expr string) (float64, error) {
	p := &parser{l: lexer{s: expr}}
	p.next()
	if p.cur.kind == tokEOF {
		return 0, ErrEmpty
	}

	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	if p.cur.kind != tokEOF {
		return 0, p.unexpected()
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("result out of range: %w", ErrSyntax)
	}
	return v, nil
}

func (p *parser) parseSum() (float64, error) {
	left, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.kind
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return 0, err
		}
		if op == tokPlus {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

func (p *parser) parseProduct() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := p.cur.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == tokStar {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		neg := p.cur.kind == tokMinus
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if neg {
			return -x, nil
		}
		return x, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.num
		p.next()
		return v, nil
	case tokLParen:
		p.next()
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		if p.cur.kind != tokRParen {
			return 0, &ParseError{Pos: p.cur.pos, Msg: "expected ')'"}
		}
		p.next()
		return v, nil
	default:
		return 0, p.unexpected()
	}
}

func (p *parser) unexpected() error {
	switch p.cur.kind {
	case tokEOF:
		return &ParseError{Pos: p.cur.pos, Msg: "unexpected end of expression"}
	case tokInvalid:
		return &ParseError{Pos: p.cur.pos, Msg: fmt.Sprintf("invalid character %q", p.cur.text)}
	default:
		return &ParseError{Pos: p.cur.pos, Msg: fmt.Sprintf("unexpected %q", p.cur.text)}
	}
}
