package arith

import (
	"errors"
	"strconv"
)

// Expression = Term { '+' Term }
// Term       = Factor { '*' Factor }
// Factor     = '(' Expression ')' | Number
// Number     = digit { digit } [ '.' digit { digit } ]

// evaluation is the state of a single evaluation. It owns its cursor; the
// productions compute values as they consume input.
type evaluation struct {
	cur *cursor
	cfg config
	// depth is the number of open parentheses enclosing the cursor.
	depth int
}

// run evaluates a complete expression. Unless trailing input is allowed, the
// expression must consume the entire input.
func (e *evaluation) run() (float64, error) {
	r, err := e.expression()
	if err != nil {
		return 0, err
	}
	if e.cfg.trailing || e.cur.atEnd() {
		return r, nil
	}
	// atEnd has skipped whitespace if needed, so the cursor is on the first
	// leftover character.
	if b, _ := e.cur.raw(); b == ')' {
		return 0, &BracketError{Col: e.cur.pos}
	}
	return 0, &TrailingError{Col: e.cur.pos, Text: e.cur.rest()}
}

// expression evaluates a sum of one or more terms.
func (e *evaluation) expression() (float64, error) {
	r, err := e.term()
	if err != nil {
		return 0, err
	}
	for {
		if b, ok := e.cur.peek(); !ok || b != '+' {
			return r, nil
		}
		e.cur.advance()
		v, err := e.term()
		if err != nil {
			return 0, err
		}
		r += v
	}
}

// term evaluates a product of one or more factors.
func (e *evaluation) term() (float64, error) {
	r, err := e.factor()
	if err != nil {
		return 0, err
	}
	for {
		if b, ok := e.cur.peek(); !ok || b != '*' {
			return r, nil
		}
		e.cur.advance()
		v, err := e.factor()
		if err != nil {
			return 0, err
		}
		r *= v
	}
}

// factor evaluates either a parenthesized expression or a number.
func (e *evaluation) factor() (float64, error) {
	if b, ok := e.cur.peek(); !ok || b != '(' {
		return e.number()
	}
	e.depth++
	if e.cfg.depth > 0 && e.depth > e.cfg.depth {
		return 0, &DepthError{Col: e.cur.pos, Max: e.cfg.depth}
	}
	e.cur.advance()
	r, err := e.expression()
	if err != nil {
		return 0, err
	}
	if b, ok := e.cur.peek(); !ok || b != ')' {
		return 0, &BracketError{Col: e.cur.pos, Open: true, Found: e.cur.current()}
	}
	e.cur.advance()
	e.depth--
	return r, nil
}

// number scans the longest run of digits and decimal points and converts it.
// A run with more than one point is still scanned as one literal, so that
// "1.2.3" is reported as a malformed number rather than as trailing input.
func (e *evaluation) number() (float64, error) {
	b, ok := e.cur.peek()
	start := e.cur.pos
	for ok && (isDigit(b) || b == '.') {
		e.cur.advance()
		b, ok = e.cur.raw()
	}
	text := e.cur.src[start:e.cur.pos]
	if text == "" {
		return 0, &NumberError{Col: start, Found: e.cur.current()}
	}
	r, err := strconv.ParseFloat(text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Literals too large for float64 become infinity.
	default:
		return 0, &LiteralError{Col: start, Text: text, Err: err}
	}
	return r, nil
}
