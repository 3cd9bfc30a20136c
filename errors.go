package arith

import "strconv"

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position at which the closing parenthesis was expected, or
	// the position of an unmatched closing parenthesis.
	Col int
	// Open is true when an open parenthesis was never closed and false when
	// a close parenthesis appeared with no open parenthesis.
	Open bool
	// Found is the character found where a closing parenthesis was expected,
	// or the empty string if the input ended.
	Found string
}

func (err *BracketError) Error() string {
	if !err.Open {
		return errpos(err.Col, "close bracket ) with no open bracket")
	}
	if err.Found == "" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "expected ) but found "+strconv.Quote(err.Found))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NumberError is an error indicating that a number was expected but no
// numeric characters were present. It implements InputError.
type NumberError struct {
	// Col is the position at which the number was expected.
	Col int
	// Found is the character found instead, or the empty string if the input
	// ended.
	Found string
}

func (err *NumberError) Error() string {
	if err.Found == "" {
		return errpos(err.Col, "expected number at end of input")
	}
	return errpos(err.Col, "expected number but found "+strconv.Quote(err.Found))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a run of digits and decimal points that
// does not form a number, e.g. "1.2.3". It implements InputError.
type LiteralError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as it appeared in the input.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// TrailingError is an error indicating input following a complete expression.
// It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed character.
	Col int
	// Text is the unconsumed input.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// DepthError is an error indicating parentheses nested more deeply than
// allowed by MaxDepth. It implements InputError.
type DepthError struct {
	// Col is the position of the open parenthesis exceeding the limit.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the zero-based byte offset in the input at which the error
	// was detected.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*DepthError)(nil)
)
