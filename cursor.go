package arith

import "unicode/utf8"

// cursor is a read position over an immutable input string. Positions never
// move backward.
type cursor struct {
	src string
	pos int
	// ws indicates whether peek skips whitespace before the next token.
	ws bool
}

func newCursor(src string, ws bool) *cursor {
	return &cursor{src: src, ws: ws}
}

// reset binds the cursor to a new input at position 0.
func (c *cursor) reset(src string) {
	c.src = src
	c.pos = 0
}

// peek returns the byte at the current position, or false at the end of the
// input. If the cursor skips whitespace, peek first advances past any.
func (c *cursor) peek() (byte, bool) {
	if c.ws {
		for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
			c.pos++
		}
	}
	return c.raw()
}

// raw returns the byte at the current position without skipping whitespace.
func (c *cursor) raw() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// advance moves past the current byte. It does nothing at the end of input.
func (c *cursor) advance() {
	if c.pos < len(c.src) {
		c.pos++
	}
}

// atEnd reports whether the cursor has consumed the whole input, including
// any trailing whitespace if the cursor skips it.
func (c *cursor) atEnd() bool {
	_, ok := c.peek()
	return !ok
}

// current returns the character at the current position as a string, or the
// empty string at the end of the input.
func (c *cursor) current() string {
	if c.pos >= len(c.src) {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return string(r)
}

// rest returns the unconsumed input.
func (c *cursor) rest() string {
	return c.src[c.pos:]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
