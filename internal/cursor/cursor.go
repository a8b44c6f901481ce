// Package cursor provides a position-aware character cursor over source text
// with conditional lookahead.
package cursor

import (
	"strings"
	"unicode/utf8"
)

// EOF is returned by [Cursor.Peek] and [Cursor.Next] at the end of input.
const EOF rune = -1

// Cursor walks source text one rune at a time, tracking the 1-based line and
// column of the next unconsumed rune.
type Cursor struct {
	src    string
	pos    int // byte offset of the next rune
	line   int
	column int
}

// New creates a Cursor at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src, line: 1, column: 1}
}

// Line returns the line of the next unconsumed rune.
func (c *Cursor) Line() int { return c.line }

// Column returns the column of the next unconsumed rune.
func (c *Cursor) Column() int { return c.column }

// Offset returns the byte offset of the next unconsumed rune.
func (c *Cursor) Offset() int { return c.pos }

// Done reports whether all input has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.src) }

// Peek returns the next rune without consuming it. Returns [EOF] at the end
// of input.
func (c *Cursor) Peek() rune {
	r, _ := c.decode()
	return r
}

// PeekN returns the rune n positions ahead (0 is the same as Peek) without
// consuming anything.
func (c *Cursor) PeekN(n int) rune {
	pos := c.pos
	for ; n > 0; n-- {
		if pos >= len(c.src) {
			return EOF
		}
		_, w := utf8.DecodeRuneInString(c.src[pos:])
		pos += w
	}
	if pos >= len(c.src) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.src[pos:])
	return r
}

// Next consumes and returns the next rune. Returns [EOF] at the end of input.
func (c *Cursor) Next() rune {
	r, w := c.decode()
	if r == EOF {
		return EOF
	}
	c.pos += w
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r
}

// PeekWhile consumes runes while pred holds and returns them. The first rune
// for which pred is false is left unconsumed. pred may keep state across
// calls; it is called exactly once per inspected rune.
func (c *Cursor) PeekWhile(pred func(r rune) bool) string {
	var b strings.Builder
	for {
		r := c.Peek()
		if r == EOF || !pred(r) {
			return b.String()
		}
		b.WriteRune(c.Next())
	}
}

// PeekUntil consumes runes until pred holds. It is PeekWhile(not pred).
func (c *Cursor) PeekUntil(pred func(r rune) bool) string {
	return c.PeekWhile(func(r rune) bool { return !pred(r) })
}

func (c *Cursor) decode() (rune, int) {
	if c.pos >= len(c.src) {
		return EOF, 0
	}
	r, w := rune(c.src[c.pos]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRuneInString(c.src[c.pos:])
	}
	return r, w
}
