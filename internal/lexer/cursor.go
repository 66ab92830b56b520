package lexer

import (
	"surgelint/internal/source"
)

// Cursor is a byte-level reader over a single file's content.
type Cursor struct {
	file *source.File
	off  uint32
}

func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.file.Content)
}

// Peek returns the current byte without consuming it. 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// Peek2 returns the current and next byte when both exist.
func (c *Cursor) Peek2() (byte, byte, bool) {
	if int(c.off)+1 >= len(c.file.Content) {
		return 0, 0, false
	}
	return c.file.Content[c.off], c.file.Content[c.off+1], true
}

// Bump consumes and returns the current byte.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.off++
	}
	return b
}

func (c *Cursor) Offset() uint32 {
	return c.off
}

// SpanFrom builds a span from a saved start offset to the current position.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.file.ID, Start: start, End: c.off}
}

// TextFrom returns the source slice from start to the current position.
func (c *Cursor) TextFrom(start uint32) string {
	return string(c.file.Content[start:c.off])
}
