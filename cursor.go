package stowatch

import "unicode/utf8"

// cursor is a lazy, finite, forward-only iterator over the Unicode scalar
// values of the input text. Exhaustion is signaled by the ok flag, not an
// error; callers decide whether running out mid-construct is a parse error.
type cursor struct {
	input string
	pos   int // byte offset of the next unconsumed rune
	prev  int // byte offset of the rune most recently returned by next; -1 when none
}

func newCursor(input string) *cursor {
	return &cursor{input: input, prev: -1}
}

// next consumes and returns the next scalar value.
func (c *cursor) next() (rune, bool) {
	if c.pos >= len(c.input) {
		c.prev = -1
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.prev = c.pos
	c.pos += size
	return r, true
}

// peek reports the next scalar value without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// take consumes up to n runes and returns them verbatim. Bounded lookahead
// for fixed-length keyword matching; a short result means the input ran out.
func (c *cursor) take(n int) string {
	start := c.pos
	for i := 0; i < n; i++ {
		if _, ok := c.next(); !ok {
			break
		}
	}
	return c.input[start:c.pos]
}

// offset is the byte position of the next unconsumed rune.
func (c *cursor) offset() int64 { return int64(c.pos) }

// last is the byte position where the most recently consumed rune started,
// or -1 when nothing is available to report.
func (c *cursor) last() int64 { return int64(c.prev) }
