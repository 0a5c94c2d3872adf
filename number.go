package stowatch

import (
	"strconv"
	"strings"
)

// parseNumber accumulates a maximal numeric literal: digits, at most one
// leading '-', and at most one '.'. The head rune has already been consumed
// by the dispatcher. The literal ends at (without consuming) ',', '}', ']',
// filler, or end of input; the surrounding container skips any filler before
// its next dispatch.
//
// A literal containing a decimal point converts to Float, anything else to
// Integer. Leading zeros are rejected for integer literals (`0123`), while
// `0`, `-0`, and fractional forms such as `0.123` stay valid. Exponent
// notation is not part of this grammar and fails as an unexpected rune.
func (p *parser) parseNumber(head rune) (Value, error) {
	start := p.cur.last()
	if !isDigit(head) && head != '-' {
		return Value{}, errUnexpectedChar(head, start)
	}

	var b strings.Builder
	b.WriteRune(head)
	prev := head
	sawPoint := false

	for {
		r, ok := p.cur.peek()
		if !ok || r == ',' || r == '}' || r == ']' || isFiller(r) {
			break
		}
		p.cur.next()
		switch {
		case r == '.':
			if sawPoint {
				return Value{}, &ParseError{Code: CodeOverOneDecimalPoint, Offset: p.cur.last()}
			}
			if !isDigit(prev) {
				return Value{}, &ParseError{
					Code:   CodeDecimalPointPlacedAfter,
					Char:   prev,
					Offset: p.cur.last(),
				}
			}
			sawPoint = true
			b.WriteRune(r)
			prev = r
		case isDigit(r):
			b.WriteRune(r)
			prev = r
		default:
			// Must stay below the '.' and digit cases: both are non-digit
			// exemptions checked first. Preserve the order if refactoring.
			return Value{}, errUnexpectedChar(r, p.cur.last())
		}
	}

	lit := b.String()
	if sawPoint && prev == '.' {
		// a literal ending in '.' (strconv would accept "1.")
		return Value{}, &ParseError{Code: CodeBadDecimalPointPlacement, Token: lit, Offset: start}
	}
	if sawPoint {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Value{}, &ParseError{
				Code:   CodeInconvertibleToFloat,
				Token:  lit,
				Offset: start,
				Cause:  err,
			}
		}
		return Float(f), nil
	}
	if integerLeadingZero(lit) {
		return Value{}, &ParseError{Code: CodeIntegerWithLeadingZero, Token: lit, Offset: start}
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Value{}, &ParseError{
			Code:   CodeInconvertibleToInt,
			Token:  lit,
			Offset: start,
			Cause:  err,
		}
	}
	return Integer(i), nil
}

// integerLeadingZero reports whether a whole-number literal starts with a
// superfluous zero once any sign is stripped.
func integerLeadingZero(lit string) bool {
	s := strings.TrimPrefix(lit, "-")
	return len(s) > 1 && s[0] == '0'
}
