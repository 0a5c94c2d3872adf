package stowatch

// parseBoolean consumes the remainder of a true/false keyword. The head rune
// ('t' or 'f') has already been consumed by the dispatcher. Matching is
// case-sensitive with no partial forms: a wrong continuation is an
// unexpected-token error carrying what was actually read, and running out of
// input before the keyword completes is unexpected_token with no capture.
func (p *parser) parseBoolean(head rune) (Value, error) {
	start := p.cur.last()
	var want string
	switch head {
	case 't':
		want = "rue"
	case 'f':
		want = "alse"
	default:
		return Value{}, errUnexpectedChar(head, start)
	}
	rest := p.cur.take(len(want))
	if len(rest) < len(want) {
		return Value{}, &ParseError{Code: CodeUnexpectedToken, Offset: start}
	}
	if rest != want {
		return Value{}, &ParseError{
			Code:   CodeUnexpectedTokenString,
			Token:  string(head) + rest,
			Offset: start,
		}
	}
	return Bool(head == 't'), nil
}

// parseNull consumes the remainder of the null keyword; same discipline as
// parseBoolean.
func (p *parser) parseNull() (Value, error) {
	start := p.cur.last()
	rest := p.cur.take(3)
	if len(rest) < 3 {
		return Value{}, &ParseError{Code: CodeUnexpectedToken, Offset: start}
	}
	if rest != "ull" {
		return Value{}, &ParseError{
			Code:   CodeUnexpectedTokenString,
			Token:  "n" + rest,
			Offset: start,
		}
	}
	return Null(), nil
}
