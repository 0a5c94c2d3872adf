package stowatch

import "strings"

// parseString decodes a string literal whose opening quote has already been
// consumed by the dispatcher. The delimiters never appear in the result.
func (p *parser) parseString() (Value, error) {
	s, err := p.parseStringLiteral()
	if err != nil {
		return Value{}, err
	}
	return String(s), nil
}

// parseStringLiteral consumes runes until an unescaped closing quote and
// returns the decoded content. Escape handling: \n \r \t \b \f map to their
// control characters; any other rune following a backslash is inserted
// literally (so \" yields " and \\ yields \). Exhaustion before the closing
// quote, including a trailing lone backslash, is unexpected_end_of_input —
// an unterminated string is never a successful result.
func (p *parser) parseStringLiteral() (string, error) {
	var b strings.Builder
	for {
		r, ok := p.cur.next()
		if !ok {
			return "", errEndOfInput(p.cur.offset())
		}
		switch r {
		case '"':
			return b.String(), nil
		case '\\':
			esc, ok := p.cur.next()
			if !ok {
				return "", errEndOfInput(p.cur.offset())
			}
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			default:
				b.WriteRune(esc)
			}
		default:
			b.WriteRune(r)
		}
	}
}
