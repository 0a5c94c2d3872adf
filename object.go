package stowatch

// objectState is the member state machine:
// awaitingKey -> awaitingColon -> awaitingValue -> awaitingCommaOrEnd,
// cycling back to awaitingKey after a comma.
type objectState int

const (
	objAwaitingKey objectState = iota
	objAwaitingColon
	objAwaitingValue
	objAwaitingCommaOrEnd
)

// parseObject parses the members following an already-consumed '{'. Keys are
// checked for duplicates as they are read: a repeated key is a hard
// duplicate_key error, never last-write-wins. A comma must be followed by a
// key, so `{"a":1,}` is rejected. Exhaustion anywhere before the matching
// '}' is an ordinary unexpected_end_of_input, not a fatal condition.
func (p *parser) parseObject() (Value, error) {
	if err := p.push(); err != nil {
		return Value{}, err
	}
	defer p.pop()

	members := make(map[string]Value)
	var key string
	state := objAwaitingKey
	first := true
	for {
		r, ok := p.skipFiller()
		if !ok {
			return Value{}, errEndOfInput(p.cur.offset())
		}
		switch state {
		case objAwaitingKey:
			switch {
			case r == '}' && first:
				return Object(members), nil
			case r == '"':
				k, err := p.parseStringLiteral()
				if err != nil {
					return Value{}, err
				}
				if _, dup := members[k]; dup {
					return Value{}, &ParseError{
						Code:   CodeDuplicateKey,
						Token:  k,
						Offset: p.cur.last(),
					}
				}
				key = k
				state = objAwaitingColon
			default:
				return Value{}, errUnexpectedChar(r, p.cur.last())
			}
		case objAwaitingColon:
			if r != ':' {
				return Value{}, errUnexpectedChar(r, p.cur.last())
			}
			state = objAwaitingValue
		case objAwaitingValue:
			v, err := p.parseValueHead(r)
			if err != nil {
				return Value{}, err
			}
			members[key] = v
			state = objAwaitingCommaOrEnd
		case objAwaitingCommaOrEnd:
			switch r {
			case ',':
				state = objAwaitingKey
				first = false
			case '}':
				return Object(members), nil
			default:
				return Value{}, errUnexpectedChar(r, p.cur.last())
			}
		}
	}
}
