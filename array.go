package stowatch

// arrayState tracks separator discipline between elements.
type arrayState int

const (
	arrayAwaitingFirst arrayState = iota // nothing parsed yet: value or ']'
	arrayAwaitingSep                     // after a value: ',' or ']'
	arrayAwaitingElem                    // after a comma: a value only
)

// parseArray parses the elements following an already-consumed '['. Commas
// must separate exactly adjacent elements: `[1,,2]`, `[1,2,]`, and `[,1]`
// are all rejected rather than treated as no-op separators. Exhaustion
// before the closing ']' is unexpected_end_of_input, never a partial tree.
func (p *parser) parseArray() (Value, error) {
	if err := p.push(); err != nil {
		return Value{}, err
	}
	defer p.pop()

	var items []Value
	state := arrayAwaitingFirst
	for {
		r, ok := p.skipFiller()
		if !ok {
			return Value{}, errEndOfInput(p.cur.offset())
		}
		switch r {
		case ']':
			if state == arrayAwaitingElem {
				return Value{}, errUnexpectedChar(r, p.cur.last())
			}
			return Array(items...), nil
		case ',':
			if state != arrayAwaitingSep {
				return Value{}, errUnexpectedChar(r, p.cur.last())
			}
			state = arrayAwaitingElem
		default:
			if state == arrayAwaitingSep {
				return Value{}, errUnexpectedChar(r, p.cur.last())
			}
			v, err := p.parseValueHead(r)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
			state = arrayAwaitingSep
		}
	}
}
