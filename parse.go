package stowatch

import "unicode"

// Parse is the primary entry point. It decodes one complete JSON document
// from text and returns the typed value tree. Parsing is a pure function of
// its input: no state is shared across calls, no I/O is performed, and every
// failure is a structured *ParseError rather than a panic or a silent Null.
func Parse(text string, opts ...ParseOpt) (Value, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	p := &parser{cur: newCursor(text), maxDepth: opt.MaxDepth}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	// Only filler may follow the document; anything else is an error rather
	// than a silently ignored tail.
	if r, ok := p.skipFiller(); ok {
		return Value{}, errUnexpectedChar(r, p.cur.last())
	}
	return v, nil
}

// ParseBytes decodes a complete JSON document from a raw byte buffer.
func ParseBytes(data []byte, opts ...ParseOpt) (Value, error) {
	return Parse(string(data), opts...)
}

// parser tracks the shared cursor and the container recursion depth. One
// parser lives for exactly one top-level Parse invocation.
type parser struct {
	cur      *cursor
	depth    int
	maxDepth int
}

// isFiller classifies runes skipped between tokens: whitespace and control
// characters.
func isFiller(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// skipFiller consumes filler runes and returns the first significant one.
func (p *parser) skipFiller() (rune, bool) {
	for {
		r, ok := p.cur.next()
		if !ok {
			return 0, false
		}
		if isFiller(r) {
			continue
		}
		return r, true
	}
}

// parseValue skips leading filler and routes on the first significant rune.
// Container parsers re-enter here for every element and member value, so the
// call graph mirrors the nesting depth of the input.
func (p *parser) parseValue() (Value, error) {
	head, ok := p.skipFiller()
	if !ok {
		return Value{}, errEndOfInput(p.cur.offset())
	}
	return p.parseValueHead(head)
}

// parseValueHead dispatches on an already-consumed first significant rune.
func (p *parser) parseValueHead(head rune) (Value, error) {
	switch {
	case head == 't' || head == 'f':
		return p.parseBoolean(head)
	case head == 'n':
		return p.parseNull()
	case head == '"':
		return p.parseString()
	case isDigit(head) || head == '-':
		return p.parseNumber(head)
	case head == '{':
		return p.parseObject()
	case head == '[':
		return p.parseArray()
	default:
		return Value{}, errUnexpectedChar(head, p.cur.last())
	}
}

// push enters one container level, enforcing the depth bound.
func (p *parser) push() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &ParseError{Code: CodeNestingTooDeep, Offset: p.cur.last()}
	}
	return nil
}

func (p *parser) pop() { p.depth-- }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
