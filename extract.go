package stowatch

import (
	"errors"
	"strings"

	"github.com/stowatch/stowatch/internal/pattern"
)

// Sentinel errors for the cheap extraction tier.
var (
	// ErrInvalidJSON reports a buffer that failed the structural sanity
	// check (unbalanced containers or an unterminated string).
	ErrInvalidJSON = errors.New("invalid json")
	// ErrPatternNotFound reports that the requested key pattern does not
	// occur in the buffer.
	ErrPatternNotFound = errors.New("pattern not found")
)

// Sanitize performs basic structural validation and strips whitespace that
// occurs outside of JSON strings. It checks parity for braces, brackets, and
// quotes, with escaped characters skipped so strings containing escaped
// quotes are accounted for. Whitespace inside strings is preserved.
func Sanitize(data []byte) ([]byte, error) {
	var stack []byte
	escaping := false
	quoting := false

	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch {
		case escaping:
			escaping = false
		case b == '\\':
			escaping = true
		case b == '"':
			quoting = !quoting
		case quoting:
			// string content, structurally inert
		case b == '{' || b == '[':
			stack = append(stack, b)
		case b == '}' || b == ']':
			// The opener sits exactly two code points below its closer.
			if len(stack) == 0 || stack[len(stack)-1] != b-2 {
				return nil, ErrInvalidJSON
			}
			stack = stack[:len(stack)-1]
		}
		if quoting || !asciiSpace(b) {
			out = append(out, b)
		}
	}
	if len(stack) != 0 || quoting || escaping {
		return nil, ErrInvalidJSON
	}
	return out, nil
}

// ExtractString locates the first occurrence of the literal `"<key>":"`
// pattern and returns the text up to the next unescaped quote. This is the
// cheap single-field tier for callers that only need one string member; the
// full Parse tree is the general-purpose fallback.
func ExtractString(data []byte, key string) (string, error) {
	clean, err := Sanitize(data)
	if err != nil {
		return "", err
	}
	needle := []byte(`"` + key + `":"`)
	beg, _, ok := pattern.Find(needle, clean)
	if !ok {
		return "", ErrPatternNotFound
	}

	var b strings.Builder
	escaping := false
	for _, c := range clean[beg+len(needle):] {
		switch {
		case escaping:
			b.WriteByte(c)
			escaping = false
		case c == '\\':
			escaping = true
		case c == '"':
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	// Sanitize guarantees quote parity, so an unterminated value means the
	// buffer mutated underneath us; report it as structurally invalid.
	return "", ErrInvalidJSON
}

func asciiSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
