package stowatch

import (
	"errors"
	"fmt"
	"strings"
)

// Parse error codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnexpectedToken reports a token that should not have been encountered
	// in that context if the JSON were valid, when the offending input could
	// not be captured (for example, exhaustion mid-keyword).
	CodeUnexpectedToken = "unexpected_token"
	// CodeUnexpectedTokenChar is the variant carrying the offending rune.
	CodeUnexpectedTokenChar = "unexpected_token_char"
	// CodeUnexpectedTokenString is the variant carrying the offending substring.
	CodeUnexpectedTokenString = "unexpected_token_string"
	// CodeUnexpectedEndOfInput reports exhaustion before a complete value, key,
	// or closing delimiter was seen. Example: `[3, 4`.
	CodeUnexpectedEndOfInput = "unexpected_end_of_input"
	// CodeIntegerWithLeadingZero rejects integer literals such as `0123`.
	// `0`, `-0` and fractional literals like `0.123` remain valid.
	CodeIntegerWithLeadingZero = "integer_with_leading_zero"
	// CodeBadDecimalPointPlacement reports a decimal point in an invalid
	// location. Invalid example: `-.10.` Valid example: `-1.0`.
	CodeBadDecimalPointPlacement = "bad_decimal_point_placement"
	// CodeOverOneDecimalPoint reports a second decimal point inside one
	// numeric literal. Invalid example: `5.141.24`.
	CodeOverOneDecimalPoint = "over_one_decimal_point"
	// CodeDecimalPointPlacedAfter reports a decimal point immediately
	// following a non-digit; the rune it followed is carried alongside.
	CodeDecimalPointPlacedAfter = "decimal_point_placed_after"
	// CodeInconvertibleToFloat wraps a strconv failure for a literal that
	// accumulated with a decimal point.
	CodeInconvertibleToFloat = "inconvertible_to_float"
	// CodeInconvertibleToInt wraps a strconv failure for a whole-number
	// literal (overflow, lone minus, and similar).
	CodeInconvertibleToInt = "inconvertible_to_int"
	// CodeValueNotOfExpectedType reports a checked narrowing against a Value
	// holding a different kind.
	CodeValueNotOfExpectedType = "value_not_of_expected_type"
	// CodeDuplicateKey rejects a repeated object key; duplicate keys are a
	// hard parse error, never last-write-wins.
	CodeDuplicateKey = "duplicate_key"
	// CodeNestingTooDeep rejects container nesting beyond ParseOpt.MaxDepth.
	CodeNestingTooDeep = "nesting_too_deep"
)

// ParseError is a single structured parse failure. Code is always set; the
// remaining fields carry whatever context the failing parser had at hand.
type ParseError struct {
	Code   string
	Char   rune   // Offending rune (unexpected_token_char, decimal_point_placed_after).
	Token  string // Offending substring, literal, or duplicated key.
	Want   string // Expected kind name for value_not_of_expected_type.
	Offset int64  // Byte offset into the input; -1 when unknown.
	Cause  error  // Underlying conversion failure, when any.
}

// Error renders the code followed by whatever context is present.
func (e *ParseError) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Code)
	switch {
	case e.Char != 0:
		fmt.Fprintf(b, " %q", e.Char)
	case e.Token != "":
		fmt.Fprintf(b, " %q", e.Token)
	}
	if e.Want != "" {
		fmt.Fprintf(b, " (want %s)", e.Want)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(b, " at offset %d", e.Offset)
	}
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap exposes the underlying cause to errors.Is/errors.As chains.
func (e *ParseError) Unwrap() error { return e.Cause }

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func errEndOfInput(off int64) *ParseError {
	return &ParseError{Code: CodeUnexpectedEndOfInput, Offset: off}
}

func errUnexpectedChar(r rune, off int64) *ParseError {
	return &ParseError{Code: CodeUnexpectedTokenChar, Char: r, Offset: off}
}
