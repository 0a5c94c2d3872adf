package stowatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize_StripsFillerOutsideStrings(t *testing.T) {
	out, err := Sanitize([]byte(" { \"a\" : \"b c\" } \n"))
	require.NoError(t, err)
	require.Equal(t, `{"a":"b c"}`, string(out))
}

func TestSanitize_ParityErrors(t *testing.T) {
	for _, bad := range []string{
		`{"a":[1,2}`, // bracket closed by brace
		`{"a":1`,     // unterminated object
		`[1,2]]`,     // stray closer
		`"abc`,       // unterminated string
		`{"a":"b\"`,  // escape keeps the quote open
	} {
		_, err := Sanitize([]byte(bad))
		require.ErrorIs(t, err, ErrInvalidJSON, "input %q", bad)
	}
}

func TestSanitize_EscapedQuotesAccounted(t *testing.T) {
	out, err := Sanitize([]byte(`{"a": "x \" y"}`))
	require.NoError(t, err)
	require.Equal(t, `{"a":"x \" y"}`, string(out))
}

func TestExtractString_Basic(t *testing.T) {
	body := []byte(`{"server_status": "up", "other": 1}`)
	v, err := ExtractString(body, "server_status")
	require.NoError(t, err)
	require.Equal(t, "up", v)
}

func TestExtractString_FirstOccurrenceWins(t *testing.T) {
	body := []byte(`[{"k":"first"},{"k":"second"}]`)
	v, err := ExtractString(body, "k")
	require.NoError(t, err)
	require.Equal(t, "first", v)
}

func TestExtractString_EscapedQuoteInValue(t *testing.T) {
	body := []byte(`{"k":"a\"b"}`)
	v, err := ExtractString(body, "k")
	require.NoError(t, err)
	require.Equal(t, `a"b`, v)
}

func TestExtractString_PatternNotFound(t *testing.T) {
	_, err := ExtractString([]byte(`{"a":"b"}`), "missing")
	require.ErrorIs(t, err, ErrPatternNotFound)
	// present but not a string value: the quote suffix of the pattern misses
	_, err = ExtractString([]byte(`{"k": 1}`), "k")
	require.ErrorIs(t, err, ErrPatternNotFound)
}

func TestExtractString_InvalidBuffer(t *testing.T) {
	_, err := ExtractString([]byte(`{"k":"v"`), "k")
	require.ErrorIs(t, err, ErrInvalidJSON)
}
