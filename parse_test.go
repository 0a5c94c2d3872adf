package stowatch

import (
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string, opts ...ParseOpt) Value {
	t.Helper()
	v, err := Parse(text, opts...)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func mustFail(t *testing.T, text string, code string) *ParseError {
	t.Helper()
	_, err := Parse(text)
	pe, ok := AsParseError(err)
	if !ok {
		t.Fatalf("Parse(%q): expected *ParseError, got %v", text, err)
	}
	if pe.Code != code {
		t.Fatalf("Parse(%q): expected %s, got %s (%v)", text, code, pe.Code, pe)
	}
	return pe
}

func TestParse_ScalarRoots(t *testing.T) {
	if v := mustParse(t, `"hello"`); v.Kind() != KindString {
		t.Fatalf("kind: %s", v.Kind())
	}
	if v := mustParse(t, `42`); v.Kind() != KindInteger {
		t.Fatalf("kind: %s", v.Kind())
	}
	if v := mustParse(t, `true`); v.Kind() != KindBoolean {
		t.Fatalf("kind: %s", v.Kind())
	}
	if v := mustParse(t, `null`); !v.IsNull() {
		t.Fatalf("kind: %s", v.Kind())
	}
}

func TestParse_UnexpectedRoot(t *testing.T) {
	pe := mustFail(t, `xyz`, CodeUnexpectedTokenChar)
	if pe.Char != 'x' {
		t.Fatalf("char: %q", pe.Char)
	}
	mustFail(t, ``, CodeUnexpectedEndOfInput)
	mustFail(t, "  \t\n ", CodeUnexpectedEndOfInput)
}

func TestParse_TrailingGarbageRejected(t *testing.T) {
	mustFail(t, `[1] x`, CodeUnexpectedTokenChar)
	if _, err := Parse("[1] \n\t "); err != nil {
		t.Fatalf("trailing filler should be fine: %v", err)
	}
}

func TestParse_NestingRoundTrip(t *testing.T) {
	v := mustParse(t, `[1, [2, [3, {"k": [4, 5]}]]]`)
	want := []any{
		int64(1),
		[]any{
			int64(2),
			[]any{
				int64(3),
				map[string]any{"k": []any{int64(4), int64(5)}},
			},
		},
	}
	if got := v.Interface(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestParse_WhitespaceInsensitivity(t *testing.T) {
	compact := `{"a":[1,2.5,{"b":true}],"c":"x y"}`
	spaced := "\n {  \"a\" :\t[ 1 ,\r 2.5 , { \"b\" :  true } ] ,\n \"c\" : \"x y\" }\n"
	a, err := Parse(compact)
	if err != nil {
		t.Fatalf("compact: %v", err)
	}
	b, err := Parse(spaced)
	if err != nil {
		t.Fatalf("spaced: %v", err)
	}
	if !reflect.DeepEqual(a.Interface(), b.Interface()) {
		t.Fatalf("filler between tokens changed the value:\n%#v\n%#v", a.Interface(), b.Interface())
	}
}

func TestParse_ControlCharactersAsFiller(t *testing.T) {
	v := mustParse(t, "\x00[\x011,\x022\x03]\x04")
	want := []any{int64(1), int64(2)}
	if got := v.Interface(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestParse_Exhaustion(t *testing.T) {
	mustFail(t, `{"a":`, CodeUnexpectedEndOfInput)
	mustFail(t, `["a"`, CodeUnexpectedEndOfInput)
	mustFail(t, `{"a"`, CodeUnexpectedEndOfInput)
	mustFail(t, `{`, CodeUnexpectedEndOfInput)
	mustFail(t, `[`, CodeUnexpectedEndOfInput)
}

func TestParse_DepthBound(t *testing.T) {
	deep := strings.Repeat("[", 40) + strings.Repeat("]", 40)
	if _, err := Parse(deep, ParseOpt{MaxDepth: 40}); err != nil {
		t.Fatalf("depth 40 within bound: %v", err)
	}
	_, err := Parse(deep, ParseOpt{MaxDepth: 39})
	pe, ok := AsParseError(err)
	if !ok || pe.Code != CodeNestingTooDeep {
		t.Fatalf("expected nesting_too_deep, got %v", err)
	}
}

func TestParse_DefaultDepthBound(t *testing.T) {
	deep := strings.Repeat("[", DefaultMaxDepth+1) + strings.Repeat("]", DefaultMaxDepth+1)
	_, err := Parse(deep)
	pe, ok := AsParseError(err)
	if !ok || pe.Code != CodeNestingTooDeep {
		t.Fatalf("expected nesting_too_deep, got %v", err)
	}
}

func TestParse_LastOptionWins(t *testing.T) {
	deep := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := Parse(deep, ParseOpt{MaxDepth: 2}, ParseOpt{MaxDepth: 5}); err != nil {
		t.Fatalf("last option should win: %v", err)
	}
}

func TestParse_PureAcrossInvocations(t *testing.T) {
	const text = `{"a":[1,2],"b":"x"}`
	first, err := Parse(text)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := Parse(text)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(first.Interface(), second.Interface()) {
		t.Fatalf("parse is not a pure function of its input")
	}
}
