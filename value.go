package stowatch

// Kind identifies which of the seven JSON value kinds a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a decoded JSON tree. A Value is complete and
// self-contained: containers hold their children by value, nothing points
// back at a parent, and parsing is the only producer. The zero Value is Null.
//
// Integer and Float are distinct kinds even though JSON itself does not
// differentiate: a literal containing a decimal point decodes as Float,
// anything else as Integer.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the unit value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Integer wraps a 64-bit signed whole number.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float wraps a 64-bit IEEE double.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps owned text with escapes already resolved.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array wraps an ordered element sequence.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object wraps a key-to-value mapping.
func Object(members map[string]Value) Value { return Value{kind: KindObject, obj: members} }

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// ---- narrowing accessors: (value, ok) on match, zero value otherwise ----

// AsString narrows to the string variant.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsInteger narrows to the integer variant.
func (v Value) AsInteger() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// AsFloat narrows to the float variant.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsBool narrows to the boolean variant.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// AsArray narrows to the array variant. The returned slice is the Value's
// own backing storage; callers must not mutate it.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject narrows to the object variant. The returned map is the Value's
// own backing storage; callers must not mutate it.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// ---- predicates ----

func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) IsBool() bool    { return v.kind == KindBoolean }
func (v Value) IsInteger() bool { return v.kind == KindInteger }
func (v Value) IsFloat() bool   { return v.kind == KindFloat }
func (v Value) IsString() bool  { return v.kind == KindString }
func (v Value) IsArray() bool   { return v.kind == KindArray }
func (v Value) IsObject() bool  { return v.kind == KindObject }

// IsNumber reports whether the Value holds either numeric variant.
func (v Value) IsNumber() bool { return v.kind == KindInteger || v.kind == KindFloat }

// IsPrimitive reports whether the Value holds a non-container variant other
// than null.
func (v Value) IsPrimitive() bool {
	return v.IsString() || v.IsNumber() || v.IsBool()
}

// IsContainer reports whether the Value holds an object or an array.
func (v Value) IsContainer() bool { return v.kind == KindObject || v.kind == KindArray }

// ---- checked narrowing: a typed error instead of an ok flag ----

func (v Value) typeError(want Kind) *ParseError {
	return &ParseError{
		Code:   CodeValueNotOfExpectedType,
		Token:  v.kind.String(),
		Want:   want.String(),
		Offset: -1,
	}
}

// Text returns the string content or a value_not_of_expected_type error.
func (v Value) Text() (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", v.typeError(KindString)
	}
	return s, nil
}

// Int returns the integer content or a value_not_of_expected_type error.
func (v Value) Int() (int64, error) {
	i, ok := v.AsInteger()
	if !ok {
		return 0, v.typeError(KindInteger)
	}
	return i, nil
}

// Members returns the object mapping or a value_not_of_expected_type error.
func (v Value) Members() (map[string]Value, error) {
	m, ok := v.AsObject()
	if !ok {
		return nil, v.typeError(KindObject)
	}
	return m, nil
}

// Interface projects the tree onto untyped Go values (nil, bool, int64,
// float64, string, []any, map[string]any) for interop with encoders and
// reflection-based consumers.
func (v Value) Interface() any {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, member := range v.obj {
			out[k] = member.Interface()
		}
		return out
	default:
		return nil
	}
}
