package stowatch

import (
	"reflect"
	"testing"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Fatalf("zero Value should be null, got %s", v.Kind())
	}
	if v.Interface() != nil {
		t.Fatalf("null Interface: got %v", v.Interface())
	}
}

func TestValue_NarrowingAccessors(t *testing.T) {
	if s, ok := String("hi").AsString(); !ok || s != "hi" {
		t.Fatalf("AsString: got %q ok=%v", s, ok)
	}
	if i, ok := Integer(-7).AsInteger(); !ok || i != -7 {
		t.Fatalf("AsInteger: got %d ok=%v", i, ok)
	}
	if f, ok := Float(1.5).AsFloat(); !ok || f != 1.5 {
		t.Fatalf("AsFloat: got %v ok=%v", f, ok)
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Fatalf("AsBool: got %v ok=%v", b, ok)
	}
	// mismatches signal absence, never panic
	if _, ok := Integer(1).AsString(); ok {
		t.Fatalf("integer should not narrow to string")
	}
	if _, ok := Null().AsObject(); ok {
		t.Fatalf("null should not narrow to object")
	}
}

func TestValue_Predicates(t *testing.T) {
	if !Integer(1).IsNumber() || !Float(1).IsNumber() {
		t.Fatalf("numeric kinds should be numbers")
	}
	if !String("x").IsPrimitive() || Null().IsPrimitive() {
		t.Fatalf("primitive classification wrong")
	}
	if !Array().IsContainer() || !Object(nil).IsContainer() {
		t.Fatalf("container classification wrong")
	}
	if Array().IsPrimitive() {
		t.Fatalf("array is not primitive")
	}
}

func TestValue_CheckedNarrowing(t *testing.T) {
	_, err := Integer(3).Text()
	pe, ok := AsParseError(err)
	if !ok || pe.Code != CodeValueNotOfExpectedType {
		t.Fatalf("expected value_not_of_expected_type, got %v", err)
	}
	if pe.Token != "integer" || pe.Want != "string" {
		t.Fatalf("got=%q want=%q", pe.Token, pe.Want)
	}
	if _, err := String("x").Int(); err == nil {
		t.Fatalf("expected Int mismatch error")
	}
	if _, err := Array().Members(); err == nil {
		t.Fatalf("expected Members mismatch error")
	}
	m, err := Object(map[string]Value{"a": Integer(1)}).Members()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got, _ := m["a"].AsInteger(); got != 1 {
		t.Fatalf("member: got %d", got)
	}
}

func TestValue_Interface(t *testing.T) {
	v := Object(map[string]Value{
		"k": Array(Integer(4), Float(5.5), String("s"), Bool(false), Null()),
	})
	want := map[string]any{
		"k": []any{int64(4), 5.5, "s", false, nil},
	}
	if got := v.Interface(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Interface: got %#v", got)
	}
}
