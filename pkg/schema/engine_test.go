package schema

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func positive(v any) bool {
	switch n := v.(type) {
	case int:
		return n > 0
	case float64:
		return n > 0
	default:
		return false
	}
}

func TestValidate_EndToEnd(t *testing.T) {
	s := Schema{
		"name":  String(),
		"age":   Number(),
		"email": String(),
		"other": Undefined(),
		"sx":    Array(String()),
	}

	input := map[string]any{
		"name":  "John Doe",
		"age":   "30", // wrong type on purpose
		"email": "john.doe@example.com",
		// sx missing
	}

	res := Validate(s, input, nil)

	want := map[string]bool{
		"name":  true,
		"age":   false,
		"email": true,
		"other": true,
		"sx":    false,
	}
	for key, valid := range want {
		f, ok := res[key]
		if !ok {
			t.Fatalf("result missing key %q", key)
		}
		if f.Valid != valid {
			t.Errorf("field %q = %v, want %v", key, f.Valid, valid)
		}
	}
	if len(res) != len(s) {
		t.Errorf("result has %d keys, want %d", len(res), len(s))
	}
}

func TestValidate_UndefinedTag(t *testing.T) {
	s := Schema{"other": Undefined()}

	tests := []struct {
		name  string
		input map[string]any
		want  bool
	}{
		{"absent key", map[string]any{}, true},
		{"explicit nil", map[string]any{"other": nil}, true},
		{"present value", map[string]any{"other": "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(s, tt.input, nil)["other"].Valid; got != tt.want {
				t.Errorf("other = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate_NullTag(t *testing.T) {
	s := Schema{"gone": Null()}

	tests := []struct {
		name  string
		input map[string]any
		want  bool
	}{
		{"explicit nil", map[string]any{"gone": nil}, true},
		{"absent key", map[string]any{}, false},
		{"present value", map[string]any{"gone": 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(s, tt.input, nil)["gone"].Valid; got != tt.want {
				t.Errorf("gone = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate_MissingKeyFailsClosed(t *testing.T) {
	// Every non-undefined/null rule kind fails on a missing key.
	rules := map[string]Rule{
		"type":      String(),
		"predicate": Predicate("any", func(any) bool { return true }),
		"enum":      Enum("a"),
		"array":     Array(String()),
		"composite": All(String()),
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			res := Validate(Schema{"field": rule}, map[string]any{}, nil)
			if res["field"].Valid {
				t.Errorf("missing key with %s rule = valid, want invalid", name)
			}
		})
	}
}

func TestValidate_TypeTags(t *testing.T) {
	tests := []struct {
		tag   TypeTag
		value any
		want  bool
	}{
		{TagString, "hello", true},
		{TagString, "", true},
		{TagString, 42, false},
		{TagNumber, 42, true},
		{TagNumber, int64(42), true},
		{TagNumber, 3.14, true},
		{TagNumber, float32(3.14), true},
		{TagNumber, uint8(7), true},
		{TagNumber, "42", false},
		{TagBool, true, true},
		{TagBool, "true", false},
		{TagObject, map[string]any{"k": 1}, true},
		{TagObject, map[string]any{}, true},
		{TagObject, map[string]any(nil), false},
		{TagObject, []any{}, false},
		{TagObject, "x", false},
		{TypeTag("symbol"), "x", false}, // unknown tag fails closed
	}

	for _, tt := range tests {
		res := Validate(Schema{"f": Type(tt.tag)}, map[string]any{"f": tt.value}, nil)
		if res["f"].Valid != tt.want {
			t.Errorf("tag %q with %#v = %v, want %v", tt.tag, tt.value, res["f"].Valid, tt.want)
		}
	}
}

func TestValidate_Predicate(t *testing.T) {
	s := Schema{"n": Predicate("positive", positive)}

	if !Validate(s, map[string]any{"n": 5}, nil)["n"].Valid {
		t.Error("positive(5) = invalid, want valid")
	}
	if Validate(s, map[string]any{"n": -5}, nil)["n"].Valid {
		t.Error("positive(-5) = valid, want invalid")
	}
}

func TestValidate_CompositeAnd(t *testing.T) {
	s := Schema{"n": All(Number(), Predicate("positive", positive))}

	tests := []struct {
		value any
		want  bool
	}{
		{5, true},
		{-5, false},
		{"5", false}, // type check fails even if a coercing comparison would pass
	}

	for _, tt := range tests {
		got := Validate(s, map[string]any{"n": tt.value}, nil)["n"].Valid
		if got != tt.want {
			t.Errorf("composite with %#v = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidate_CompositeRejectsNestedKinds(t *testing.T) {
	// Object and composite elements are not legal inside All; their element
	// fails, which fails the whole composite.
	s := Schema{"n": All(Number(), Object(Schema{"x": String()}))}
	if Validate(s, map[string]any{"n": 5}, nil)["n"].Valid {
		t.Error("composite with object element = valid, want invalid")
	}
}

func TestValidate_Array(t *testing.T) {
	tests := []struct {
		name  string
		item  Rule
		value any
		want  bool
	}{
		{"empty vacuously passes", String(), []any{}, true},
		{"all strings", String(), []any{"a", "b"}, true},
		{"mixed fails", String(), []any{"a", 2}, false},
		{"not an array", String(), "not an array", false},
		{"typed slice", String(), []string{"a", "b"}, true},
		{"enum items", Enum("a", "b"), []any{"a", "b", "a"}, true},
		{"enum item miss", Enum("a", "b"), []any{"a", "c"}, false},
		{"predicate items", Predicate("positive", positive), []any{1, 2}, true},
		{"nested array item unsupported", Array(String()), []any{[]any{"a"}}, false},
		{"unsupported item, empty array still passes", Array(String()), []any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(Schema{"f": Array(tt.item)}, map[string]any{"f": tt.value}, nil)
			if res["f"].Valid != tt.want {
				t.Errorf("array = %v, want %v", res["f"].Valid, tt.want)
			}
		})
	}
}

func TestValidate_EnumStrict(t *testing.T) {
	s := Schema{"f": Enum("a", "b")}

	tests := []struct {
		value any
		want  bool
	}{
		{"a", true},
		{"b", true},
		{"c", false},
		{0, false}, // no loose falsy equivalence
		{nil, false},
	}

	for _, tt := range tests {
		got := Validate(s, map[string]any{"f": tt.value}, nil)["f"].Valid
		if got != tt.want {
			t.Errorf("enum with %#v = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidate_EnumTypeSensitive(t *testing.T) {
	s := Schema{"f": Enum(2)}
	if Validate(s, map[string]any{"f": float64(2)}, nil)["f"].Valid {
		t.Error("enum int(2) matched float64(2), want strict mismatch")
	}
}

func TestValidate_EnumUncomparableValue(t *testing.T) {
	// Uncomparable dynamic types must not panic; they simply never match.
	s := Schema{"f": Enum("a")}
	if Validate(s, map[string]any{"f": []any{"a"}}, nil)["f"].Valid {
		t.Error("enum matched a slice value")
	}
}

func TestValidate_Nested(t *testing.T) {
	s := Schema{"user": Object(Schema{"name": String()})}

	t.Run("valid nested", func(t *testing.T) {
		res := Validate(s, map[string]any{"user": map[string]any{"name": "Bob"}}, nil)
		user := res["user"]
		if user.Fields == nil {
			t.Fatal("nested field has no sub-tree")
		}
		if !user.Fields["name"].Valid || !user.Valid {
			t.Errorf("user.name = %v, user = %v, want both valid", user.Fields["name"].Valid, user.Valid)
		}
	})

	t.Run("empty nested object", func(t *testing.T) {
		res := Validate(s, map[string]any{"user": map[string]any{}}, nil)
		if res["user"].Fields["name"].Valid {
			t.Error("user.name = valid, want invalid")
		}
	})

	t.Run("missing nested object recurses against empty record", func(t *testing.T) {
		res := Validate(s, map[string]any{}, nil)
		user := res["user"]
		if user.Fields == nil {
			t.Fatal("missing nested object did not produce a sub-tree")
		}
		if user.Fields["name"].Valid || user.Valid {
			t.Error("missing nested object = valid, want invalid")
		}
	})

	t.Run("non-object nested value", func(t *testing.T) {
		res := Validate(s, map[string]any{"user": "not an object"}, nil)
		if res["user"].Fields == nil || res["user"].Valid {
			t.Error("non-object nested value must produce an all-invalid sub-tree")
		}
	})

	t.Run("undefined inside nested schema", func(t *testing.T) {
		s := Schema{"user": Object(Schema{"left": Undefined()})}
		res := Validate(s, map[string]any{}, nil)
		if !res["user"].Fields["left"].Valid {
			t.Error("undefined nested key = invalid, want valid against empty record")
		}
	})
}

func TestValidate_UnrecognizedRule(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	res := Validate(Schema{"bad": {}}, map[string]any{"bad": "x"}, logger)
	if res["bad"].Valid {
		t.Error("unrecognized rule = valid, want fail-closed")
	}
	if !strings.Contains(buf.String(), "bad") {
		t.Errorf("diagnostic does not name the field: %q", buf.String())
	}
}

func TestValidate_ShapePreservation(t *testing.T) {
	s := Schema{
		"a": String(),
		"b": Object(Schema{"c": Number()}),
	}
	input := map[string]any{
		"a":     "x",
		"b":     map[string]any{"c": 1, "ignored": true},
		"extra": "ignored too",
	}

	res := Validate(s, input, nil)
	if len(res) != 2 {
		t.Fatalf("result has %d keys, want 2", len(res))
	}
	if _, ok := res["extra"]; ok {
		t.Error("extra input key leaked into the result")
	}
	if len(res["b"].Fields) != 1 {
		t.Errorf("nested result has %d keys, want 1", len(res["b"].Fields))
	}
}

func TestValidate_FreshResultPerCall(t *testing.T) {
	s := Schema{"a": String()}
	first := Validate(s, map[string]any{"a": "x"}, nil)
	second := Validate(s, map[string]any{}, nil)

	if !first["a"].Valid {
		t.Error("first call mutated by second")
	}
	if second["a"].Valid {
		t.Error("second call inherited first call's verdict")
	}
}
