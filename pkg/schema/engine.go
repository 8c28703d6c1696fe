package schema

import (
	"log/slog"
	"reflect"

	"github.com/hsmyc/hform-validator/internal/logging"
)

var nopLogger = logging.NewNop()

// Validate walks input against the schema and returns a result tree with one
// entry per schema key. Keys present in the input but absent from the schema
// are ignored. A nil logger suppresses diagnostics.
//
// Per key, in priority order:
//
//  1. An "undefined" type rule passes iff the key is absent or its value is
//     nil. Checked before the missing-key rule because absence itself is
//     what makes the field valid.
//  2. A "null" type rule passes iff the key is present with a nil value.
//  3. For every other rule kind a missing key is invalid; the rule is not
//     applied to a missing value. Nested-schema rules are the exception:
//     they recurse against an empty record so the nested result tree keeps
//     its shape and each nested key fails its own missing-key check.
//  4. Otherwise the rule kind decides: predicate, primitive type, enum,
//     array, composite, or nested schema. A zero (unrecognized) rule is
//     invalid and logs a warning naming the key.
//
// Validation never coerces values and never aggregates failures into errors;
// invalidity is the boolean false at the corresponding field. A predicate
// that panics is not recovered.
func Validate(s Schema, input map[string]any, logger *slog.Logger) Result {
	if logger == nil {
		logger = nopLogger
	}
	out := make(Result, len(s))

	for key, rule := range s {
		value, exists := input[key]

		if rule.kind == kindType {
			switch rule.tag {
			case TagUndefined:
				out[key] = Field{Valid: !exists || value == nil}
				continue
			case TagNull:
				out[key] = Field{Valid: exists && value == nil}
				continue
			}
		}

		if !exists && rule.kind != kindObject {
			out[key] = Field{}
			continue
		}

		switch rule.kind {
		case kindPredicate:
			out[key] = Field{Valid: rule.pred(value)}
		case kindType:
			out[key] = Field{Valid: matchType(rule.tag, value)}
		case kindEnum:
			out[key] = Field{Valid: matchEnum(rule.enum, value)}
		case kindArray:
			out[key] = Field{Valid: matchArray(*rule.item, value)}
		case kindAll:
			out[key] = Field{Valid: matchAll(rule.all, value)}
		case kindObject:
			// A missing or non-object value recurses against an empty
			// record, so every nested key reports its own failure and the
			// result tree mirrors the nested schema regardless of input.
			sub, _ := value.(map[string]any)
			nested := Validate(rule.fields, sub, logger)
			out[key] = Field{Valid: nested.Ok(), Fields: nested}
		default:
			logger.Warn("unrecognized rule, field marked invalid",
				"field", key,
				"rule", rule.Name())
			out[key] = Field{}
		}
	}

	return out
}

// matchType reports whether value has the primitive type named by tag.
// Unknown tags never match.
func matchType(tag TypeTag, value any) bool {
	switch tag {
	case TagString:
		_, ok := value.(string)
		return ok
	case TagNumber:
		switch value.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
		return false
	case TagBool:
		_, ok := value.(bool)
		return ok
	case TagObject:
		m, ok := value.(map[string]any)
		return ok && m != nil
	case TagNull:
		return value == nil
	case TagUndefined:
		// A present, non-nil value is never undefined.
		return false
	default:
		return false
	}
}

// matchEnum reports whether value equals one of the allowed literals under
// strict, type-sensitive equality (int(2) does not equal float64(2)).
func matchEnum(allowed []any, value any) bool {
	for _, want := range allowed {
		if literalEqual(want, value) {
			return true
		}
	}
	return false
}

func literalEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// matchArray applies the item rule to every element of value, which must be
// a slice or array. An empty slice vacuously passes. All elements are
// evaluated; there is no short-circuit.
func matchArray(item Rule, value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}

	ok := true
	for i := 0; i < rv.Len(); i++ {
		if !matchItem(item, rv.Index(i).Interface()) {
			ok = false
		}
	}
	return ok
}

// matchItem evaluates an array element. Only type, enum, and predicate item
// rules are supported; anything else fails the element.
func matchItem(item Rule, value any) bool {
	switch item.kind {
	case kindType:
		return matchType(item.tag, value)
	case kindEnum:
		return matchEnum(item.enum, value)
	case kindPredicate:
		return item.pred(value)
	default:
		return false
	}
}

// matchAll requires the value to satisfy every rule in the list. Elements
// may be type, predicate, enum, or array rules; other kinds fail their
// element and therefore the composite. Every element is evaluated.
func matchAll(rules []Rule, value any) bool {
	ok := true
	for _, r := range rules {
		pass := false
		switch r.kind {
		case kindType:
			pass = matchType(r.tag, value)
		case kindPredicate:
			pass = r.pred(value)
		case kindEnum:
			pass = matchEnum(r.enum, value)
		case kindArray:
			pass = matchArray(*r.item, value)
		}
		if !pass {
			ok = false
		}
	}
	return ok
}
