package schema

import (
	"fmt"
	"sort"
)

// TypeTag names a primitive type a field's value must have.
// Unknown tags are legal to construct (schemas are not checked for
// well-formedness up front) and simply never match.
type TypeTag string

const (
	TagString    TypeTag = "string"
	TagNumber    TypeTag = "number"
	TagBool      TypeTag = "boolean"
	TagObject    TypeTag = "object"
	TagNull      TypeTag = "null"
	TagUndefined TypeTag = "undefined"
)

// Schema is a map of field names to their rules.
// Example: {"api_key": schema.String(), "retries": schema.All(schema.Number(), positive)}
type Schema map[string]Rule

type kind int

const (
	kindInvalid kind = iota
	kindType
	kindPredicate
	kindEnum
	kindArray
	kindAll
	kindObject
)

// Rule is a closed variant over the supported rule kinds: a primitive type
// tag, a named predicate, an enum of allowed literals, a per-element array
// rule, an AND-composite, or a nested schema. The zero Rule is the
// unrecognized kind; it always evaluates to invalid.
type Rule struct {
	kind kind

	tag      TypeTag
	predName string
	pred     func(any) bool
	enum     []any
	item     *Rule
	all      []Rule
	fields   Schema
}

// --- Constructors ---

// Type creates a rule requiring the value to have the given primitive type.
func Type(tag TypeTag) Rule { return Rule{kind: kindType, tag: tag} }

// String requires a string value.
func String() Rule { return Type(TagString) }

// Number requires a numeric value of any width.
func Number() Rule { return Type(TagNumber) }

// Bool requires a boolean value.
func Bool() Rule { return Type(TagBool) }

// AnyObject requires a non-nil object value, regardless of its fields.
func AnyObject() Rule { return Type(TagObject) }

// Null requires the key to be present with a nil value.
func Null() Rule { return Type(TagNull) }

// Undefined requires the key to be absent (or present with a nil value,
// the closest Go rendering of an explicitly-undefined field).
func Undefined() Rule { return Type(TagUndefined) }

// Predicate creates a rule from a user-defined boolean function.
// The name is used in diagnostics and when serializing the schema.
func Predicate(name string, fn func(any) bool) Rule {
	return Rule{kind: kindPredicate, predName: name, pred: fn}
}

// Enum creates a rule requiring the value to equal one of the given literals.
func Enum(allowed ...any) Rule {
	return Rule{kind: kindEnum, enum: allowed}
}

// Array creates a rule requiring a slice whose every element satisfies item.
// Only type, enum, and predicate item rules are supported; any other item
// rule kind fails every element.
func Array(item Rule) Rule {
	return Rule{kind: kindArray, item: &item}
}

// All creates a composite rule requiring the value to satisfy every given
// rule. Elements may be type, predicate, enum, or array rules.
func All(rules ...Rule) Rule {
	return Rule{kind: kindAll, all: rules}
}

// Object creates a rule applying a nested schema to the field's value.
func Object(fields Schema) Rule {
	return Rule{kind: kindObject, fields: fields}
}

// Name returns a human-readable description of the rule, used in
// diagnostics. Example outputs: "string", "predicate:positive", "[number]".
func (r Rule) Name() string {
	switch r.kind {
	case kindType:
		return string(r.tag)
	case kindPredicate:
		return "predicate:" + r.predName
	case kindEnum:
		return fmt.Sprintf("enum(%d values)", len(r.enum))
	case kindArray:
		return fmt.Sprintf("[%s]", r.item.Name())
	case kindAll:
		return fmt.Sprintf("all(%d rules)", len(r.all))
	case kindObject:
		keys := make([]string, 0, len(r.fields))
		for k := range r.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("object%v", keys)
	default:
		return "invalid"
	}
}

// IsZero reports whether the rule is the unrecognized zero value.
func (r Rule) IsZero() bool { return r.kind == kindInvalid }
