// Package schema implements declarative validation of structured data.
//
// A Schema maps field names to rules; validating an input produces a result
// tree mirroring the schema's shape, with a boolean verdict per field and a
// nested tree per nested schema. Nothing is coerced and nothing is thrown:
// an invalid field is simply false in the result.
//
// Basic usage:
//
//	s := schema.Schema{
//	    "name":  schema.String(),
//	    "age":   schema.All(schema.Number(), positive),
//	    "role":  schema.Enum("admin", "user"),
//	    "tags":  schema.Array(schema.String()),
//	    "other": schema.Undefined(),
//	}
//
//	res := schema.Validate(s, map[string]any{
//	    "name": "John Doe",
//	    "age":  30,
//	    "role": "user",
//	    "tags": []any{"prod"},
//	}, nil)
//
//	res.Ok() // true
//
// Rules come in six kinds: primitive type tags (string, number, boolean,
// object, null, undefined), user predicates, enums of allowed literals,
// per-element array rules, AND-composites, and nested schemas. The rule set
// is closed; a zero Rule is unrecognized and fails with a diagnostic rather
// than passing.
//
// Schemas can also be authored as YAML or JSON documents:
//
//	user:
//	  name: string
//	  role: {enum: [admin, user]}
//	tags: {itemType: string}
//	age: [number, {predicate: positive}]
//
// parsed with ParseSchemaBytes, passing named predicates via WithPredicates.
//
// Validation is synchronous and stateless per call; a schema is never
// mutated after construction, so one Schema may be validated against from
// many goroutines without coordination.
package schema
