/*
Package hform validates structured data against declarative schemas.

A schema maps field names to rules: primitive type tags, user predicates,
enums, per-element array rules, AND-composites, or nested schemas. A
Validator bound to a schema turns any input map into a result tree that
mirrors the schema's shape, with a boolean verdict per field:

	v := hform.New(schema.Schema{
	    "name":  schema.String(),
	    "age":   schema.Number(),
	    "other": schema.Undefined(),
	    "tags":  schema.Array(schema.String()),
	})

	res := v.Validate(map[string]any{"name": "John Doe", "age": "30"})
	// res: name=true, age=false, other=true, tags=false

The engine never coerces values and never throws on invalid data; failing
fields are simply false in the result. Hosts decide what to do with the
verdicts. Schemas can also be authored as YAML or JSON documents and parsed
with the pkg/schema authoring layer, which is what the bundled CLI
(cmd/hform) and HTTP adapter do.

The library itself performs no I/O and keeps no state between calls, so one
Validator may serve many goroutines concurrently.
*/
package hform
