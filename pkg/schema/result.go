package schema

import "encoding/json"

// Result is a validation result tree. Its key set mirrors the schema that
// produced it: one entry per schema key, holding either a boolean verdict or
// a nested Result for nested-schema rules. A Result is freshly allocated per
// Validate call and shares no state with the schema or prior results.
type Result map[string]Field

// Field is one entry of a result tree. For nested-schema rules Fields holds
// the nested tree and Valid is the conjunction of its entries; for every
// other rule kind Fields is nil and Valid is the field's verdict.
type Field struct {
	Valid  bool
	Fields Result
}

// Ok reports whether every field in the tree, recursively, is valid.
func (r Result) Ok() bool {
	for _, f := range r {
		if f.Fields != nil {
			if !f.Fields.Ok() {
				return false
			}
			continue
		}
		if !f.Valid {
			return false
		}
	}
	return true
}

// MarshalJSON emits the mirrored tree form: booleans for leaf fields and
// objects for nested trees, e.g. {"name":true,"user":{"age":false}}.
func (f Field) MarshalJSON() ([]byte, error) {
	if f.Fields != nil {
		return json.Marshal(f.Fields)
	}
	return json.Marshal(f.Valid)
}

// UnmarshalJSON decodes the mirrored tree form: a boolean becomes a leaf
// verdict, an object becomes a nested tree with Valid set to its
// conjunction, matching what Validate produces.
func (f *Field) UnmarshalJSON(data []byte) error {
	var valid bool
	if err := json.Unmarshal(data, &valid); err == nil {
		f.Valid = valid
		f.Fields = nil
		return nil
	}

	var fields Result
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	f.Fields = fields
	f.Valid = fields.Ok()
	return nil
}
