package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON serializes the schema in its declarative document form:
// type tags as strings, enums as {"enum": [...]} descriptors, arrays as
// {"itemType": ...}, predicates as {"predicate": name}, composites as
// lists, and nested schemas as objects.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// UnmarshalJSON deserializes the schema from its declarative document form.
// Predicate descriptors cannot be resolved without a registry; use
// ParseSchema with WithPredicates for documents that contain them.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed, err := ParseSchema(doc)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSchemaBytes parses a YAML or JSON schema document. YAML is a
// superset of JSON here, so both formats go through the one decoder.
func ParseSchemaBytes(data []byte, opts ...ParseOption) (Schema, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	return ParseSchema(doc, opts...)
}

func (s Schema) document() (map[string]any, error) {
	doc := make(map[string]any, len(s))
	for key, rule := range s {
		v, err := rule.document()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		doc[key] = v
	}
	return doc, nil
}

func (r Rule) document() (any, error) {
	switch r.kind {
	case kindType:
		return string(r.tag), nil
	case kindPredicate:
		return map[string]any{"predicate": r.predName}, nil
	case kindEnum:
		return map[string]any{"enum": r.enum}, nil
	case kindArray:
		item, err := r.item.document()
		if err != nil {
			return nil, err
		}
		return map[string]any{"itemType": item}, nil
	case kindAll:
		elems := make([]any, 0, len(r.all))
		for _, sub := range r.all {
			v, err := sub.document()
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return elems, nil
	case kindObject:
		return r.fields.document()
	default:
		return nil, fmt.Errorf("cannot serialize invalid rule")
	}
}
