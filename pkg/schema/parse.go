package schema

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// ParseError reports a schema document that could not be turned into a rule.
type ParseError struct {
	Field  string // field path, empty for the document root
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return "schema: " + e.Reason
	}
	return fmt.Sprintf("schema: field %q: %s", e.Field, e.Reason)
}

// ParseOption configures document parsing.
type ParseOption func(*parser)

// WithPredicates registers named predicates resolvable from documents via
// the {"predicate": name} descriptor.
func WithPredicates(preds map[string]func(any) bool) ParseOption {
	return func(p *parser) {
		for name, fn := range preds {
			p.predicates[name] = fn
		}
	}
}

type parser struct {
	predicates map[string]func(any) bool
}

// descriptor DTOs decoded with mapstructure, matching the declarative
// document keys.

type enumDoc struct {
	Enum any `mapstructure:"enum"`
}

type arrayDoc struct {
	ItemType any `mapstructure:"itemType"`
}

type predicateDoc struct {
	Predicate string `mapstructure:"predicate"`
}

// ParseSchema converts a declarative document (as decoded from YAML or JSON)
// into a Schema. Each value is parsed with ParseRule.
func ParseSchema(doc map[string]any, opts ...ParseOption) (Schema, error) {
	p := newParser(opts)
	out := make(Schema, len(doc))
	for key, raw := range doc {
		rule, err := p.parseRule(key, raw)
		if err != nil {
			return nil, err
		}
		out[key] = rule
	}
	return out, nil
}

// ParseRule converts one declarative rule value into a Rule:
//
//   - a string is a primitive type tag (unknown tags parse but never match);
//   - a sequence is an AND-composite of its parsed elements;
//   - a mapping with an "enum" key is an enum of its literal values;
//   - a mapping with an "itemType" key is an array rule;
//   - a mapping with a "predicate" key resolves a registered predicate;
//   - any other mapping is a nested schema, parsed recursively.
func ParseRule(raw any, opts ...ParseOption) (Rule, error) {
	return newParser(opts).parseRule("", raw)
}

func newParser(opts []ParseOption) *parser {
	p := &parser{predicates: make(map[string]func(any) bool)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *parser) parseRule(field string, raw any) (Rule, error) {
	switch v := raw.(type) {
	case string:
		return Type(TypeTag(v)), nil
	case []any:
		rules := make([]Rule, 0, len(v))
		for _, elem := range v {
			r, err := p.parseRule(field, elem)
			if err != nil {
				return Rule{}, err
			}
			rules = append(rules, r)
		}
		return All(rules...), nil
	case map[string]any:
		return p.parseMapping(field, v)
	default:
		return Rule{}, &ParseError{Field: field, Reason: fmt.Sprintf("unsupported rule value of type %T", raw)}
	}
}

func (p *parser) parseMapping(field string, m map[string]any) (Rule, error) {
	if _, ok := m["enum"]; ok {
		var doc enumDoc
		if err := mapstructure.Decode(m, &doc); err != nil {
			return Rule{}, &ParseError{Field: field, Reason: err.Error()}
		}
		return p.parseEnum(field, doc.Enum)
	}

	if _, ok := m["itemType"]; ok {
		var doc arrayDoc
		if err := mapstructure.Decode(m, &doc); err != nil {
			return Rule{}, &ParseError{Field: field, Reason: err.Error()}
		}
		item, err := p.parseRule(field, doc.ItemType)
		if err != nil {
			return Rule{}, err
		}
		return Array(item), nil
	}

	if _, ok := m["predicate"]; ok {
		var doc predicateDoc
		if err := mapstructure.Decode(m, &doc); err != nil {
			return Rule{}, &ParseError{Field: field, Reason: err.Error()}
		}
		fn, ok := p.predicates[doc.Predicate]
		if !ok {
			return Rule{}, &ParseError{Field: field, Reason: fmt.Sprintf("unknown predicate %q", doc.Predicate)}
		}
		return Predicate(doc.Predicate, fn), nil
	}

	// Any other mapping is a nested schema.
	fields := make(Schema, len(m))
	for key, raw := range m {
		path := key
		if field != "" {
			path = field + "." + key
		}
		rule, err := p.parseRule(path, raw)
		if err != nil {
			return Rule{}, err
		}
		fields[key] = rule
	}
	return Object(fields), nil
}

// parseEnum accepts both the list form {enum: [a, b]} and the named form
// {enum: {A: a, B: b}}, where only the values matter for membership.
func (p *parser) parseEnum(field string, raw any) (Rule, error) {
	switch v := raw.(type) {
	case []any:
		return Enum(v...), nil
	case map[string]any:
		// Deterministic order keeps serialization stable.
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		values := make([]any, 0, len(v))
		for _, name := range names {
			values = append(values, v[name])
		}
		return Enum(values...), nil
	default:
		return Rule{}, &ParseError{Field: field, Reason: fmt.Sprintf("enum must be a list or mapping, got %T", raw)}
	}
}

// BuiltinPredicates returns the predicates registered by the CLI and HTTP
// surfaces: "nonempty" (non-empty string) and "positive" (number > 0).
func BuiltinPredicates() map[string]func(any) bool {
	return map[string]func(any) bool{
		"nonempty": func(v any) bool {
			s, ok := v.(string)
			return ok && s != ""
		},
		"positive": func(v any) bool {
			switch n := v.(type) {
			case int:
				return n > 0
			case int64:
				return n > 0
			case float64:
				return n > 0
			case float32:
				return n > 0
			default:
				return false
			}
		},
	}
}
