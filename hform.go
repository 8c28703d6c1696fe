package hform

import (
	"log/slog"

	"github.com/hsmyc/hform-validator/pkg/schema"
)

// Version is the library version, reported by the CLI.
var Version = "0.2.0"

// Validator binds an immutable schema and answers validation queries
// against it. A Validator is safe for concurrent use: no call mutates the
// schema or any shared state, and every call allocates a fresh result tree.
type Validator struct {
	schema schema.Schema
	logger *slog.Logger
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithLogger sets a structured logger used for schema-authoring
// diagnostics (unrecognized rules). Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New creates a Validator bound to the given schema. The schema is not
// checked for well-formedness here; malformed rules are discovered during
// validation, where they fail closed with a diagnostic.
func New(s schema.Schema, opts ...Option) *Validator {
	v := &Validator{schema: s}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate walks input against the bound schema and returns the mirrored
// result tree. It always returns; invalidity is reported as false at the
// corresponding field, never as an error. A user predicate that panics is
// not recovered.
func (v *Validator) Validate(input map[string]any) schema.Result {
	return schema.Validate(v.schema, input, v.logger)
}
