package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hform "github.com/hsmyc/hform-validator"
	"github.com/hsmyc/hform-validator/internal/presentation/tui"
	"github.com/hsmyc/hform-validator/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema.(yaml|json)> <input.json>",
	Short: "Check an input document against a schema",
	Long: `Parses the schema document, validates the JSON input against it, and
prints the per-field verdict tree. Exits non-zero when any field fails.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runValidate(cmd, args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, schemaPath, inputPath string) (bool, error) {
	schemaDoc, err := os.ReadFile(schemaPath)
	if err != nil {
		return false, err
	}
	s, err := schema.ParseSchemaBytes(schemaDoc, schema.WithPredicates(schema.BuiltinPredicates()))
	if err != nil {
		return false, fmt.Errorf("parse schema: %w", err)
	}

	inputDoc, err := os.ReadFile(inputPath)
	if err != nil {
		return false, err
	}
	var input map[string]any
	if err := json.Unmarshal(inputDoc, &input); err != nil {
		return false, fmt.Errorf("decode input: %w", err)
	}

	res := hform.New(s, hform.WithLogger(newLogger(cmd))).Validate(input)

	if err := tui.NewRenderer().Render(os.Stdout, res); err != nil {
		return false, err
	}
	return res.Ok(), nil
}
