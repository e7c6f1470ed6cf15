package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/nao1215/assetext/internal/table"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the extension table document",
		Long: `Schema prints a JSON Schema describing the extension table document.

Point your editor at the generated schema to get completion and validation
while editing the table.

Examples:
  # Print the schema
  assetext schema

  # Write the schema next to the table
  assetext schema -o asset_extension_data.schema.json`,
		Args: cobra.NoArgs,
		RunE: runSchemaCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Write the schema to the specified file instead of standard output")

	return cmd
}

// runSchemaCmd executes the schema command.
func runSchemaCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if outputPath == "" {
		return writeSchema(cmd.OutOrStdout())
	}

	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create schema file: %w", err)
	}
	defer f.Close()

	return writeSchema(f)
}

// tableSchema reflects the JSON Schema of table.Document.
func tableSchema() *jsonschema.Schema {
	limitType := reflect.TypeOf(table.Limit(""))

	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		// Limit is stored as its literal text but is a number on disk.
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == limitType {
				return &jsonschema.Schema{Type: "number", Description: "Size limit in kilobytes"}
			}
			return nil
		},
	}

	schema := r.Reflect(&table.Document{})
	schema.Title = "Asset extension size-limit table"
	schema.Description = "File types with their supported and unsupported extensions and size limits."

	return schema
}

// writeSchema writes the indented schema followed by a newline.
func writeSchema(w io.Writer) error {
	data, err := json.MarshalIndent(tableSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
