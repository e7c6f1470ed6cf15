package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/assetext/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/assetext.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = config.DefaultConfigFile

// templateTablePath is the table path suggested, commented out, in the template.
const templateTablePath = "Scripts/Helper Files/asset_extension_data.json"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new assetext configuration file",
		Long: `Initialize creates a new .assetext configuration file in the current directory.

The generated file documents the default table path and logging settings.

Examples:
  # Create .assetext in current directory
  assetext init

  # Create config file at a specific path
  assetext init -o ~/.config/assetext/config.yaml

  # Force overwrite existing file
  assetext init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/assetext.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintf(out, "\nUncomment 'table' to read %s,\n", filepath.Join(filepath.Dir(outputPath), filepath.FromSlash(templateTablePath)))
	fmt.Fprintln(out, "or point it at your own .json, .yaml or .toml table, relative to this file.")
	fmt.Fprintln(out, "Reports then run without a file path argument:")
	fmt.Fprintln(out, "  assetext size_limit png")

	return nil
}
