package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/assetext/internal/config"
	"github.com/nao1215/assetext/internal/log"
	"github.com/nao1215/assetext/internal/report"
	"github.com/nao1215/assetext/internal/table"
	"github.com/spf13/cobra"
)

// Process exit codes. Pipelines branch on these, so they are fixed.
const (
	exitCodeOK = 0
	// exitCodeMiss covers the two anticipated outcomes: a size_limit lookup
	// that found nothing and an unknown report mode.
	exitCodeMiss = 1
	// exitCodeError covers everything else: unreadable or malformed tables,
	// missing arguments and bad flags.
	exitCodeError = 2
)

// NewRootCmd creates the root command for assetext.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assetext <file_path> <function> [extension]",
		Short: "Print views of an asset extension size-limit table",
		Long: `assetext reads a table of file-extension size limits and prints one view of it.

Functions:
  extension_list             every extension, supported then unsupported, comma-separated
  size_limit <extension>     the size limit (KB) of a supported extension; exit 1 if none
  supported_extensions       supported extensions only, comma-separated
  supported_extension_table  a markdown table of file types, formats and thresholds

An unknown function prints a warning and exits with status 1.

Examples:
  # List every extension known to the table
  assetext asset_extension_data.json extension_list

  # Look up the size limit of png files
  assetext asset_extension_data.json size_limit png

  # Use the table configured in .assetext
  assetext supported_extension_table

Table file format:
  {
    "size_limit_table": [
      {
        "name": "Image",
        "supported_extensions": ["png", "jpg"],
        "unsupported_extensions": ["bmp"],
        "limit": 500
      }
    ]
  }`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.DefaultLogFormat,
		"Log output format: text or json")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .assetext in current or home directory)")
	cmd.Flags().StringP("table", "t", "",
		"Extension table path; all positional arguments then belong to the function")
	cmd.Flags().Bool("no-config", false,
		"Do not search the default locations for a configuration file")
	cmd.MarkFlagsMutuallyExclusive("config", "no-config")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the resulting status code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	code := exitCode(err)
	if code == exitCodeError {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return code
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitCodeOK
	case errors.Is(err, report.ErrLookupMiss), errors.Is(err, report.ErrUnknownMode):
		return exitCodeMiss
	default:
		return exitCodeError
	}
}

// runRootCmd prints the requested report.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogFormat)

	return runReport(cmd.OutOrStdout(), cfg, logger)
}

// runReport loads the table and renders the configured mode.
// The table is always loaded first, so a broken table is reported even when
// the mode is unknown.
func runReport(output io.Writer, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("loading extension table", "path", cfg.TablePath, "format", table.FormatFromPath(cfg.TablePath))

	tbl, err := table.Load(cfg.TablePath)
	if err != nil {
		return err
	}

	logger.Debug("extension table loaded", "records", tbl.Len())

	err = report.Render(output, tbl, cfg.Mode, cfg.ModeArgs...)
	switch {
	case err == nil:
		logger.Debug("report written", "mode", cfg.Mode)
	case errors.Is(err, report.ErrLookupMiss):
		logger.Debug("extension not supported", "extension", cfg.ModeArgs[0])
	case errors.Is(err, report.ErrUnknownMode):
		logger.Debug("unknown report mode", "mode", cfg.Mode)
	}
	return err
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags, the config file and
// the positional arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.LogFormat, err = cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	tableFlag, err := cmd.Flags().GetString("table")
	if err != nil {
		return nil, err
	}

	noConfig, err := cmd.Flags().GetBool("no-config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must load. A discovered one only
	// matters when the table has to come from it; otherwise a broken file is
	// reported and skipped.
	var cf *config.File
	switch {
	case configPath != "":
		if config.FindConfigFile(configPath) == "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
		}
		cf, err = loadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
	case !noConfig:
		if path := config.FindConfigFile(""); path != "" {
			cf, err = loadConfigFile(path)
			if err != nil {
				if config.NeedsFile(args, tableFlag, report.IsMode) {
					return nil, err
				}
				log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogFormat).
					Warn("ignoring config file", "path", path, "error", err)
				cf = nil
			}
		}
	}
	cfg.ApplyFile(cf, cmd.Flags().Changed("log-format"))

	if err := cfg.ResolveArgs(args, tableFlag, cf, report.IsMode); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and checks the config file at path.
func loadConfigFile(path string) (*config.File, error) {
	cf, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if err := cf.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cf, nil
}
