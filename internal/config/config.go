package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "assetext"

	// LogFormatText selects slog's text handler.
	LogFormatText = "text"

	// LogFormatJSON selects slog's JSON handler, for log aggregation in CI.
	LogFormatJSON = "json"

	// DefaultLogFormat is used when neither a flag nor the config file sets one.
	DefaultLogFormat = LogFormatText
)

// Config holds all configuration options for a single invocation.
// It is populated from CLI flags and the config file, then passed down
// explicitly rather than kept in global state.
type Config struct {
	// TablePath is the path to the extension table document.
	TablePath string

	// Mode is the report mode name. It is validated by the report package,
	// because an unknown mode is a reportable outcome rather than a
	// configuration error.
	Mode string

	// ModeArgs are the positional arguments after the mode name.
	ModeArgs []string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Verbose enables debug log output. When false, only warnings and
	// errors are logged.
	Verbose bool

	// LogFormat is either LogFormatText or LogFormatJSON.
	LogFormat string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogFormat: DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for assetext.
// On Linux: ~/.config/assetext
// On macOS: ~/Library/Application Support/assetext
// On Windows: %APPDATA%\assetext
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return ErrInvalidLogFormat
	}

	if c.TablePath == "" {
		return ErrNoTable
	}

	return nil
}

// ResolveArgs fills TablePath, Mode and ModeArgs from the positional
// arguments.
//
// With tableFlag set, every positional argument belongs to the mode. Without
// it, a leading mode name uses the table from the config file when one is
// configured. Otherwise the first argument is the table path and the second
// the mode. isMode reports whether a name is a known report mode.
func (c *Config) ResolveArgs(args []string, tableFlag string, cf *File, isMode func(string) bool) error {
	if len(args) == 0 {
		return ErrNoArguments
	}

	if tableFlag != "" {
		c.TablePath = tableFlag
		c.Mode = args[0]
		c.ModeArgs = args[1:]
		return nil
	}

	if cf != nil && cf.TablePath() != "" && NeedsFile(args, tableFlag, isMode) {
		c.TablePath = cf.TablePath()
		c.Mode = args[0]
		c.ModeArgs = args[1:]
		return nil
	}

	if len(args) < 2 {
		return ErrNoMode
	}
	c.TablePath = args[0]
	c.Mode = args[1]
	c.ModeArgs = args[2:]
	return nil
}

// NeedsFile reports whether the arguments can only be resolved with the table
// named in a config file: no --table flag and a report mode in first position.
func NeedsFile(args []string, tableFlag string, isMode func(string) bool) bool {
	return tableFlag == "" && len(args) > 0 && isMode(args[0])
}

// ApplyFile copies settings from the config file that were not set on the
// command line. logFormatSet reports whether --log-format was given.
func (c *Config) ApplyFile(cf *File, logFormatSet bool) {
	if cf == nil {
		return
	}
	c.ConfigFilePath = cf.Path()
	if !logFormatSet && cf.LogFormat != "" {
		c.LogFormat = cf.LogFormat
	}
	if cf.Verbose {
		c.Verbose = true
	}
}
