package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrInvalidLogFormat is returned when the log format is neither "text" nor "json".
	ErrInvalidLogFormat = errors.New("invalid log format: must be \"text\" or \"json\"")

	// ErrNoArguments is returned when neither a table path nor a report mode is given.
	ErrNoArguments = errors.New("no arguments: usage is assetext <file_path> <function> [extension]")

	// ErrNoMode is returned when a table path is given without a report mode.
	ErrNoMode = errors.New("no report mode: usage is assetext <file_path> <function> [extension]")

	// ErrNoTable is returned when the table path cannot be determined.
	ErrNoTable = errors.New("no extension table: pass a file path, use --table, or set table in .assetext")
)
