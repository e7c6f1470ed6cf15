package report

import (
	"fmt"
	"io"
)

// Mode selects which view of the table is printed.
type Mode string

// Report modes. The names are part of the command-line contract.
const (
	ModeExtensionList           Mode = "extension_list"
	ModeSizeLimit               Mode = "size_limit"
	ModeSupportedExtensions     Mode = "supported_extensions"
	ModeSupportedExtensionTable Mode = "supported_extension_table"
)

// UnknownModeWarning is printed to standard output for an unrecognized mode.
// The text is matched verbatim by existing pipelines.
const UnknownModeWarning = "🚨 Unknown format. please fix the script for any discrepency 🚨"

// Modes returns every supported mode in documentation order.
func Modes() []Mode {
	return []Mode{
		ModeExtensionList,
		ModeSizeLimit,
		ModeSupportedExtensions,
		ModeSupportedExtensionTable,
	}
}

// ParseMode converts a mode name into a Mode.
// Matching is exact and case-sensitive.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// IsMode reports whether name is a supported mode.
func IsMode(name string) bool {
	_, err := ParseMode(name)
	return err == nil
}

// NewWriter returns the writer for mode.
// args are the positional arguments that follow the mode name; only
// ModeSizeLimit consumes one (the extension), the rest are ignored.
func NewWriter(mode Mode, output io.Writer, args ...string) (Writer, error) {
	switch mode {
	case ModeExtensionList:
		return NewExtensionListWriter(output), nil
	case ModeSizeLimit:
		if len(args) == 0 {
			return nil, ErrMissingExtension
		}
		return NewSizeLimitWriter(output, args[0]), nil
	case ModeSupportedExtensions:
		return NewSupportedExtensionsWriter(output), nil
	case ModeSupportedExtensionTable:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// WriteUnknownMode prints UnknownModeWarning followed by a newline.
func WriteUnknownMode(output io.Writer) (int, error) {
	return fmt.Fprintln(output, UnknownModeWarning)
}
