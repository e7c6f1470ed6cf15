package report

import (
	"errors"
	"io"

	"github.com/nao1215/assetext/internal/table"
)

// Writer defines the interface for report output.
// Implementations write one view of an extension table.
type Writer interface {
	// Write renders the table to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(t *table.Table) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeLine writes s followed by a newline.
func (b baseWriter) writeLine(s string) (int, error) {
	return io.WriteString(b.output, s+"\n")
}

// Render prints the view selected by modeName.
//
// An unknown mode prints UnknownModeWarning and returns an error wrapping
// ErrUnknownMode. A size_limit miss prints nothing and returns ErrLookupMiss.
func Render(output io.Writer, t *table.Table, modeName string, args ...string) error {
	mode, err := ParseMode(modeName)
	if err != nil {
		if _, werr := WriteUnknownMode(output); werr != nil {
			return errors.Join(err, werr)
		}
		return err
	}

	w, err := NewWriter(mode, output, args...)
	if err != nil {
		return err
	}

	_, err = w.Write(t)
	return err
}
