package report

import (
	"io"
	"strings"

	"github.com/nao1215/assetext/internal/table"
)

// extensionSeparator joins extensions in the single-line reports.
const extensionSeparator = ","

// ExtensionListWriter prints every extension of every record on one line:
// for each record its supported extensions followed by its unsupported ones.
type ExtensionListWriter struct {
	baseWriter
}

// NewExtensionListWriter creates an ExtensionListWriter that outputs to the given writer.
func NewExtensionListWriter(output io.Writer) *ExtensionListWriter {
	return &ExtensionListWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the extension list.
func (w *ExtensionListWriter) Write(t *table.Table) (int, error) {
	return w.writeLine(joinGroups(t, table.Record.Extensions))
}

// SupportedExtensionsWriter prints the supported extensions of every record on
// one line. Unsupported extensions are left out.
type SupportedExtensionsWriter struct {
	baseWriter
}

// NewSupportedExtensionsWriter creates a SupportedExtensionsWriter that outputs to the given writer.
func NewSupportedExtensionsWriter(output io.Writer) *SupportedExtensionsWriter {
	return &SupportedExtensionsWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the supported extension list.
func (w *SupportedExtensionsWriter) Write(t *table.Table) (int, error) {
	return w.writeLine(joinGroups(t, func(r table.Record) []string {
		return r.SupportedExtensions
	}))
}

// joinGroups joins the extensions of each record, then joins the per-record
// strings. A record without extensions still contributes an empty segment,
// which keeps the output identical to what existing pipelines parse.
func joinGroups(t *table.Table, extensions func(table.Record) []string) string {
	records := t.Records()
	groups := make([]string, 0, len(records))
	for _, r := range records {
		groups = append(groups, strings.Join(extensions(r), extensionSeparator))
	}
	return strings.Join(groups, extensionSeparator)
}

// SizeLimitWriter prints the size limit of one extension.
type SizeLimitWriter struct {
	baseWriter

	// extension is matched exactly against each record's supported extensions.
	extension string
}

// NewSizeLimitWriter creates a SizeLimitWriter for extension.
func NewSizeLimitWriter(output io.Writer, extension string) *SizeLimitWriter {
	return &SizeLimitWriter{
		baseWriter: newBaseWriter(output),
		extension:  extension,
	}
}

// Write outputs the limit of the first record supporting the extension.
// It returns ErrLookupMiss and writes nothing when no record matches.
func (w *SizeLimitWriter) Write(t *table.Table) (int, error) {
	limit, ok := t.SizeLimit(w.extension)
	if !ok {
		return 0, ErrLookupMiss
	}
	return w.writeLine(limit.String())
}
