package report

import (
	"io"
	"strings"

	"github.com/nao1215/assetext/internal/table"
	"github.com/nao1215/markdown"
)

// Markdown table layout. Rows use the compact "a | b | c" form without
// outer pipes or column padding.
const (
	tableHeader    = "File type | Format | Threshold"
	tableSeparator = "--- | --- | ---"
	limitUnit      = "KB"
)

// MarkdownWriter outputs the supported extensions of each record as a
// markdown table with one row per record.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the markdown table.
// Every row ends with a newline and the table is followed by one blank line.
func (w *MarkdownWriter) Write(t *table.Table) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.PlainText(tableHeader)
	md.PlainText(tableSeparator)
	for _, r := range t.Records() {
		md.PlainTextf("%s | %s | %s%s", r.Name, formatExtensions(r.SupportedExtensions), r.Limit, limitUnit)
	}

	// Terminates the last row, then the trailing blank line.
	md.PlainText("")
	md.PlainText("")

	return len(md.String()), md.Build()
}

// formatExtensions renders extensions as inline code separated by ", ".
func formatExtensions(exts []string) string {
	quoted := make([]string, 0, len(exts))
	for _, ext := range exts {
		quoted = append(quoted, markdown.Code(ext))
	}
	return strings.Join(quoted, ", ")
}
