// Package report renders views of an extension table.
//
// Each report mode has its own writer:
//   - ExtensionListWriter: every extension, supported and unsupported, on one line
//   - SizeLimitWriter: the size limit of a single supported extension
//   - SupportedExtensionsWriter: supported extensions only, on one line
//   - MarkdownWriter: a markdown table of supported extensions and limits
//
// Writers implement the Writer interface. Render parses a mode name, picks the
// writer and reports unknown modes and lookup misses as sentinel errors so the
// command layer can turn them into exit codes.
package report
