package table

import "slices"

// Record describes one file-type category of the extension table.
type Record struct {
	// Name is the human-readable label of the category (e.g. "Image").
	Name string `json:"name" yaml:"name" toml:"name" jsonschema:"description=Human-readable file type label"`

	// SupportedExtensions are the extensions, without leading dot, that are
	// accepted for this category. Order is significant for every report.
	SupportedExtensions []string `json:"supported_extensions" yaml:"supported_extensions" toml:"supported_extensions" jsonschema:"description=Extensions without leading dot that are supported"`

	// UnsupportedExtensions are extensions historically associated with the
	// category but explicitly treated as unsupported.
	UnsupportedExtensions []string `json:"unsupported_extensions" yaml:"unsupported_extensions" toml:"unsupported_extensions" jsonschema:"description=Extensions without leading dot that are explicitly unsupported"`

	// Limit is the size limit in kilobytes.
	Limit Limit `json:"limit" yaml:"limit" toml:"limit" jsonschema:"description=Size limit in kilobytes"`
}

// Extensions returns the supported extensions followed by the unsupported
// ones, each in their original order.
func (r Record) Extensions() []string {
	exts := make([]string, 0, len(r.SupportedExtensions)+len(r.UnsupportedExtensions))
	exts = append(exts, r.SupportedExtensions...)
	return append(exts, r.UnsupportedExtensions...)
}

// Supports reports whether ext is one of the record's supported extensions.
// The comparison is exact and case-sensitive.
func (r Record) Supports(ext string) bool {
	return slices.Contains(r.SupportedExtensions, ext)
}

// clone returns a deep copy of the record.
func (r Record) clone() Record {
	r.SupportedExtensions = slices.Clone(r.SupportedExtensions)
	r.UnsupportedExtensions = slices.Clone(r.UnsupportedExtensions)
	return r
}

// Document is the on-disk shape of an extension table.
type Document struct {
	SizeLimitTable []Record `json:"size_limit_table" yaml:"size_limit_table" toml:"size_limit_table" jsonschema:"description=Ordered list of extension size-limit records"`
}

// Table is an ordered, read-only list of records.
type Table struct {
	records []Record
}

// New creates a Table from records. The records are copied, so later changes
// to the argument do not affect the table.
func New(records []Record) *Table {
	t := &Table{records: make([]Record, len(records))}
	for i, r := range records {
		t.records[i] = r.clone()
	}
	return t
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the records in table order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	for i, r := range t.records {
		out[i] = r.clone()
	}
	return out
}

// Document returns the table in its on-disk shape.
func (t *Table) Document() Document {
	return Document{SizeLimitTable: t.Records()}
}

// SupportedExtensions returns the supported extensions of every record in
// table order. Duplicates across records are kept.
func (t *Table) SupportedExtensions() []string {
	var exts []string
	for _, r := range t.records {
		exts = append(exts, r.SupportedExtensions...)
	}
	return exts
}

// Lookup returns the first record, in table order, that supports ext.
func (t *Table) Lookup(ext string) (Record, bool) {
	for _, r := range t.records {
		if r.Supports(ext) {
			return r.clone(), true
		}
	}
	return Record{}, false
}

// SizeLimit returns the limit of the first record that supports ext.
// Extensions that only appear as unsupported are not found.
func (t *Table) SizeLimit(ext string) (Limit, bool) {
	r, ok := t.Lookup(ext)
	if !ok {
		return "", false
	}
	return r.Limit, true
}
