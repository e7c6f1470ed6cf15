package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a table document.
type Format string

// Supported table formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from the file extension.
// Unknown extensions are read as JSON, which is the historical format of the
// table.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Document keys. They are matched exactly in every format.
const (
	keySizeLimitTable        = "size_limit_table"
	keyName                  = "name"
	keySupportedExtensions   = "supported_extensions"
	keyUnsupportedExtensions = "unsupported_extensions"
	keyLimit                 = "limit"
)

// rawDocument mirrors Document with pointer fields so that a missing key can
// be told apart from an empty value.
type rawDocument struct {
	SizeLimitTable *[]rawRecord `yaml:"size_limit_table"`
}

type rawRecord struct {
	Name                  *string   `yaml:"name"`
	SupportedExtensions   *[]string `yaml:"supported_extensions"`
	UnsupportedExtensions *[]string `yaml:"unsupported_extensions"`
	Limit                 *Limit    `yaml:"limit"`
}

// Load reads the table document at path.
// The format is chosen by FormatFromPath. Every returned error wraps ErrLoad.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided table path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	t, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a table document in the given format and validates it.
func Parse(data []byte, format Format) (*Table, error) {
	var doc rawDocument
	if err := decode(data, format, &doc); err != nil {
		if errors.Is(err, ErrLoad) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	if doc.SizeLimitTable == nil {
		return nil, ErrMissingTable
	}

	records := make([]Record, 0, len(*doc.SizeLimitTable))
	for i, raw := range *doc.SizeLimitTable {
		r, err := raw.record()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, r)
	}

	return &Table{records: records}, nil
}

func decode(data []byte, format Format, doc *rawDocument) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, doc)
	case FormatTOML:
		return decodeTOML(data, doc)
	default:
		return decodeJSON(data, doc)
	}
}

// decodeJSON fills doc from a JSON document.
// encoding/json matches struct fields case-insensitively, so the document is
// split into raw key/value maps first and only exact keys are taken.
func decodeJSON(data []byte, doc *rawDocument) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	rawTable, ok := fields[keySizeLimitTable]
	if !ok {
		return nil
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(rawTable, &items); err != nil {
		return err
	}
	if items == nil {
		// size_limit_table: null
		return nil
	}

	records := make([]rawRecord, len(items))
	for i, item := range items {
		r := &records[i]
		targets := []struct {
			key string
			dst any
		}{
			{keyName, &r.Name},
			{keySupportedExtensions, &r.SupportedExtensions},
			{keyUnsupportedExtensions, &r.UnsupportedExtensions},
			{keyLimit, &r.Limit},
		}
		for _, f := range targets {
			value, ok := item[f.key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(value, f.dst); err != nil {
				return fmt.Errorf("record %d: %s: %w", i, f.key, err)
			}
		}
	}

	doc.SizeLimitTable = &records
	return nil
}

// decodeTOML fills doc from a TOML document.
// The document is decoded into plain maps, which keep their keys verbatim,
// and then goes through the same exact-key path as JSON.
func decodeTOML(data []byte, doc *rawDocument) error {
	var generic map[string]any
	if _, err := toml.Decode(string(data), &generic); err != nil {
		return err
	}

	converted, err := json.Marshal(generic)
	if err != nil {
		return err
	}
	return decodeJSON(converted, doc)
}

// record validates that every field is present and converts the raw record.
func (raw rawRecord) record() (Record, error) {
	switch {
	case raw.Name == nil:
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, keyName)
	case raw.SupportedExtensions == nil:
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, keySupportedExtensions)
	case raw.UnsupportedExtensions == nil:
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, keyUnsupportedExtensions)
	case raw.Limit == nil:
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, keyLimit)
	}

	return Record{
		Name:                  *raw.Name,
		SupportedExtensions:   *raw.SupportedExtensions,
		UnsupportedExtensions: *raw.UnsupportedExtensions,
		Limit:                 *raw.Limit,
	}, nil
}
