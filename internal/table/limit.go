package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Limit is a size limit in kilobytes.
//
// The number is kept exactly as it was written in the source document, so a
// limit of 500 renders as "500" and 1.5 renders as "1.5". Reports never
// convert units.
type Limit string

// String returns the limit as written in the source document.
func (l Limit) String() string {
	return string(l)
}

// Float64 returns the numeric value of the limit.
func (l Limit) Float64() (float64, error) {
	return strconv.ParseFloat(string(l), 64)
}

// UnmarshalJSON accepts a JSON number and keeps its literal text.
func (l *Limit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("%w: got %s", ErrInvalidLimit, data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: got %s", ErrInvalidLimit, data)
	}
	*l = Limit(n.String())
	return nil
}

// UnmarshalYAML accepts an integer or float scalar and keeps its literal text.
func (l *Limit) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrInvalidLimit, value.Line)
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		*l = Limit(value.Value)
		return nil
	default:
		return fmt.Errorf("%w: line %d: got %q", ErrInvalidLimit, value.Line, value.Value)
	}
}
