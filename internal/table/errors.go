package table

import (
	"errors"
	"fmt"
)

// ErrLoad is the umbrella error for every failure to produce a Table.
// All other errors in this package wrap it, so callers that only need to
// know "the table could not be loaded" can use errors.Is(err, ErrLoad).
var ErrLoad = errors.New("failed to load extension table")

// Load errors. Each wraps ErrLoad.
var (
	// ErrTableNotFound is returned when the table file does not exist.
	ErrTableNotFound = fmt.Errorf("%w: file not found", ErrLoad)

	// ErrMalformedTable is returned when the file cannot be decoded.
	ErrMalformedTable = fmt.Errorf("%w: malformed document", ErrLoad)

	// ErrMissingTable is returned when the document has no size_limit_table key.
	ErrMissingTable = fmt.Errorf("%w: size_limit_table is missing", ErrLoad)

	// ErrMissingField is returned when a record lacks one of its required fields.
	ErrMissingField = fmt.Errorf("%w: record field is missing", ErrLoad)

	// ErrInvalidLimit is returned when a limit is not a number.
	ErrInvalidLimit = fmt.Errorf("%w: limit must be a number", ErrLoad)
)
