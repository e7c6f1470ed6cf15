package report

import "errors"

var (
	// ErrLookupMiss is returned by SizeLimitWriter when no record supports
	// the requested extension. Nothing is written in that case.
	ErrLookupMiss = errors.New("extension is not supported by any record")

	// ErrUnknownMode is returned for a report mode that is not recognized.
	ErrUnknownMode = errors.New("unknown report mode")

	// ErrMissingExtension is returned when the size_limit mode is requested
	// without an extension argument.
	ErrMissingExtension = errors.New("size_limit requires an extension argument")
)
