// Package parser turns the text and JSON output of relayer queries into domain records.
// Every function here is pure: no I/O, no logging.
package parser

import "errors"

var (
	// ErrMalformedJSON is returned when an output that must be JSON is not.
	ErrMalformedJSON = errors.New("malformed json output")
	// ErrNotObject is returned when a JSON output is valid but not an object.
	ErrNotObject = errors.New("json output is not an object")
)
