// FILE: lixenwraith/hhopts/errors.go
package hhopts

import "errors"

var (
	// ErrInvalidValue is returned when a raw value cannot be decoded by its decoder.
	// Only the integer decoder produces it.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformedArg is returned for a command-line entry that is not KEY=VALUE.
	ErrMalformedArg = errors.New("malformed KEY=VALUE entry")

	// ErrUnknownDecoder is returned when a decoder name does not match any decoder.
	ErrUnknownDecoder = errors.New("unknown decoder")

	// ErrTableFileNotFound is returned when a table file does not exist.
	ErrTableFileNotFound = errors.New("table file not found")

	// ErrTableFormat is returned when a table file format cannot be determined or parsed.
	ErrTableFormat = errors.New("invalid table file format")
)
