package runlog

import "errors"

var (
	// ErrUnsupportedFormat is returned by Open for an unknown file extension.
	ErrUnsupportedFormat = errors.New("runlog: unsupported log format")

	// ErrClosed is returned by WriteGeneration after Close.
	ErrClosed = errors.New("runlog: sink closed")
)
