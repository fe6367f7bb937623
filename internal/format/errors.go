package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadStatus indicates a header carried an unknown status marker.
	ErrBadStatus = errors.New("format: unknown status marker")
	// ErrBadSize indicates a header declared a size that cannot fit the buffer.
	ErrBadSize = errors.New("format: declared size out of range")
)
