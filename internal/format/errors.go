package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrPartialRecord indicates a plot file whose length is not a whole
	// number of records.
	ErrPartialRecord = errors.New("format: trailing partial record")
)
