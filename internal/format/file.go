package format

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/joshuapare/modfloat/internal/buf"
)

// Writer streams records to an underlying io.Writer through a buffer.
type Writer struct {
	w       *bufio.Writer
	scratch [RecordSize]byte
	count   int
}

// NewWriter returns a Writer buffering into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*RecordSize)}
}

// Write encodes and buffers one record.
func (w *Writer) Write(r Record) error {
	_ = PutRecord(w.scratch[:], r)
	if _, err := w.w.Write(w.scratch[:]); err != nil {
		return fmt.Errorf("format: write record %d: %w", w.count, err)
	}
	w.count++
	return nil
}

// Flush writes any buffered records.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Count returns the number of whole records in data, failing with
// ErrPartialRecord when its length is not a multiple of RecordSize.
func Count(data []byte) (int, error) {
	if rem := len(data) % RecordSize; rem != 0 {
		return 0, fmt.Errorf("%w: %d stray bytes", ErrPartialRecord, rem)
	}
	return len(data) / RecordSize, nil
}

// RecordAt decodes record i of a plot file image.
func RecordAt(data []byte, i int) (Record, error) {
	off, _, err := buf.Element(len(data), i, RecordSize)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w: %w", i, ErrTruncated, err)
	}
	return ReadRecord(data[off:])
}

// Decode iterates over the records of a plot file image. A trailing partial
// record is yielded as ErrTruncated after the whole ones.
func Decode(data []byte) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for i := 0; ; i++ {
			chunk, ok := buf.Slice(data, i*RecordSize, RecordSize)
			if !ok {
				if rest := len(data) - i*RecordSize; rest > 0 {
					yield(Record{}, fmt.Errorf("record %d: %w (%d of %d bytes)", i, ErrTruncated, rest, RecordSize))
				}
				return
			}
			r, err := ReadRecord(chunk)
			if !yield(r, err) {
				return
			}
		}
	}
}
