// Package format encodes the plot records written by the grid tabulator.
//
// A plot file is a flat stream of fixed-size records with no header. Every
// integer is little-endian.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------
//	 0x000   4    X (column index)
//	 0x004   4    Y (row index)
//	 0x008   80   Start: tau as two Floats (re, im)
//	 0x058   80   JT: j(tau) as two Floats (re, im)
//
// A Float is an int64 binary exponent followed by float.Words mantissa
// words, least significant first.
package format

import (
	"fmt"

	"github.com/joshuapare/modfloat/cplx"
	"github.com/joshuapare/modfloat/float"
	"github.com/joshuapare/modfloat/internal/buf"
)

const (
	// FloatSize is the encoded size of one Float.
	FloatSize = 8 + 4*float.Words
	// ComplexSize is the encoded size of one Complex.
	ComplexSize = 2 * FloatSize
	// RecordSize is the encoded size of one Record.
	RecordSize = 8 + 2*ComplexSize

	startOffset = 0x08
	jtOffset    = startOffset + ComplexSize
)

// Record is one tabulated grid point.
type Record struct {
	X, Y  uint32
	Start cplx.Complex
	JT    cplx.Complex
}

// PutRecord encodes r into the first RecordSize bytes of b.
func PutRecord(b []byte, r Record) error {
	if len(b) < RecordSize {
		return fmt.Errorf("record: %w", ErrTruncated)
	}
	b = buf.PutU32LE(b, r.X)
	b = buf.PutU32LE(b, r.Y)
	b = putComplex(b, r.Start)
	putComplex(b, r.JT)
	return nil
}

// AppendRecord appends the encoding of r to b.
func AppendRecord(b []byte, r Record) []byte {
	n := len(b)
	b = append(b, make([]byte, RecordSize)...)
	_ = PutRecord(b[n:], r)
	return b
}

// ReadRecord decodes the record at the start of b.
func ReadRecord(b []byte) (Record, error) {
	if len(b) < RecordSize {
		return Record{}, fmt.Errorf("record: %w", ErrTruncated)
	}
	var r Record
	r.X = buf.U32LE(b)
	r.Y = buf.U32LE(b[4:])
	r.Start = readComplex(b[startOffset:])
	r.JT = readComplex(b[jtOffset:])
	return r, nil
}

func putComplex(b []byte, z cplx.Complex) []byte {
	b = putFloat(b, z.Re)
	return putFloat(b, z.Im)
}

func putFloat(b []byte, x float.Float) []byte {
	exp, mant := x.Bits()
	b = buf.PutI64LE(b, exp)
	return buf.PutWords(b, mant[:])
}

// readComplex assumes b holds at least ComplexSize bytes.
func readComplex(b []byte) cplx.Complex {
	return cplx.New(readFloat(b), readFloat(b[FloatSize:]))
}

func readFloat(b []byte) float.Float {
	var mant [float.Words]uint32
	buf.Words(mant[:], b[8:])
	return float.FromBits(buf.I64LE(b), mant)
}
