package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or a negative operand.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Element returns the bounds [off, end) of element index of a packed array
// of fixed-size elements inside a buffer of bufLen bytes.
//
//	off, end, err := buf.Element(len(data), i, RecordSize)
//	if err != nil {
//	    return fmt.Errorf("record %d: %w", i, err)
//	}
func Element(bufLen, index, size int) (int, int, error) {
	if index < 0 {
		return 0, 0, fmt.Errorf("negative index: %d", index)
	}
	off, ok := MulOverflowSafe(index, size)
	if !ok {
		return 0, 0, fmt.Errorf("overflow: index=%d * size=%d", index, size)
	}
	end, ok := AddOverflowSafe(off, size)
	if !ok {
		return 0, 0, fmt.Errorf("overflow: offset=%d + size=%d", off, size)
	}
	if end > bufLen {
		return 0, 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return off, end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
