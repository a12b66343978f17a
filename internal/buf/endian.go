// Package buf contains little-endian word helpers shared by the plot codec.
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// I64LE reads a little-endian int64 from b. Returns 0 when b is too short.
func I64LE(b []byte) int64 {
	if len(b) < 8 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

// PutU32LE writes v at the start of b and returns the remainder of b.
func PutU32LE(b []byte, v uint32) []byte {
	binary.LittleEndian.PutUint32(b, v)
	return b[4:]
}

// PutI64LE writes v at the start of b and returns the remainder of b.
func PutI64LE(b []byte, v int64) []byte {
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b[8:]
}

// Words decodes len(dst) consecutive little-endian uint32 values from b and
// returns the remainder. It reports false when b is too short.
func Words(dst []uint32, b []byte) ([]byte, bool) {
	if len(b) < 4*len(dst) {
		return b, false
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return b[4*len(dst):], true
}

// PutWords encodes src as consecutive little-endian uint32 values and
// returns the remainder of b.
func PutWords(b []byte, src []uint32) []byte {
	for _, w := range src {
		binary.LittleEndian.PutUint32(b, w)
		b = b[4:]
	}
	return b
}
