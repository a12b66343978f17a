package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndian_Readers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	require.Equal(t, uint32(0x67452301), U32LE(data))
	require.Equal(t, int64(-0x1032547698badcff), I64LE(data))

	short := []byte{0xAA}
	require.Zero(t, U32LE(short))
	require.Zero(t, I64LE(short))
}

func TestEndian_PutRoundTrip(t *testing.T) {
	b := make([]byte, 12)
	rest := PutI64LE(b, -42)
	rest = PutU32LE(rest, 0xdeadbeef)
	require.Empty(t, rest)

	require.Equal(t, int64(-42), I64LE(b))
	require.Equal(t, uint32(0xdeadbeef), U32LE(b[8:]))
}

func TestEndian_Words(t *testing.T) {
	src := []uint32{1, 0x80000000, 0xffffffff}
	b := make([]byte, 4*len(src)+2)
	rest := PutWords(b, src)
	require.Len(t, rest, 2)

	dst := make([]uint32, len(src))
	rest, ok := Words(dst, b)
	require.True(t, ok)
	require.Len(t, rest, 2)
	require.Equal(t, src, dst)

	_, ok = Words(make([]uint32, 4), b)
	require.False(t, ok, "short buffer must be reported")
}
