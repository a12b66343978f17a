package arena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the address cycle against physical layout and
// the occupancy identity live + dead + tail == capacity.
func checkInvariants[T any](t *testing.T, p *Pool[T]) {
	t.Helper()

	pos := 0
	prev := Handle(0)
	for i := p.blocks[0].up; i != 0; i = p.blocks[i].up {
		b := p.blocks[i]
		require.Equal(t, prev, b.down, "block %d down link", i)
		require.Equal(t, pos, b.start, "block %d start", i)
		pos += b.size
		prev = i
	}
	require.Equal(t, prev, p.blocks[0].down, "sentinel down link")
	require.Equal(t, pos, p.blocks[0].start, "tail start")

	st := p.Stats()
	require.Equal(t, p.Capacity(), st.LiveSlots+st.DeadSlots+st.TailSlots)
}

// fill writes a recognizable pattern into a block.
func fill(p *Pool[int], h Handle, base int) {
	s := p.Slice(h)
	for i := range s {
		s[i] = base + i
	}
}

func requirePattern(t *testing.T, p *Pool[int], h Handle, base int) {
	t.Helper()
	for i, v := range p.Slice(h) {
		require.Equal(t, base+i, v, "handle %d element %d", h, i)
	}
}

// TestPool_AllocSequential tests bump allocation in address order.
func TestPool_AllocSequential(t *testing.T) {
	p := New[int](100)

	a, err := p.Alloc(10)
	require.NoError(t, err)
	b, err := p.Alloc(20)
	require.NoError(t, err)
	c, err := p.Alloc(0)
	require.NoError(t, err)

	assert.NotZero(t, a)
	assert.Equal(t, 10, p.Len(a))
	assert.Equal(t, 20, p.Len(b))
	assert.Equal(t, 0, p.Len(c))
	assert.Len(t, p.Slice(b), 20)

	want := []Block{
		{Handle: a, Start: 0, Size: 10, Live: true},
		{Handle: b, Start: 10, Size: 20, Live: true},
		{Handle: c, Start: 30, Size: 0, Live: true},
	}
	if diff := cmp.Diff(want, p.Layout()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	checkInvariants(t, p)
}

// TestPool_AllocZeroes tests that reused space comes back cleared.
func TestPool_AllocZeroes(t *testing.T) {
	p := New[int](10)

	h, err := p.Alloc(10)
	require.NoError(t, err)
	fill(p, h, 7)
	require.NoError(t, p.Free(h))

	h, err = p.Alloc(10)
	require.NoError(t, err)
	for _, v := range p.Slice(h) {
		require.Zero(t, v)
	}
}

// TestPool_FreeCompactReuse frees the middle of three blocks and checks that
// its descriptor is the next one handed out.
func TestPool_FreeCompactReuse(t *testing.T) {
	p := New[int](64)

	a, err := p.Alloc(11)
	require.NoError(t, err)
	b, err := p.Alloc(21)
	require.NoError(t, err)
	c, err := p.Alloc(6)
	require.NoError(t, err)
	fill(p, a, 100)
	fill(p, c, 300)

	require.NoError(t, p.Free(b))
	p.Compact()
	checkInvariants(t, p)

	st := p.Stats()
	assert.Equal(t, 2, st.LiveBlocks)
	assert.Zero(t, st.DeadBlocks)
	assert.Equal(t, 1, st.Released)
	assert.Equal(t, 64-17, st.TailSlots)

	want := []Block{
		{Handle: a, Start: 0, Size: 11, Live: true},
		{Handle: c, Start: 11, Size: 6, Live: true},
	}
	if diff := cmp.Diff(want, p.Layout()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	requirePattern(t, p, a, 100)
	requirePattern(t, p, c, 300)

	d, err := p.Alloc(3)
	require.NoError(t, err)
	assert.Equal(t, b, d, "released descriptor should be reused first")
	checkInvariants(t, p)
}

// TestPool_CompactMergesDeadRuns checks dead-dead merging and FIFO order.
func TestPool_CompactMergesDeadRuns(t *testing.T) {
	p := New[int](50)

	hs := make([]Handle, 6)
	for i := range hs {
		h, err := p.Alloc(5)
		require.NoError(t, err)
		fill(p, h, i*10)
		hs[i] = h
	}
	// live dead dead live dead dead
	for _, i := range []int{1, 2, 4, 5} {
		require.NoError(t, p.Free(hs[i]))
	}

	p.Compact()
	checkInvariants(t, p)

	st := p.Stats()
	assert.Equal(t, 2, st.LiveBlocks)
	assert.Equal(t, 40, st.TailSlots)
	assert.Equal(t, 4, st.Released)
	assert.Equal(t, uint64(1), st.Compactions)
	requirePattern(t, p, hs[0], 0)
	requirePattern(t, p, hs[3], 30)

	// Descriptors come back in the order they were released.
	var got []Handle
	for range 4 {
		h, err := p.Alloc(1)
		require.NoError(t, err)
		got = append(got, h)
	}
	assert.ElementsMatch(t, []Handle{hs[1], hs[2], hs[4], hs[5]}, got)
	assert.Equal(t, got[0], p.Layout()[2].Handle)
}

// TestPool_AllocTriggersCompaction checks the automatic compact-and-retry.
func TestPool_AllocTriggersCompaction(t *testing.T) {
	p := New[int](30)

	a, err := p.Alloc(10)
	require.NoError(t, err)
	b, err := p.Alloc(10)
	require.NoError(t, err)
	c, err := p.Alloc(10)
	require.NoError(t, err)
	fill(p, c, 500)

	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(b))

	d, err := p.Alloc(15)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.Stats().Compactions)
	requirePattern(t, p, c, 500)
	assert.Equal(t, 0, p.Layout()[0].Start)
	assert.Equal(t, d, p.Layout()[1].Handle)
	checkInvariants(t, p)
}

// TestPool_NoSpace reports exhaustion after a failed compaction.
func TestPool_NoSpace(t *testing.T) {
	p := New[int](20)

	_, err := p.Alloc(15)
	require.NoError(t, err)
	_, err = p.Alloc(6)
	require.ErrorIs(t, err, ErrNoSpace)

	_, err = p.Alloc(-1)
	require.ErrorIs(t, err, ErrNoSpace)
	checkInvariants(t, p)
}

// TestPool_NoHandles enforces the descriptor limit.
func TestPool_NoHandles(t *testing.T) {
	p := New[int](100, WithMaxBlocks(2))

	a, err := p.Alloc(1)
	require.NoError(t, err)
	_, err = p.Alloc(1)
	require.NoError(t, err)
	_, err = p.Alloc(1)
	require.ErrorIs(t, err, ErrNoHandles)

	// A dead block's descriptor is recovered by compaction.
	require.NoError(t, p.Free(a))
	_, err = p.Alloc(1)
	require.NoError(t, err)
	checkInvariants(t, p)
}

// TestPool_BadHandles rejects the sentinel, unknown and dead handles.
func TestPool_BadHandles(t *testing.T) {
	p := New[int](10)
	h, err := p.Alloc(2)
	require.NoError(t, err)

	require.ErrorIs(t, p.Free(0), ErrBadHandle)
	require.ErrorIs(t, p.Free(42), ErrBadHandle)
	require.ErrorIs(t, p.Free(-1), ErrBadHandle)
	require.NoError(t, p.Free(h))
	require.ErrorIs(t, p.Free(h), ErrBadHandle)
	assert.False(t, p.Live(h))

	assert.Panics(t, func() { p.Slice(h) })
	assert.Panics(t, func() { p.Len(0) })
	_, err = p.Dup(h)
	require.ErrorIs(t, err, ErrBadHandle)
}

// TestPool_CopyAndDup tests element copies between blocks.
func TestPool_CopyAndDup(t *testing.T) {
	p := New[int](40)
	a, err := p.Alloc(8)
	require.NoError(t, err)
	fill(p, a, 1)

	b, err := p.Dup(a)
	require.NoError(t, err)
	requirePattern(t, p, b, 1)

	c, err := p.Alloc(4)
	require.NoError(t, err)
	require.NoError(t, p.Copy(c, 1, a, 5, 3))
	assert.Equal(t, []int{0, 6, 7, 8}, p.Slice(c))

	require.ErrorIs(t, p.Copy(c, 2, a, 0, 3), ErrOutOfRange)
	require.ErrorIs(t, p.Copy(c, 0, a, 7, 2), ErrOutOfRange)
	require.ErrorIs(t, p.Copy(0, 0, a, 0, 1), ErrBadHandle)
}

// TestPool_ChurnKeepsInvariants runs a deterministic alloc/free mix.
func TestPool_ChurnKeepsInvariants(t *testing.T) {
	p := New[int](500, WithMaxBlocks(64))
	type rec struct {
		h    Handle
		base int
	}
	var live []rec
	seed := uint32(12345)
	next := func() int {
		seed = seed*1103515245 + 12345
		return int(seed >> 16)
	}

	for step := range 2000 {
		if len(live) > 0 && (next()%3 == 0 || len(live) > 40) {
			k := next() % len(live)
			require.NoError(t, p.Free(live[k].h))
			live = append(live[:k], live[k+1:]...)
		} else {
			h, err := p.Alloc(next() % 20)
			if err != nil {
				require.ErrorIs(t, err, ErrNoSpace)
				continue
			}
			fill(p, h, step*100)
			live = append(live, rec{h, step * 100})
		}
		if step%97 == 0 {
			checkInvariants(t, p)
		}
	}
	p.Compact()
	checkInvariants(t, p)
	for _, r := range live {
		requirePattern(t, p, r.h, r.base)
	}
	assert.Equal(t, len(live), p.Stats().LiveBlocks)
}
