package arena

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Runtime debug flag for compaction logging, controlled by MODFLOAT_LOG_ARENA.
var logArena = os.Getenv("MODFLOAT_LOG_ARENA") != ""

// Pool is a compacting allocator over a fixed-capacity slice of T.
type Pool[T any] struct {
	data      []T
	blocks    []block  // descriptor table; index 0 is the sentinel
	released  []Handle // FIFO of descriptors freed by compaction
	maxBlocks int
	log       *slog.Logger

	allocs      uint64
	frees       uint64
	compactions uint64
	moves       uint64
	merges      uint64
}

// New creates a pool holding capacity elements.
func New[T any](capacity int, opts ...Option) *Pool[T] {
	o := options{maxBlocks: DefaultMaxBlocks}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		if logArena {
			o.logger = slog.Default()
		} else {
			o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
	}
	if capacity < 0 {
		capacity = 0
	}

	p := &Pool[T]{
		data:      make([]T, capacity),
		blocks:    make([]block, 1, 64),
		maxBlocks: o.maxBlocks,
		log:       o.logger,
	}
	p.blocks[0] = block{start: 0, size: capacity}
	return p
}

// Capacity returns the total number of elements the pool manages.
func (p *Pool[T]) Capacity() int { return len(p.data) }

// Alloc reserves a zeroed block of n elements. If the tail is too short the
// pool compacts once before giving up with ErrNoSpace.
func (p *Pool[T]) Alloc(n int) (Handle, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrNoSpace, n)
	}
	if p.blocks[0].size < n {
		p.Compact()
		if p.blocks[0].size < n {
			return 0, fmt.Errorf("%w: need %d, have %d of %d", ErrNoSpace, n, p.blocks[0].size, len(p.data))
		}
	}

	h, err := p.takeHandle()
	if err != nil {
		return 0, err
	}

	tail := &p.blocks[0]
	last := tail.down
	p.blocks[h] = block{live: true, up: 0, down: last, start: tail.start, size: n}
	p.blocks[last].up = h
	tail = &p.blocks[0]
	tail.down = h
	tail.start += n
	tail.size -= n

	b := p.blocks[h]
	clear(p.data[b.start : b.start+b.size])
	p.allocs++
	return h, nil
}

// Free marks a block dead. Its space is reclaimed at the next compaction.
func (p *Pool[T]) Free(h Handle) error {
	if !p.valid(h) {
		return fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	p.blocks[h].live = false
	p.frees++
	return nil
}

// Slice borrows the elements of a live block. The slice is invalidated by
// the next Alloc, Dup or Compact. It panics on a dead handle.
func (p *Pool[T]) Slice(h Handle) []T {
	b := p.mustBlock(h)
	end := b.start + b.size
	return p.data[b.start:end:end]
}

// Len returns the number of elements in a live block.
func (p *Pool[T]) Len(h Handle) int {
	return p.mustBlock(h).size
}

// Live reports whether h refers to a live block.
func (p *Pool[T]) Live(h Handle) bool { return p.valid(h) }

// Copy copies n elements from src[srcOff:] to dst[dstOff:].
func (p *Pool[T]) Copy(dst Handle, dstOff int, src Handle, srcOff int, n int) error {
	if !p.valid(dst) {
		return fmt.Errorf("%w: %d", ErrBadHandle, dst)
	}
	if !p.valid(src) {
		return fmt.Errorf("%w: %d", ErrBadHandle, src)
	}
	d, s := p.blocks[dst], p.blocks[src]
	if n < 0 || dstOff < 0 || srcOff < 0 || dstOff+n > d.size || srcOff+n > s.size {
		return fmt.Errorf("%w: copy %d from %d+%d to %d+%d", ErrOutOfRange, n, src, srcOff, dst, dstOff)
	}
	copy(p.data[d.start+dstOff:d.start+dstOff+n], p.data[s.start+srcOff:s.start+srcOff+n])
	return nil
}

// Dup allocates a new block with the same length and contents as h.
func (p *Pool[T]) Dup(h Handle) (Handle, error) {
	if !p.valid(h) {
		return 0, fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	n := p.blocks[h].size
	d, err := p.Alloc(n)
	if err != nil {
		return 0, err
	}
	if err := p.Copy(d, 0, h, 0, n); err != nil {
		return 0, err
	}
	return d, nil
}

// Layout returns the blocks in address order, live and dead.
func (p *Pool[T]) Layout() []Block {
	var out []Block
	for i := p.blocks[0].up; i != 0; i = p.blocks[i].up {
		b := p.blocks[i]
		out = append(out, Block{Handle: i, Start: b.start, Size: b.size, Live: b.live})
	}
	return out
}

// Stats returns counters and a fresh occupancy census.
func (p *Pool[T]) Stats() Stats {
	st := Stats{
		Allocs:      p.allocs,
		Frees:       p.frees,
		Compactions: p.compactions,
		Moves:       p.moves,
		Merges:      p.merges,
		TailSlots:   p.blocks[0].size,
		Descriptors: len(p.blocks) - 1,
		Released:    len(p.released),
	}
	for i := p.blocks[0].up; i != 0; i = p.blocks[i].up {
		b := p.blocks[i]
		if b.live {
			st.LiveBlocks++
			st.LiveSlots += b.size
		} else {
			st.DeadBlocks++
			st.DeadSlots += b.size
		}
	}
	return st
}

func (p *Pool[T]) valid(h Handle) bool {
	return h > 0 && int(h) < len(p.blocks) && p.blocks[h].live
}

func (p *Pool[T]) mustBlock(h Handle) block {
	if !p.valid(h) {
		panic(fmt.Errorf("%w: %d", ErrBadHandle, h))
	}
	return p.blocks[h]
}

// takeHandle returns a descriptor index, preferring released ones. A full
// table is compacted once to recover descriptors held by dead blocks.
func (p *Pool[T]) takeHandle() (Handle, error) {
	if len(p.released) == 0 && len(p.blocks)-1 >= p.maxBlocks {
		p.Compact()
	}
	if len(p.released) > 0 {
		h := p.released[0]
		p.released = p.released[1:]
		return h, nil
	}
	if len(p.blocks)-1 >= p.maxBlocks {
		return 0, fmt.Errorf("%w: limit %d", ErrNoHandles, p.maxBlocks)
	}
	p.blocks = append(p.blocks, block{})
	return Handle(len(p.blocks) - 1), nil
}
