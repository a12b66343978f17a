package arena

import "log/slog"

// DefaultMaxBlocks is the descriptor table limit used when WithMaxBlocks is
// not given.
const DefaultMaxBlocks = 100000

// Handle identifies a block. The zero Handle is never valid.
type Handle int32

// block is one descriptor. Descriptor 0 is the sentinel: up is the lowest
// block, down is the highest, start/size describe the free tail.
type block struct {
	live  bool
	up    Handle // next block in address order, 0 after the last
	down  Handle // previous block in address order, 0 before the first
	start int
	size  int
}

// Block is an address-order snapshot entry returned by Layout.
type Block struct {
	Handle Handle
	Start  int
	Size   int
	Live   bool
}

// Stats reports allocator counters and current occupancy.
type Stats struct {
	Allocs      uint64
	Frees       uint64
	Compactions uint64
	Moves       uint64
	Merges      uint64

	LiveBlocks int
	DeadBlocks int
	LiveSlots  int
	DeadSlots  int
	TailSlots  int

	// Descriptors is the number of descriptor slots ever used, sentinel
	// excluded; Released of them are waiting for reuse.
	Descriptors int
	Released    int
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	maxBlocks int
	logger    *slog.Logger
}

// WithMaxBlocks limits the number of simultaneously existing blocks.
func WithMaxBlocks(n int) Option {
	return func(o *options) { o.maxBlocks = n }
}

// WithLogger routes debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
