// Package arena provides a compacting block allocator with stable handles.
//
// # Overview
//
// A Pool owns one fixed-capacity backing slice of elements and hands out
// variable-length blocks carved from its free tail. Blocks are addressed by
// Handle, an index into a descriptor table, so their storage can move during
// compaction without invalidating the caller's reference.
//
// # Allocation
//
// Alloc bumps a new block from the tail and links it last in address order:
//
//	pool := arena.New[float.Float](1 << 16)
//	h, err := pool.Alloc(45)
//	if err != nil {
//	    return err
//	}
//	coefs := pool.Slice(h)
//
// Free only marks a block dead. Its space returns to the tail at the next
// compaction, which runs automatically when the tail is too short for a
// request, or explicitly via Compact.
//
// # Compaction
//
// Compaction walks the blocks in address order from the lowest:
//
//   - dead followed by dead merges both into the higher block
//   - dead followed by live moves the live elements down and swaps the order
//   - a dead run at the end is absorbed by the tail
//
// Afterwards all live blocks are contiguous from offset 0 in their original
// relative order, and descriptor indices released by merging are queued for
// reuse in FIFO order.
//
// # Borrowing
//
// Slice returns a view into the backing storage. The view is valid until the
// next call that can compact (Alloc, Dup, Compact). Re-fetch after any such
// call.
//
// # Debug Logging
//
// Set MODFLOAT_LOG_ARENA=1 to log compactions at debug level through
// slog.Default, or pass WithLogger.
//
// # Thread Safety
//
// A Pool is not safe for concurrent use. Callers must serialize access.
package arena
