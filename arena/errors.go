package arena

import "errors"

var (
	// ErrNoSpace indicates the tail is too short for a request even after compaction.
	ErrNoSpace = errors.New("arena: not enough free space")

	// ErrNoHandles indicates the descriptor table is full.
	ErrNoHandles = errors.New("arena: out of block handles")

	// ErrBadHandle indicates the sentinel, an out-of-range index, or a freed block.
	ErrBadHandle = errors.New("arena: bad block handle")

	// ErrOutOfRange indicates a copy that would cross a block boundary.
	ErrOutOfRange = errors.New("arena: range outside block")
)
