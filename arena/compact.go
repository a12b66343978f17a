package arena

import "log/slog"

// Compact moves every live block down to a contiguous prefix in address
// order and returns all dead space to the tail.
func (p *Pool[T]) Compact() {
	var moved, merged int
	i := p.blocks[0].up
	for i != 0 {
		b := p.blocks[i]
		if b.live {
			i = b.up
			continue
		}

		u := b.up
		if u == 0 || !p.blocks[u].live {
			// Dead into dead, or into the tail: the higher block absorbs i.
			p.blocks[u].start = b.start
			p.blocks[u].size += b.size
			p.unlink(i)
			p.release(i)
			merged++
			i = u
			continue
		}

		// Dead below live: slide the live data down and swap the two
		// blocks in the address cycle. i stays dead and is revisited.
		ub := p.blocks[u]
		copy(p.data[b.start:b.start+ub.size], p.data[ub.start:ub.start+ub.size])
		d, w := b.down, ub.up
		p.blocks[u].start = b.start
		p.blocks[i].start = b.start + ub.size

		p.blocks[d].up = u
		p.blocks[u].down = d
		p.blocks[u].up = i
		p.blocks[i].down = u
		p.blocks[i].up = w
		p.blocks[w].down = i
		moved++
	}

	p.compactions++
	p.moves += uint64(moved)
	p.merges += uint64(merged)
	p.log.Debug("arena compacted",
		slog.Int("moved", moved),
		slog.Int("merged", merged),
		slog.Int("tail", p.blocks[0].size),
		slog.Int("released", len(p.released)))
}

// unlink removes i from the address cycle.
func (p *Pool[T]) unlink(i Handle) {
	d, u := p.blocks[i].down, p.blocks[i].up
	p.blocks[d].up = u
	p.blocks[u].down = d
	p.blocks[i] = block{}
}

func (p *Pool[T]) release(i Handle) {
	p.released = append(p.released, i)
}
