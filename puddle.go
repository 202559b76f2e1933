package slab

import "unsafe"

// MaxPuddles is the maximum number of puddles a single allocator may own.
const MaxPuddles = 256

// BlocksPerPuddle is the fixed number of blocks held by a single puddle.
const BlocksPerPuddle = 256

// puddle is a contiguous region holding exactly BlocksPerPuddle blocks at
// a fixed stride. Once published into an allocator's puddle table, its mem
// pointer is never rewritten or freed until the allocator is closed, so
// any address derived from a handle into it stays valid for the
// allocator's lifetime.
type puddle struct {
	mem unsafe.Pointer
}

func (p *puddle) blockAt(stride int, element uint8) unsafe.Pointer {
	return unsafe.Add(p.mem, int(element)*stride)
}

// growOne reserves the next puddle slot, backs it with a fresh region from
// the allocator's MemoryProvider, and pushes all 256 of its blocks onto
// the free list in descending element order (cosmetic: it biases the list
// so the lowest-indexed block ends up on top). It reports false, without
// touching the allocator's memory provider, if every puddle slot is
// already taken — the caller decides what exhaustion means.
func (a *Allocator[T]) growOne() bool {
	idx := a.puddleCount.Add(1) - 1
	if idx >= MaxPuddles {
		// Give the reservation back so puddleCount never exceeds MaxPuddles.
		a.puddleCount.Add(^uint32(0))
		return false
	}

	size := BlocksPerPuddle * a.stride
	mem := a.provider.Alloc(size)
	a.provider.Clear(mem, size)

	p := &puddle{mem: mem}
	a.puddles[idx].Store(p)

	for e := BlocksPerPuddle - 1; e >= 0; e-- {
		blockPtr := p.blockAt(a.stride, uint8(e))
		h := headerAt(blockPtr)
		h.self = newHandle(uint8(idx), uint8(e), 0)
		h.next = NoHandle
		h.state = stateInitial
		a.push(blockPtr)
	}

	if a.logger != nil {
		a.logger.Debug("slab: allocated puddle", "name", a.name, "puddle", idx, "stride", a.stride)
	}
	return true
}

// resolve translates the low 16 bits of a handle into the address of the
// block it identifies. Generation bits are ignored.
func (a *Allocator[T]) resolve(h Handle) unsafe.Pointer {
	p := a.puddles[h.puddleIndex()].Load()
	return p.blockAt(a.stride, h.element())
}
