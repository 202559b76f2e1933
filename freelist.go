package slab

import "unsafe"

// push returns a block to the free list, stamping it with a fresh
// generation before publishing it as the new head. This is the only
// operation that mutates the shared head besides pop, and the only one
// that advances the generation counter.
//
// Precondition: the block at blockPtr is in the initial or used state.
func (a *Allocator[T]) push(blockPtr unsafe.Pointer) {
	h := headerAt(blockPtr)
	debugAssertState(h, stateInitial, stateUsed)
	debugPoisonPush(payloadAt(blockPtr), a.payloadSize)

	g := a.generation.Add(1)
	h.self = h.self.withGeneration(uint16(g))
	h.state = stateFree

	for {
		old := Handle(a.head.Load())
		h.next = old
		if a.head.CompareAndSwap(uint32(old), uint32(h.self)) {
			return
		}
	}
}

// pop removes and returns the block at the top of the free list, or nil if
// the list is empty. The generation tag on the head handle is what keeps
// a stalled popper's CAS from succeeding against a block that was popped,
// reused, and pushed again while it was stalled (the ABA hazard).
func (a *Allocator[T]) pop() unsafe.Pointer {
	for {
		oldRaw := a.head.Load()
		old := Handle(oldRaw)
		if old == NoHandle {
			return nil
		}

		blockPtr := a.resolve(old)
		h := headerAt(blockPtr)
		next := h.next

		if a.head.CompareAndSwap(oldRaw, uint32(next)) {
			debugAssertState(h, stateFree)
			h.next = NoHandle
			h.state = stateUsed
			debugPoisonPop(payloadAt(blockPtr), a.payloadSize)
			return blockPtr
		}
	}
}
