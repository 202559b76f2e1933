//go:build slab_debug

package slab

import (
	"unsafe"

	pkgerrors "github.com/pkg/errors"
)

const (
	poisonPush byte = 0xAA
	poisonPop  byte = 0xBB
)

func debugAssertState(h *header, allowed ...blockState) {
	for _, s := range allowed {
		if h.state == s {
			return
		}
	}
	panic(pkgerrors.Wrap(ErrDoubleDestroy, "push"))
}

func debugPoisonPush(payload unsafe.Pointer, size int) {
	fill(payload, size, poisonPush)
}

func debugPoisonPop(payload unsafe.Pointer, size int) {
	fill(payload, size, poisonPop)
}

func fill(payload unsafe.Pointer, size int, b byte) {
	dst := unsafe.Slice((*byte)(payload), size)
	for i := range dst {
		dst[i] = b
	}
}

// debugCheckOwnership scans every live puddle's address range and panics
// with ErrForeignPointer if ptr does not fall inside one of them at a
// stride-aligned block offset. This is the O(puddles) ownership check
// spec.md describes as a debug-only aid, never on the release hot path.
func (a *Allocator[T]) debugCheckOwnership(blockPtr unsafe.Pointer) {
	n := a.puddleCount.Load()
	for i := uint32(0); i < n; i++ {
		p := a.puddles[i].Load()
		start := uintptr(p.mem)
		end := start + uintptr(BlocksPerPuddle*a.stride)
		addr := uintptr(blockPtr)
		if addr >= start && addr < end && (addr-start)%uintptr(a.stride) == 0 {
			return
		}
	}
	panic(ErrForeignPointer)
}
