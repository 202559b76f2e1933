//go:build !slab_debug

package slab

import "unsafe"

func debugAssertState(h *header, allowed ...blockState) {}

func debugPoisonPush(payload unsafe.Pointer, size int) {}

func debugPoisonPop(payload unsafe.Pointer, size int) {}

func (a *Allocator[T]) debugCheckOwnership(blockPtr unsafe.Pointer) {}
