// Package slab implements a fixed-block, thread-safe slab allocator.
//
// An Allocator[T] backs high-churn pools of a single compile-time-fixed
// value type T — handle tables, small descriptor objects, tagged resource
// slots — with amortized O(1) construction and destruction that may be
// invoked from multiple goroutines concurrently without external
// synchronization. The free list is a lock-free LIFO, tagged with a
// monotonically increasing generation counter to defeat the ABA hazard;
// storage grows in fixed "puddles" of 256 blocks so that once an address
// is handed out it remains valid until the allocator itself is closed.
package slab

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/slog"
)

// Allocator pools values of type T behind a lock-free free list over
// fixed-size blocks. The zero value is not usable; construct one with New.
type Allocator[T any] struct {
	provider MemoryProvider
	logger   *slog.Logger
	name     string

	stride      int
	payloadSize int

	puddles     [MaxPuddles]atomic.Pointer[puddle]
	puddleCount atomic.Uint32
	head        atomic.Uint32
	generation  atomic.Uint32
	usedCount   atomic.Int64
}

// Option configures an Allocator at construction time.
type Option[T any] func(*Allocator[T])

// WithProvider overrides the default heap-backed MemoryProvider.
func WithProvider[T any](provider MemoryProvider) Option[T] {
	return func(a *Allocator[T]) {
		a.provider = provider
	}
}

// WithLogger attaches a structured logger. Puddle growth is logged at
// Debug level; nothing on the Create/Destroy hot path is ever logged.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(a *Allocator[T]) {
		a.logger = logger
	}
}

// WithName labels the allocator for logging and stats output.
func WithName[T any](name string) Option[T] {
	return func(a *Allocator[T]) {
		a.name = name
	}
}

// New constructs an Allocator for T. It panics with ErrMisconfiguredStride
// if the computed per-block stride does not satisfy the layout invariants
// (a multiple of the 16-byte header size, at least twice that size) —
// this happens only for a zero-sized T, whose 16-byte stride is below the
// 32-byte minimum, and is a construction-time programmer error rather
// than a recoverable one.
func New[T any](opts ...Option[T]) *Allocator[T] {
	var zero T
	payloadSize := int(unsafe.Sizeof(zero))

	stride, err := strideFor(payloadSize)
	if err != nil {
		panic(err)
	}

	a := &Allocator[T]{
		provider:    heapProvider{},
		stride:      stride,
		payloadSize: payloadSize,
	}
	a.head.Store(uint32(NoHandle))

	for _, opt := range opts {
		opt(a)
	}

	if a.name == "" {
		a.name = "slab"
	}

	return a
}

// Create pops a free block, growing a new puddle first if the free list is
// empty, constructs a T in place at the block's payload, and returns a
// pointer to it. init, if non-nil, runs after the in-place zero value is
// established — Go has no way to forward variadic constructor arguments
// to an arbitrary T, so init is the idiomatic stand-in.
//
// Create panics with ErrCapacityExhausted if the allocator has already
// grown all 256 puddles and the free list is still empty: this allocator
// has reached its 65536-block ceiling and the caller must size its pool
// correctly.
func (a *Allocator[T]) Create(init func(*T)) *T {
	blockPtr := a.pop()
	if blockPtr == nil {
		if !a.growOne() {
			panic(ErrCapacityExhausted)
		}
		blockPtr = a.pop()
	}

	a.usedCount.Add(1)

	obj := (*T)(payloadAt(blockPtr))
	var zero T
	*obj = zero
	if init != nil {
		init(obj)
	}
	return obj
}

// Destroy runs T's "destructor" — zeroing *t in place, the Go analog of
// an explicit destructor call, releasing any references T held for the
// garbage collector — then recovers the owning block and pushes it back
// onto the free list.
//
// Under the slab_debug build tag, t is first validated to fall inside
// some puddle owned by this allocator; passing a foreign pointer panics
// with ErrForeignPointer. In a release build this validation does not
// run, and a foreign or already-freed pointer is undefined behavior, per
// spec.
func (a *Allocator[T]) Destroy(t *T) {
	blockPtr := blockFromPayload(unsafe.Pointer(t))
	a.debugCheckOwnership(blockPtr)

	var zero T
	*t = zero

	a.usedCount.Add(-1)
	a.push(blockPtr)
}

// Close releases every puddle this allocator has grown back to its
// MemoryProvider. Closing an allocator while blocks remain in use is
// undefined, per spec; callers must drain first.
func (a *Allocator[T]) Close() error {
	n := a.puddleCount.Load()
	size := BlocksPerPuddle * a.stride
	for i := uint32(0); i < n; i++ {
		p := a.puddles[i].Swap(nil)
		if p != nil {
			a.provider.Free(p.mem, size)
		}
	}
	return nil
}
