package slab

import "github.com/cockroachdb/errors"

// ErrMisconfiguredStride is wrapped in the panic value raised by New when the computed per-block
// stride for T does not satisfy the allocator's layout requirements
// (a multiple of the header size, at least twice the header size).
var ErrMisconfiguredStride error = errors.New("slab: stride is misconfigured for this element type")

// ErrCapacityExhausted is the panic value raised when growOne is invoked
// after all 256 puddle slots are already in use. The allocator has reached
// its 65536-block ceiling.
var ErrCapacityExhausted error = errors.New("slab: allocator has exhausted its 256 puddles")

// ErrForeignPointer is the panic value raised by the debug ownership check
// in Destroy when the pointer does not fall inside any puddle owned by
// this allocator.
var ErrForeignPointer error = errors.New("slab: pointer does not belong to this allocator")

// ErrDoubleDestroy is the panic value raised by the debug state assertion
// when a block is pushed while it is not in the initial or used state.
var ErrDoubleDestroy error = errors.New("slab: block was already free")

func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
