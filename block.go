package slab

import "unsafe"

// blockState tags a block's position in its lifecycle. It is not consulted
// by the hot-path push/pop logic; it exists so corruption is detectable at
// the point of misuse under the slab_debug build tag rather than at the
// point of crash.
type blockState uint32

const (
	stateInitial blockState = iota
	stateFree
	stateUsed
)

// header is the 16-byte record that precedes every block's T payload. Its
// low-16-bit identity (the low bits of self) is assigned once, when the
// owning puddle is initialized, and never changes after that.
type header struct {
	next  Handle
	self  Handle
	state blockState
	_     uint32 // pad to 16 bytes
}

const headerSize = int(unsafe.Sizeof(header{}))

func init() {
	if headerSize != 16 {
		panic("slab: block header is not 16 bytes on this platform")
	}
}

func headerAt(ptr unsafe.Pointer) *header {
	return (*header)(ptr)
}

func payloadAt(ptr unsafe.Pointer) unsafe.Pointer {
	return unsafe.Add(ptr, headerSize)
}

func blockFromPayload(payload unsafe.Pointer) unsafe.Pointer {
	return unsafe.Add(payload, -headerSize)
}

// alignUp rounds value up to the next multiple of alignment, which must be
// a power of two. Mirrors memutils.AlignUp, generalized from int to the
// stride math used here.
func alignUp(value int, alignment int) int {
	return (value + alignment - 1) &^ (alignment - 1)
}

// strideFor computes the per-block stride for a payload of payloadSize
// bytes: round_up(headerSize+elmSize, 16), and validates the two layout
// invariants spec'd for the allocator.
func strideFor(payloadSize int) (int, error) {
	stride := alignUp(headerSize+payloadSize, headerSize)
	if stride%headerSize != 0 {
		return 0, errorf(ErrMisconfiguredStride, "stride %d is not a multiple of header size %d", stride, headerSize)
	}
	if stride < 2*headerSize {
		return 0, errorf(ErrMisconfiguredStride, "stride %d is smaller than twice the header size", stride)
	}
	return stride, nil
}
