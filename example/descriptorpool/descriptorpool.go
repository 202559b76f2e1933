// Package descriptorpool is a small illustrative consumer of slab.Allocator:
// a fixed-size descriptor-slot record for a rendering resource table,
// pooled the way a resource factory would instantiate its own allocator
// for its own record type. It does not bind to any concrete 3D API —
// that binding is an external collaborator outside this module's scope.
package descriptorpool

import "github.com/fenrirlab/slab"

// ResourceKind identifies what a descriptor slot currently refers to.
type ResourceKind uint8

const (
	ResourceKindNone ResourceKind = iota
	ResourceKindTexture
	ResourceKindBuffer
	ResourceKindSampler
)

// Descriptor is a tagged resource slot: the kind of resource it refers to,
// an opaque backend handle, and a Generation field. The pool never sets
// Generation; Acquire hands out every record with it zeroed.
type Descriptor struct {
	Kind       ResourceKind
	Generation uint32
	NativeID   uint64
}

// Pool hands out and recycles Descriptor records.
type Pool struct {
	allocator *slab.Allocator[Descriptor]
}

// New constructs a Pool backed by a fresh slab.Allocator[Descriptor].
func New() *Pool {
	return &Pool{
		allocator: slab.New[Descriptor](slab.WithName[Descriptor]("descriptor-pool")),
	}
}

// Acquire returns a Descriptor initialized for the given kind and native
// backend ID.
func (p *Pool) Acquire(kind ResourceKind, nativeID uint64) *Descriptor {
	return p.allocator.Create(func(d *Descriptor) {
		d.Kind = kind
		d.NativeID = nativeID
	})
}

// Release returns a Descriptor to the pool.
func (p *Pool) Release(d *Descriptor) {
	p.allocator.Destroy(d)
}

// Stats reports the pool's current puddle and block counts.
func (p *Pool) Stats() slab.Statistics {
	return p.allocator.Stats()
}

// Close releases every puddle the pool has grown.
func (p *Pool) Close() error {
	return p.allocator.Close()
}
