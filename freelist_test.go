package slab

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/dolthub/swiss"
	"github.com/stretchr/testify/require"
)

type tiny struct {
	v uint64
}

func TestGenerationStrictlyIncreasesAcrossPushes(t *testing.T) {
	a := New[tiny]()
	defer a.Close()

	p := a.Create(nil)
	blockPtr := blockFromPayload(unsafe.Pointer(p))

	var lastGen uint16
	for i := 0; i < 1000; i++ {
		a.Destroy(p)
		gen := Handle(a.head.Load()).generation()
		if i > 0 {
			require.Greater(t, gen, lastGen, "generation must increase between consecutive pushes")
		}
		lastGen = gen

		p = a.Create(nil)
		require.Equal(t, blockPtr, blockFromPayload(unsafe.Pointer(p)), "single-threaded reuse should return the same block")
	}
	a.Destroy(p)
}

func TestGenerationWrapsWithoutCorruption(t *testing.T) {
	if testing.Short() {
		t.Skip("cycles a single block 2^16+1 times")
	}

	a := New[tiny]()
	defer a.Close()

	p := a.Create(nil)
	for i := 0; i < 1<<16+1; i++ {
		a.Destroy(p)
		p = a.Create(nil)
	}
	a.Destroy(p)

	// The allocator must still be internally consistent: no outstanding
	// blocks and still only one puddle.
	require.EqualValues(t, 0, a.usedCount.Load())
	require.EqualValues(t, 1, a.puddleCount.Load())
}

// TestNoTwoConcurrentCreatesObserveTheSameBlock stresses push/pop with two
// goroutines doing create/destroy pairs on a single small allocator and
// asserts the distinctness invariant holds at every instant: no pointer is
// ever handed to two outstanding Create calls at once. It tracks live
// pointers in a swiss.Map guarded by a mutex, the same map implementation
// the teacher uses to key its own block handles.
func TestNoTwoConcurrentCreatesObserveTheSameBlock(t *testing.T) {
	if testing.Short() {
		t.Skip("runs a high-iteration concurrent stress loop")
	}

	a := New[tiny]()
	defer a.Close()

	const iterations = 200000
	const goroutines = 2

	live := swiss.NewMap[uintptr, int](16)
	var mu sync.Mutex

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				p := a.Create(nil)
				addr := uintptr(unsafe.Pointer(p))

				mu.Lock()
				if other, ok := live.Get(addr); ok {
					mu.Unlock()
					t.Errorf("goroutine %d observed block %#x already live in goroutine %d", id, addr, other)
					return
				}
				live.Put(addr, id)
				mu.Unlock()

				mu.Lock()
				live.Delete(addr)
				mu.Unlock()

				a.Destroy(p)
			}
		}(g)
	}
	wg.Wait()

	require.EqualValues(t, 0, a.usedCount.Load())
}
