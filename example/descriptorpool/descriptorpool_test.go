package descriptorpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquireReleaseRoundTrip(t *testing.T) {
	pool := New()
	defer pool.Close()

	tex := pool.Acquire(ResourceKindTexture, 0xCAFEBABE)
	require.Equal(t, ResourceKindTexture, tex.Kind)
	require.EqualValues(t, 0xCAFEBABE, tex.NativeID)

	require.EqualValues(t, 1, pool.Stats().AllocationCount)

	pool.Release(tex)
	require.EqualValues(t, 0, pool.Stats().AllocationCount)
}

func TestAcquireManyGrowsAPuddle(t *testing.T) {
	pool := New()
	defer pool.Close()

	var held []*Descriptor
	for i := 0; i < 300; i++ {
		held = append(held, pool.Acquire(ResourceKindBuffer, uint64(i)))
	}
	require.EqualValues(t, 2, pool.Stats().PuddleCount)

	for _, d := range held {
		pool.Release(d)
	}
}
