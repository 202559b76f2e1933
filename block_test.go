package slab

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestHeaderSizeIsSixteenBytes(t *testing.T) {
	require.Equal(t, 16, headerSize)
}

type threeByteT struct {
	a, b, c byte
}

type twentyFourByteT struct {
	a, b, c [8]byte
}

func TestStrideForRoundsUpToSixteen(t *testing.T) {
	var zero twentyFourByteT
	stride, err := strideFor(int(unsafe.Sizeof(zero)))
	require.NoError(t, err)
	require.Equal(t, 48, stride) // round_up(16+24,16) == 48, per spec S1
}

func TestStrideForSmallPayloadStillHitsMinimum(t *testing.T) {
	var zero threeByteT
	stride, err := strideFor(int(unsafe.Sizeof(zero)))
	require.NoError(t, err)
	require.GreaterOrEqual(t, stride, 2*headerSize)
	require.Zero(t, stride%headerSize)
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, 16, alignUp(1, 16))
	require.Equal(t, 16, alignUp(16, 16))
	require.Equal(t, 32, alignUp(17, 16))
	require.Equal(t, 0, alignUp(0, 16))
}
