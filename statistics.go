package slab

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics is a point-in-time snapshot of an allocator's puddle and
// block counts, mirroring memutils.Statistics field-for-field but in
// puddle/block terms rather than suballocation terms.
type Statistics struct {
	PuddleCount     int
	BlockCount      int
	AllocationCount int
	BlockBytes      int
	AllocationBytes int
}

// DetailedStatistics adds the min/max allocation size bookkeeping that
// memutils.DetailedStatistics carries, for consumers that want more than
// the coarse counts in Statistics. Every live allocation in an
// Allocator[T] is exactly sizeof(T), so min and max always agree here —
// unlike memutils' variable-size suballocator, there is no spread to
// report — but the fields are real, not placeholders: both are zero when
// nothing is live, and both report the payload size the moment something
// is.
type DetailedStatistics struct {
	Statistics
	AllocationSizeMin int
	AllocationSizeMax int
}

// Stats returns a snapshot of this allocator's current puddle and block
// counts. Live == allocationCount is tracked with a pair of atomic
// counters maintained alongside push/pop, not by walking the free list.
func (a *Allocator[T]) Stats() Statistics {
	puddleCount := int(a.puddleCount.Load())
	used := int(a.usedCount.Load())
	return Statistics{
		PuddleCount:     puddleCount,
		BlockCount:      puddleCount * BlocksPerPuddle,
		AllocationCount: used,
		BlockBytes:      puddleCount * BlocksPerPuddle * a.stride,
		AllocationBytes: used * a.stride,
	}
}

// DetailedStats returns a snapshot augmented with the allocation-size
// bookkeeping memutils' DetailedStatistics carries. AllocationSizeMin and
// AllocationSizeMax are both 0 when nothing is live, and both
// a.payloadSize otherwise.
func (a *Allocator[T]) DetailedStats() DetailedStatistics {
	stats := a.Stats()
	d := DetailedStatistics{Statistics: stats}
	if stats.AllocationCount > 0 {
		d.AllocationSizeMin = a.payloadSize
		d.AllocationSizeMax = a.payloadSize
	}
	return d
}

// DumpStatsJSON streams this allocator's statistics as a JSON object via
// w, using the same jwriter calling convention as vam's PrintDetailedMap
// and memutils/metadata's BlockJsonData.
func (a *Allocator[T]) DumpStatsJSON(w *jwriter.Writer) {
	stats := a.DetailedStats()

	obj := w.Object()
	defer obj.End()

	obj.Name("Name").String(a.name)
	obj.Name("Stride").Int(a.stride)
	obj.Name("Puddles").Int(stats.PuddleCount)
	obj.Name("BlockCount").Int(stats.BlockCount)
	obj.Name("AllocationCount").Int(stats.AllocationCount)
	obj.Name("BlockBytes").Int(stats.BlockBytes)
	obj.Name("AllocationBytes").Int(stats.AllocationBytes)
	obj.Name("AllocationSizeMin").Int(stats.AllocationSizeMin)
	obj.Name("AllocationSizeMax").Int(stats.AllocationSizeMax)
}
