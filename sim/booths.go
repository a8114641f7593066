// Implements the BoothPool, which tracks when each occupied voting booth
// frees up. Booths are identical and unnamed, so the pool holds only
// free-times; a voter who finds every booth busy takes the earliest one.

package sim

import (
	"container/heap"
	"fmt"
)

// BoothPool is a bounded min-heap over booth free-times. It holds at most
// one entry per physical booth; the minimum is the earliest minute a booth
// becomes available again.
type BoothPool struct {
	free boothHeap
	size int
}

// NewBoothPool creates a pool of n identical booths.
func NewBoothPool(n int) (*BoothPool, error) {
	if n < 1 {
		return nil, fmt.Errorf("booth count must be at least 1, got %d", n)
	}
	return &BoothPool{free: make(boothHeap, 0, n), size: n}, nil
}

// Len returns the number of free-times currently tracked.
func (bp *BoothPool) Len() int {
	return bp.free.Len()
}

// Full reports whether every booth is tracked, i.e. a new occupant must
// wait for the earliest free-time.
func (bp *BoothPool) Full() bool {
	return bp.free.Len() == bp.size
}

// Add records a booth becoming free at minute t.
// Panics when the pool is full: pop a free-time before adding another.
func (bp *BoothPool) Add(t float64) {
	if bp.Full() {
		panic(fmt.Sprintf("Add: all %d booths already tracked", bp.size))
	}
	heap.Push(&bp.free, t)
}

// PopEarliest removes and returns the earliest free-time.
// Panics when the pool is empty.
func (bp *BoothPool) PopEarliest() float64 {
	if bp.free.Len() == 0 {
		panic("PopEarliest: no booths tracked")
	}
	return heap.Pop(&bp.free).(float64)
}

// Earliest returns the earliest free-time without removing it.
func (bp *BoothPool) Earliest() (float64, bool) {
	if bp.free.Len() == 0 {
		return 0, false
	}
	return bp.free[0], true
}

// boothHeap implements heap.Interface over free-times, earliest first.
type boothHeap []float64

func (h boothHeap) Len() int           { return len(h) }
func (h boothHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h boothHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *boothHeap) Push(x interface{}) {
	*h = append(*h, x.(float64))
}

func (h *boothHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
