package pathfind

import (
	"github.com/zyedidia/generic/heap"

	"simpledungeon/pkg/engine/world"
)

type heapEntry struct {
	key      world.Key
	priority int
	seq      uint64
}

// HeapFrontier is a binary-heap frontier. Ties on priority are broken by
// insertion order, so it pops in the same order as ListFrontier.
type HeapFrontier struct {
	h   *heap.Heap[heapEntry]
	seq uint64
}

func heapLess(a, b heapEntry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// NewHeapFrontier creates an empty heap-backed frontier
func NewHeapFrontier() Frontier {
	return &HeapFrontier{h: heap.New[heapEntry](heapLess)}
}

// Push queues k after any entries with the same priority
func (f *HeapFrontier) Push(k world.Key, priority int) {
	f.h.Push(heapEntry{key: k, priority: priority, seq: f.seq})
	f.seq++
}

// Pop removes and returns the lowest-priority key, or (Invalid, false)
// when the frontier is empty
func (f *HeapFrontier) Pop() (world.Key, bool) {
	e, ok := f.h.Pop()
	if !ok {
		return world.Invalid, false
	}
	return e.key, true
}

// Len returns the number of queued entries, duplicates included
func (f *HeapFrontier) Len() int {
	return f.h.Size()
}

// Empty reports whether nothing is queued
func (f *HeapFrontier) Empty() bool {
	return f.h.Size() == 0
}

// Clear drops every queued entry
func (f *HeapFrontier) Clear() {
	f.h = heap.New[heapEntry](heapLess)
	f.seq = 0
}
