package pathfind

import (
	"github.com/zyedidia/generic/list"

	"simpledungeon/pkg/engine/world"
)

// Frontier is a min-priority multiset of cells waiting to be expanded.
// The same key may be pushed several times with different priorities.
type Frontier interface {
	Push(k world.Key, priority int)
	Pop() (world.Key, bool)
	Len() int
	Empty() bool
	Clear()
}

type entry struct {
	key      world.Key
	priority int
}

// ListFrontier keeps entries in a linked list sorted by priority, low first.
// An entry pushed with a priority equal to existing entries goes after them.
type ListFrontier struct {
	entries *list.List[entry]
	size    int
}

// NewListFrontier creates an empty list-backed frontier
func NewListFrontier() Frontier {
	return &ListFrontier{entries: list.New[entry]()}
}

// Push inserts k at its sorted position
func (f *ListFrontier) Push(k world.Key, priority int) {
	n := &list.Node[entry]{Value: entry{key: k, priority: priority}}
	f.size++

	// Walk back from the tail to the last entry that does not sort after n.
	cur := f.entries.Back
	for cur != nil && cur.Value.priority > priority {
		cur = cur.Prev
	}
	switch {
	case cur == nil:
		f.entries.PushFrontNode(n)
	case cur == f.entries.Back:
		f.entries.PushBackNode(n)
	default:
		n.Prev = cur
		n.Next = cur.Next
		cur.Next.Prev = n
		cur.Next = n
	}
}

// Pop removes and returns the lowest-priority key. Returns (Invalid, false)
// when the frontier is empty.
func (f *ListFrontier) Pop() (world.Key, bool) {
	head := f.entries.Front
	if head == nil {
		return world.Invalid, false
	}
	f.entries.Remove(head)
	f.size--
	return head.Value.key, true
}

// Len returns the number of queued entries, duplicates included
func (f *ListFrontier) Len() int {
	return f.size
}

// Empty reports whether nothing is queued
func (f *ListFrontier) Empty() bool {
	return f.entries.Front == nil
}

// Clear drops every queued entry
func (f *ListFrontier) Clear() {
	for n := f.entries.Front; n != nil; {
		next := n.Next
		n.Prev, n.Next = nil, nil
		n = next
	}
	f.entries.Front, f.entries.Back = nil, nil
	f.size = 0
}

// Keys returns the queued keys in pop order without removing them
func (f *ListFrontier) Keys() []world.Key {
	out := make([]world.Key, 0, f.size)
	if f.entries.Front != nil {
		f.entries.Front.Each(func(e entry) {
			out = append(out, e.key)
		})
	}
	return out
}
