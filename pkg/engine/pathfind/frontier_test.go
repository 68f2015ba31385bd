package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
)

var frontiers = map[string]func() pathfind.Frontier{
	"list": pathfind.NewListFrontier,
	"heap": pathfind.NewHeapFrontier,
}

func drain(f pathfind.Frontier) []world.Key {
	var out []world.Key
	for {
		k, ok := f.Pop()
		if !ok {
			return out
		}
		out = append(out, k)
	}
}

func TestFrontier_OrderIsStable(t *testing.T) {
	for name, newFrontier := range frontiers {
		t.Run(name, func(t *testing.T) {
			f := newFrontier()
			f.Push(10, 5)
			f.Push(11, 3)
			f.Push(12, 5)
			f.Push(13, 1)
			f.Push(14, 3)
			f.Push(15, 9)
			require.Equal(t, 6, f.Len())

			require.Equal(t, []world.Key{13, 11, 14, 10, 12, 15}, drain(f))
			require.True(t, f.Empty())
		})
	}
}

func TestFrontier_DuplicatesKept(t *testing.T) {
	for name, newFrontier := range frontiers {
		t.Run(name, func(t *testing.T) {
			f := newFrontier()
			f.Push(7, 4)
			f.Push(7, 2)
			f.Push(7, 4)
			require.Equal(t, 3, f.Len())
			require.Equal(t, []world.Key{7, 7, 7}, drain(f))
		})
	}
}

func TestFrontier_PopEmpty(t *testing.T) {
	for name, newFrontier := range frontiers {
		t.Run(name, func(t *testing.T) {
			f := newFrontier()
			k, ok := f.Pop()
			require.False(t, ok)
			require.Equal(t, world.Invalid, k)
		})
	}
}

func TestFrontier_Clear(t *testing.T) {
	for name, newFrontier := range frontiers {
		t.Run(name, func(t *testing.T) {
			f := newFrontier()
			for i := 0; i < 50; i++ {
				f.Push(world.Key(i), i%7)
			}
			f.Clear()
			require.True(t, f.Empty())
			require.Equal(t, 0, f.Len())

			f.Push(3, 1)
			k, ok := f.Pop()
			require.True(t, ok)
			require.Equal(t, world.Key(3), k)
		})
	}
}

func TestFrontier_ListAndHeapAgree(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	l := pathfind.NewListFrontier()
	h := pathfind.NewHeapFrontier()

	var fromList, fromHeap []world.Key
	for i := 0; i < 500; i++ {
		// Interleave pushes and pops so ordering is checked mid-stream too.
		if r.Intn(3) == 0 {
			lk, lok := l.Pop()
			hk, hok := h.Pop()
			require.Equal(t, lok, hok)
			fromList = append(fromList, lk)
			fromHeap = append(fromHeap, hk)
			continue
		}
		k := world.Key(r.Intn(100))
		p := r.Intn(10)
		l.Push(k, p)
		h.Push(k, p)
	}
	require.Equal(t, l.Len(), h.Len())
	fromList = append(fromList, drain(l)...)
	fromHeap = append(fromHeap, drain(h)...)
	require.Equal(t, fromList, fromHeap)
}

func TestListFrontier_Keys(t *testing.T) {
	f := pathfind.NewListFrontier().(*pathfind.ListFrontier)
	f.Push(1, 2)
	f.Push(2, 1)
	f.Push(3, 2)
	require.Equal(t, []world.Key{2, 1, 3}, f.Keys())
	require.Equal(t, 3, f.Len())
}
