package pathfind

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"simpledungeon/pkg/engine/world"
)

// unreached marks a cell no search has recorded a predecessor for
const unreached world.Key = -2

// Predecessors records, per cell, the cell it was last reached from.
// The search origin points at world.Invalid.
type Predecessors struct {
	grid  world.Grid
	links []world.Key
}

// NewPredecessors creates a record with every cell unreached
func NewPredecessors(g world.Grid) Predecessors {
	links := make([]world.Key, g.Area())
	for i := range links {
		links[i] = unreached
	}
	return Predecessors{grid: g, links: links}
}

// Grid returns the grid the record covers
func (p Predecessors) Grid() world.Grid {
	return p.grid
}

// From returns the predecessor of k. The second result is false for the
// origin, for unreached cells and for keys outside the grid.
func (p Predecessors) From(k world.Key) (world.Key, bool) {
	if !p.grid.IsValid(k) {
		return world.Invalid, false
	}
	prev := p.links[k]
	if prev < 0 {
		return world.Invalid, false
	}
	return prev, true
}

// Reached reports whether k is the origin or has a predecessor
func (p Predecessors) Reached(k world.Key) bool {
	return p.grid.IsValid(k) && p.links[k] != unreached
}

// Set records that k was reached from prev
func (p Predecessors) Set(k, prev world.Key) {
	if p.grid.IsValid(k) {
		p.links[k] = prev
	}
}

// SetOrigin marks k as the start of every chain
func (p Predecessors) SetOrigin(k world.Key) {
	p.Set(k, world.Invalid)
}

// Path is an ordered list of adjacent cells from start to goal.
// An empty path means the goal was not reached.
type Path []world.Key

// Len returns the number of cells, start and goal included
func (p Path) Len() int {
	return len(p)
}

// Empty reports whether no route was found
func (p Path) Empty() bool {
	return len(p) == 0
}

// Start returns the first cell, or Invalid for an empty path
func (p Path) Start() world.Key {
	if len(p) == 0 {
		return world.Invalid
	}
	return p[0]
}

// Goal returns the last cell, or Invalid for an empty path
func (p Path) Goal() world.Key {
	if len(p) == 0 {
		return world.Invalid
	}
	return p[len(p)-1]
}

// Contains reports whether k lies on the path
func (p Path) Contains(k world.Key) bool {
	for _, c := range p {
		if c == k {
			return true
		}
	}
	return false
}

// MaterializePath walks the predecessor chain back from goal and returns it
// in start-to-goal order. An unreached goal yields an empty path. A chain
// longer than the grid area, or one that runs into an unreached cell, is
// reported as ErrCorruptPredecessors.
func MaterializePath(preds Predecessors, goal world.Key) (Path, error) {
	if !preds.grid.IsValid(goal) {
		return nil, fmt.Errorf("%w: goal %d", ErrOutOfBounds, goal)
	}
	if !preds.Reached(goal) {
		return nil, nil
	}

	area := preds.grid.Area()
	buf := stack.New[world.Key]()
	for cur := goal; cur != world.Invalid; cur = preds.links[cur] {
		if buf.Size() >= area || !preds.Reached(cur) {
			return nil, fmt.Errorf("%w: goal %s", ErrCorruptPredecessors, preds.grid.FormatKey(goal))
		}
		buf.Push(cur)
	}

	path := make(Path, 0, buf.Size())
	for buf.Size() > 0 {
		path = append(path, buf.Pop())
	}
	return path, nil
}
