package pathfind

import (
	"simpledungeon/pkg/engine/world"
)

// CostField is the result of flooding a grid from one origin
type CostField struct {
	Grid   world.Grid
	Origin world.Key
	// Costs holds the cumulative cost from Origin, or the unreached sentinel.
	Costs []int
	Preds Predecessors
}

// FindCostField runs Dijkstra from start over all eight directions until
// every reachable cell has its lowest cumulative cost.
func FindCostField(grid world.Grid, costs []int, start world.Key, opts ...Option) (*CostField, error) {
	s, err := newSearch(grid, costs, start, opts)
	if err != nil {
		return nil, err
	}

	dirs := world.AllDirections()
	for {
		parent, ok := s.frontier.Pop()
		if !ok {
			break
		}
		for _, d := range dirs {
			child, ok := grid.Neighbor(parent, d)
			if ok && s.relax(parent, child) {
				s.frontier.Push(child, s.costTo[child])
			}
		}
	}

	return &CostField{
		Grid:   grid,
		Origin: start,
		Costs:  s.costTo,
		Preds:  s.preds,
	}, nil
}

// Cost returns the cumulative cost to k. The second result is false when k
// was not reached.
func (f *CostField) Cost(k world.Key) (int, bool) {
	if !f.Preds.Reached(k) {
		return 0, false
	}
	return f.Costs[k], true
}

// PathTo rebuilds the route from the origin to k
func (f *CostField) PathTo(k world.Key) (Path, error) {
	return MaterializePath(f.Preds, k)
}

// Reachable counts the cells the flood reached, origin included
func (f *CostField) Reachable() int {
	n := 0
	for k := range f.Costs {
		if f.Preds.Reached(world.Key(k)) {
			n++
		}
	}
	return n
}

// MaxCost returns the highest finite cost in the field
func (f *CostField) MaxCost() int {
	m := 0
	for k, c := range f.Costs {
		if f.Preds.Reached(world.Key(k)) && c > m {
			m = c
		}
	}
	return m
}
