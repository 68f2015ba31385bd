// Package pathfind finds routes across a grid whose cells carry a
// non-negative cost for entering them.
//
// FindPath is a point-to-point A* restricted to the four cardinal moves.
// FindCostField floods the whole grid with Dijkstra over all eight moves.
// Both are synchronous and keep all scratch state local to the call.
package pathfind

import (
	"fmt"

	"simpledungeon/pkg/engine/world"
)

// search holds the scratch state shared by A* and the flood
type search struct {
	grid     world.Grid
	costs    []int
	costTo   []int
	preds    Predecessors
	frontier Frontier
	opts     Options
}

func newSearch(grid world.Grid, costs []int, start world.Key, opts []Option) (*search, error) {
	if len(costs) != grid.Area() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCostMapSize, len(costs), grid.Area())
	}
	if !grid.IsValid(start) {
		return nil, fmt.Errorf("%w: start %d", ErrOutOfBounds, start)
	}
	for k, c := range costs {
		if c < 0 {
			return nil, fmt.Errorf("%w: %d at %s", ErrNegativeCost, c, grid.FormatKey(world.Key(k)))
		}
	}

	o := buildOptions(opts)
	s := &search{
		grid:     grid,
		costs:    costs,
		costTo:   make([]int, grid.Area()),
		preds:    NewPredecessors(grid),
		frontier: o.NewFrontier(),
		opts:     o,
	}
	for i := range s.costTo {
		s.costTo[i] = o.MaxSteps
	}
	s.costTo[start] = 0
	s.preds.SetOrigin(start)
	s.frontier.Push(start, 0)
	return s, nil
}

// relax lowers the recorded cost of child if going through parent is cheaper
func (s *search) relax(parent, child world.Key) bool {
	c := s.costTo[parent] + s.costs[child]
	if c >= s.costTo[child] {
		return false
	}
	s.costTo[child] = c
	s.preds.Set(child, parent)
	return true
}

func (s *search) estimate(parent, child, goal world.Key) int {
	if s.opts.Heuristic == HeuristicGoal {
		return s.grid.ManhattanDistance(child, goal)
	}
	return s.grid.ManhattanDistance(parent, child)
}

// FindPath returns a path of cardinally adjacent cells from start to goal.
//
// The search ends as soon as the goal is seen next to an expanded cell, so
// the path is not always the cheapest one on uneven cost maps; use
// WithTermination(TerminateOnExpand) for that. An unreachable goal returns
// an empty path and a nil error.
func FindPath(grid world.Grid, costs []int, start, goal world.Key, opts ...Option) (Path, error) {
	s, err := newSearch(grid, costs, start, opts)
	if err != nil {
		return nil, err
	}
	if !grid.IsValid(goal) {
		s.frontier.Clear()
		return nil, fmt.Errorf("%w: goal %d", ErrOutOfBounds, goal)
	}
	if start == goal {
		s.frontier.Clear()
		return Path{start}, nil
	}

	onExpand := s.opts.Termination == TerminateOnExpand
	for {
		parent, ok := s.frontier.Pop()
		if !ok {
			return nil, nil
		}
		if onExpand && parent == goal {
			s.frontier.Clear()
			return MaterializePath(s.preds, goal)
		}

		for _, d := range world.Cardinals() {
			child, ok := grid.Neighbor(parent, d)
			if !ok {
				continue
			}
			if !onExpand && child == goal {
				s.costTo[child] = s.costTo[parent] + s.costs[child]
				s.preds.Set(child, parent)
				s.frontier.Clear()
				return MaterializePath(s.preds, goal)
			}
			if s.relax(parent, child) {
				s.frontier.Push(child, s.costTo[child]+s.estimate(parent, child, goal))
			}
		}
	}
}
