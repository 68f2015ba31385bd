package generator

import (
	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
)

// Movement costs used when routing corridors. Rock is cheap to dig;
// anything already built costs more.
const (
	digCost   = 1
	crossCost = 4
)

// moveCost returns the cost of routing a corridor through t
func moveCost(t world.Tile) int {
	switch t {
	case world.Stone, world.Spacer:
		return digCost
	default:
		return crossCost
	}
}

// corridorCosts builds the cost map for a corridor between start and stop
func corridorCosts(tiles *world.TileMap, start, stop world.Key) []int {
	costs := make([]int, tiles.Grid().Area())
	for k := range costs {
		costs[k] = moveCost(tiles.Get(world.Key(k)))
	}
	costs[start] = 0
	costs[stop] = 0
	return costs
}

// walkCosts builds the cost map for walking the finished level: floor is
// passable, everything else is blocked.
func walkCosts(tiles *world.TileMap) []int {
	costs := make([]int, tiles.Grid().Area())
	for k := range costs {
		if tiles.Get(world.Key(k)).IsFloor() {
			costs[k] = 1
		} else {
			costs[k] = pathfind.MaxSteps
		}
	}
	return costs
}

// carveCorridor turns every path cell that is not already floor into
// Corridor and walls in its non-floor neighbours. Returns the number of
// cells dug.
func carveCorridor(tiles *world.TileMap, path pathfind.Path) int {
	g := tiles.Grid()
	dug := 0

	for _, k := range path {
		switch tiles.Get(k) {
		case world.Room, world.Corridor:
			continue
		}
		tiles.Set(k, world.Corridor)
		dug++

		for _, d := range world.AllDirections() {
			n, ok := g.Neighbor(k, d)
			if ok && !tiles.Get(n).IsFloor() {
				tiles.Set(n, world.Border)
			}
		}
	}
	return dug
}
