package generator

import (
	"math"
	"math/rand"

	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/state"
)

// chooseLink picks a random border cell of r that is not a corner
func chooseLink(rng *rand.Rand, g world.Grid, r state.Room) world.Key {
	choice := rng.Intn(2*r.Width + 2*r.Height)

	for y := r.Y - 1; y <= r.Y+r.Height; y++ {
		for x := r.X - 1; x <= r.X+r.Width; x++ {
			if !r.IsBorder(y, x) || r.IsCorner(y, x) {
				continue
			}
			if choice == 0 {
				return g.Hash(y, x)
			}
			choice--
		}
	}
	return world.Invalid
}

// pickLinks chooses one link per room, in room order
func pickLinks(rng *rand.Rand, g world.Grid, rooms []state.Room) []world.Key {
	links := make([]world.Key, 0, len(rooms))
	for _, r := range rooms {
		links = append(links, chooseLink(rng, g, r))
	}
	return links
}

// sortLinks reorders links in place so each one is followed by the nearest
// of those not yet placed, starting from the first.
func sortLinks(g world.Grid, links []world.Key) {
	for i := 0; i < len(links)-1; i++ {
		best, pos := math.MaxInt, i+1
		for j := i + 1; j < len(links); j++ {
			if d := g.ManhattanDistance(links[i], links[j]); d < best {
				best, pos = d, j
			}
		}
		links[i+1], links[pos] = links[pos], links[i+1]
	}
}
