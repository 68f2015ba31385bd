package generator

import (
	"math/rand"

	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/state"
)

// Room dimensions are odd so every room has a middle cell
const (
	minRoomSize   = 3
	heightChoices = 3 // 3, 5, 7
	widthChoices  = 4 // 3, 5, 7, 9
)

// roomSize picks a random odd height and width
func roomSize(rng *rand.Rand) (height, width int) {
	height = rng.Intn(heightChoices)*2 + minRoomSize
	width = rng.Intn(widthChoices)*2 + minRoomSize
	return height, width
}

// proposeRoom picks a size and an origin that keeps the border inside the
// grid. Returns false when the room cannot fit at all.
func proposeRoom(rng *rand.Rand, g world.Grid, spread int) (state.Room, bool) {
	h, w := roomSize(rng)

	// -1 for the far border, -1 for the zero-based origin, -spread for the gap
	ySpan := g.Height - 2 - spread - h
	xSpan := g.Width - 2 - spread - w
	if ySpan <= 0 || xSpan <= 0 {
		return state.Room{}, false
	}

	return state.Room{
		Y:      rng.Intn(ySpan) + 1 + spread,
		X:      rng.Intn(xSpan) + 1 + spread,
		Height: h,
		Width:  w,
	}, true
}

// placeRooms tries up to maxAttempts placements for each of maxRooms rooms
func placeRooms(rng *rand.Rand, g world.Grid, maxRooms, maxAttempts, spread int) []state.Room {
	idx := newReservationIndex(spread)
	rooms := make([]state.Room, 0, maxRooms)

	for i := 0; i < maxRooms; i++ {
		for j := 0; j < maxAttempts; j++ {
			r, ok := proposeRoom(rng, g, spread)
			if !ok {
				continue
			}
			if idx.Reserve(r) {
				rooms = append(rooms, r)
				break
			}
		}
	}
	return rooms
}

// carveRoom writes floor, border and corners for r, and marks the part of
// the spread gap that is still solid rock as Spacer.
func carveRoom(tiles *world.TileMap, r state.Room, spread int) {
	g := tiles.Grid()
	m := 1 + spread

	for y := r.Y - m; y < r.Y+r.Height+m; y++ {
		for x := r.X - m; x < r.X+r.Width+m; x++ {
			if !g.InBounds(y, x) {
				continue
			}
			k := g.Hash(y, x)
			switch {
			case y >= r.Y && y < r.Y+r.Height && x >= r.X && x < r.X+r.Width:
				tiles.Set(k, world.Room)
			case r.IsCorner(y, x):
				tiles.Set(k, world.Corner)
			case r.IsBorder(y, x):
				tiles.Set(k, world.Border)
			case tiles.Get(k) == world.Stone:
				tiles.Set(k, world.Spacer)
			}
		}
	}
}
