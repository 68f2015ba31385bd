package state

import (
	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
)

// maxMessages is how many log lines a level keeps
const maxMessages = 8

// Room is a rectangle of floor surrounded by a one-cell border.
// Y and X are the top-left floor cell; Height and Width count floor only.
type Room struct {
	Y, X          int
	Height, Width int
}

// Origin returns the key of the top-left floor cell
func (r Room) Origin(g world.Grid) world.Key {
	return g.Hash(r.Y, r.X)
}

// Center returns the row and column of the middle floor cell
func (r Room) Center() (y, x int) {
	return r.Y + r.Height/2, r.X + r.Width/2
}

// Contains reports whether (y, x) is floor or border of the room
func (r Room) Contains(y, x int) bool {
	return y >= r.Y-1 && y <= r.Y+r.Height && x >= r.X-1 && x <= r.X+r.Width
}

// IsBorder reports whether (y, x) lies on the wall ring around the floor
func (r Room) IsBorder(y, x int) bool {
	if !r.Contains(y, x) {
		return false
	}
	return y == r.Y-1 || y == r.Y+r.Height || x == r.X-1 || x == r.X+r.Width
}

// IsCorner reports whether (y, x) is one of the four border corners
func (r Room) IsCorner(y, x int) bool {
	return (y == r.Y-1 || y == r.Y+r.Height) && (x == r.X-1 || x == r.X+r.Width)
}

// Stats summarises a generation run
type Stats struct {
	RoomsWanted      int
	CorridorsCarved  int
	CorridorsSkipped int
}

// Level is one generated dungeon plus the viewer state attached to it
type Level struct {
	Tiles *world.TileMap
	Rooms []Room
	// Links holds one doorway per room in corridor order.
	Links []world.Key
	Field *pathfind.CostField
	Seed  int64
	Stats Stats

	Messages  []string
	ShowField bool
}

// NewLevel creates an empty level of the given size
func NewLevel(g world.Grid, seed int64) *Level {
	return &Level{
		Tiles:    world.NewTileMap(g),
		Seed:     seed,
		Messages: make([]string, 0),
	}
}

// Grid returns the level dimensions
func (l *Level) Grid() world.Grid {
	return l.Tiles.Grid()
}

// AddMessage adds a message to the level's message log
func (l *Level) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)

	// Keep only the last maxMessages
	if len(l.Messages) > maxMessages {
		l.Messages = l.Messages[len(l.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (l *Level) ClearMessages() {
	l.Messages = make([]string, 0)
}

// FloorArea counts Room and Corridor cells
func (l *Level) FloorArea() int {
	return l.Tiles.Count(world.Room) + l.Tiles.Count(world.Corridor)
}

// RoomAt returns the index of the room whose floor or border covers
// (y, x), or -1.
func (l *Level) RoomAt(y, x int) int {
	for i, r := range l.Rooms {
		if r.Contains(y, x) {
			return i
		}
	}
	return -1
}
