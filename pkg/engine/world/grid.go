// Package world provides generic 2D grid-based world primitives.
// Cells are addressed by a dense integer key so that per-cell data
// (tiles, movement costs, search scratch state) can live in flat slices.
package world

import "fmt"

// Default map dimensions
const (
	DefaultWidth  = 80
	DefaultHeight = 20
)

// Key is the dense index of a single grid cell
type Key int

// Invalid denotes "no cell"
const Invalid Key = -1

// Grid describes the dimensions of a rectangular map and maps between
// (row, column) coordinates and cell keys. Keys are column-major:
// key = x*Height + y.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells in the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Hash returns the key for row y, column x
func (g Grid) Hash(y, x int) Key {
	return Key(x*g.Height + y)
}

// GetY derives the row of a key
func (g Grid) GetY(k Key) int {
	return int(k) - g.Height*g.GetX(k)
}

// GetX derives the column of a key
func (g Grid) GetX(k Key) int {
	return int(k) / g.Height
}

// Coords returns the row and column of a key
func (g Grid) Coords(k Key) (y, x int) {
	return g.GetY(k), g.GetX(k)
}

// InBounds checks if a row/col position is within grid bounds
func (g Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g Grid) IsPlayablePosition(y, x int) bool {
	return y >= 1 && y < g.Height-1 && x >= 1 && x < g.Width-1
}

// IsValid reports whether k addresses a cell of this grid
func (g Grid) IsValid(k Key) bool {
	return k > Invalid && int(k) < g.Area()
}

// OffsetKey returns the key dy rows and dx columns away from k.
// The second result is false, and the key Invalid, when the destination
// falls outside the grid or k itself is not a cell.
func (g Grid) OffsetKey(k Key, dy, dx int) (Key, bool) {
	if !g.IsValid(k) {
		return Invalid, false
	}
	y := g.GetY(k) + dy
	x := g.GetX(k) + dx

	if y >= g.Height || x >= g.Width || y < 0 || x < 0 {
		return Invalid, false
	}
	return g.Hash(y, x), true
}

// Neighbor returns the key adjacent to k in direction d
func (g Grid) Neighbor(k Key, d Direction) (Key, bool) {
	if !d.IsValid() {
		return Invalid, false
	}
	dy, dx := d.Delta()
	return g.OffsetKey(k, dy, dx)
}

// ManhattanDistance measures the taxicab distance between two keys
func (g Grid) ManhattanDistance(a, b Key) int {
	return abs(g.GetX(a)-g.GetX(b)) + abs(g.GetY(a)-g.GetY(b))
}

// ChebyshevDistance measures the king-move distance between two keys
func (g Grid) ChebyshevDistance(a, b Key) int {
	dy := abs(g.GetY(a) - g.GetY(b))
	dx := abs(g.GetX(a) - g.GetX(b))
	if dy > dx {
		return dy
	}
	return dx
}

// CenterKey returns the key of the grid center
func (g Grid) CenterKey() Key {
	return g.Hash(g.Height/2, g.Width/2)
}

// ForEachKey iterates over all cells in row-major order
func (g Grid) ForEachKey(fn func(y, x int, k Key)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(y, x, g.Hash(y, x))
		}
	}
}

// FormatKey renders a key as "y,x" for logs and dumps
func (g Grid) FormatKey(k Key) string {
	if !g.IsValid(k) {
		return "invalid"
	}
	return fmt.Sprintf("%d,%d", g.GetY(k), g.GetX(k))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
