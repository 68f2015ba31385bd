package world

// TileMap stores one Tile per cell of a grid, indexed by Key
type TileMap struct {
	grid  Grid
	tiles []Tile
}

// NewTileMap creates a map of the given grid filled with Stone
func NewTileMap(g Grid) *TileMap {
	return &TileMap{
		grid:  g,
		tiles: make([]Tile, g.Area()),
	}
}

// Grid returns the dimensions of the map
func (m *TileMap) Grid() Grid {
	return m.grid
}

// Get returns the tile at k, or Stone if k is out of range
func (m *TileMap) Get(k Key) Tile {
	if !m.grid.IsValid(k) {
		return Stone
	}
	return m.tiles[k]
}

// At returns the tile at row y, column x
func (m *TileMap) At(y, x int) Tile {
	if !m.grid.InBounds(y, x) {
		return Stone
	}
	return m.tiles[m.grid.Hash(y, x)]
}

// Set stores t at k. Returns false if k is out of range.
func (m *TileMap) Set(k Key, t Tile) bool {
	if !m.grid.IsValid(k) {
		return false
	}
	m.tiles[k] = t
	return true
}

// Clone returns an independent copy of the map
func (m *TileMap) Clone() *TileMap {
	c := &TileMap{
		grid:  m.grid,
		tiles: make([]Tile, len(m.tiles)),
	}
	copy(c.tiles, m.tiles)
	return c
}

// CopyFrom overwrites this map with the contents of src. Both maps must
// share the same grid.
func (m *TileMap) CopyFrom(src *TileMap) {
	if src.grid != m.grid {
		panic("TileMap.CopyFrom: grid mismatch")
	}
	copy(m.tiles, src.tiles)
}

// Count returns how many cells hold tile t
func (m *TileMap) Count(t Tile) int {
	n := 0
	for _, v := range m.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// ForEach iterates over all cells in row-major order
func (m *TileMap) ForEach(fn func(y, x int, k Key, t Tile)) {
	m.grid.ForEachKey(func(y, x int, k Key) {
		fn(y, x, k, m.tiles[k])
	})
}

// Values returns the tiles as integers indexed by key, for dumps
func (m *TileMap) Values() []int {
	out := make([]int, len(m.tiles))
	for i, t := range m.tiles {
		out[i] = int(t)
	}
	return out
}
