package world

// Direction indexes the neighbour offset table. The first four entries are
// the cardinal moves, the next four the diagonals; the zero value is reserved.
type Direction int

// Direction constants
const (
	DirNone Direction = iota
	East
	West
	South
	North
	SouthEast
	NorthWest
	NorthEast
	SouthWest
)

// Number of directions, excluding DirNone
const (
	CardinalCount = 4
	DirCount      = 8
)

// Row and column offsets, indexed by Direction
var deltas = [DirCount + 1][2]int{
	DirNone:   {0, 0},
	East:      {0, 1},
	West:      {0, -1},
	South:     {1, 0},
	North:     {-1, 0},
	SouthEast: {1, 1},
	NorthWest: {-1, -1},
	NorthEast: {-1, 1},
	SouthWest: {1, -1},
}

// Cardinals returns the four orthogonal directions in search order
func Cardinals() []Direction {
	return []Direction{East, West, South, North}
}

// AllDirections returns all eight directions in search order
func AllDirections() []Direction {
	return []Direction{East, West, South, North, SouthEast, NorthWest, NorthEast, SouthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case West:
		return "West"
	case South:
		return "South"
	case North:
		return "North"
	case SouthEast:
		return "SouthEast"
	case NorthWest:
		return "NorthWest"
	case NorthEast:
		return "NorthEast"
	case SouthWest:
		return "SouthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true for the eight real directions
func (d Direction) IsValid() bool {
	return d >= East && d <= SouthWest
}

// IsCardinal returns true for East, West, South and North
func (d Direction) IsCardinal() bool {
	return d >= East && d <= North
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case South:
		return North
	case North:
		return South
	case SouthEast:
		return NorthWest
	case NorthWest:
		return SouthEast
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (dy, dx int) {
	if !d.IsValid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}
