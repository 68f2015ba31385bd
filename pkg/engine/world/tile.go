package world

// Tile is the terrain type stored for each cell of a map
type Tile int

// Tile types. Stone is the zero value so a fresh map is solid rock.
const (
	Stone Tile = iota
	Granite
	Room
	Border
	Corner
	Corridor
	OpenDoor
	ClosedDoor
	IronBars
	Water
	Lava
	Link
	Spacer
	UpStairs
	DownStairs
)

// Symbol returns the ASCII glyph used to draw the tile
func (t Tile) Symbol() rune {
	switch t {
	case Room, Corridor:
		return '.'
	case Border, Corner:
		return '#'
	case OpenDoor:
		return '\''
	case ClosedDoor:
		return '+'
	case IronBars:
		return '='
	case Water, Lava:
		return '~'
	case UpStairs:
		return '>'
	case DownStairs:
		return '<'
	case Link:
		return '}'
	default:
		return ' '
	}
}

// IsFloor reports whether the tile is walkable open space
func (t Tile) IsFloor() bool {
	return t == Room || t == Corridor || t == Link || t == OpenDoor
}

// String returns the tile name
func (t Tile) String() string {
	switch t {
	case Stone:
		return "Stone"
	case Granite:
		return "Granite"
	case Room:
		return "Room"
	case Border:
		return "Border"
	case Corner:
		return "Corner"
	case Corridor:
		return "Corridor"
	case OpenDoor:
		return "OpenDoor"
	case ClosedDoor:
		return "ClosedDoor"
	case IronBars:
		return "IronBars"
	case Water:
		return "Water"
	case Lava:
		return "Lava"
	case Link:
		return "Link"
	case Spacer:
		return "Spacer"
	case UpStairs:
		return "UpStairs"
	case DownStairs:
		return "DownStairs"
	default:
		return "Unknown"
	}
}
