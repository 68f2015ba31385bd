package world

import "testing"

func TestTileMap_SetGetCount(t *testing.T) {
	m := NewTileMap(NewGrid(5, 4))
	if got := m.Count(Stone); got != 20 {
		t.Fatalf("fresh map Stone count = %d, want 20", got)
	}
	k := m.Grid().Hash(2, 3)
	if !m.Set(k, Room) {
		t.Fatal("Set returned false for a valid key")
	}
	if m.Get(k) != Room || m.At(2, 3) != Room {
		t.Errorf("Get/At after Set = %v/%v, want Room", m.Get(k), m.At(2, 3))
	}
	if m.Set(Invalid, Room) {
		t.Error("Set(Invalid) = true, want false")
	}
	if m.Get(Invalid) != Stone {
		t.Error("Get(Invalid) should report Stone")
	}
	if got := m.Count(Room); got != 1 {
		t.Errorf("Room count = %d, want 1", got)
	}
}

func TestTileMap_CloneIsIndependent(t *testing.T) {
	m := NewTileMap(NewGrid(3, 3))
	c := m.Clone()
	c.Set(0, Border)
	if m.Get(0) != Stone {
		t.Error("mutating clone changed the original")
	}
	m.CopyFrom(c)
	if m.Get(0) != Border {
		t.Error("CopyFrom did not copy tiles")
	}
}

func TestTile_Symbols(t *testing.T) {
	tests := map[Tile]rune{
		Room:       '.',
		Corridor:   '.',
		Border:     '#',
		Corner:     '#',
		OpenDoor:   '\'',
		ClosedDoor: '+',
		IronBars:   '=',
		Water:      '~',
		Lava:       '~',
		UpStairs:   '>',
		DownStairs: '<',
		Link:       '}',
		Spacer:     ' ',
		Stone:      ' ',
	}
	for tile, want := range tests {
		if got := tile.Symbol(); got != want {
			t.Errorf("%v.Symbol() = %q, want %q", tile, got, want)
		}
	}
}
