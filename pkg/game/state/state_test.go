package state

import (
	"fmt"
	"testing"

	"simpledungeon/pkg/engine/world"
)

func TestAddMessage_KeepsLast(t *testing.T) {
	l := NewLevel(world.NewGrid(10, 10), 1)
	for i := 0; i < 12; i++ {
		l.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(l.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(l.Messages), maxMessages)
	}
	if l.Messages[0] != "m4" || l.Messages[maxMessages-1] != "m11" {
		t.Errorf("Messages = %v", l.Messages)
	}
	l.ClearMessages()
	if len(l.Messages) != 0 {
		t.Errorf("ClearMessages left %d entries", len(l.Messages))
	}
}

func TestRoom_Geometry(t *testing.T) {
	r := Room{Y: 2, X: 3, Height: 3, Width: 5}

	tests := []struct {
		y, x                     int
		contains, border, corner bool
	}{
		{2, 3, true, false, false}, // floor
		{4, 7, true, false, false}, // last floor cell
		{1, 2, true, true, true},   // top-left corner
		{5, 8, true, true, true},   // bottom-right corner
		{1, 5, true, true, false},  // top wall
		{3, 8, true, true, false},  // right wall
		{0, 3, false, false, false},
		{3, 9, false, false, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.y, tt.x); got != tt.contains {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.y, tt.x, got, tt.contains)
		}
		if got := r.IsBorder(tt.y, tt.x); got != tt.border {
			t.Errorf("IsBorder(%d,%d) = %v, want %v", tt.y, tt.x, got, tt.border)
		}
		if got := r.IsCorner(tt.y, tt.x); got != tt.corner {
			t.Errorf("IsCorner(%d,%d) = %v, want %v", tt.y, tt.x, got, tt.corner)
		}
	}

	if y, x := r.Center(); y != 3 || x != 5 {
		t.Errorf("Center() = %d,%d, want 3,5", y, x)
	}
}

func TestFloorArea(t *testing.T) {
	g := world.NewGrid(6, 6)
	l := NewLevel(g, 0)
	l.Tiles.Set(g.Hash(1, 1), world.Room)
	l.Tiles.Set(g.Hash(1, 2), world.Room)
	l.Tiles.Set(g.Hash(1, 3), world.Corridor)
	l.Tiles.Set(g.Hash(1, 4), world.Border)
	if got := l.FloorArea(); got != 3 {
		t.Errorf("FloorArea() = %d, want 3", got)
	}
	l.Rooms = []Room{{Y: 2, X: 2, Height: 1, Width: 1}}
	if got := l.RoomAt(1, 1); got != 0 {
		t.Errorf("RoomAt(1,1) = %d, want 0", got)
	}
	if got := l.RoomAt(5, 5); got != -1 {
		t.Errorf("RoomAt(5,5) = %d, want -1", got)
	}
}
