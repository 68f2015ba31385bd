package world

import "testing"

func TestHash_RoundTrip(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			k := g.Hash(y, x)
			if got := g.GetY(k); got != y {
				t.Fatalf("GetY(Hash(%d,%d)) = %d, want %d", y, x, got, y)
			}
			if got := g.GetX(k); got != x {
				t.Fatalf("GetX(Hash(%d,%d)) = %d, want %d", y, x, got, x)
			}
		}
	}
}

func TestHash_Bijection(t *testing.T) {
	g := NewGrid(7, 5)
	seen := make(map[Key]bool, g.Area())
	g.ForEachKey(func(y, x int, k Key) {
		if !g.IsValid(k) {
			t.Errorf("Hash(%d,%d) = %d is not a valid key", y, x, k)
		}
		if seen[k] {
			t.Errorf("Hash(%d,%d) = %d produced twice", y, x, k)
		}
		seen[k] = true
	})
	if len(seen) != g.Area() {
		t.Errorf("distinct keys = %d, want %d", len(seen), g.Area())
	}
}

func TestHash_ColumnMajorLayout(t *testing.T) {
	g := NewGrid(80, 20)
	if got := g.Hash(0, 1); got != 20 {
		t.Errorf("Hash(0,1) = %d, want 20", got)
	}
	if got := g.Hash(19, 79); int(got) != g.Area()-1 {
		t.Errorf("Hash(19,79) = %d, want %d", got, g.Area()-1)
	}
}

func TestIsValid(t *testing.T) {
	g := NewGrid(4, 3)
	tests := []struct {
		k    Key
		want bool
	}{
		{Invalid, false},
		{-5, false},
		{0, true},
		{11, true},
		{12, false},
	}
	for _, tt := range tests {
		if got := g.IsValid(tt.k); got != tt.want {
			t.Errorf("IsValid(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestOffsetKey_InvalidIffOutside(t *testing.T) {
	g := NewGrid(6, 4)
	for k := Key(0); int(k) < g.Area(); k++ {
		y, x := g.Coords(k)
		for _, d := range AllDirections() {
			dy, dx := d.Delta()
			got, ok := g.OffsetKey(k, dy, dx)
			outside := !g.InBounds(y+dy, x+dx)
			if ok == outside {
				t.Errorf("OffsetKey(%d,%v) ok = %v, destination outside = %v", k, d, ok, outside)
			}
			if outside && got != Invalid {
				t.Errorf("OffsetKey(%d,%v) = %d, want Invalid", k, d, got)
			}
			if !outside && got != g.Hash(y+dy, x+dx) {
				t.Errorf("OffsetKey(%d,%v) = %d, want %d", k, d, got, g.Hash(y+dy, x+dx))
			}
		}
	}
}

func TestOffsetKey_UpperBoundUsesDestination(t *testing.T) {
	// The last row of one column must not wrap into the first row of the next.
	g := NewGrid(3, 3)
	bottom := g.Hash(2, 0)
	if k, ok := g.OffsetKey(bottom, 1, 0); ok || k != Invalid {
		t.Errorf("OffsetKey(bottom, +1, 0) = (%d, %v), want (Invalid, false)", k, ok)
	}
	right := g.Hash(0, 2)
	if k, ok := g.OffsetKey(right, 0, 1); ok || k != Invalid {
		t.Errorf("OffsetKey(right, 0, +1) = (%d, %v), want (Invalid, false)", k, ok)
	}
}

func TestOffsetKey_RejectsInvalidSource(t *testing.T) {
	g := NewGrid(4, 3)
	for _, k := range []Key{Invalid, Key(g.Area()), -7} {
		if got, ok := g.OffsetKey(k, 1, 0); ok || got != Invalid {
			t.Errorf("OffsetKey(%d, +1, 0) = (%d, %v), want (Invalid, false)", k, got, ok)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	g := NewGrid(10, 10)
	a := g.Hash(0, 0)
	b := g.Hash(9, 9)
	if got := g.ManhattanDistance(a, b); got != 18 {
		t.Errorf("ManhattanDistance = %d, want 18", got)
	}
	if got := g.ManhattanDistance(b, a); got != 18 {
		t.Errorf("ManhattanDistance is not symmetric: %d", got)
	}
	if got := g.ChebyshevDistance(a, b); got != 9 {
		t.Errorf("ChebyshevDistance = %d, want 9", got)
	}
}

func TestNewGrid_PanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5)
}

func TestDirection_TableOrder(t *testing.T) {
	want := [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
	for i, d := range AllDirections() {
		dy, dx := d.Delta()
		if dy != want[i][0] || dx != want[i][1] {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", d, dy, dx, want[i][0], want[i][1])
		}
		if d.IsCardinal() != (i < CardinalCount) {
			t.Errorf("%v.IsCardinal() = %v", d, d.IsCardinal())
		}
		ody, odx := d.Opposite().Delta()
		if ody != -dy || odx != -dx {
			t.Errorf("%v.Opposite() delta = (%d,%d)", d, ody, odx)
		}
	}
	if DirNone.IsValid() {
		t.Error("DirNone.IsValid() = true, want false")
	}
}
