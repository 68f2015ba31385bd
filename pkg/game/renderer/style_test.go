package renderer

import (
	"strings"
	"testing"

	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/state"
)

func corridorLevel(t *testing.T) *state.Level {
	t.Helper()
	g := world.NewGrid(6, 3)
	level := state.NewLevel(g, 42)
	costs := make([]int, g.Area())
	for x := 0; x < g.Width; x++ {
		level.Tiles.Set(g.Hash(0, x), world.Border)
		level.Tiles.Set(g.Hash(1, x), world.Corridor)
		level.Tiles.Set(g.Hash(2, x), world.Border)
	}
	for k := range costs {
		if level.Tiles.Get(world.Key(k)).IsFloor() {
			costs[k] = 1
		} else {
			costs[k] = pathfind.MaxSteps
		}
	}
	field, err := pathfind.FindCostField(g, costs, g.Hash(1, 0))
	if err != nil {
		t.Fatalf("FindCostField: %v", err)
	}
	level.Field = field
	return level
}

func TestExpandMarkup(t *testing.T) {
	tests := []struct {
		msg  string
		args []any
		want string
	}{
		{"plain", nil, "plain"},
		{"ACTION{r} new", nil, "[r] new"},
		{"seed %d ACTION{q}", []any{7}, "seed 7 [q]"},
		{"100% done", nil, "100% done"},
	}

	bracket := func(function, operand string) string { return "[" + operand + "]" }
	for _, tt := range tests {
		if got := ExpandMarkup(tt.msg, tt.args, bracket); got != tt.want {
			t.Errorf("ExpandMarkup(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestPlainMarkup_Translates(t *testing.T) {
	if got := PlainMarkup("GT", "LEGEND_WALL"); got != "wall" {
		t.Errorf("PlainMarkup(GT) = %q, want wall", got)
	}
	if got := PlainMarkup("ACTION", "quit"); got != "quit" {
		t.Errorf("PlainMarkup(ACTION) = %q", got)
	}
}

func TestTileStyle(t *testing.T) {
	tests := []struct {
		tile world.Tile
		want TextStyle
	}{
		{world.Room, StyleFloor},
		{world.Corridor, StyleFloor},
		{world.Border, StyleWall},
		{world.Corner, StyleWall},
		{world.Link, StyleLink},
		{world.Stone, StyleStone},
		{world.Spacer, StyleStone},
	}
	for _, tt := range tests {
		if got := TileStyle(tt.tile); got != tt.want {
			t.Errorf("TileStyle(%v) = %v, want %v", tt.tile, got, tt.want)
		}
	}
}

func TestFieldGlyph(t *testing.T) {
	tests := map[int]rune{0: '0', 9: '9', 10: 'a', 35: 'z', 36: '+', -1: '+'}
	for cost, want := range tests {
		if got := FieldGlyph(cost); got != want {
			t.Errorf("FieldGlyph(%d) = %q, want %q", cost, got, want)
		}
	}
}

func TestGlyph_Overlay(t *testing.T) {
	level := corridorLevel(t)
	g := level.Grid()

	if r, style := Glyph(level, g.Hash(1, 3)); r != '.' || style != StyleFloor {
		t.Errorf("overlay off: got %q/%v", r, style)
	}

	level.ShowField = true
	if r, style := Glyph(level, g.Hash(1, 0)); r != '0' || style != StyleField {
		t.Errorf("origin: got %q/%v", r, style)
	}
	if r, style := Glyph(level, g.Hash(1, 5)); r != '5' || style != StyleFieldFar {
		t.Errorf("far end: got %q/%v", r, style)
	}
	if r, style := Glyph(level, g.Hash(0, 2)); r != '#' || style != StyleWall {
		t.Errorf("wall under overlay: got %q/%v", r, style)
	}
}

func TestStatusLines(t *testing.T) {
	level := corridorLevel(t)
	level.Stats.CorridorsCarved = 3

	status := StatusLine(level)
	for _, want := range []string{"Seed 42", "6 floor cells", "3 corridors"} {
		if !strings.Contains(status, want) {
			t.Errorf("StatusLine() = %q, missing %q", status, want)
		}
	}

	field := FieldLine(level)
	if !strings.Contains(field, "from 1,0") || !strings.Contains(field, "max 5") {
		t.Errorf("FieldLine() = %q", field)
	}

	level.Field = nil
	if FieldLine(level) != "" {
		t.Error("FieldLine() without a field should be empty")
	}
}

func TestHelpLines(t *testing.T) {
	lines := HelpLines()
	if len(lines) == 0 {
		t.Fatal("no help lines")
	}
	if !strings.HasPrefix(lines[0], "Quit:") {
		t.Errorf("first help line = %q, want Quit first", lines[0])
	}
}

func TestLegend(t *testing.T) {
	entries := Legend()
	if len(entries) != 4 {
		t.Fatalf("Legend() has %d entries", len(entries))
	}
	if entries[2].Glyph != '}' || entries[2].Style != StyleLink {
		t.Errorf("link entry = %+v", entries[2])
	}
}
