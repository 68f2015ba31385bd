package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

func testLevel(t *testing.T) *state.Level {
	t.Helper()
	g := world.NewGrid(6, 3)
	level := state.NewLevel(g, 9)
	costs := make([]int, g.Area())
	for x := 0; x < g.Width; x++ {
		level.Tiles.Set(g.Hash(0, x), world.Border)
		level.Tiles.Set(g.Hash(1, x), world.Corridor)
		level.Tiles.Set(g.Hash(2, x), world.Border)
		costs[g.Hash(0, x)] = pathfind.MaxSteps
		costs[g.Hash(1, x)] = 1
		costs[g.Hash(2, x)] = pathfind.MaxSteps
	}
	field, err := pathfind.FindCostField(g, costs, g.Hash(1, 0))
	if err != nil {
		t.Fatalf("FindCostField: %v", err)
	}
	level.Field = field
	level.AddMessage("hello")
	return level
}

func render(t *testing.T, level *state.Level) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.RenderFrame(level)
	return color.ClearCode(buf.String())
}

func TestRenderFrame_Map(t *testing.T) {
	out := render(t, testLevel(t))

	for _, want := range []string{"######\n......\n######", "Seed 9", "hello", "Legend:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Cost field") {
		t.Error("field line shown while the overlay is off")
	}
}

func TestRenderFrame_FieldOverlay(t *testing.T) {
	level := testLevel(t)
	level.ShowField = true
	out := render(t, level)

	if !strings.Contains(out, "012345") {
		t.Errorf("overlay digits missing:\n%s", out)
	}
	if !strings.Contains(out, "Cost field from 1,0") {
		t.Errorf("field line missing:\n%s", out)
	}
}

func TestRenderFrame_Nil(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Init()
	r.RenderFrame(nil)
	if buf.Len() != 0 {
		t.Errorf("nil level printed %q", buf.String())
	}
}

func TestFormatText(t *testing.T) {
	r := NewWithWriter(&bytes.Buffer{})
	r.Init()

	if got := color.ClearCode(r.FormatText("ACTION{quit} now")); got != "quit now" {
		t.Errorf("FormatText(ACTION) = %q", got)
	}
	if got := r.FormatText("GT{LEGEND_WALL}"); got != "wall" {
		t.Errorf("FormatText(GT) = %q", got)
	}
	if got := r.FormatText("%d rooms", 4); got != "4 rooms" {
		t.Errorf("FormatText(args) = %q", got)
	}
	if got := r.StyleText("plain", renderer.StyleNormal); got != "plain" {
		t.Errorf("StyleText(normal) = %q", got)
	}
}
