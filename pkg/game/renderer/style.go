// Package renderer defines the display interface shared by the terminal,
// full screen and windowed backends, plus the glyph and text helpers they
// all draw from.
package renderer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/state"
)

// fieldDigits labels cost field cells; costs past the end draw as '+'
const fieldDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// dynamicT is used for runtime translation key lookups.
// Keys come from markup, so go vet must not treat them as format strings.
var dynamicT = i18n.T

var regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)

// MarkupFunc renders one FUNCTION{operand} markup span
type MarkupFunc func(function, operand string) string

// ExpandMarkup formats msg with args and replaces every markup span with
// the result of fn.
func ExpandMarkup(msg string, args []any, fn MarkupFunc) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		ret = strings.Replace(ret, match[0], fn(match[1], match[2]), -1)
	}
	return ret
}

// PlainMarkup expands markup without any styling
func PlainMarkup(function, operand string) string {
	if function == "GT" {
		return dynamicT(operand)
	}
	return operand
}

// TileStyle returns the style a tile is drawn with
func TileStyle(t world.Tile) TextStyle {
	switch t {
	case world.Room, world.Corridor, world.OpenDoor:
		return StyleFloor
	case world.Border, world.Corner, world.ClosedDoor, world.IronBars:
		return StyleWall
	case world.Link:
		return StyleLink
	case world.Water, world.Lava:
		return StyleDenied
	case world.UpStairs, world.DownStairs:
		return StyleAction
	default:
		return StyleStone
	}
}

// FieldGlyph returns the overlay glyph for a cumulative cost
func FieldGlyph(cost int) rune {
	if cost < 0 || cost >= len(fieldDigits) {
		return '+'
	}
	return rune(fieldDigits[cost])
}

// Glyph returns what to draw at k: the cost field digit when the overlay
// is on and k was reached, the tile symbol otherwise.
func Glyph(level *state.Level, k world.Key) (rune, TextStyle) {
	if level.ShowField && level.Field != nil {
		if cost, ok := level.Field.Cost(k); ok {
			if cost*2 > level.Field.MaxCost() {
				return FieldGlyph(cost), StyleFieldFar
			}
			return FieldGlyph(cost), StyleField
		}
	}
	t := level.Tiles.Get(k)
	return t.Symbol(), TileStyle(t)
}

// StatusLine summarises the level in one line
func StatusLine(level *state.Level) string {
	return i18n.T("STATUS_LINE", level.Seed, len(level.Rooms), level.FloorArea(),
		level.Stats.CorridorsCarved, level.Stats.CorridorsSkipped)
}

// FieldLine describes the cost field, or returns "" when there is none
func FieldLine(level *state.Level) string {
	if level.Field == nil {
		return ""
	}
	f := level.Field
	return i18n.T("STATUS_FIELD", f.Grid.FormatKey(f.Origin), f.MaxCost(), f.Reachable())
}

// LegendEntry is one row of the map legend
type LegendEntry struct {
	Glyph rune
	Style TextStyle
	Label string
}

// Legend lists the glyphs a generated map uses
func Legend() []LegendEntry {
	return []LegendEntry{
		{world.Room.Symbol(), StyleFloor, i18n.T("LEGEND_ROOM")},
		{world.Border.Symbol(), StyleWall, i18n.T("LEGEND_WALL")},
		{world.Link.Symbol(), StyleLink, i18n.T("LEGEND_LINK")},
		{world.Stone.Symbol(), StyleStone, i18n.T("LEGEND_STONE")},
	}
}

// HelpLines lists every bound action with its keys, in action order
func HelpLines() []string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(byAction[a], ", ")))
	}
	return lines
}
