// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// writeMapGrid writes one line per row. With overlay set, reached cells
// show their cost field glyph.
func writeMapGrid(f *os.File, level *state.Level, overlay bool) {
	g := level.Grid()
	view := *level
	view.ShowField = overlay

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r, _ := renderer.Glyph(&view, g.Hash(y, x))
			fmt.Fprintf(f, "%c", r)
		}
		fmt.Fprintln(f)
	}
}

// presentTiles returns the tile types used on the map, in enum order
func presentTiles(tiles *world.TileMap) []world.Tile {
	seen := mapset.New[world.Tile]()
	tiles.ForEach(func(y, x int, k world.Key, t world.Tile) {
		seen.Put(t)
	})

	var list []world.Tile
	seen.Each(func(t world.Tile) {
		list = append(list, t)
	})
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// DumpMapToFile writes a full debug dump to dir/map.txt: metadata, legend,
// the map with and without the cost field, rooms, links and messages.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMapToFile(level *state.Level, dir string) (string, error) {
	if level == nil || level.Tiles == nil {
		return "", fmt.Errorf("no level")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	g := level.Grid()

	// --- Metadata ---
	fmt.Fprintln(f, "=== MAP DUMP DEBUG (rooms, corridors, cost field) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", level.Seed)
	fmt.Fprintf(f, "grid_rows: %d\n", g.Height)
	fmt.Fprintf(f, "grid_cols: %d\n", g.Width)
	fmt.Fprintf(f, "coordinate_system: y,x (0-based, y=row, x=column, key=x*rows+y)\n")
	fmt.Fprintf(f, "rooms_placed: %d\n", len(level.Rooms))
	fmt.Fprintf(f, "rooms_wanted: %d\n", level.Stats.RoomsWanted)
	fmt.Fprintf(f, "corridors_carved: %d\n", level.Stats.CorridorsCarved)
	fmt.Fprintf(f, "corridors_skipped: %d\n", level.Stats.CorridorsSkipped)
	fmt.Fprintf(f, "floor_area: %d\n", level.FloorArea())
	if level.Field != nil {
		fmt.Fprintf(f, "field_origin: %s\n", g.FormatKey(level.Field.Origin))
		fmt.Fprintf(f, "field_max_cost: %d\n", level.Field.MaxCost())
		fmt.Fprintf(f, "field_reached: %d\n", level.Field.Reachable())
	}
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (tiles on this map) ---")
	for _, t := range presentTiles(level.Tiles) {
		fmt.Fprintf(f, "  %q = %s\n", t.Symbol(), t)
	}
	fmt.Fprintln(f, "")

	// --- Map ---
	fmt.Fprintln(f, "--- Map ---")
	writeMapGrid(f, level, false)
	fmt.Fprintln(f, "")

	if level.Field != nil {
		fmt.Fprintln(f, "--- Map (cost field overlay; 0-9 then a-z, + beyond) ---")
		writeMapGrid(f, level, true)
		fmt.Fprintln(f, "")
	}

	// --- Rooms ---
	fmt.Fprintln(f, "Rooms:")
	for i, r := range level.Rooms {
		fmt.Fprintf(f, "  index: %d y: %d x: %d height: %d width: %d\n", i, r.Y, r.X, r.Height, r.Width)
	}
	fmt.Fprintln(f, "")

	// --- Links ---
	fmt.Fprintln(f, "Links (corridor order):")
	for i, k := range level.Links {
		cost := "unreached"
		if level.Field != nil {
			if c, ok := level.Field.Cost(k); ok {
				cost = fmt.Sprint(c)
			}
		}
		fmt.Fprintf(f, "  index: %d cell: %s tile: %s field_cost: %s\n", i, g.FormatKey(k), level.Tiles.Get(k), cost)
	}
	fmt.Fprintln(f, "")

	// --- Messages ---
	fmt.Fprintln(f, "Messages:")
	if len(level.Messages) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for _, msg := range level.Messages {
		fmt.Fprintf(f, "  %s\n", renderer.ExpandMarkup(msg, nil, renderer.PlainMarkup))
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
