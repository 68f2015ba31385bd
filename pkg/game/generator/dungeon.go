package generator

import (
	"fmt"
	"log"
	"math/rand"

	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/config"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/state"
)

// RoomsAndCorridors scatters rectangular rooms at random and joins them in
// a loop of corridors routed with A*.
type RoomsAndCorridors struct {
	Grid        world.Grid
	MaxRooms    int
	MaxAttempts int
	Spread      int

	// SearchOptions are passed to every corridor search and the cost flood.
	SearchOptions []pathfind.Option
}

// New creates a generator from a validated configuration
func New(cfg config.Config) *RoomsAndCorridors {
	return &RoomsAndCorridors{
		Grid:          cfg.Grid(),
		MaxRooms:      cfg.MaxRooms,
		MaxAttempts:   cfg.MaxAttempts,
		Spread:        cfg.Spread,
		SearchOptions: cfg.SearchOptions(),
	}
}

// Name returns the name of this generator
func (g *RoomsAndCorridors) Name() string {
	return "Rooms and Corridors"
}

// Generate builds a level from seed
func (g *RoomsAndCorridors) Generate(seed int64) (*state.Level, error) {
	rng := rand.New(rand.NewSource(seed))
	level := state.NewLevel(g.Grid, seed)
	level.Stats.RoomsWanted = g.MaxRooms

	level.Rooms = placeRooms(rng, g.Grid, g.MaxRooms, g.MaxAttempts, g.Spread)
	for _, r := range level.Rooms {
		carveRoom(level.Tiles, r, g.Spread)
	}
	if len(level.Rooms) < g.MaxRooms {
		level.AddMessage(i18n.T("MSG_ROOMS_SHORT", len(level.Rooms), g.MaxRooms))
	}

	level.Links = pickLinks(rng, g.Grid, level.Rooms)
	sortLinks(g.Grid, level.Links)
	for _, k := range level.Links {
		level.Tiles.Set(k, world.Link)
	}

	if err := g.connectLinks(level); err != nil {
		return nil, err
	}

	if len(level.Links) > 0 {
		field, err := pathfind.FindCostField(g.Grid, walkCosts(level.Tiles), level.Links[0], g.SearchOptions...)
		if err != nil {
			return nil, fmt.Errorf("flooding from first link: %w", err)
		}
		level.Field = field
	}

	log.Printf("generator: seed %d placed %d/%d rooms, %d corridors, %d skipped, %d floor cells",
		seed, len(level.Rooms), g.MaxRooms, level.Stats.CorridorsCarved, level.Stats.CorridorsSkipped, level.FloorArea())
	level.AddMessage(i18n.T("MSG_GENERATED", len(level.Rooms), seed))
	return level, nil
}

// connectLinks digs a corridor from each link to the next, wrapping the
// last one back to the first. A lone link has nothing to connect to.
func (g *RoomsAndCorridors) connectLinks(level *state.Level) error {
	n := len(level.Links)
	for i := 0; i < n; i++ {
		start := level.Links[i]
		stop := level.Links[(i+1)%n]
		if start == stop {
			continue
		}

		costs := corridorCosts(level.Tiles, start, stop)
		path, err := pathfind.FindPath(g.Grid, costs, start, stop, g.SearchOptions...)
		if err != nil {
			return fmt.Errorf("connecting %s to %s: %w", g.Grid.FormatKey(start), g.Grid.FormatKey(stop), err)
		}
		if path.Empty() {
			log.Printf("generator: no corridor between %s and %s", g.Grid.FormatKey(start), g.Grid.FormatKey(stop))
			level.AddMessage(i18n.T("MSG_NO_PATH", g.Grid.FormatKey(start), g.Grid.FormatKey(stop)))
			level.Stats.CorridorsSkipped++
			continue
		}

		carveCorridor(level.Tiles, path)
		level.Stats.CorridorsCarved++
	}
	return nil
}
