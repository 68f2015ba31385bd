// Package config holds the run-time settings of the dungeon generator and
// binds them to command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"simpledungeon/pkg/engine/pathfind"
	"simpledungeon/pkg/engine/world"
)

// Renderer backends
const (
	RendererAuto   = "auto"
	RendererTUI    = "tui"
	RendererScreen = "screen"
	RendererEbiten = "ebiten"
)

// Frontier implementations
const (
	FrontierList = "list"
	FrontierHeap = "heap"
)

// Heuristics
const (
	HeuristicStep = "step"
	HeuristicGoal = "goal"
)

// Generation limits
const (
	DefaultMaxRooms    = 10
	DefaultMaxAttempts = 30
	DefaultSpread      = 1

	// Smallest map that still fits one 3x3 room with its border and spacing.
	MinWidth  = 9
	MinHeight = 9
)

// Config is the full set of options for one run
type Config struct {
	Width       int
	Height      int
	MaxRooms    int
	MaxAttempts int
	Spread      int
	Seed        int64

	Renderer   string
	Frontier   string
	Heuristic  string
	ExactPaths bool

	DumpDir  string
	DumpCSV  bool
	DumpOnly bool
	LogFile  string
	Language string
}

// Default returns the classic 80x20 configuration
func Default() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		MaxAttempts: DefaultMaxAttempts,
		Spread:      DefaultSpread,
		Renderer:    RendererAuto,
		Frontier:    FrontierList,
		Heuristic:   HeuristicStep,
		DumpDir:     ".",
		Language:    "en",
	}
}

// RegisterFlags binds every field to a flag on fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "map height in cells")
	fs.IntVar(&c.MaxRooms, "rooms", c.MaxRooms, "maximum number of rooms")
	fs.IntVar(&c.MaxAttempts, "attempts", c.MaxAttempts, "placement attempts per room")
	fs.IntVar(&c.Spread, "spread", c.Spread, "minimum gap between room borders")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")

	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "display backend: auto, tui, screen or ebiten")
	fs.StringVar(&c.Frontier, "frontier", c.Frontier, "priority queue: list or heap")
	fs.StringVar(&c.Heuristic, "heuristic", c.Heuristic, "corridor search estimate: step or goal")
	fs.BoolVar(&c.ExactPaths, "exact", c.ExactPaths, "stop corridor searches on expansion for cheapest paths")

	fs.StringVar(&c.DumpDir, "dump-dir", c.DumpDir, "directory for map and cost field dumps")
	fs.BoolVar(&c.DumpCSV, "csv", c.DumpCSV, "also write the cost field as step<N>.csv")
	fs.BoolVar(&c.DumpOnly, "dump", c.DumpOnly, "generate, write dumps and exit without a display")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write diagnostics to this file")
	fs.StringVar(&c.Language, "lang", c.Language, "message catalog language")
}

// Validate checks the configuration for values the generator cannot use
func (c Config) Validate() error {
	var errs []error

	if c.Width < MinWidth || c.Height < MinHeight {
		errs = append(errs, fmt.Errorf("map must be at least %dx%d, got %dx%d", MinWidth, MinHeight, c.Width, c.Height))
	}
	if c.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("rooms must be positive, got %d", c.MaxRooms))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.Spread < 0 {
		errs = append(errs, fmt.Errorf("spread must not be negative, got %d", c.Spread))
	}

	switch strings.ToLower(c.Renderer) {
	case RendererAuto, RendererTUI, RendererScreen, RendererEbiten:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	switch strings.ToLower(c.Frontier) {
	case FrontierList, FrontierHeap:
	default:
		errs = append(errs, fmt.Errorf("unknown frontier %q", c.Frontier))
	}
	switch strings.ToLower(c.Heuristic) {
	case HeuristicStep, HeuristicGoal:
	default:
		errs = append(errs, fmt.Errorf("unknown heuristic %q", c.Heuristic))
	}

	return errors.Join(errs...)
}

// Grid returns the map dimensions
func (c Config) Grid() world.Grid {
	return world.NewGrid(c.Width, c.Height)
}

// SearchOptions translates the search settings into pathfind options
func (c Config) SearchOptions() []pathfind.Option {
	var opts []pathfind.Option

	if strings.EqualFold(c.Frontier, FrontierHeap) {
		opts = append(opts, pathfind.WithFrontier(pathfind.NewHeapFrontier))
	}
	if strings.EqualFold(c.Heuristic, HeuristicGoal) {
		opts = append(opts, pathfind.WithHeuristic(pathfind.HeuristicGoal))
	}
	if c.ExactPaths {
		opts = append(opts, pathfind.WithTermination(pathfind.TerminateOnExpand))
	}
	return opts
}
