package generator

import (
	"simpledungeon/pkg/game/config"
	"simpledungeon/pkg/game/state"
)

// LevelGenerator is an interface for map generation algorithms.
// The same seed must always produce the same level.
type LevelGenerator interface {
	Generate(seed int64) (*state.Level, error)
	Name() string
}

// DefaultGenerator is the default map generator
var DefaultGenerator LevelGenerator = New(config.Default())
