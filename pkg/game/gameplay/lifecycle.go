// Package gameplay runs the viewer session: it owns the current level,
// regenerates it on request and writes debug dumps.
package gameplay

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"

	"simpledungeon/pkg/game/config"
	"simpledungeon/pkg/game/devtools"
	"simpledungeon/pkg/game/generator"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/state"
)

// Session is one run of the viewer
type Session struct {
	Config    config.Config
	Generator generator.LevelGenerator
	Level     *state.Level

	// NewSeed picks the seed for a fresh dungeon
	NewSeed func() int64

	// step numbers the next CSV dump, starting at 1
	step int
}

// NewSession creates a session; call Start before using Level
func NewSession(cfg config.Config, gen generator.LevelGenerator) *Session {
	return &Session{
		Config:    cfg,
		Generator: gen,
		NewSeed:   rand.Int63,
		step:      1,
	}
}

// Start generates the first level
func (s *Session) Start(seed int64) error {
	level, err := s.Generator.Generate(seed)
	if err != nil {
		return err
	}
	s.Level = level
	return nil
}

// Regenerate replaces the level with one built from seed. On failure the
// old level, if any, stays and gets an error message.
func (s *Session) Regenerate(seed int64) {
	level, err := s.Generator.Generate(seed)
	if err != nil {
		log.Printf("gameplay: generating seed %d: %v", seed, err)
		if s.Level != nil {
			s.Level.AddMessage(i18n.T("MSG_GENERATION_FAILED", err.Error()))
		}
		return
	}
	level.ShowField = s.Level != nil && s.Level.ShowField
	s.Level = level
}

// ToggleField flips the cost field overlay
func (s *Session) ToggleField() {
	s.Level.ShowField = !s.Level.ShowField
	if s.Level.ShowField {
		s.Level.AddMessage(i18n.T("MSG_FIELD_ON"))
	} else {
		s.Level.AddMessage(i18n.T("MSG_FIELD_OFF"))
	}
}

// Dump writes the map dump, an HTML screenshot and, when enabled, the cost
// field CSV into the dump directory. It returns the files written.
func (s *Session) Dump() ([]string, error) {
	dir := s.Config.DumpDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating dump directory: %w", err)
	}

	var paths []string
	var errs []error

	if path, err := devtools.DumpMapToFile(s.Level, dir); err != nil {
		errs = append(errs, err)
	} else {
		paths = append(paths, path)
	}

	if path, err := devtools.SaveScreenshotHTML(s.Level, dir); err != nil {
		errs = append(errs, err)
	} else {
		paths = append(paths, path)
	}

	if s.Config.DumpCSV && s.Level.Field != nil {
		path, err := devtools.DumpCSV(dir, s.step, s.Level.Field.Costs, s.Level.Grid())
		if err != nil {
			errs = append(errs, err)
		} else {
			paths = append(paths, path)
			s.step++
		}
	}

	return paths, errors.Join(errs...)
}
