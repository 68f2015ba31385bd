package gameplay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	engineinput "simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/game/config"
	"simpledungeon/pkg/game/generator"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

// scriptedRenderer replays a fixed list of actions and records frames
type scriptedRenderer struct {
	actions []engineinput.Action
	frames  []*state.Level
}

func (r *scriptedRenderer) Init() error { return nil }
func (r *scriptedRenderer) Clear()      {}
func (r *scriptedRenderer) Close()      {}
func (r *scriptedRenderer) RenderFrame(level *state.Level) {
	r.frames = append(r.frames, level)
}
func (r *scriptedRenderer) GetInput() engineinput.Intent {
	if len(r.actions) == 0 {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	a := r.actions[0]
	r.actions = r.actions[1:]
	return engineinput.Intent{Action: a}
}
func (r *scriptedRenderer) StyleText(text string, style renderer.TextStyle) string { return text }
func (r *scriptedRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(msg, args, renderer.PlainMarkup)
}
func (r *scriptedRenderer) GetViewportSize() (rows, cols int) { return 20, 80 }

// failingGenerator always returns an error
type failingGenerator struct{}

func (failingGenerator) Generate(seed int64) (*state.Level, error) {
	return nil, errors.New("boom")
}
func (failingGenerator) Name() string { return "failing" }

func newSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.DumpDir = t.TempDir()
	cfg.DumpCSV = true

	s := NewSession(cfg, generator.New(cfg))
	next := int64(100)
	s.NewSeed = func() int64 {
		next++
		return next
	}
	if err := s.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestRun_QuitEndsLoop(t *testing.T) {
	s := newSession(t)
	r := &scriptedRenderer{actions: []engineinput.Action{engineinput.ActionNone}}
	renderer.SetRenderer(r)
	defer renderer.SetRenderer(nil)

	Run(s)
	if len(r.frames) != 2 {
		t.Errorf("frames = %d, want 2", len(r.frames))
	}
}

func TestProcessIntent_RegenerateAndReplay(t *testing.T) {
	s := newSession(t)

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionRegenerate})
	if s.Level.Seed != 101 {
		t.Fatalf("seed after regenerate = %d, want 101", s.Level.Seed)
	}
	first := s.Level.Tiles.Values()

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionReplay})
	if s.Level.Seed != 101 {
		t.Errorf("replay changed the seed to %d", s.Level.Seed)
	}
	for i, v := range s.Level.Tiles.Values() {
		if v != first[i] {
			t.Fatalf("replayed level differs at key %d", i)
		}
	}
	last := s.Level.Messages[len(s.Level.Messages)-1]
	if !strings.Contains(last, "101") {
		t.Errorf("replay message = %q", last)
	}
}

func TestProcessIntent_ToggleFieldSurvivesRegenerate(t *testing.T) {
	s := newSession(t)

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionToggleField})
	if !s.Level.ShowField {
		t.Fatal("overlay not switched on")
	}
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionRegenerate})
	if !s.Level.ShowField {
		t.Error("overlay lost after regenerate")
	}
	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionToggleField})
	if s.Level.ShowField {
		t.Error("overlay not switched off")
	}
}

func TestProcessIntent_Dump(t *testing.T) {
	s := newSession(t)

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionDump})
	for _, name := range []string{"map.txt", "step1.csv"} {
		if _, err := os.Stat(filepath.Join(s.Config.DumpDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	shots, _ := filepath.Glob(filepath.Join(s.Config.DumpDir, "screenshot-*.html"))
	if len(shots) != 1 {
		t.Errorf("screenshots = %v", shots)
	}

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionDump})
	if _, err := os.Stat(filepath.Join(s.Config.DumpDir, "step2.csv")); err != nil {
		t.Errorf("second dump should use step2.csv: %v", err)
	}
}

func TestProcessIntent_Help(t *testing.T) {
	s := newSession(t)
	s.Level.ClearMessages()

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionHelp})
	if len(s.Level.Messages) < 2 || s.Level.Messages[0] != "Keys:" {
		t.Errorf("help messages = %q", s.Level.Messages)
	}
}

func TestRegenerate_FailureKeepsLevel(t *testing.T) {
	s := newSession(t)
	old := s.Level
	s.Generator = failingGenerator{}

	ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionRegenerate})
	if s.Level != old {
		t.Fatal("level replaced after a failed generation")
	}
	last := s.Level.Messages[len(s.Level.Messages)-1]
	if !strings.Contains(last, "boom") {
		t.Errorf("failure message = %q", last)
	}
}

func TestRegenerate_FailureWithoutLevel(t *testing.T) {
	s := NewSession(config.Default(), failingGenerator{})

	s.Regenerate(3)
	if s.Level != nil {
		t.Errorf("level = %v, want nil", s.Level)
	}
}

func TestQuit(t *testing.T) {
	s := newSession(t)
	if ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionQuit}) {
		t.Error("quit should end the session")
	}
}
