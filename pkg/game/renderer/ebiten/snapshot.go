package ebiten

import (
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

// RenderFrame captures a snapshot of the level for the next Draw call
func (e *EbitenRenderer) RenderFrame(level *state.Level) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if level == nil || level.Tiles == nil {
		e.snapshot.valid = false
		return
	}

	g := level.Grid()
	snap := renderSnapshot{
		valid:    true,
		gridRows: g.Height,
		gridCols: g.Width,
		glyphs:   make([]rune, g.Area()),
		styles:   make([]renderer.TextStyle, g.Area()),
		title:    i18n.T("TITLE"),
		status:   renderer.StatusLine(level),
		keysHint: i18n.T("KEYS_HINT"),
		messages: append([]string(nil), level.Messages...),
		legend:   renderer.Legend(),
	}
	if level.ShowField {
		snap.field = renderer.FieldLine(level)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			snap.glyphs[i], snap.styles[i] = renderer.Glyph(level, g.Hash(y, x))
		}
	}

	e.snapshot = snap
}
