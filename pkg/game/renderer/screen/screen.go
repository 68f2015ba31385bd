// Package screen is a full screen terminal renderer built on tcell. It
// draws the map cell by cell and reads keys without line buffering.
package screen

import (
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

// Rows around the map: title and blank above; blank, status, field, keys,
// blank, messages header, messages, blank and legend below.
const reservedRows = 17

var dynamicGet = i18n.T

// ScreenRenderer draws into a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	styles map[renderer.TextStyle]tcell.Style

	mu    sync.Mutex
	level *state.Level
}

// New creates a renderer for the real terminal
func New() *ScreenRenderer {
	return &ScreenRenderer{}
}

// NewWithScreen creates a renderer around an existing screen, such as a
// simulation screen in tests. The screen must not be initialised yet.
func NewWithScreen(s tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: s}
}

// Init opens the screen and sets up the palette
func (r *ScreenRenderer) Init() error {
	if r.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		r.screen = s
	}
	if err := r.screen.Init(); err != nil {
		return err
	}

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	r.screen.SetStyle(base)
	r.screen.HideCursor()

	r.styles = map[renderer.TextStyle]tcell.Style{
		renderer.StyleNormal:      base,
		renderer.StyleFloor:       base.Foreground(tcell.ColorWhite),
		renderer.StyleWall:        base.Foreground(tcell.ColorGray).Bold(true),
		renderer.StyleLink:        base.Foreground(tcell.ColorYellow).Bold(true),
		renderer.StyleStone:       base,
		renderer.StyleField:       base.Foreground(tcell.ColorAqua),
		renderer.StyleFieldFar:    base.Foreground(tcell.ColorBlue).Bold(true),
		renderer.StyleAction:      base.Foreground(tcell.ColorPurple),
		renderer.StyleActionShort: base.Foreground(tcell.ColorPurple).Bold(true),
		renderer.StyleDenied:      base.Foreground(tcell.ColorRed).Bold(true),
		renderer.StyleSubtle:      base.Foreground(tcell.ColorGray),
		renderer.StyleTitle:       base.Foreground(tcell.ColorGreen).Bold(true),
	}
	return nil
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	if r.screen != nil {
		r.screen.Fini()
	}
}

// StyleText returns text unchanged; styles are applied per cell
func (r *ScreenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText expands markup to plain text
func (r *ScreenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(msg, args, func(function, operand string) string {
		if function == "GT" {
			return dynamicGet(operand)
		}
		return operand
	})
}

// GetViewportSize returns the map area that fits the screen
func (r *ScreenRenderer) GetViewportSize() (rows, cols int) {
	w, h := r.screen.Size()
	return max(h-reservedRows, 1), w
}

// GetInput waits for a key. Resizes redraw the last frame and return an
// empty intent so the caller can carry on.
func (r *ScreenRenderer) GetInput() input.Intent {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return input.Intent{Action: input.ActionQuit}
		case *tcell.EventResize:
			r.screen.Sync()
			r.mu.Lock()
			level := r.level
			r.mu.Unlock()
			if level != nil {
				r.RenderFrame(level)
			}
			return input.Intent{Action: input.ActionNone}
		case *tcell.EventKey:
			if code := keyCode(ev); code != "" {
				return input.IntentFor(input.DeviceKeyboard, code)
			}
		}
	}
}

// keyCode converts a tcell key event to a binding code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyF12:
		return "f12"
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	default:
		return ""
	}
}

// RenderFrame draws the level and flips the screen
func (r *ScreenRenderer) RenderFrame(level *state.Level) {
	if level == nil {
		return
	}
	r.mu.Lock()
	r.level = level
	r.mu.Unlock()

	r.screen.Clear()
	w, _ := r.screen.Size()
	rows, cols := r.GetViewportSize()

	g := level.Grid()
	if rows < g.Height || cols < g.Width {
		log.Printf("screen: %s", i18n.T("MSG_TOO_SMALL", g.Width, g.Height))
	}

	row := 0
	r.drawText(0, row, i18n.T("TITLE"), renderer.StyleTitle)
	row += 2

	mapRows := min(g.Height, rows)
	for y := 0; y < mapRows; y++ {
		for x := 0; x < min(g.Width, cols); x++ {
			ch, style := renderer.Glyph(level, g.Hash(y, x))
			r.screen.SetContent(x, row, ch, nil, r.styles[style])
		}
		row++
	}
	row++

	r.drawText(0, row, renderer.StatusLine(level), renderer.StyleSubtle)
	row++
	if line := renderer.FieldLine(level); line != "" && level.ShowField {
		r.drawText(0, row, line, renderer.StyleField)
		row++
	}
	r.drawText(0, row, r.FormatText(i18n.T("KEYS_HINT")), renderer.StyleAction)
	row += 2

	header := " " + i18n.T("MESSAGES_HEADER") + " "
	r.drawText(0, row, "──"+header+strings.Repeat("─", max(w-len([]rune(header))-2, 0)), renderer.StyleSubtle)
	row++
	for _, msg := range level.Messages {
		r.drawText(2, row, r.FormatText(msg), renderer.StyleNormal)
		row++
	}
	row++

	x := r.drawText(0, row, i18n.T("LEGEND_TITLE")+":", renderer.StyleSubtle)
	for _, e := range renderer.Legend() {
		x += 2
		glyph := string(e.Glyph)
		if e.Glyph == world.Stone.Symbol() {
			glyph = "' '"
		}
		x = r.drawText(x, row, glyph, e.Style)
		x = r.drawText(x+1, row, e.Label, renderer.StyleNormal)
	}

	r.screen.Show()
}

// drawText writes s starting at (x, y) and returns the column after it
func (r *ScreenRenderer) drawText(x, y int, s string, style renderer.TextStyle) int {
	st := r.styles[style]
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}
