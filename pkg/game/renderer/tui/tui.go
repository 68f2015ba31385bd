package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/engine/terminal"
	"simpledungeon/pkg/engine/world"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

// Lines needed outside the map:
// - Title + blank (2)
// - Status, field and keys lines + blank (4)
// - Messages pane (header + 8 messages + footer = 10)
// - Legend (1)
// - Input prompt (2)
const ViewportTopMargin = 19

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = i18n.T

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor       color.Style
	colorWall        color.Style
	colorLink        color.Style
	colorStone       color.Style
	colorField       color.Style
	colorFieldFar    color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorTitle       color.Style

	out io.Writer
	// fullMap disables cropping to the terminal size
	fullMap bool
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, fullMap: !terminal.IsInteractive()}
}

// NewWithWriter creates a TUI renderer that prints the whole map to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w, fullMap: true}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorFloor = color.Style{color.FgWhite}
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorLink = color.Style{color.FgYellow, color.OpBold}
	t.colorStone = color.Style{color.FgDefault}
	t.colorField = color.Style{color.FgCyan}
	t.colorFieldFar = color.Style{color.FgBlue, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgGreen, color.OpBold}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.fullMap {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads one key, or one line when stdin is not a terminal
func (t *TUIRenderer) GetInput() input.Intent {
	fmt.Fprint(t.out, "\n> ")
	intent, err := input.GetInputWithArrows()
	if err != nil && !errors.Is(err, io.EOF) {
		log.Printf("tui: reading input: %v", err)
	}
	return intent
}

func (t *TUIRenderer) style(style renderer.TextStyle) color.Style {
	switch style {
	case renderer.StyleFloor:
		return t.colorFloor
	case renderer.StyleWall:
		return t.colorWall
	case renderer.StyleLink:
		return t.colorLink
	case renderer.StyleStone:
		return t.colorStone
	case renderer.StyleField:
		return t.colorField
	case renderer.StyleFieldFar:
		return t.colorFieldFar
	case renderer.StyleAction:
		return t.colorAction
	case renderer.StyleActionShort:
		return t.colorActionShort
	case renderer.StyleDenied:
		return t.colorDenied
	case renderer.StyleSubtle:
		return t.colorSubtle
	case renderer.StyleTitle:
		return t.colorTitle
	default:
		return color.Style{}
	}
}

// StyleText applies ANSI colors to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if style == renderer.StyleNormal {
		return text
	}
	return t.style(style).Sprint(text)
}

// FormatText formats a message with markup
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(msg, args, t.markup)
}

func (t *TUIRenderer) markup(function, operand string) string {
	switch function {
	case "GT":
		return dynamicGet(operand)
	case "ACTION":
		return t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
	default:
		return operand
	}
}

// GetViewportSize returns how many map rows and columns fit the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	w, h := terminal.GetSize()
	rows = h - ViewportTopMargin
	if rows < 1 {
		rows = 1
	}
	return rows, w
}

// Close is a no-op; the terminal is only in raw mode while reading a key
func (t *TUIRenderer) Close() {}

// RenderFrame prints the map, status, messages and legend
func (t *TUIRenderer) RenderFrame(level *state.Level) {
	if level == nil {
		return
	}

	fmt.Fprintln(t.out, t.colorTitle.Sprint(i18n.T("TITLE")))
	fmt.Fprintln(t.out)

	t.printMap(level)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.StatusLine(level)))
	if line := renderer.FieldLine(level); line != "" && level.ShowField {
		fmt.Fprintln(t.out, t.colorField.Sprint(line))
	}
	fmt.Fprintln(t.out, t.FormatText(i18n.T("KEYS_HINT")))

	t.printMessagesPane(level)
	t.printLegend()
}

// printMap draws the visible part of the map, one line per row. Runs of
// glyphs with the same style share one escape sequence.
func (t *TUIRenderer) printMap(level *state.Level) {
	g := level.Grid()
	rows, cols := g.Height, g.Width
	if !t.fullMap {
		vr, vc := t.GetViewportSize()
		rows, cols = min(rows, vr), min(cols, vc)
		if rows < g.Height || cols < g.Width {
			log.Printf("tui: %s", i18n.T("MSG_TOO_SMALL", g.Width, g.Height))
		}
	}

	var line, run strings.Builder
	for y := 0; y < rows; y++ {
		line.Reset()
		run.Reset()
		current := renderer.StyleNormal
		for x := 0; x < cols; x++ {
			r, style := renderer.Glyph(level, g.Hash(y, x))
			if style != current && run.Len() > 0 {
				line.WriteString(t.StyleText(run.String(), current))
				run.Reset()
			}
			current = style
			run.WriteRune(r)
		}
		line.WriteString(t.StyleText(run.String(), current))
		fmt.Fprintln(t.out, strings.TrimRight(line.String(), " "))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(level *state.Level) {
	width := level.Grid().Width
	if !t.fullMap {
		width = terminal.GetWidth()
	}

	label := " " + i18n.T("MESSAGES_HEADER") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))
	for _, msg := range level.Messages {
		fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// printLegend prints the glyph key on one line
func (t *TUIRenderer) printLegend() {
	parts := []string{t.colorSubtle.Sprint(i18n.T("LEGEND_TITLE") + ":")}
	for _, e := range renderer.Legend() {
		glyph := string(e.Glyph)
		if e.Glyph == world.Stone.Symbol() {
			glyph = "' '"
		}
		parts = append(parts, t.StyleText(glyph, e.Style)+" "+e.Label)
	}
	fmt.Fprintln(t.out, strings.Join(parts, "  "))
}
