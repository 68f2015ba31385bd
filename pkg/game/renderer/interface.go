package renderer

import (
	"simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StyleLink
	StyleStone
	StyleField
	StyleFieldFar
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleTitle
)

// Renderer defines the interface for display backends.
// Implementations include the plain terminal printer, a tcell full screen
// view and an Ebiten window.
type Renderer interface {
	// Init prepares the backend (colors, screen, window)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame draws the map, status lines, messages and legend
	RenderFrame(level *state.Level)

	// GetInput blocks until the user asks for something
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// GetViewportSize returns the number of map rows and columns that fit
	GetViewportSize() (rows, cols int)

	// Close releases the display
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(level *state.Level) {
	if Current != nil {
		Current.RenderFrame(level)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return ExpandMarkup(msg, args, PlainMarkup)
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 20, 80
}

// Close shuts the current renderer down
func Close() {
	if Current != nil {
		Current.Close()
	}
}
