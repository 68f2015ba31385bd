package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		tileSize:     defaultTileSize,
		inputChan:    make(chan engineinput.Intent, 16),
		done:         make(chan struct{}),
	}
}

// Init loads fonts and configures the window. The window opens in Run.
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.T("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run opens the window on the calling goroutine, which must be the main
// one, and runs loop on a second goroutine. It returns when the window is
// closed or loop finishes.
func (e *EbitenRenderer) Run(loop func()) error {
	go func() {
		loop()
		e.Close()
	}()

	err := ebiten.RunGame(e)
	e.Close()
	if err != nil {
		log.Printf("ebiten: window closed with error: %v", err)
	}
	return err
}

// Layout keeps the logical screen the same size as the window
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Clear drops the current snapshot; the next Draw paints only the background
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	e.snapshot.valid = false
	e.snapshotMutex.Unlock()
}

// Close stops the window and unblocks GetInput
func (e *EbitenRenderer) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.done)
	})
}

// GetInput blocks until Update delivers an intent or the window closes
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns text unchanged; colors are applied while drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message, leaving markup in place for parseMarkup
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(msg, args, func(function, operand string) string {
		return function + "{" + operand + "}"
	})
}

// GetViewportSize returns how many map tiles fit the window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	lineHeight := int(e.getUIFontSize()) + 4
	rows = (e.windowHeight - 2*mapMargin - (footerLines+2)*lineHeight) / e.tileSize
	cols = (e.windowWidth - 2*mapMargin) / e.tileSize
	return max(rows, 1), max(cols, 1)
}
