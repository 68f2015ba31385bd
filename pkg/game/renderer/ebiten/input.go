package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "simpledungeon/pkg/engine/input"
)

// keyCodes maps Ebiten keys to binding codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyQ:      "q",
	ebiten.KeyN:      "n",
	ebiten.KeyD:      "d",
	ebiten.KeyF:      "f",
	ebiten.KeyH:      "h",
	ebiten.KeySpace:  "space",
	ebiten.KeyEnter:  "enter",
	ebiten.KeyTab:    "tab",
	ebiten.KeyEscape: "escape",
	ebiten.KeyF12:    "f12",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closed.Load() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	// Handle font size changes (= to increase, - to decrease, 0 to reset)
	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// checkInput returns the intent for the first key pressed this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		return engineinput.IntentFor(engineinput.DeviceKeyboard, "ctrl_c")
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if shift {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, "R")
		}
		return engineinput.IntentFor(engineinput.DeviceKeyboard, "r")
	case shift && inpututil.IsKeyJustPressed(ebiten.KeySlash):
		return engineinput.IntentFor(engineinput.DeviceKeyboard, "?")
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// handleZoom handles =/- for font/tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		e.setTileSize(e.tileSize + tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		e.setTileSize(e.tileSize - tileSizeStep)
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.setTileSize(defaultTileSize)
	}
}

// setTileSize clamps and applies a new tile size
func (e *EbitenRenderer) setTileSize(size int) {
	size = min(max(size, minTileSize), maxTileSize)
	if size != e.tileSize {
		e.tileSize = size
		e.invalidateFontCache()
	}
}
