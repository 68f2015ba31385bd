package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "simpledungeon/pkg/engine/input"
	"simpledungeon/pkg/game/renderer"
)

// renderSnapshot holds a consistent copy of the level for Draw.
// The program loop writes it in RenderFrame while Ebiten reads it.
type renderSnapshot struct {
	valid    bool
	gridRows int
	gridCols int
	glyphs   []rune               // row-major
	styles   []renderer.TextStyle // row-major
	title    string
	status   string
	field    string
	keysHint string
	messages []string
	legend   []renderer.LegendEntry
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for map tiles
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text
	boldFontSource *text.GoTextFaceSource // Bold for the title

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedBoldFace     *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and the program loop
	inputChan chan engineinput.Intent

	// done is closed when the window goes away or Close is called
	done      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
