package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"simpledungeon/pkg/game/i18n"
)

// Draw renders the current snapshot to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	// Get snapshot for consistent rendering
	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without valid snapshot or fonts
		return
	}

	lineHeight := int(e.getUIFontSize()) + 4
	headerHeight := lineHeight + mapMargin

	e.drawColoredTextWithFace(screen, snap.title, mapMargin, mapMargin/2, colorTitle, e.getBoldFontFace())

	mapX := mapMargin
	mapY := headerHeight + mapMargin
	e.drawMap(screen, &snap, mapX, mapY)

	y := mapY + snap.gridRows*e.tileSize + mapMargin
	e.drawStatusFromSnapshot(screen, &snap, mapX, y, lineHeight)
}

// drawMap paints every tile: an optional background square and the glyph
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY int) {
	mapWidth := snap.gridCols * e.tileSize
	mapHeight := snap.gridRows * e.tileSize

	vector.DrawFilledRect(screen, float32(mapX-mapMargin/2), float32(mapY-mapMargin/2),
		float32(mapWidth+mapMargin), float32(mapHeight+mapMargin),
		colorMapBackground, false)

	for row := 0; row < snap.gridRows; row++ {
		for col := 0; col < snap.gridCols; col++ {
			i := row*snap.gridCols + col
			x := mapX + col*e.tileSize
			y := mapY + row*e.tileSize
			e.drawTile(screen, snap.glyphs[i], x, y, styleColors[snap.styles[i]], styleBackgrounds[snap.styles[i]])
		}
	}
}

// drawTile draws one glyph with an optional background square
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, glyph rune, x, y int, col, bg color.Color) {
	if bg != nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.tileSize), float32(e.tileSize), bg, false)
	}
	if glyph == ' ' || col == nil {
		return
	}
	e.drawColoredChar(screen, string(glyph), x, y, col)
}

// drawStatusFromSnapshot draws the status lines, message log and legend
// below the map
func (e *EbitenRenderer) drawStatusFromSnapshot(screen *ebiten.Image, snap *renderSnapshot, x, y, lineHeight int) {
	face := e.getSansFontFace()

	e.drawColoredTextWithFace(screen, snap.status, x, y, colorSubtle, face)
	y += lineHeight
	if snap.field != "" {
		e.drawColoredTextWithFace(screen, snap.field, x, y, colorField, face)
		y += lineHeight
	}
	e.drawColoredTextSegments(screen, parseMarkup(snap.keysHint), x, y)
	y += lineHeight * 2

	e.drawColoredTextWithFace(screen, i18n.T("MESSAGES_HEADER"), x, y, colorSubtle, e.getBoldFontFace())
	y += lineHeight
	for _, msg := range snap.messages {
		e.drawColoredTextSegments(screen, parseMarkup(msg), x+mapMargin/2, y)
		y += lineHeight
	}
	y += lineHeight

	legendX := x
	e.drawColoredTextWithFace(screen, i18n.T("LEGEND_TITLE")+":", legendX, y, colorSubtle, face)
	legendX += 6 * e.tileSize
	for _, entry := range snap.legend {
		e.drawTile(screen, entry.Glyph, legendX, y, styleColors[entry.Style], styleBackgrounds[entry.Style])
		legendX += e.tileSize + 4
		e.drawColoredTextWithFace(screen, entry.Label, legendX, y, colorText, face)
		legendX += len(entry.Label)*int(e.getUIFontSize()/2) + 3*e.tileSize
	}
}
