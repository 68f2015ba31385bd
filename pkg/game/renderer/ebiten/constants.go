// Package ebiten provides an Ebiten-based 2D graphical renderer for the dungeon viewer.
package ebiten

import (
	"image/color"

	"simpledungeon/pkg/game/renderer"
)

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorFloor         = color.RGBA{160, 160, 180, 255} // Light gray
	colorWall          = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg        = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorLink          = color.RGBA{255, 220, 100, 255} // Yellow
	colorLinkBg        = color.RGBA{80, 70, 30, 255}    // Dark yellow behind links
	colorField         = color.RGBA{100, 200, 255, 255} // Cyan for near costs
	colorFieldFar      = color.RGBA{100, 130, 255, 255} // Blue for far costs
	colorFieldBg       = color.RGBA{20, 40, 60, 255}    // Dark blue behind the overlay
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied        = color.RGBA{255, 100, 100, 255} // Bright red
	colorTitle         = color.RGBA{0, 255, 100, 255}   // Bright green
)

// styleColors maps renderer styles to glyph colors
var styleColors = map[renderer.TextStyle]color.Color{
	renderer.StyleNormal:      colorText,
	renderer.StyleFloor:       colorFloor,
	renderer.StyleWall:        colorWall,
	renderer.StyleLink:        colorLink,
	renderer.StyleStone:       colorMapBackground,
	renderer.StyleField:       colorField,
	renderer.StyleFieldFar:    colorFieldFar,
	renderer.StyleAction:      colorAction,
	renderer.StyleActionShort: colorAction,
	renderer.StyleDenied:      colorDenied,
	renderer.StyleSubtle:      colorSubtle,
	renderer.StyleTitle:       colorTitle,
}

// styleBackgrounds holds the tile backgrounds; styles not listed draw none
var styleBackgrounds = map[renderer.TextStyle]color.Color{
	renderer.StyleWall:     colorWallBg,
	renderer.StyleLink:     colorLinkBg,
	renderer.StyleField:    colorFieldBg,
	renderer.StyleFieldFar: colorFieldBg,
}

// Window and tile size
const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultTileSize     = 16
	minTileSize         = 8
	maxTileSize         = 48
	tileSizeStep        = 4
	baseFontSize        = 14.0 // Font size at the default tile size
	mapMargin           = 20
)

// Rows of UI text under the map: status, field, keys, header, messages, legend
const footerLines = 13
