package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"simpledungeon/pkg/game/i18n"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = i18n.T

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// drawColoredChar draws a character centred in the tile at (x, y)
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	face := e.getMonoFontFace()

	// text/v2 Draw uses top-left as the origin point
	w, h := text.Measure(char, face, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+offsetX, float64(y)+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, face, op)
}

// drawColoredTextWithFace draws one line of text with a color and font face
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// parseMarkup splits a message with ACTION{} and GT{} markup into colored segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		segColor := color.Color(colorText)
		switch function {
		case "ACTION":
			segColor = colorAction
		case "GT":
			content = dynamicGet(content)
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	return segments
}

// drawColoredTextSegments draws segments left to right on one line
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	face := e.getSansFontFace()
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y))
		op.ColorScale.ScaleWithColor(seg.color)

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}
