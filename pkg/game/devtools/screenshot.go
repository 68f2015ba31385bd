package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"simpledungeon/pkg/game/i18n"
	"simpledungeon/pkg/game/renderer"
	"simpledungeon/pkg/game/state"
)

// cssClasses names the span class for each glyph style
var cssClasses = map[renderer.TextStyle]string{
	renderer.StyleNormal:   "normal",
	renderer.StyleFloor:    "floor",
	renderer.StyleWall:     "wall",
	renderer.StyleLink:     "link",
	renderer.StyleStone:    "stone",
	renderer.StyleField:    "field",
	renderer.StyleFieldFar: "field-far",
	renderer.StyleAction:   "action",
	renderer.StyleDenied:   "denied",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .floor { color: #aaa; }
        .wall { color: #666; background-color: #3c3c50; }
        .link { color: #ffdc64; font-weight: bold; }
        .stone { color: #1a1a2e; }
        .field { color: #64c8ff; }
        .field-far { color: #6482ff; font-weight: bold; }
        .action { color: #b496fa; }
        .denied { color: #ff4444; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// SaveScreenshotHTML saves the map, with the overlay state the viewer has,
// as an HTML file in dir
func SaveScreenshotHTML(level *state.Level, dir string) (string, error) {
	if level == nil || level.Tiles == nil {
		return "", fmt.Errorf("no level")
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%d-%s.html", level.Seed, timestamp))

	var b strings.Builder
	title := html.EscapeString(i18n.T("TITLE"))
	fmt.Fprintf(&b, screenshotHead, title)
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", title)
	fmt.Fprintf(&b, `    <div class="status">%s</div>`+"\n", html.EscapeString(renderer.StatusLine(level)))
	if level.ShowField {
		fmt.Fprintf(&b, `    <div class="status">%s</div>`+"\n", html.EscapeString(renderer.FieldLine(level)))
	}

	b.WriteString(`    <div class="map-container">` + "\n")
	g := level.Grid()
	for y := 0; y < g.Height; y++ {
		b.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width; x++ {
			r, style := renderer.Glyph(level, g.Hash(y, x))
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, cssClasses[style], html.EscapeString(string(r)))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	if len(level.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range level.Messages {
			clean := renderer.ExpandMarkup(msg, nil, renderer.PlainMarkup)
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(clean))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return filename, nil
}
