package devtools

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"simpledungeon/pkg/engine/world"
)

// DumpCSV writes values, one entry per grid cell, to dir/step<step>.csv.
// Rows follow y and columns follow x; the last row has no newline.
func DumpCSV(dir string, step int, values []int, g world.Grid) (string, error) {
	if len(values) != g.Area() {
		return "", fmt.Errorf("dump has %d values for a %dx%d grid", len(values), g.Width, g.Height)
	}

	records := make([][]string, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]string, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = strconv.Itoa(values[g.Hash(y, x)])
		}
		records[y] = row
	}

	var buf bytes.Buffer
	if err := csv.NewWriter(&buf).WriteAll(records); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("step%d.csv", step))
	if err := os.WriteFile(path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")), 0644); err != nil {
		return "", err
	}
	return path, nil
}
