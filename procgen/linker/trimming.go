package linker

import (
	"strings"

	"github.com/automoto/octoplat/shared/leveldata"
)

// Trim crops a tilemap string to the bounding box of its non-wall content
// plus a margin of wall tiles on every side. Used by the export tooling;
// runtime linking keeps the full grid.
func Trim(tilemap string, margin int) (string, int, int) {
	lines := strings.Split(tilemap, "\n")
	tiles := make([][]rune, len(lines))
	for i, line := range lines {
		tiles[i] = []rune(line)
	}

	trimmed, width, height := trimTiles(tiles, margin)

	rows := make([]string, len(trimmed))
	for i, row := range trimmed {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n"), width, height
}

func trimTiles(tiles [][]rune, margin int) ([][]rune, int, int) {
	minX, minY, maxX, maxY, ok := contentBounds(tiles)
	if !ok {
		width := 0
		if len(tiles) > 0 {
			width = len(tiles[0])
		}
		return tiles, width, len(tiles)
	}

	origHeight := len(tiles)
	origWidth := len(tiles[0])

	top := max(minY-margin, 0)
	left := max(minX-margin, 0)
	bottom := min(maxY+margin+1, origHeight)
	right := min(maxX+margin+1, origWidth)

	width := right - left
	height := bottom - top

	trimmed := make([][]rune, 0, height)
	for y := top; y < bottom; y++ {
		row := tiles[y]
		out := make([]rune, width)
		for x := 0; x < width; x++ {
			if left+x < len(row) {
				out[x] = row[left+x]
			} else {
				out[x] = leveldata.GlyphSolid
			}
		}
		trimmed = append(trimmed, out)
	}
	return trimmed, width, height
}

// contentBounds finds the bounding box of tiles that are neither solid wall
// nor empty space.
func contentBounds(tiles [][]rune) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = int(^uint(0)>>1), int(^uint(0)>>1)
	maxX, maxY = -1, -1
	for y, row := range tiles {
		for x, ch := range row {
			if ch == leveldata.GlyphSolid || ch == leveldata.GlyphEmpty {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY, maxX >= 0
}
