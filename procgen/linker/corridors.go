package linker

import "github.com/automoto/octoplat/shared/leveldata"

// linkDirection is the direction a corridor leaves a segment.
type linkDirection int

const (
	dirRight linkDirection = iota
	dirLeft
	dirUp
	dirDown
)

// Punch depths in tiles. The backward punch reaches past the segment's border
// wall into its interior so the opening always connects to playable space.
const (
	horizPunchForward = 8
	horizPunchBack    = 10
	vertPunchForward  = 8
	vertPunchBack     = 8
)

// findExitRow picks the connection row on a segment's right edge: the lowest
// empty tile in the rightmost column that has a standing surface directly
// below. Falls back to the segment's vertical midpoint when the column is
// sealed.
func findExitRow(ps *parsedSegment, yOffset, maxHeight int) int {
	return findEdgeRow(ps, ps.width-1, yOffset, maxHeight)
}

// findEntryRow is the counterpart on the next segment's left edge.
func findEntryRow(ps *parsedSegment, yOffset, maxHeight int) int {
	return findEdgeRow(ps, 0, yOffset, maxHeight)
}

func findEdgeRow(ps *parsedSegment, col, yOffset, maxHeight int) int {
	for y := ps.height - 2; y >= 1; y-- {
		globalY := yOffset + y
		if globalY >= maxHeight {
			continue
		}
		if ps.tileAt(col, y) != leveldata.GlyphEmpty {
			continue
		}
		below := ps.tileAt(col, y+1)
		if below == leveldata.GlyphSolid || below == leveldata.GlyphPlatform {
			return globalY
		}
	}
	return yOffset + ps.height/2
}

// findVerticalExitCol picks the connection column on a segment's bottom row,
// falling back to its horizontal midpoint.
func findVerticalExitCol(ps *parsedSegment, xOffset, maxWidth int) int {
	return findEdgeCol(ps, ps.height-1, xOffset, maxWidth)
}

// findVerticalEntryCol is the counterpart on the next segment's top row.
func findVerticalEntryCol(ps *parsedSegment, xOffset, maxWidth int) int {
	return findEdgeCol(ps, 0, xOffset, maxWidth)
}

func findEdgeCol(ps *parsedSegment, row, xOffset, maxWidth int) int {
	for x := 1; x < ps.width-1; x++ {
		globalX := xOffset + x
		if globalX >= maxWidth {
			continue
		}
		switch ps.tileAt(x, row) {
		case leveldata.GlyphEmpty, leveldata.GlyphSpawn, leveldata.GlyphExit:
			return globalX
		}
	}
	return xOffset + ps.width/2
}

// punchThroughWall opens a passage at a connection point, clearing in both
// directions so the segment's border wall no longer seals the gap. Horizontal
// punches also lay one-way platforms as stepping stones between the segment
// interior and the corridor floor.
func punchThroughWall(tiles [][]rune, x, y int, dir linkDirection, corridorHeight int) {
	height := len(tiles)
	if height == 0 {
		return
	}
	width := len(tiles[0])

	switch dir {
	case dirLeft, dirRight:
		clearAbove := corridorHeight + 8
		clearBelow := 4
		step := 1
		if dir == dirLeft {
			step = -1
		}

		// Forward, into the corridor gap.
		for dx := 0; dx < horizPunchForward; dx++ {
			px := x + step*dx
			if px < 0 || px >= width {
				continue
			}
			punchColumn(tiles, px, y, clearAbove, clearBelow)
			if floorY := y + clearBelow + 1; floorY < height {
				tiles[floorY][px] = leveldata.GlyphPlatform
			}
		}

		// Backward, through the border wall into the segment interior.
		for dx := 1; dx <= horizPunchBack; dx++ {
			px := x - step*dx
			if px < 0 || px >= width {
				continue
			}
			punchColumn(tiles, px, y, clearAbove, clearBelow)
			if fy := y + 1; fy < height && tiles[fy][px] == leveldata.GlyphEmpty {
				tiles[fy][px] = leveldata.GlyphPlatform
			}
			if dx%3 == 0 {
				if hy := y - 2; hy >= 0 && tiles[hy][px] == leveldata.GlyphEmpty {
					tiles[hy][px] = leveldata.GlyphPlatform
				}
				if ly := y + 3; ly < height && tiles[ly][px] == leveldata.GlyphEmpty {
					tiles[ly][px] = leveldata.GlyphPlatform
				}
			}
		}

	case dirUp, dirDown:
		clearance := corridorHeight + 4
		step := 1
		if dir == dirUp {
			step = -1
		}
		for dy := 0; dy < vertPunchForward; dy++ {
			punchRow(tiles, x, y+step*dy, clearance)
		}
		for dy := 1; dy <= vertPunchBack; dy++ {
			punchRow(tiles, x, y-step*dy, clearance)
		}
	}
}

func punchColumn(tiles [][]rune, px, y, clearAbove, clearBelow int) {
	height := len(tiles)
	for dy := 0; dy < clearAbove; dy++ {
		if py := y - dy; py >= 0 && py < height {
			tiles[py][px] = leveldata.GlyphEmpty
		}
	}
	for dy := 1; dy <= clearBelow; dy++ {
		if py := y + dy; py < height {
			tiles[py][px] = leveldata.GlyphEmpty
		}
	}
}

func punchRow(tiles [][]rune, x, py, clearance int) {
	height := len(tiles)
	if py < 0 || py >= height {
		return
	}
	width := len(tiles[py])
	for dx := 0; dx < clearance; dx++ {
		if cx := x - clearance/2 + dx; cx >= 0 && cx < width {
			tiles[py][cx] = leveldata.GlyphEmpty
		}
	}
}

// carveHorizontalCorridor opens the gap between two horizontally adjacent
// segments. The corridor path lerps between the exit and entry rows; when
// they differ the whole vertical span is cleared so the slope stays passable.
// Punch-placed platforms inside the span survive the carve.
func carveHorizontalCorridor(tiles [][]rune, startX, startY, corridorLen, endY, corridorHeight int) {
	height := len(tiles)
	if height == 0 {
		return
	}
	width := len(tiles[0])

	minY := min(startY, endY)
	maxY := max(startY, endY)
	heightDiff := maxY - minY
	clearance := max(corridorHeight, heightDiff+corridorHeight)

	for i := 0; i < corridorLen; i++ {
		x := startX + i
		if x < 0 || x >= width {
			continue
		}
		y := lerpRow(startY, endY, i, corridorLen)

		carveTop := max(minY-corridorHeight, 0)
		carveBottom := min(y+1, height-1)
		for cy := carveTop; cy <= carveBottom; cy++ {
			if tiles[cy][x] != leveldata.GlyphPlatform {
				tiles[cy][x] = leveldata.GlyphEmpty
			}
		}
		for dy := 0; dy < clearance; dy++ {
			if cy := y - dy; cy >= 0 {
				tiles[cy][x] = leveldata.GlyphEmpty
			}
		}
	}

	// Stepping platforms along the corridor path, alternating between the
	// path row and two tiles above it.
	const platformInterval = 3
	for i := 0; i < corridorLen; i++ {
		x := startX + i
		if x < 0 || x >= width {
			continue
		}
		baseY := lerpRow(startY, endY, i, corridorLen)

		if i%platformInterval == 1 {
			py := baseY
			if (i/platformInterval)%2 != 0 {
				py = baseY - 2
			}
			if py >= 0 && py < height {
				tiles[py][x] = leveldata.GlyphPlatform
				if x+1 < width {
					tiles[py][x+1] = leveldata.GlyphPlatform
				}
			}
		}

		if heightDiff > 5 && i%(platformInterval*2) == 0 {
			if midY := (minY + maxY) / 2; midY >= 0 && midY < height && midY != baseY {
				tiles[midY][x] = leveldata.GlyphPlatform
			}
		}
	}
}

// carveVerticalCorridor opens a climbing shaft between two vertically
// adjacent segments, with small platforms on alternating sides every few
// rows.
func carveVerticalCorridor(tiles [][]rune, startX, startY, corridorLen, endY, endX int) {
	height := len(tiles)
	if height == 0 {
		return
	}
	width := len(tiles[0])
	const shaftWidth = 5

	minY := min(startY, endY)
	maxY := min(max(startY, endY)+corridorLen, height)

	for y := minY; y < maxY; y++ {
		shaftX := lerpRow(startX, endX, y-minY, maxY-minY)
		for dx := 0; dx < shaftWidth; dx++ {
			if cx := shaftX - shaftWidth/2 + dx; cx >= 0 && cx < width {
				tiles[y][cx] = leveldata.GlyphEmpty
			}
		}
	}

	const platformInterval = 4
	for y := minY; y < maxY; y += platformInterval {
		shaftX := lerpRow(startX, endX, y-minY, maxY-minY)
		side := 2
		if (y/platformInterval)%2 == 0 {
			side = -2
		}
		px := shaftX + side
		if px > 0 && px < width-1 {
			tiles[y][px] = leveldata.GlyphPlatform
			tiles[y][px+1] = leveldata.GlyphPlatform
		}
	}
}

// lerpRow interpolates between two coordinates across span steps, matching
// the carve loops' step indexing.
func lerpRow(from, to, step, span int) int {
	if span <= 1 {
		return from
	}
	t := float64(step) / float64(span-1)
	return int(float64(from)*(1-t) + float64(to)*t)
}
