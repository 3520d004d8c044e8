package linker

import "math"

// linkLinear chains segments left to right, each vertically centered, with a
// corridor gap between neighbors.
func linkLinear(parsed []*parsedSegment, cfg Config) LinkedLevel {
	maxHeight := 0
	totalWidth := (len(parsed) - 1) * cfg.CorridorWidth
	for _, ps := range parsed {
		maxHeight = max(maxHeight, ps.height)
		totalWidth += ps.width
	}

	combined := newSolidGrid(totalWidth, maxHeight)

	placements := make([]segmentPlacement, len(parsed))
	xOffset := 0
	for i, ps := range parsed {
		placements[i] = segmentPlacement{idx: i, x: xOffset, y: (maxHeight - ps.height) / 2}
		xOffset += ps.width + cfg.CorridorWidth
	}
	for _, at := range placements {
		blit(combined, parsed[at.idx], at)
	}

	for i := 0; i < len(parsed)-1; i++ {
		ps := parsed[i]
		next := parsed[i+1]
		at := placements[i]
		nextAt := placements[i+1]

		exitY := findExitRow(ps, at.y, maxHeight)
		entryY := findEntryRow(next, nextAt.y, maxHeight)

		punchThroughWall(combined, at.x+ps.width-1, exitY, dirRight, cfg.CorridorHeight)
		punchThroughWall(combined, nextAt.x, entryY, dirLeft, cfg.CorridorHeight)
		carveHorizontalCorridor(combined, at.x+ps.width, exitY, cfg.CorridorWidth, entryY, cfg.CorridorHeight)
	}

	ensureSpawnExit(combined, parsed, placements)

	return LinkedLevel{
		Tilemap:      renderTilemap(combined),
		Width:        totalWidth,
		Height:       maxHeight,
		SegmentNames: segmentNames(parsed),
		Success:      true,
		Layout:       LayoutLinear,
	}
}

// linkVertical stacks segments bottom to top, each horizontally centered,
// joined by climbing shafts.
func linkVertical(parsed []*parsedSegment, cfg Config) LinkedLevel {
	maxWidth := 0
	totalHeight := (len(parsed) - 1) * cfg.CorridorHeight
	for _, ps := range parsed {
		maxWidth = max(maxWidth, ps.width)
		totalHeight += ps.height
	}

	combined := newSolidGrid(maxWidth, totalHeight)

	placements := make([]segmentPlacement, len(parsed))
	yOffset := totalHeight
	for i, ps := range parsed {
		yOffset -= ps.height
		placements[i] = segmentPlacement{idx: i, x: (maxWidth - ps.width) / 2, y: yOffset}
		yOffset -= cfg.CorridorHeight
	}
	for _, at := range placements {
		blit(combined, parsed[at.idx], at)
	}

	for i := 0; i < len(parsed)-1; i++ {
		ps := parsed[i]
		next := parsed[i+1]
		at := placements[i]
		nextAt := placements[i+1]

		exitX := findVerticalExitCol(ps, at.x, maxWidth)
		entryX := findVerticalEntryCol(next, nextAt.x, maxWidth)

		punchThroughWall(combined, exitX, at.y, dirUp, cfg.CorridorHeight)
		punchThroughWall(combined, entryX, nextAt.y+next.height-1, dirDown, cfg.CorridorHeight)
		carveVerticalCorridor(combined, exitX, nextAt.y+next.height, cfg.CorridorHeight, at.y, entryX)
	}

	ensureSpawnExit(combined, parsed, placements)

	return LinkedLevel{
		Tilemap:      renderTilemap(combined),
		Width:        maxWidth,
		Height:       totalHeight,
		SegmentNames: segmentNames(parsed),
		Success:      true,
		Layout:       LayoutVertical,
	}
}

// linkAlternating zig-zags: even indices move right, odd indices move up.
// Positions are computed bottom-up and then y-inverted so the first segment
// sits at the bottom of the grid.
func linkAlternating(parsed []*parsedSegment, cfg Config) LinkedLevel {
	totalWidth := 0
	totalHeight := 0
	positions := make([]gridPos, len(parsed))
	curX, curY := 0, 0
	for i, ps := range parsed {
		positions[i] = gridPos{x: curX, y: curY}
		if i%2 == 0 {
			curX += ps.width + cfg.CorridorWidth
		} else {
			curY += ps.height + cfg.CorridorHeight
		}
		totalWidth = max(totalWidth, positions[i].x+ps.width)
		totalHeight = max(totalHeight, positions[i].y+ps.height)
	}

	combined := newSolidGrid(totalWidth, totalHeight)

	placements := make([]segmentPlacement, len(parsed))
	for i, ps := range parsed {
		invY := max(totalHeight-(positions[i].y+ps.height), 0)
		placements[i] = segmentPlacement{idx: i, x: positions[i].x, y: invY}
	}
	for _, at := range placements {
		blit(combined, parsed[at.idx], at)
	}

	for i := 0; i < len(parsed)-1; i++ {
		ps := parsed[i]
		next := parsed[i+1]
		at := placements[i]
		nextAt := placements[i+1]

		if i%2 == 0 {
			exitY := findExitRow(ps, at.y, totalHeight)
			entryY := findEntryRow(next, nextAt.y, totalHeight)
			punchThroughWall(combined, at.x+ps.width-1, exitY, dirRight, cfg.CorridorHeight)
			punchThroughWall(combined, nextAt.x, entryY, dirLeft, cfg.CorridorHeight)
			carveHorizontalCorridor(combined, at.x+ps.width, exitY, cfg.CorridorWidth, entryY, cfg.CorridorHeight)
		} else {
			exitX := findVerticalExitCol(ps, at.x, totalWidth)
			entryX := findVerticalEntryCol(next, nextAt.x, totalWidth)
			punchThroughWall(combined, exitX, at.y, dirUp, cfg.CorridorHeight)
			punchThroughWall(combined, entryX, nextAt.y+next.height-1, dirDown, cfg.CorridorHeight)
			carveVerticalCorridor(combined, exitX, nextAt.y+next.height, cfg.CorridorHeight, at.y, entryX)
		}
	}

	ensureSpawnExit(combined, parsed, placements)

	return LinkedLevel{
		Tilemap:      renderTilemap(combined),
		Width:        totalWidth,
		Height:       totalHeight,
		SegmentNames: segmentNames(parsed),
		Success:      true,
		Layout:       LayoutAlternating,
	}
}

// linkGrid arranges segments in a near-square grid, centering each within
// its cell and connecting right and below neighbors.
func linkGrid(parsed []*parsedSegment, cfg Config) LinkedLevel {
	count := len(parsed)
	gridCols := max(int(math.Ceil(math.Sqrt(float64(count)))), 2)
	gridRows := (count + gridCols - 1) / gridCols

	maxSegWidth := 0
	maxSegHeight := 0
	for _, ps := range parsed {
		maxSegWidth = max(maxSegWidth, ps.width)
		maxSegHeight = max(maxSegHeight, ps.height)
	}
	cellWidth := maxSegWidth + cfg.CorridorWidth
	cellHeight := maxSegHeight + cfg.CorridorHeight
	totalWidth := cellWidth * gridCols
	totalHeight := cellHeight * gridRows

	combined := newSolidGrid(totalWidth, totalHeight)

	placements := make([]segmentPlacement, count)
	for i, ps := range parsed {
		col := i % gridCols
		row := i / gridCols
		placements[i] = segmentPlacement{
			idx: i,
			x:   col*cellWidth + (cellWidth-ps.width)/2,
			y:   row*cellHeight + (cellHeight-ps.height)/2,
		}
	}
	for _, at := range placements {
		blit(combined, parsed[at.idx], at)
	}

	for i := 0; i < count; i++ {
		col := i % gridCols
		row := i / gridCols
		ps := parsed[i]
		at := placements[i]

		if col+1 < gridCols && i+1 < count {
			next := parsed[i+1]
			nextAt := placements[i+1]
			exitY := findExitRow(ps, at.y, totalHeight)
			entryY := findEntryRow(next, nextAt.y, totalHeight)

			punchThroughWall(combined, at.x+ps.width-1, exitY, dirRight, cfg.CorridorHeight)
			punchThroughWall(combined, nextAt.x, entryY, dirLeft, cfg.CorridorHeight)
			corridorLen := max(nextAt.x-(at.x+ps.width), 0)
			carveHorizontalCorridor(combined, at.x+ps.width, exitY, corridorLen, entryY, cfg.CorridorHeight)
		}

		if below := i + gridCols; row+1 < gridRows && below < count {
			next := parsed[below]
			nextAt := placements[below]
			exitX := findVerticalExitCol(ps, at.x, totalWidth)
			entryX := findVerticalEntryCol(next, nextAt.x, totalWidth)

			punchThroughWall(combined, exitX, at.y+ps.height-1, dirDown, cfg.CorridorHeight)
			punchThroughWall(combined, entryX, nextAt.y, dirUp, cfg.CorridorHeight)
			corridorLen := max(nextAt.y-(at.y+ps.height), 0)
			carveVerticalCorridor(combined, exitX, at.y+ps.height, corridorLen, nextAt.y, entryX)
		}
	}

	ensureSpawnExit(combined, parsed, placements)

	return LinkedLevel{
		Tilemap:      renderTilemap(combined),
		Width:        totalWidth,
		Height:       totalHeight,
		SegmentNames: segmentNames(parsed),
		Success:      true,
		Layout:       LayoutGrid,
	}
}
