package linker

import "github.com/automoto/octoplat/shared/leveldata"

// segmentPlacement records where a parsed segment lands in the combined grid.
type segmentPlacement struct {
	idx int
	x   int
	y   int
}

type gridPos struct {
	x int
	y int
}

// parsedSegment is a mutable copy of a pooled segment's tile body, ready for
// marker stripping and padding. The source segment is never touched.
type parsedSegment struct {
	name   string
	tiles  [][]rune
	width  int
	height int
	spawn  *gridPos
	exit   *gridPos
}

// newParsedSegment copies a segment body into a rune grid and records its
// spawn and exit marker positions. Returns nil for segments with no rows.
func newParsedSegment(seg *leveldata.Segment) *parsedSegment {
	if seg == nil || len(seg.Rows) == 0 {
		return nil
	}

	ps := &parsedSegment{name: seg.Name, height: len(seg.Rows)}
	ps.tiles = make([][]rune, ps.height)
	for y, row := range seg.Rows {
		runes := []rune(row)
		ps.tiles[y] = runes
		ps.width = max(ps.width, len(runes))
		for x, ch := range runes {
			switch ch {
			case leveldata.GlyphSpawn:
				ps.spawn = &gridPos{x: x, y: y}
			case leveldata.GlyphExit:
				ps.exit = &gridPos{x: x, y: y}
			}
		}
	}
	if ps.width == 0 {
		return nil
	}
	return ps
}

func (ps *parsedSegment) tileAt(x, y int) rune {
	if y < 0 || y >= len(ps.tiles) || x < 0 || x >= len(ps.tiles[y]) {
		return leveldata.GlyphSolid
	}
	return ps.tiles[y][x]
}

func (ps *parsedSegment) stripSpawn() {
	if ps.spawn == nil {
		return
	}
	if ps.spawn.y < len(ps.tiles) && ps.spawn.x < len(ps.tiles[ps.spawn.y]) {
		ps.tiles[ps.spawn.y][ps.spawn.x] = leveldata.GlyphEmpty
	}
	ps.spawn = nil
}

func (ps *parsedSegment) stripExit() {
	if ps.exit == nil {
		return
	}
	if ps.exit.y < len(ps.tiles) && ps.exit.x < len(ps.tiles[ps.exit.y]) {
		ps.tiles[ps.exit.y][ps.exit.x] = leveldata.GlyphEmpty
	}
	ps.exit = nil
}

// normalizeWidth right-pads short rows with solid tiles so every row spans
// the full segment width.
func (ps *parsedSegment) normalizeWidth() {
	for y, row := range ps.tiles {
		for len(row) < ps.width {
			row = append(row, leveldata.GlyphSolid)
		}
		ps.tiles[y] = row
	}
}

// padToMinHeight grows the segment to minHeight by adding wall rows split
// between top and bottom. Recorded marker positions shift with the body.
func (ps *parsedSegment) padToMinHeight(minHeight int) {
	if ps.height >= minHeight {
		return
	}

	padRows := minHeight - ps.height
	topRows := padRows / 2
	bottomRows := padRows - topRows

	tiles := make([][]rune, 0, minHeight)
	for i := 0; i < topRows; i++ {
		tiles = append(tiles, solidRow(ps.width))
	}
	tiles = append(tiles, ps.tiles...)
	for i := 0; i < bottomRows; i++ {
		tiles = append(tiles, solidRow(ps.width))
	}

	ps.tiles = tiles
	ps.height = minHeight
	if ps.spawn != nil {
		ps.spawn.y += topRows
	}
	if ps.exit != nil {
		ps.exit.y += topRows
	}
}

func solidRow(width int) []rune {
	row := make([]rune, width)
	for x := range row {
		row[x] = leveldata.GlyphSolid
	}
	return row
}
