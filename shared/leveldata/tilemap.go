package leveldata

import "strings"

// TileMap is a rectangular grid of static terrain plus the markers that
// were extracted from it during parsing.
type TileMap struct {
	Tiles    [][]TileType // indexed [y][x]
	Width    int
	Height   int
	TileSize float64
	Markers  []Marker

	spawn    TilePos
	exit     TilePos
	hasSpawn bool
	hasExit  bool
}

// ParseTileMap builds a TileMap from tilemap body text. Rows are
// right-padded with walls to the widest row. Marker glyphs are extracted
// into Markers and leave Empty cells behind.
func ParseTileMap(body string, tileSize float64) (*TileMap, error) {
	lines := splitBody(body)
	if len(lines) == 0 {
		return nil, ErrEmptyTilemap
	}

	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyTilemap
	}
	height := len(lines)
	if width > MaxTilemapDimension || height > MaxTilemapDimension {
		return nil, &TilemapTooLargeError{Width: width, Height: height, MaxDimension: MaxTilemapDimension}
	}

	tm := &TileMap{
		Tiles:    make([][]TileType, height),
		Width:    width,
		Height:   height,
		TileSize: tileSize,
	}

	for y, line := range lines {
		row := make([]TileType, width)
		runes := []rune(line)
		for x := 0; x < width; x++ {
			if x >= len(runes) {
				row[x] = TileSolid
				continue
			}
			ch := runes[x]
			if mt, ok := MarkerForGlyph(ch); ok {
				pos := Vec2{
					X: (float64(x) + 0.5) * tileSize,
					Y: (float64(y) + 0.5) * tileSize,
				}
				tm.Markers = append(tm.Markers, Marker{Type: mt, Position: pos})
				switch mt {
				case MarkerPlayerSpawn:
					tm.spawn, tm.hasSpawn = TilePos{x, y}, true
				case MarkerLevelExit:
					tm.exit, tm.hasExit = TilePos{x, y}, true
				}
				row[x] = TileEmpty
				continue
			}
			row[x] = TileForGlyph(ch)
		}
		tm.Tiles[y] = row
	}

	return tm, nil
}

func splitBody(body string) []string {
	body = strings.TrimRight(body, "\n")
	body = strings.TrimLeft(body, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}

// At returns the tile at a position, treating out-of-bounds as Solid so
// level edges behave like walls.
func (tm *TileMap) At(x, y int) TileType {
	if x < 0 || y < 0 || x >= tm.Width || y >= tm.Height {
		return TileSolid
	}
	return tm.Tiles[y][x]
}

// SpawnTile returns the spawn tile position, if a spawn marker was present.
func (tm *TileMap) SpawnTile() (TilePos, bool) { return tm.spawn, tm.hasSpawn }

// ExitTile returns the exit tile position, if an exit marker was present.
func (tm *TileMap) ExitTile() (TilePos, bool) { return tm.exit, tm.hasExit }

// MarkerPositions returns all marker positions of one type in file order.
func (tm *TileMap) MarkerPositions(mt MarkerType) []Vec2 {
	var out []Vec2
	for _, m := range tm.Markers {
		if m.Type == mt {
			out = append(out, m.Position)
		}
	}
	return out
}

// ExitPosition returns the world position of the exit marker, if any.
func (tm *TileMap) ExitPosition() (Vec2, bool) {
	ps := tm.MarkerPositions(MarkerLevelExit)
	if len(ps) == 0 {
		return Vec2{}, false
	}
	return ps[0], true
}

// SpawnPosition returns the world position of the spawn marker, if any.
func (tm *TileMap) SpawnPosition() (Vec2, bool) {
	ps := tm.MarkerPositions(MarkerPlayerSpawn)
	if len(ps) == 0 {
		return Vec2{}, false
	}
	return ps[0], true
}

// TileRect returns the world-pixel bounds of a tile cell.
func (tm *TileMap) TileRect(x, y int) (float64, float64, float64, float64) {
	return float64(x) * tm.TileSize, float64(y) * tm.TileSize, tm.TileSize, tm.TileSize
}

// WorldToTile converts world pixels to a tile coordinate.
func (tm *TileMap) WorldToTile(p Vec2) TilePos {
	return TilePos{X: int(p.X / tm.TileSize), Y: int(p.Y / tm.TileSize)}
}

// String emits the static terrain back out in the wire alphabet, with the
// spawn and exit markers re-inserted. Dynamic entity markers are not
// re-emitted; callers that need a full round trip should keep the source
// text.
func (tm *TileMap) String() string {
	var sb strings.Builder
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			switch {
			case tm.hasSpawn && tm.spawn.X == x && tm.spawn.Y == y:
				sb.WriteRune(GlyphSpawn)
			case tm.hasExit && tm.exit.X == x && tm.exit.Y == y:
				sb.WriteRune(GlyphExit)
			default:
				sb.WriteRune(GlyphForTile(tm.Tiles[y][x]))
			}
		}
		if y < tm.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// SolidRectsNear returns world rects of solid tiles within radius pixels of
// a position. Used by enemy probes and physics broad-phase.
func (tm *TileMap) SolidRectsNear(pos Vec2, radius float64) []Rect {
	minX := int((pos.X - radius) / tm.TileSize)
	maxX := int((pos.X + radius) / tm.TileSize)
	minY := int((pos.Y - radius) / tm.TileSize)
	maxY := int((pos.Y + radius) / tm.TileSize)

	var out []Rect
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if tm.At(x, y).IsSolid() {
				rx, ry, rw, rh := tm.TileRect(x, y)
				out = append(out, Rect{X: rx, Y: ry, W: rw, H: rh})
			}
		}
	}
	return out
}

// Rect is a world-pixel rectangle. Duplicated here rather than importing
// gamemath to keep this package dependency-free.
type Rect struct {
	X, Y, W, H float64
}
