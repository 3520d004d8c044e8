package leveldata

// BreakableTile is a breakable cell with its tile coordinate, so callers
// can track destroyed blocks by position.
type BreakableTile struct {
	Pos  TilePos
	Rect Rect
}

func (tm *TileMap) tileRange(pos Vec2, radius float64) (minX, minY, maxX, maxY int) {
	minX = int((pos.X - radius) / tm.TileSize)
	maxX = int((pos.X + radius) / tm.TileSize)
	minY = int((pos.Y - radius) / tm.TileSize)
	maxY = int((pos.Y + radius) / tm.TileSize)
	return minX, minY, maxX, maxY
}

func (tm *TileMap) rectsNear(pos Vec2, radius float64, match func(TileType) bool) []Rect {
	minX, minY, maxX, maxY := tm.tileRange(pos, radius)

	var out []Rect
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if match(tm.At(x, y)) {
				rx, ry, rw, rh := tm.TileRect(x, y)
				out = append(out, Rect{X: rx, Y: ry, W: rw, H: rh})
			}
		}
	}
	return out
}

// SolidRectsNearExcluding is SolidRectsNear minus destroyed breakable
// blocks, so broken cells stop colliding without mutating the tilemap.
func (tm *TileMap) SolidRectsNearExcluding(pos Vec2, radius float64, destroyed map[TilePos]bool) []Rect {
	minX, minY, maxX, maxY := tm.tileRange(pos, radius)

	var out []Rect
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !tm.At(x, y).IsSolid() {
				continue
			}
			if destroyed[TilePos{X: x, Y: y}] {
				continue
			}
			rx, ry, rw, rh := tm.TileRect(x, y)
			out = append(out, Rect{X: rx, Y: ry, W: rw, H: rh})
		}
	}
	return out
}

// PlatformRectsNear returns one-way platform tiles within radius pixels.
func (tm *TileMap) PlatformRectsNear(pos Vec2, radius float64) []Rect {
	return tm.rectsNear(pos, radius, func(t TileType) bool { return t == TilePlatform })
}

// BounceRectsNear returns bounce pad tiles within radius pixels.
func (tm *TileMap) BounceRectsNear(pos Vec2, radius float64) []Rect {
	return tm.rectsNear(pos, radius, func(t TileType) bool { return t == TileBouncePad })
}

// HazardRectsNear returns spike tiles within radius pixels.
func (tm *TileMap) HazardRectsNear(pos Vec2, radius float64) []Rect {
	return tm.rectsNear(pos, radius, func(t TileType) bool { return t == TileSpike })
}

// BreakableTilesNear returns breakable tiles within radius pixels together
// with their tile coordinates.
func (tm *TileMap) BreakableTilesNear(pos Vec2, radius float64) []BreakableTile {
	minX, minY, maxX, maxY := tm.tileRange(pos, radius)

	var out []BreakableTile
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if tm.At(x, y) != TileBreakable {
				continue
			}
			rx, ry, rw, rh := tm.TileRect(x, y)
			out = append(out, BreakableTile{
				Pos:  TilePos{X: x, Y: y},
				Rect: Rect{X: rx, Y: ry, W: rw, H: rh},
			})
		}
	}
	return out
}
