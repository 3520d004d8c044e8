// Package leveldata provides tilemap and segment file parsing shared between
// the game, the generator, and the CLI tools. It has no dependencies on
// ebitengine, donburi, or resolv; pure data only.
package leveldata

import "math"

// DefaultTileSize is the world-pixel size of one tile.
const DefaultTileSize = 32.0

// MaxTilemapDimension bounds width and height in tiles so validator cost
// stays bounded.
const MaxTilemapDimension = 512

// MaxSegmentFileSize bounds segment file reads.
const MaxSegmentFileSize = 256 * 1024

// TileType is the static terrain type of a single cell.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileSolid
	TilePlatform // one-way, passable from below
	TileSpike
	TileBouncePad
	TileBreakable
	TileWater
)

// IsSolid reports whether the tile blocks movement in all directions.
func (t TileType) IsSolid() bool {
	return t == TileSolid || t == TileBreakable
}

// IsStandable reports whether the tile supports standing on top of it.
func (t TileType) IsStandable() bool {
	return t == TileSolid || t == TilePlatform || t == TileBreakable
}

// MarkerType identifies a dynamic entity extracted during parsing. The
// tilemap grid holds only static terrain after markers are extracted.
type MarkerType uint8

const (
	MarkerPlayerSpawn MarkerType = iota
	MarkerLevelExit
	MarkerGem
	MarkerGrapplePoint
	MarkerCheckpoint
	MarkerWaterPool
	MarkerCrab
	MarkerPufferfishStationary
	MarkerPufferfishHorizontal
	MarkerPufferfishVertical
	MarkerMovingPlatformHStart
	MarkerMovingPlatformHEnd
	MarkerMovingPlatformVStart
	MarkerMovingPlatformVEnd
	MarkerCrumblingPlatform
)

// Marker is a dynamic entity position in world pixels.
type Marker struct {
	Type     MarkerType
	Position Vec2
}

// TilePos is an integer tile coordinate.
type TilePos struct {
	X, Y int
}

// ManhattanDistance returns |dx| + |dy|.
func (p TilePos) ManhattanDistance(o TilePos) int {
	dx, dy := o.X-p.X, o.Y-p.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DistanceTo returns the Euclidean distance.
func (p TilePos) DistanceTo(o TilePos) float64 {
	return math.Hypot(float64(o.X-p.X), float64(o.Y-p.Y))
}

// Vec2 is a position in world pixels.
type Vec2 struct {
	X, Y float64
}
