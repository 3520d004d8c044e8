package leveldata

// Tilemap character alphabet (the external wire format). Any printable glyph
// not listed here is interpreted as Empty, which lets segment authors leave
// notes and lets the generator's slot glyphs pass through harmlessly if a
// scaling pass never resolves them.
const (
	GlyphEmpty     = ' '
	GlyphSolid     = '#'
	GlyphPlatform  = '='
	GlyphSpike     = '^'
	GlyphBouncePad = '@'
	GlyphBreakable = 'X'
	GlyphWater     = '~'

	GlyphSpawn        = 'P'
	GlyphExit         = '>'
	GlyphGem          = '$'
	GlyphGrapplePoint = '?'
	GlyphCheckpoint   = '%'
	GlyphWaterPool    = '*'

	GlyphCrab             = 'C'
	GlyphPufferStationary = 'O'
	GlyphPufferHorizontal = 'o'
	GlyphPufferVertical   = 'v'

	GlyphMovingHStart = 'L'
	GlyphMovingHEnd   = 'R'
	GlyphMovingVStart = 'U'
	GlyphMovingVEnd   = 'D'
	GlyphCrumbling    = 'F'
)

// Difficulty slot glyphs: resolved by the generator before validation.
const (
	SlotCollectible = 'c'
	SlotEnemy       = 'e'
	SlotHazard      = 'h'
	SlotGrapple     = 'a'
)

// TileForGlyph maps a body character to its terrain type. Marker glyphs and
// unknown glyphs map to Empty.
func TileForGlyph(ch rune) TileType {
	switch ch {
	case GlyphSolid:
		return TileSolid
	case GlyphPlatform:
		return TilePlatform
	case GlyphSpike:
		return TileSpike
	case GlyphBouncePad:
		return TileBouncePad
	case GlyphBreakable:
		return TileBreakable
	case GlyphWater:
		return TileWater
	default:
		return TileEmpty
	}
}

// MarkerForGlyph maps a body character to its marker type, if any.
func MarkerForGlyph(ch rune) (MarkerType, bool) {
	switch ch {
	case GlyphSpawn:
		return MarkerPlayerSpawn, true
	case GlyphExit:
		return MarkerLevelExit, true
	case GlyphGem:
		return MarkerGem, true
	case GlyphGrapplePoint:
		return MarkerGrapplePoint, true
	case GlyphCheckpoint:
		return MarkerCheckpoint, true
	case GlyphWaterPool:
		return MarkerWaterPool, true
	case GlyphCrab:
		return MarkerCrab, true
	case GlyphPufferStationary:
		return MarkerPufferfishStationary, true
	case GlyphPufferHorizontal:
		return MarkerPufferfishHorizontal, true
	case GlyphPufferVertical:
		return MarkerPufferfishVertical, true
	case GlyphMovingHStart:
		return MarkerMovingPlatformHStart, true
	case GlyphMovingHEnd:
		return MarkerMovingPlatformHEnd, true
	case GlyphMovingVStart:
		return MarkerMovingPlatformVStart, true
	case GlyphMovingVEnd:
		return MarkerMovingPlatformVEnd, true
	case GlyphCrumbling:
		return MarkerCrumblingPlatform, true
	default:
		return 0, false
	}
}

// GlyphForTile is the inverse of TileForGlyph, used when emitting tilemaps.
func GlyphForTile(t TileType) rune {
	switch t {
	case TileSolid:
		return GlyphSolid
	case TilePlatform:
		return GlyphPlatform
	case TileSpike:
		return GlyphSpike
	case TileBouncePad:
		return GlyphBouncePad
	case TileBreakable:
		return GlyphBreakable
	case TileWater:
		return GlyphWater
	default:
		return GlyphEmpty
	}
}

// GlyphForMarker is the inverse of MarkerForGlyph.
func GlyphForMarker(m MarkerType) rune {
	switch m {
	case MarkerPlayerSpawn:
		return GlyphSpawn
	case MarkerLevelExit:
		return GlyphExit
	case MarkerGem:
		return GlyphGem
	case MarkerGrapplePoint:
		return GlyphGrapplePoint
	case MarkerCheckpoint:
		return GlyphCheckpoint
	case MarkerWaterPool:
		return GlyphWaterPool
	case MarkerCrab:
		return GlyphCrab
	case MarkerPufferfishStationary:
		return GlyphPufferStationary
	case MarkerPufferfishHorizontal:
		return GlyphPufferHorizontal
	case MarkerPufferfishVertical:
		return GlyphPufferVertical
	case MarkerMovingPlatformHStart:
		return GlyphMovingHStart
	case MarkerMovingPlatformHEnd:
		return GlyphMovingHEnd
	case MarkerMovingPlatformVStart:
		return GlyphMovingVStart
	case MarkerMovingPlatformVEnd:
		return GlyphMovingVEnd
	case MarkerCrumblingPlatform:
		return GlyphCrumbling
	default:
		return GlyphEmpty
	}
}
