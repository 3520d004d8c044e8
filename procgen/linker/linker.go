// Package linker composes hand-crafted level segments into one combined
// tilemap. Segments are placed according to a layout strategy, joined by
// carved corridors, and the result carries exactly one spawn and one exit
// marker. The output is a plain tilemap string that the validator and the
// level loader both understand.
package linker

import (
	"strings"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/leveldata"
)

// LayoutStrategy selects how segments are arranged in the combined grid.
type LayoutStrategy int

const (
	// LayoutLinear chains segments left to right.
	LayoutLinear LayoutStrategy = iota
	// LayoutVertical stacks segments bottom to top.
	LayoutVertical
	// LayoutAlternating zig-zags right, then up, then right again.
	LayoutAlternating
	// LayoutGrid arranges segments in a near-square 2D grid.
	LayoutGrid
)

func (l LayoutStrategy) String() string {
	switch l {
	case LayoutLinear:
		return "linear"
	case LayoutVertical:
		return "vertical"
	case LayoutAlternating:
		return "alternating"
	case LayoutGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Minimum corridor dimensions that still leave room for the player hitbox
// plus jump clearance.
const (
	minCorridorWidth  = 4
	minCorridorHeight = 3
)

// minPlayableHeight is the smallest combined level height. Shorter segments
// are padded with wall rows so every layout has vertical room to carve.
const minPlayableHeight = 20

// Config controls a single linking run.
type Config struct {
	Seed           uint64
	Biome          string
	Preset         config.DifficultyPreset
	SegmentCount   int
	CorridorWidth  int
	CorridorHeight int
	Layout         LayoutStrategy
}

// DefaultConfig returns a linking config with the standard corridor
// dimensions and a linear layout.
func DefaultConfig() Config {
	return Config{
		Seed:           0,
		Biome:          "ocean_depths",
		Preset:         config.PresetStandard,
		SegmentCount:   3,
		CorridorWidth:  6,
		CorridorHeight: 5,
		Layout:         LayoutLinear,
	}
}

// LinkedLevel is the result of a linking run. Tilemap is empty and Success
// is false when no segment could be parsed.
type LinkedLevel struct {
	Tilemap      string
	Width        int
	Height       int
	SegmentNames []string
	Success      bool
	Layout       LayoutStrategy
}

// Linker combines pooled segments into playable levels.
type Linker struct {
	cfg Config
}

// New returns a Linker for the given config, clamping corridor dimensions
// to their playable minimums.
func New(cfg Config) *Linker {
	if cfg.CorridorWidth <= 0 {
		cfg.CorridorWidth = 6
	}
	if cfg.CorridorHeight <= 0 {
		cfg.CorridorHeight = 5
	}
	if cfg.CorridorWidth < minCorridorWidth {
		cfg.CorridorWidth = minCorridorWidth
	}
	if cfg.CorridorHeight < minCorridorHeight {
		cfg.CorridorHeight = minCorridorHeight
	}
	return &Linker{cfg: cfg}
}

// Link builds a combined level from the given segments, in order. The input
// segments are not modified. Linking fails only when the list is empty or no
// segment has a usable body; geometry problems are left for the validator.
func (l *Linker) Link(segments []*leveldata.Segment) LinkedLevel {
	failed := LinkedLevel{Layout: l.cfg.Layout}
	if len(segments) == 0 {
		return failed
	}

	parsed := make([]*parsedSegment, 0, len(segments))
	for _, seg := range segments {
		if ps := newParsedSegment(seg); ps != nil {
			parsed = append(parsed, ps)
		}
	}
	if len(parsed) == 0 {
		return failed
	}

	maxHeight := 0
	for _, ps := range parsed {
		ps.normalizeWidth()
		maxHeight = max(maxHeight, ps.height)
	}
	minHeight := max(maxHeight, minPlayableHeight)
	for _, ps := range parsed {
		ps.padToMinHeight(minHeight)
	}

	// The composite keeps the first segment's spawn and the last segment's
	// exit; everything in between loses its markers.
	stripMarkers(parsed)

	switch l.cfg.Layout {
	case LayoutVertical:
		return linkVertical(parsed, l.cfg)
	case LayoutAlternating:
		return linkAlternating(parsed, l.cfg)
	case LayoutGrid:
		return linkGrid(parsed, l.cfg)
	default:
		return linkLinear(parsed, l.cfg)
	}
}

func stripMarkers(parsed []*parsedSegment) {
	last := len(parsed) - 1
	for i, ps := range parsed {
		if i != 0 {
			ps.stripSpawn()
		}
		if i != last {
			ps.stripExit()
		}
	}
}

func segmentNames(parsed []*parsedSegment) []string {
	names := make([]string, len(parsed))
	for i, ps := range parsed {
		names[i] = ps.name
	}
	return names
}

func newSolidGrid(width, height int) [][]rune {
	tiles := make([][]rune, height)
	for y := range tiles {
		row := make([]rune, width)
		for x := range row {
			row[x] = leveldata.GlyphSolid
		}
		tiles[y] = row
	}
	return tiles
}

// blit copies a segment's tiles into the combined grid at its placement
// origin. Tiles past the combined bounds are discarded.
func blit(tiles [][]rune, ps *parsedSegment, at segmentPlacement) {
	height := len(tiles)
	if height == 0 {
		return
	}
	width := len(tiles[0])
	for sy, row := range ps.tiles {
		ty := at.y + sy
		if ty < 0 || ty >= height {
			continue
		}
		for sx, ch := range row {
			tx := at.x + sx
			if tx >= 0 && tx < width {
				tiles[ty][tx] = ch
			}
		}
	}
}

func renderTilemap(tiles [][]rune) string {
	rows := make([]string, len(tiles))
	for i, row := range tiles {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
