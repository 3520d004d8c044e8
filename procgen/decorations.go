package procgen

import (
	"strings"

	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/automoto/octoplat/shared/procrand"
)

// DecorationType enumerates the purely visual props a biome can place.
type DecorationType int

const (
	DecoSeaweed DecorationType = iota
	DecoKelp
	DecoBubbles
	DecoSmallRock
	DecoCoralBranch
	DecoAnemone
	DecoShell
	DecoPalmFrond
	DecoCoconut
	DecoTropicalFlower
	DecoStarfish
	DecoWoodDebris
	DecoBarrel
	DecoChain
	DecoAnchor
	DecoIceShard
	DecoSnowflake
	DecoFrostedRock
	DecoIceCrystal
	DecoLavaRock
	DecoSteamVent
	DecoAsh
	DecoBrokenColumn
	DecoAncientTile
	DecoMysticOrb
	DecoVineGrowth
	DecoCrystal
	DecoBioGlow
	DecoTendril
)

// Floating reports whether the prop drifts in open water instead of
// attaching to a surface.
func (d DecorationType) Floating() bool {
	switch d {
	case DecoBubbles, DecoSnowflake, DecoAsh, DecoMysticOrb, DecoBioGlow:
		return true
	}
	return false
}

// DecorationsFor returns the prop set a biome draws from.
func DecorationsFor(biome BiomeID) []DecorationType {
	switch biome {
	case CoralReefs:
		return []DecorationType{DecoCoralBranch, DecoAnemone, DecoShell, DecoSeaweed}
	case TropicalShore:
		return []DecorationType{DecoPalmFrond, DecoCoconut, DecoTropicalFlower, DecoStarfish}
	case Shipwreck:
		return []DecorationType{DecoWoodDebris, DecoBarrel, DecoChain, DecoAnchor}
	case ArcticWaters:
		return []DecorationType{DecoIceShard, DecoSnowflake, DecoFrostedRock, DecoIceCrystal}
	case VolcanicVents:
		return []DecorationType{DecoLavaRock, DecoSteamVent, DecoAsh, DecoSmallRock}
	case SunkenRuins:
		return []DecorationType{DecoBrokenColumn, DecoAncientTile, DecoMysticOrb, DecoVineGrowth}
	case Abyss:
		return []DecorationType{DecoCrystal, DecoBioGlow, DecoTendril, DecoBubbles}
	}
	return []DecorationType{DecoSeaweed, DecoKelp, DecoBubbles, DecoSmallRock}
}

// Decoration is one placed visual prop. Props never affect gameplay.
type Decoration struct {
	Position gamemath.Vec2
	Type     DecorationType
	// Variant picks one of four sprite variations.
	Variant uint8
	// Scale is clamped to 0.5..1.5.
	Scale float64
	// Phase desynchronizes idle animations, 0..1.
	Phase float64
}

func newDecoration(pos gamemath.Vec2, typ DecorationType, variant uint8, scale, phase float64) Decoration {
	return Decoration{
		Position: pos,
		Type:     typ,
		Variant:  variant % 4,
		Scale:    gamemath.Clamp(scale, 0.5, 1.5),
		Phase:    phase - float64(int(phase)),
	}
}

// decorationDensity is the per-biome placement probability for surface and
// floating props.
type decorationDensity struct {
	surface  float64
	floating float64
}

func densityFor(biome BiomeID) decorationDensity {
	switch biome {
	case CoralReefs:
		return decorationDensity{0.35, 0.10}
	case TropicalShore:
		return decorationDensity{0.30, 0.06}
	case Shipwreck:
		return decorationDensity{0.30, 0.05}
	case ArcticWaters:
		return decorationDensity{0.25, 0.12}
	case VolcanicVents:
		return decorationDensity{0.20, 0.15}
	case SunkenRuins:
		return decorationDensity{0.35, 0.18}
	case Abyss:
		return decorationDensity{0.25, 0.20}
	}
	return decorationDensity{0.25, 0.08}
}

// GenerateDecorations scatters biome props over a tilemap. Surface props
// hug exposed solid edges, floating props drift in open cells. Placement
// is deterministic for a given seed.
func GenerateDecorations(tilemap string, biome BiomeID, seed uint64, tileSize float64) []Decoration {
	lines := strings.Split(tilemap, "\n")
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	if width == 0 || height == 0 {
		return nil
	}

	rng := procrand.New(seed)

	isSolid := func(x, y int) bool {
		if y < 0 || y >= height || x < 0 || x >= len(grid[y]) {
			return false
		}
		return grid[y][x] == leveldata.GlyphSolid || grid[y][x] == leveldata.GlyphPlatform
	}
	isOpen := func(x, y int) bool {
		if y < 0 || y >= height || x < 0 || x >= len(grid[y]) {
			return false
		}
		ch := grid[y][x]
		return ch != leveldata.GlyphSolid && ch != leveldata.GlyphPlatform && ch != leveldata.GlyphSpike
	}

	types := DecorationsFor(biome)
	var surface, floating []DecorationType
	for _, t := range types {
		if t.Floating() {
			floating = append(floating, t)
		} else {
			surface = append(surface, t)
		}
	}
	density := densityFor(biome)

	var out []Decoration

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if !isSolid(x, y) {
				continue
			}
			if isOpen(x, y-1) && rng.Float64() < density.surface && len(surface) > 0 {
				typ := surface[rng.IntN(len(surface))]
				pos := gamemath.Vec2{
					X: float64(x)*tileSize + tileSize*0.5,
					Y: float64(y)*tileSize - tileSize*0.1,
				}
				out = append(out, newDecoration(pos, typ, uint8(rng.IntN(4)), 0.7+rng.Float64()*0.6, rng.Float64()))
			}
			if isOpen(x-1, y) && rng.Float64() < density.surface*0.6 && len(surface) > 0 {
				typ := surface[rng.IntN(len(surface))]
				pos := gamemath.Vec2{
					X: float64(x)*tileSize - tileSize*0.1,
					Y: float64(y)*tileSize + tileSize*0.5,
				}
				out = append(out, newDecoration(pos, typ, uint8(rng.IntN(4)), 0.6+rng.Float64()*0.5, rng.Float64()))
			}
			if isOpen(x+1, y) && rng.Float64() < density.surface*0.6 && len(surface) > 0 {
				typ := surface[rng.IntN(len(surface))]
				pos := gamemath.Vec2{
					X: float64(x+1)*tileSize + tileSize*0.1,
					Y: float64(y)*tileSize + tileSize*0.5,
				}
				out = append(out, newDecoration(pos, typ, uint8(rng.IntN(4)), 0.6+rng.Float64()*0.5, rng.Float64()))
			}
		}
	}

	for y := 2; y < height-2; y++ {
		for x := 2; x < width-2; x++ {
			if !isOpen(x, y) {
				continue
			}
			if rng.Float64() < density.floating && len(floating) > 0 {
				typ := floating[rng.IntN(len(floating))]
				pos := gamemath.Vec2{
					X: float64(x)*tileSize + rng.Float64()*tileSize,
					Y: float64(y)*tileSize + rng.Float64()*tileSize,
				}
				out = append(out, newDecoration(pos, typ, uint8(rng.IntN(4)), 0.5+rng.Float64()*0.8, rng.Float64()))
			}
		}
	}

	return out
}
