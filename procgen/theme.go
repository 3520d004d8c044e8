package procgen

import (
	"image/color"

	"github.com/automoto/octoplat/shared/gamemath"
)

// GeometryStyle selects the platform silhouette the renderer draws for a
// biome.
type GeometryStyle int

const (
	// GeometryStandard draws plain rounded blocks.
	GeometryStandard GeometryStyle = iota
	// GeometryOrganic adds branching protrusions.
	GeometryOrganic
	// GeometryTropical adds frond shapes and sandy texture.
	GeometryTropical
	// GeometryBroken draws tilted wooden fragments.
	GeometryBroken
	// GeometryIcy draws crystal formations with frosted edges.
	GeometryIcy
	// GeometryJagged draws sharp volcanic edges.
	GeometryJagged
	// GeometryAncient draws column shapes and carved stone.
	GeometryAncient
	// GeometryCrystalline draws angular glowing facets.
	GeometryCrystalline
)

// Color is a normalized RGBA color with channels in 0..1. Theme math works
// on normalized channels so gradient and tint interpolation stays simple.
type Color struct {
	R, G, B, A float64
}

// RGBA converts to the 8-bit color the renderer consumes.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(gamemath.Clamp(c.R, 0, 1) * 255),
		G: uint8(gamemath.Clamp(c.G, 0, 1) * 255),
		B: uint8(gamemath.Clamp(c.B, 0, 1) * 255),
		A: uint8(gamemath.Clamp(c.A, 0, 1) * 255),
	}
}

// BiomeTheme holds the palette and rendering style for one biome.
type BiomeTheme struct {
	BgTop         Color
	BgBottom      Color
	SolidColor    Color
	PlatformColor Color
	HazardColor   Color
	AccentColor   Color
	ParticleColor Color
	Geometry      GeometryStyle

	// Glow is the bioluminescent tint, used only when HasGlow is set.
	Glow    Color
	HasGlow bool
}

// BgColorAt returns the background gradient color at a vertical ratio,
// 0 at the top of the screen and 1 at the bottom.
func (t *BiomeTheme) BgColorAt(yRatio float64) Color {
	y := gamemath.Clamp(yRatio, 0, 1)
	return Color{
		R: gamemath.Lerp(t.BgTop.R, t.BgBottom.R, y),
		G: gamemath.Lerp(t.BgTop.G, t.BgBottom.G, y),
		B: gamemath.Lerp(t.BgTop.B, t.BgBottom.B, y),
		A: 1,
	}
}

// SolidBorderColor is a darker solid color for block outlines.
func (t *BiomeTheme) SolidBorderColor() Color {
	return Color{R: t.SolidColor.R * 0.7, G: t.SolidColor.G * 0.7, B: t.SolidColor.B * 0.7, A: t.SolidColor.A}
}

// SolidHighlightColor is a lighter solid color for block top edges.
func (t *BiomeTheme) SolidHighlightColor() Color {
	return Color{
		R: min(t.SolidColor.R*1.3, 1),
		G: min(t.SolidColor.G*1.3, 1),
		B: min(t.SolidColor.B*1.3, 1),
		A: t.SolidColor.A,
	}
}

// PlatformBorderColor is a darker platform color for one-way outlines.
func (t *BiomeTheme) PlatformBorderColor() Color {
	return Color{R: t.PlatformColor.R * 0.8, G: t.PlatformColor.G * 0.8, B: t.PlatformColor.B * 0.8, A: t.PlatformColor.A}
}
