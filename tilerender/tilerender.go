// Package tilerender draws tilemap terrain as flat shapes. Levels are
// generated, not hand-skinned, so everything renders from the biome
// palette instead of sprite sheets.
package tilerender

import (
	"image/color"

	"github.com/automoto/octoplat/level"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bgBands is the number of horizontal gradient strips in the backdrop.
const bgBands = 24

// DrawBackground fills the screen with the biome's vertical gradient.
func DrawBackground(screen *ebiten.Image, theme *procgen.BiomeTheme) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	bandH := h / bgBands

	for i := 0; i < bgBands; i++ {
		ratio := float64(i) / float64(bgBands-1)
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, w, bandH+1,
			theme.BgColorAt(ratio).RGBA(), false)
	}
}

// DrawTiles renders the static terrain with the camera offset applied.
// Destroyed breakable blocks are skipped.
func DrawTiles(screen *ebiten.Image, tm *leveldata.TileMap, env *level.Environment, theme *procgen.BiomeTheme, camX, camY float64) {
	size := tm.TileSize

	// Cull to the visible tile window
	minX := int((camX) / size)
	minY := int((camY) / size)
	maxX := int((camX+float64(screen.Bounds().Dx()))/size) + 1
	maxY := int((camY+float64(screen.Bounds().Dy()))/size) + 1
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, tm.Width)
	maxY = min(maxY, tm.Height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			sx := float32(float64(x)*size - camX)
			sy := float32(float64(y)*size - camY)
			s := float32(size)

			switch tm.Tiles[y][x] {
			case leveldata.TileSolid:
				vector.DrawFilledRect(screen, sx, sy, s, s, theme.SolidColor.RGBA(), false)
				vector.DrawFilledRect(screen, sx, sy, s, 3, theme.SolidHighlightColor().RGBA(), false)
				vector.StrokeRect(screen, sx, sy, s, s, 1, theme.SolidBorderColor().RGBA(), false)

			case leveldata.TilePlatform:
				vector.DrawFilledRect(screen, sx, sy, s, s/4, theme.PlatformColor.RGBA(), false)
				vector.StrokeRect(screen, sx, sy, s, s/4, 1, theme.PlatformBorderColor().RGBA(), false)

			case leveldata.TileSpike:
				drawSpike(screen, sx, sy, s, theme)

			case leveldata.TileBouncePad:
				vector.DrawFilledRect(screen, sx, sy+s*0.6, s, s*0.4, theme.AccentColor.RGBA(), false)
				vector.DrawFilledRect(screen, sx+s*0.15, sy+s*0.45, s*0.7, s*0.15, theme.SolidHighlightColor().RGBA(), false)

			case leveldata.TileBreakable:
				if env != nil && env.DestroyedBlocks[leveldata.TilePos{X: x, Y: y}] {
					continue
				}
				vector.DrawFilledRect(screen, sx, sy, s, s, theme.SolidColor.RGBA(), false)
				// Crack lines distinguish breakables from plain solids
				vector.StrokeLine(screen, sx+s*0.2, sy+s*0.3, sx+s*0.6, sy+s*0.7, 1, theme.SolidBorderColor().RGBA(), false)
				vector.StrokeLine(screen, sx+s*0.7, sy+s*0.2, sx+s*0.4, sy+s*0.55, 1, theme.SolidBorderColor().RGBA(), false)
				vector.StrokeRect(screen, sx, sy, s, s, 1, theme.SolidBorderColor().RGBA(), false)

			case leveldata.TileWater:
				clr := theme.AccentColor
				clr.A = 0.35
				vector.DrawFilledRect(screen, sx, sy, s, s, clr.RGBA(), false)
			}
		}
	}
}

// drawSpike draws one hazard triangle pointing up.
func drawSpike(screen *ebiten.Image, sx, sy, s float32, theme *procgen.BiomeTheme) {
	var path vector.Path
	path.MoveTo(sx, sy+s)
	path.LineTo(sx+s/2, sy+s*0.15)
	path.LineTo(sx+s, sy+s)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	clr := theme.HazardColor.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()
