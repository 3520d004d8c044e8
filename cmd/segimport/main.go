// segimport converts a Tiled TMX map into an octoplat segment file, so
// segments can be authored visually instead of in a text editor.
//
// The terrain layer maps to body glyphs: each tileset tile may declare a
// string property "glyph" (for example "=" or "^"); tiles without one
// become solid walls. Objects in any object group are placed by their
// Name, which must be a single marker glyph ("P", ">", "$", "C", ...).
//
// Usage:
//
//	segimport --in room.tmx --out assets/segments/room.txt \
//	    --archetype maze --tier 2 --mechanics grapple,combat
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/spf13/cobra"
)

var (
	flagIn        string
	flagOut       string
	flagName      string
	flagArchetype string
	flagTier      int
	flagMechanics string
	flagLayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "segimport",
	Short: "Convert a Tiled TMX map into a segment file",
	RunE:  runImport,
}

func init() {
	rootCmd.Flags().StringVar(&flagIn, "in", "", "Input TMX file (required)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output segment file (default: input name with .txt)")
	rootCmd.Flags().StringVar(&flagName, "name", "", "Segment name (default: input file stem)")
	rootCmd.Flags().StringVar(&flagArchetype, "archetype", "gauntlet", "Segment archetype")
	rootCmd.Flags().IntVar(&flagTier, "tier", 1, "Difficulty tier 1..5")
	rootCmd.Flags().StringVar(&flagMechanics, "mechanics", "", "Comma-separated mechanics list")
	rootCmd.Flags().StringVar(&flagLayer, "layer", "terrain", "Tile layer holding the segment body")
	_ = rootCmd.MarkFlagRequired("in")
}

func runImport(cmd *cobra.Command, args []string) error {
	tmx, err := tiled.LoadFile(flagIn)
	if err != nil {
		return fmt.Errorf("load TMX %s: %w", flagIn, err)
	}

	rows, err := bodyFromMap(tmx)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(flagIn), filepath.Ext(flagIn))
	name := flagName
	if name == "" {
		name = stem
	}
	out := flagOut
	if out == "" {
		out = stem + ".txt"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", name)
	fmt.Fprintf(&b, "archetype: %s\n", flagArchetype)
	fmt.Fprintf(&b, "tier: %d\n", flagTier)
	if flagMechanics != "" {
		fmt.Fprintf(&b, "mechanics: %s\n", flagMechanics)
	}
	b.WriteString("---\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")

	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("%s: %dx%d -> %s\n", name, len([]rune(rows[0])), len(rows), out)
	return nil
}

// bodyFromMap renders the terrain layer and marker objects into glyph rows.
func bodyFromMap(tmx *tiled.Map) ([]string, error) {
	grid := make([][]rune, tmx.Height)
	for y := range grid {
		grid[y] = make([]rune, tmx.Width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	var layer *tiled.Layer
	for _, l := range tmx.Layers {
		if l.Name == flagLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("no tile layer named %q in map", flagLayer)
	}

	for y := 0; y < tmx.Height; y++ {
		for x := 0; x < tmx.Width; x++ {
			tile := layer.Tiles[y*tmx.Width+x]
			if tile.IsNil() {
				continue
			}
			glyph := '#'
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if s := tilesetTile.Properties.GetString("glyph"); s != "" {
					glyph = []rune(s)[0]
				}
			}
			grid[y][x] = glyph
		}
	}

	tileW, tileH := float64(tmx.TileWidth), float64(tmx.TileHeight)
	for _, og := range tmx.ObjectGroups {
		for _, o := range og.Objects {
			name := strings.TrimSpace(o.Name)
			if len([]rune(name)) != 1 {
				return nil, fmt.Errorf("object %d: name %q is not a single marker glyph", o.ID, o.Name)
			}
			x, y := int(o.X/tileW), int(o.Y/tileH)
			if y < 0 || y >= tmx.Height || x < 0 || x >= tmx.Width {
				return nil, fmt.Errorf("object %q at (%d,%d) is outside the map", name, x, y)
			}
			grid[y][x] = []rune(name)[0]
		}
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows, nil
}
