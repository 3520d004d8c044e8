package procgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/leveldata"
)

// ExportLevel writes a generated level to dir as a text file with a
// metadata header, for inspection outside the game.
func ExportLevel(dir string, lvl *GeneratedLevel, biome BiomeID, preset config.DifficultyPreset, levelIndex int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	def := biome.Definition()
	filename := filepath.Join(dir, fmt.Sprintf("level_%04d_%s_%s_%s_seed%d.txt",
		levelIndex,
		fileToken(def.Name),
		strings.ToLower(preset.String()),
		lvl.Layout.String(),
		lvl.Seed%100000,
	))

	var b strings.Builder
	b.WriteString("# Debug Level Export\n")
	b.WriteString("# ===================\n")
	fmt.Fprintf(&b, "# Biome: %s (%s)\n", def.Name, biome)
	fmt.Fprintf(&b, "# Difficulty: %s\n", preset)
	fmt.Fprintf(&b, "# Layout: %s\n", lvl.Layout)
	fmt.Fprintf(&b, "# Level Index: %d\n", levelIndex)
	fmt.Fprintf(&b, "# Seed: %d\n", lvl.Seed)
	fmt.Fprintf(&b, "# Dimensions: %dx%d\n", lvl.Width, lvl.Height)
	fmt.Fprintf(&b, "# Segments (%d): %s\n", len(lvl.SegmentNames), strings.Join(lvl.SegmentNames, " -> "))
	b.WriteString("#\n")
	b.WriteString("# Legend:\n")
	b.WriteString("#   # = solid wall\n")
	b.WriteString("#   = = one-way platform\n")
	b.WriteString("#   P = player spawn\n")
	b.WriteString("#   > = exit\n")
	b.WriteString("#   $ = gem\n")
	b.WriteString("#   ^ = spike\n")
	b.WriteString("#   ? = grapple point\n")
	b.WriteString("#   % = checkpoint\n")
	b.WriteString("#   (space) = empty/air\n")
	b.WriteString("#\n")
	b.WriteString("# Tilemap:\n")
	b.WriteString("# --------\n\n")
	b.WriteString(lvl.MapData)

	if err := os.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write level export: %w", err)
	}
	return nil
}

// ExportSegments writes the pre-link segments to dir/segments so a linked
// level can be compared against its inputs.
func ExportSegments(dir string, segs []*leveldata.Segment, biome BiomeID, seed uint64) error {
	segDir := filepath.Join(dir, "segments")
	if err := os.MkdirAll(segDir, 0o755); err != nil {
		return fmt.Errorf("create segments dir: %w", err)
	}

	def := biome.Definition()
	for idx, seg := range segs {
		filename := filepath.Join(segDir, fmt.Sprintf("seg_%02d_%s_%s_%d.txt",
			idx, fileToken(def.Name), fileToken(seg.Name), seed%10000))

		var b strings.Builder
		fmt.Fprintf(&b, "# Segment: %s\n", seg.Name)
		fmt.Fprintf(&b, "# Index: %d\n", idx)
		fmt.Fprintf(&b, "# Biome: %s\n", def.Name)
		b.WriteString("#\n\n")
		b.WriteString(seg.Body())

		if err := os.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("write segment export: %w", err)
		}
	}
	return nil
}

// fileToken flattens a display name into a filename-safe token.
func fileToken(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "/", "_")
}
