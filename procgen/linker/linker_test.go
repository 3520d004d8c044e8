package linker

import (
	"strings"
	"testing"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen/validator"
	"github.com/automoto/octoplat/shared/leveldata"
)

// boxSegment builds a 10x10 walled segment with an empty interior and the
// given row 8 contents (the row just above the floor).
func boxSegment(name, floorRow string) *leveldata.Segment {
	rows := []string{"##########"}
	for i := 0; i < 7; i++ {
		rows = append(rows, "#        #")
	}
	rows = append(rows, floorRow, "##########")
	return &leveldata.Segment{Name: name, Biome: "ocean_depths", Tier: 1, Rows: rows}
}

func countGlyph(tilemap string, glyph rune) int {
	return strings.Count(tilemap, string(glyph))
}

func TestLinkLinearDimensionsAndMarkers(t *testing.T) {
	segA := boxSegment("a", "#P       #")
	segB := boxSegment("b", "#       >#")

	cfg := DefaultConfig()
	cfg.Seed = 42
	level := New(cfg).Link([]*leveldata.Segment{segA, segB})

	if !level.Success {
		t.Fatal("linking two valid segments should succeed")
	}
	if level.Width != 26 {
		t.Errorf("width = %d, want 26 (10 + 6 corridor + 10)", level.Width)
	}
	if level.Height != 20 {
		t.Errorf("height = %d, want 20 (padded to minimum playable height)", level.Height)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphSpawn); got != 1 {
		t.Errorf("spawn count = %d, want 1", got)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphExit); got != 1 {
		t.Errorf("exit count = %d, want 1", got)
	}

	lines := strings.Split(level.Tilemap, "\n")
	if len(lines) != level.Height {
		t.Fatalf("tilemap has %d rows, header says %d", len(lines), level.Height)
	}
	for i, line := range lines {
		if len([]rune(line)) != level.Width {
			t.Errorf("row %d has width %d, want %d", i, len([]rune(line)), level.Width)
		}
	}
	if want := []string{"a", "b"}; len(level.SegmentNames) != 2 || level.SegmentNames[0] != want[0] || level.SegmentNames[1] != want[1] {
		t.Errorf("segment names = %v, want %v", level.SegmentNames, want)
	}
}

func TestLinkedLevelCompletable(t *testing.T) {
	segA := boxSegment("a", "#P       #")
	segB := boxSegment("b", "#       >#")

	cfg := DefaultConfig()
	cfg.Seed = 42
	level := New(cfg).Link([]*leveldata.Segment{segA, segB})
	if !level.Success {
		t.Fatal("linking failed")
	}

	caps := validator.DefaultCaps()
	caps.Moves = validator.NewMoveSet(validator.MoveWalk, validator.MoveJump, validator.MoveFall)
	result := validator.New().WithCaps(caps).Validate(level.Tilemap)
	if !result.Completable {
		t.Fatalf("linked level not completable with walk/jump/fall: %s\n%s", result.Reason, level.Tilemap)
	}
}

func TestLinkDeterministic(t *testing.T) {
	make3 := func() []*leveldata.Segment {
		return []*leveldata.Segment{
			boxSegment("a", "#P       #"),
			boxSegment("b", "#        #"),
			boxSegment("c", "#       >#"),
		}
	}

	cfg := DefaultConfig()
	cfg.Seed = 1234

	first := New(cfg).Link(make3())
	second := New(cfg).Link(make3())

	if first.Tilemap != second.Tilemap {
		t.Error("same seed and segments should produce identical tilemaps")
	}

	// The input segments must come out untouched.
	segs := make3()
	New(cfg).Link(segs)
	if segs[1].Rows[8] != "#        #" {
		t.Error("linking modified an input segment")
	}
}

func TestLinkEmptyInputFails(t *testing.T) {
	level := New(DefaultConfig()).Link(nil)
	if level.Success {
		t.Error("empty segment list should fail")
	}
	if level.Tilemap != "" {
		t.Errorf("failed link should carry empty tilemap, got %q", level.Tilemap)
	}
}

func TestLinkUnparseableSegmentsFail(t *testing.T) {
	segs := []*leveldata.Segment{
		{Name: "empty", Biome: "ocean_depths", Tier: 1},
		{Name: "blank", Biome: "ocean_depths", Tier: 1, Rows: nil},
	}
	level := New(DefaultConfig()).Link(segs)
	if level.Success {
		t.Error("segments with no body should fail to link")
	}
}

func TestMarkerStripping(t *testing.T) {
	// Every segment carries both markers; the composite keeps the first
	// spawn and the last exit only.
	segs := []*leveldata.Segment{
		boxSegment("a", "#P      >#"),
		boxSegment("b", "#P      >#"),
		boxSegment("c", "#P      >#"),
	}
	level := New(DefaultConfig()).Link(segs)
	if !level.Success {
		t.Fatal("linking failed")
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphSpawn); got != 1 {
		t.Errorf("spawn count = %d, want 1", got)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphExit); got != 1 {
		t.Errorf("exit count = %d, want 1", got)
	}
}

func TestVerticalLayoutDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = LayoutVertical
	level := New(cfg).Link([]*leveldata.Segment{
		boxSegment("bottom", "#P       #"),
		boxSegment("top", "#       >#"),
	})

	if !level.Success {
		t.Fatal("vertical linking failed")
	}
	if level.Width != 10 {
		t.Errorf("width = %d, want 10", level.Width)
	}
	if level.Height != 45 {
		t.Errorf("height = %d, want 45 (20 + 5 corridor + 20)", level.Height)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphSpawn); got != 1 {
		t.Errorf("spawn count = %d, want 1", got)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphExit); got != 1 {
		t.Errorf("exit count = %d, want 1", got)
	}
}

func TestAlternatingLayoutDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = LayoutAlternating
	level := New(cfg).Link([]*leveldata.Segment{
		boxSegment("a", "#P       #"),
		boxSegment("b", "#        #"),
		boxSegment("c", "#       >#"),
	})

	if !level.Success {
		t.Fatal("alternating linking failed")
	}
	if level.Width != 26 {
		t.Errorf("width = %d, want 26", level.Width)
	}
	if level.Height != 45 {
		t.Errorf("height = %d, want 45", level.Height)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphSpawn); got != 1 {
		t.Errorf("spawn count = %d, want 1", got)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphExit); got != 1 {
		t.Errorf("exit count = %d, want 1", got)
	}
}

func TestGridLayoutDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = LayoutGrid
	level := New(cfg).Link([]*leveldata.Segment{
		boxSegment("a", "#P       #"),
		boxSegment("b", "#        #"),
		boxSegment("c", "#        #"),
		boxSegment("d", "#       >#"),
	})

	if !level.Success {
		t.Fatal("grid linking failed")
	}
	// 2x2 grid of (10+6)x(20+5) cells.
	if level.Width != 32 {
		t.Errorf("width = %d, want 32", level.Width)
	}
	if level.Height != 50 {
		t.Errorf("height = %d, want 50", level.Height)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphSpawn); got != 1 {
		t.Errorf("spawn count = %d, want 1", got)
	}
	if got := countGlyph(level.Tilemap, leveldata.GlyphExit); got != 1 {
		t.Errorf("exit count = %d, want 1", got)
	}
}

func TestSelectLayoutDeterministic(t *testing.T) {
	for idx := 0; idx < 30; idx++ {
		first := SelectLayout(idx, config.PresetStandard, 99)
		second := SelectLayout(idx, config.PresetStandard, 99)
		if first != second {
			t.Fatalf("level %d: layout selection not deterministic (%v vs %v)", idx, first, second)
		}
		switch first {
		case LayoutLinear, LayoutVertical, LayoutAlternating, LayoutGrid:
		default:
			t.Fatalf("level %d: unexpected layout %v", idx, first)
		}
	}
}

func TestSelectSegmentsFiltersAndVaries(t *testing.T) {
	body := []string{"####", "#  #", "####"}
	pool := []*leveldata.Segment{
		{Name: "g1", Biome: "ocean_depths", Archetype: "gauntlet", Tier: 1, Rows: body},
		{Name: "m2", Biome: "ocean_depths", Archetype: "maze", Tier: 2, Rows: body},
		{Name: "v3", Biome: "ocean_depths", Archetype: "vertical", Tier: 3, Rows: body},
		{Name: "k1", Biome: "kelp_forest", Archetype: "gauntlet", Tier: 1, Rows: body},
	}

	selected := SelectSegments(pool, "ocean_depths", 3, 1, 3, 7)
	if len(selected) != 3 {
		t.Fatalf("selected %d segments, want 3", len(selected))
	}
	seen := make(map[string]bool)
	for _, seg := range selected {
		if seg.Biome != "ocean_depths" {
			t.Errorf("segment %s has biome %s, want ocean_depths", seg.Name, seg.Biome)
		}
		if seen[seg.Archetype] {
			t.Errorf("archetype %s repeated despite alternatives", seg.Archetype)
		}
		seen[seg.Archetype] = true
	}

	if got := SelectSegments(pool, "abyss", 3, 1, 3, 7); got != nil {
		t.Errorf("unknown biome should select nothing, got %d segments", len(got))
	}

	again := SelectSegments(pool, "ocean_depths", 3, 1, 3, 7)
	for i := range selected {
		if selected[i].Name != again[i].Name {
			t.Errorf("selection not deterministic at index %d: %s vs %s", i, selected[i].Name, again[i].Name)
		}
	}
}

func TestTrimCropsToContent(t *testing.T) {
	tilemap := strings.Join([]string{
		"#######",
		"#######",
		"##P >##",
		"##===##",
		"#######",
		"#######",
	}, "\n")

	trimmed, width, height := Trim(tilemap, 1)
	if width != 5 || height != 4 {
		t.Errorf("trimmed to %dx%d, want 5x4", width, height)
	}
	for _, glyph := range []string{"P", ">", "==="} {
		if !strings.Contains(trimmed, glyph) {
			t.Errorf("trim dropped content %q", glyph)
		}
	}
}

func TestTrimAllWallsUnchanged(t *testing.T) {
	tilemap := "####\n####\n####"
	trimmed, width, height := Trim(tilemap, 1)
	if trimmed != tilemap || width != 4 || height != 3 {
		t.Errorf("all-wall map should come back unchanged, got %dx%d", width, height)
	}
}
