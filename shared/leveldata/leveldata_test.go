package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const sampleBody = `########
#P.....#
#...$..#
#..###.#
#.....>#
########`

func TestParseTileMapBasics(t *testing.T) {
	tm, err := ParseTileMap(sampleBody, DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseTileMap: %v", err)
	}
	if tm.Width != 8 || tm.Height != 6 {
		t.Fatalf("got %dx%d, want 8x6", tm.Width, tm.Height)
	}
	spawn, ok := tm.SpawnTile()
	if !ok || spawn != (TilePos{1, 1}) {
		t.Fatalf("spawn = %v, %v", spawn, ok)
	}
	exit, ok := tm.ExitTile()
	if !ok || exit != (TilePos{6, 4}) {
		t.Fatalf("exit = %v, %v", exit, ok)
	}
	// Marker cells become empty terrain.
	if got := tm.At(1, 1); got != TileEmpty {
		t.Fatalf("spawn cell = %v, want empty", got)
	}
	gems := tm.MarkerPositions(MarkerGem)
	if len(gems) != 1 {
		t.Fatalf("gems = %d, want 1", len(gems))
	}
	want := Vec2{X: 4.5 * DefaultTileSize, Y: 2.5 * DefaultTileSize}
	if gems[0] != want {
		t.Fatalf("gem at %v, want %v", gems[0], want)
	}
}

func TestParseTileMapPadsShortRows(t *testing.T) {
	tm, err := ParseTileMap("####\n#.\n####", DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseTileMap: %v", err)
	}
	if tm.At(2, 1) != TileSolid || tm.At(3, 1) != TileSolid {
		t.Fatal("short row should be wall-padded on the right")
	}
}

func TestParseTileMapUnknownGlyphsAreEmpty(t *testing.T) {
	tm, err := ParseTileMap("#z!#", DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseTileMap: %v", err)
	}
	if tm.At(1, 0) != TileEmpty || tm.At(2, 0) != TileEmpty {
		t.Fatal("unknown glyphs should parse as empty")
	}
}

func TestParseTileMapBounds(t *testing.T) {
	if _, err := ParseTileMap("", DefaultTileSize); !errors.Is(err, ErrEmptyTilemap) {
		t.Fatalf("empty body: got %v", err)
	}
	wide := strings.Repeat("#", MaxTilemapDimension+1)
	var tooLarge *TilemapTooLargeError
	if _, err := ParseTileMap(wide, DefaultTileSize); !errors.As(err, &tooLarge) {
		t.Fatalf("oversize body: got %v", err)
	}
}

func TestTileMapOutOfBoundsIsSolid(t *testing.T) {
	tm, _ := ParseTileMap("..\n..", DefaultTileSize)
	if !tm.At(-1, 0).IsSolid() || !tm.At(0, 5).IsSolid() {
		t.Fatal("out-of-bounds tiles must read as solid")
	}
}

func TestTileMapStringRoundTrip(t *testing.T) {
	body := "####\n#P.#\n#.>#\n####"
	tm, err := ParseTileMap(body, DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseTileMap: %v", err)
	}
	again, err := ParseTileMap(tm.String(), DefaultTileSize)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if again.String() != tm.String() {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", tm.String(), again.String())
	}
}

func TestSolidRectsNear(t *testing.T) {
	tm, _ := ParseTileMap("###\n#.#\n###", DefaultTileSize)
	center := Vec2{X: 1.5 * DefaultTileSize, Y: 1.5 * DefaultTileSize}
	rects := tm.SolidRectsNear(center, DefaultTileSize)
	if len(rects) != 8 {
		t.Fatalf("got %d rects, want 8 walls around the hole", len(rects))
	}
}

const sampleSegment = `name: kelp run
biome: kelp_forest
archetype: Gauntlet
tier: 2
mechanics: Jump, WallJump
flavor: ignored
---
####
#..
####`

func TestParseSegment(t *testing.T) {
	seg, err := ParseSegment("kelp_run", []byte(sampleSegment))
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	if seg.Name != "kelp run" || seg.Biome != "kelp_forest" || seg.Archetype != "Gauntlet" {
		t.Fatalf("header = %+v", seg)
	}
	if seg.Tier != 2 {
		t.Fatalf("tier = %d", seg.Tier)
	}
	if !seg.HasMechanic("walljump") || seg.HasMechanic("Grapple") {
		t.Fatalf("mechanics = %v", seg.Mechanics)
	}
	if seg.Width() != 4 || seg.Height() != 3 {
		t.Fatalf("size = %dx%d", seg.Width(), seg.Height())
	}
	if seg.Rows[1] != "#..#" {
		t.Fatalf("row not wall-padded: %q", seg.Rows[1])
	}
}

func TestParseSegmentErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no separator", "name: x\n####"},
		{"bad tier", "tier: 9\n---\n####"},
		{"malformed header", "just some text\n---\n####"},
		{"empty body", "name: x\n---\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var perr *ParseError
			if _, err := ParseSegment(tc.name, []byte(tc.data)); !errors.As(err, &perr) {
				t.Fatalf("got %v, want ParseError", err)
			}
		})
	}
}

func TestParseSegmentDefaults(t *testing.T) {
	seg, err := ParseSegment("fallback", []byte("biome: reef\n---\n##"))
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	if seg.Name != "fallback" || seg.Tier != 1 {
		t.Fatalf("defaults not applied: %+v", seg)
	}
}

func TestLoadSegments(t *testing.T) {
	fsys := fstest.MapFS{
		"segments/a.txt":     {Data: []byte("tier: 1\n---\n####")},
		"segments/bad.txt":   {Data: []byte("no separator")},
		"segments/notes.md":  {Data: []byte("skip me")},
		"segments/sub/b.txt": {Data: []byte("tier: 3\n---\n##\n##")},
	}
	segs, errs := LoadSegments(fsys, "segments")
	if len(segs) != 2 {
		t.Fatalf("loaded %d segments, want 2", len(segs))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (bad.txt)", len(errs))
	}
}
