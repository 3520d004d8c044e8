package procgen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen/validator"
	"github.com/automoto/octoplat/shared/leveldata"
)

// boxSegment is a 10x10 walled room with an open interior, the smallest
// shape every layout can link and every move set can cross.
func boxSegment(name, archetype string, tier int) *leveldata.Segment {
	rows := []string{"##########"}
	for i := 0; i < 8; i++ {
		rows = append(rows, "#        #")
	}
	rows = append(rows, "##########")
	return &leveldata.Segment{
		Name:      name,
		Biome:     "ocean_depths",
		Archetype: archetype,
		Tier:      tier,
		Rows:      rows,
	}
}

func testPool() *SegmentPool {
	pool := NewSegmentPool()
	pool.Add(OceanDepths, boxSegment("room_a", "gauntlet", 1))
	pool.Add(OceanDepths, boxSegment("room_b", "maze", 1))
	pool.Add(OceanDepths, boxSegment("room_c", "vertical", 1))
	pool.Add(OceanDepths, boxSegment("room_d", "arena", 1))
	return pool
}

func TestGenerateLevelEndToEnd(t *testing.T) {
	m := NewManager()
	m.SetPool(testPool())

	lvl, err := m.GenerateLevel(OceanDepths, config.PresetStandard, 0, 42)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if !lvl.Validation.Completable {
		t.Error("generated level should be completable")
	}
	if got := strings.Count(lvl.MapData, "P"); got != 1 {
		t.Errorf("spawn count = %d, want 1", got)
	}
	if got := strings.Count(lvl.MapData, ">"); got != 1 {
		t.Errorf("exit count = %d, want 1", got)
	}
	if len(lvl.SegmentNames) != 2 {
		t.Errorf("segment names = %v, want 2 entries", lvl.SegmentNames)
	}
	if !strings.HasPrefix(lvl.Name, "Ocean Depths Standard #") {
		t.Errorf("level name = %q", lvl.Name)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		t.Errorf("dimensions = %dx%d", lvl.Width, lvl.Height)
	}
}

func TestGenerateLevelDeterministic(t *testing.T) {
	runOnce := func() string {
		m := NewManager()
		m.SetPool(testPool())
		lvl, err := m.GenerateLevel(OceanDepths, config.PresetStandard, 3, 1234)
		if err != nil {
			t.Fatalf("generation failed: %v", err)
		}
		return lvl.MapData
	}
	if runOnce() != runOnce() {
		t.Error("same seed must reproduce the same level")
	}
}

func TestGenerateLevelWithoutPool(t *testing.T) {
	m := NewManager()
	_, err := m.GenerateLevel(OceanDepths, config.PresetStandard, 0, 1)
	if !errors.Is(err, &Error{Kind: ErrPoolNotLoaded}) {
		t.Errorf("err = %v, want pool-not-loaded", err)
	}
}

func TestGenerateLevelUnknownBiomeBubbles(t *testing.T) {
	m := NewManager()
	m.SetPool(testPool())

	// The pool only carries ocean segments; an abyss request is a
	// structural failure and must not consume the retry budget.
	_, err := m.GenerateLevel(Abyss, config.PresetStandard, 0, 9)
	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Kind != ErrNoLevelsForBiome {
		t.Fatalf("err = %v, want no-levels-for-biome", err)
	}
}

func TestGenerateLevelRetriesExhausted(t *testing.T) {
	// A walk-only validator rejects every candidate, so all the attempts
	// burn down to the exhaustion error.
	caps := validator.DefaultCaps()
	caps.Moves = validator.NewMoveSet(validator.MoveWalk)

	m := NewManager().WithValidator(validator.New().WithCaps(caps))
	m.SetPool(testPool())

	_, err := m.GenerateLevel(OceanDepths, config.PresetStandard, 0, 9)
	var genErr *Error
	if !errors.As(err, &genErr) || genErr.Kind != ErrRetriesExhausted {
		t.Fatalf("err = %v, want retries-exhausted", err)
	}
	if genErr.Attempts != maxGenerationRetries {
		t.Errorf("attempts = %d, want %d", genErr.Attempts, maxGenerationRetries)
	}
}

func TestGenerateArchetypeLevelBossPrefersArena(t *testing.T) {
	m := NewManager()
	m.SetPool(testPool())
	m.InitSequencer(55)

	lvl, err := m.GenerateArchetypeLevel(OceanDepths, config.PresetStandard, 3, true, 55)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if len(lvl.SegmentNames) != 1 || lvl.SegmentNames[0] != "room_d" {
		t.Errorf("boss level used %v, want the arena segment", lvl.SegmentNames)
	}
	if hist := m.sequencer.History(); len(hist) != 1 || hist[0] != ArchetypeArena {
		t.Errorf("sequencer history = %v, want [arena]", hist)
	}
}

func TestSegmentCountFor(t *testing.T) {
	cases := []struct {
		preset config.DifficultyPreset
		index  int
		want   int
	}{
		{config.PresetCasual, 0, 2},
		{config.PresetCasual, 6, 3},
		{config.PresetCasual, 100, 3},
		{config.PresetStandard, 0, 2},
		{config.PresetStandard, 4, 3},
		{config.PresetStandard, 8, 4},
		{config.PresetStandard, 100, 4},
		{config.PresetChallenge, 0, 3},
		{config.PresetChallenge, 8, 5},
		{config.PresetChallenge, 100, 5},
	}
	for _, c := range cases {
		if got := SegmentCountFor(c.preset, c.index); got != c.want {
			t.Errorf("SegmentCountFor(%s, %d) = %d, want %d", c.preset, c.index, got, c.want)
		}
	}

	// Counts never shrink as a run advances.
	for _, preset := range []config.DifficultyPreset{config.PresetCasual, config.PresetStandard, config.PresetChallenge} {
		prev := 0
		for i := 0; i < 40; i++ {
			got := SegmentCountFor(preset, i)
			if got < prev {
				t.Fatalf("%s segment count shrank at level %d", preset, i)
			}
			prev = got
		}
	}
}

func TestResolveSlotsExtremes(t *testing.T) {
	m := NewManager()

	always := DifficultyParams{CollectibleChance: 1, EnemyChance: 1, HazardChance: 1, GrappleChance: 1}
	got := m.resolveSlots("c e h a #", always, 7)
	if strings.ContainsAny(got, "ceha") {
		t.Errorf("slots left unresolved: %q", got)
	}
	if !strings.Contains(got, "$") || !strings.Contains(got, "^") || !strings.Contains(got, "?") {
		t.Errorf("expected gem, spike and grapple point in %q", got)
	}
	// Pufferfish chance zero always yields crabs.
	if !strings.Contains(got, "C") {
		t.Errorf("expected a crab in %q", got)
	}
	if !strings.Contains(got, "#") {
		t.Errorf("solid tiles must pass through, got %q", got)
	}

	never := DifficultyParams{}
	got = m.resolveSlots("ceha#", never, 7)
	if got != "    #" {
		t.Errorf("zero chances should empty every slot, got %q", got)
	}
}

func TestResolveSlotsPreservesNewlines(t *testing.T) {
	m := NewManager()
	in := "##\nc#\n##"
	got := m.resolveSlots(in, DifficultyParams{}, 1)
	if strings.Count(got, "\n") != 2 {
		t.Errorf("newlines lost: %q", got)
	}
	if len(got) != len(in) {
		t.Errorf("length changed: %q", got)
	}
}

func TestGenerateDecorationsDeterministic(t *testing.T) {
	tilemap := strings.Join([]string{
		"##########",
		"#        #",
		"#        #",
		"#   ##   #",
		"#        #",
		"##########",
	}, "\n")

	a := GenerateDecorations(tilemap, CoralReefs, 99, 32)
	b := GenerateDecorations(tilemap, CoralReefs, 99, 32)
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decoration %d differs between runs", i)
		}
	}
	for _, d := range a {
		if d.Scale < 0.5 || d.Scale > 1.5 {
			t.Errorf("scale %v out of range", d.Scale)
		}
		if d.Variant > 3 {
			t.Errorf("variant %d out of range", d.Variant)
		}
	}
}

func TestGenerateDecorationsEmptyMap(t *testing.T) {
	if got := GenerateDecorations("", OceanDepths, 1, 32); got != nil {
		t.Errorf("empty tilemap produced %d decorations", len(got))
	}
}

func TestExportLevelWritesHeaderAndBody(t *testing.T) {
	dir := t.TempDir()
	lvl := &GeneratedLevel{
		MapData:      "###\n#P>\n###",
		Name:         "Ocean Depths Standard #42",
		Seed:         42,
		Width:        3,
		Height:       3,
		SegmentNames: []string{"a", "b"},
	}
	if err := ExportLevel(dir, lvl, OceanDepths, config.PresetStandard, 7); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("export dir entries = %v, err = %v", entries, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "level_0007_ocean_depths_standard_") {
		t.Errorf("export filename = %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"# Seed: 42", "# Dimensions: 3x3", "# Segments (2): a -> b", "#P>"} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportSegmentsWritesFiles(t *testing.T) {
	dir := t.TempDir()
	segs := []*leveldata.Segment{
		boxSegment("room_a", "gauntlet", 1),
		boxSegment("room_b", "maze", 1),
	}
	if err := ExportSegments(dir, segs, OceanDepths, 42); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "segments"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("segment exports = %d, want 2", len(entries))
	}
}
