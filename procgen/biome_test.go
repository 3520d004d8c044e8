package procgen

import (
	"math"
	"testing"
)

func TestBiomeProgressionOrder(t *testing.T) {
	seen := map[BiomeID]bool{OceanDepths: true}
	b := OceanDepths
	for {
		next, ok := b.Next()
		if !ok {
			break
		}
		if seen[next] {
			t.Fatalf("biome %s visited twice", next)
		}
		seen[next] = true
		b = next
	}
	if b != Abyss {
		t.Errorf("progression ends at %s, want abyss", b)
	}
	if len(seen) != len(AllBiomes()) {
		t.Errorf("progression visits %d biomes, want %d", len(seen), len(AllBiomes()))
	}
}

func TestParseBiomeSpellings(t *testing.T) {
	cases := []struct {
		in   string
		want BiomeID
	}{
		{"ocean_depths", OceanDepths},
		{"OCEAN", OceanDepths},
		{"  ocean-depths ", OceanDepths},
		{"coral", CoralReefs},
		{"shore", TropicalShore},
		{"ship", Shipwreck},
		{"ice", ArcticWaters},
		{"vents", VolcanicVents},
		{"ancient", SunkenRuins},
		{"the_abyss", Abyss},
	}
	for _, c := range cases {
		got, ok := ParseBiome(c.in)
		if !ok || got != c.want {
			t.Errorf("ParseBiome(%q) = %v, %v; want %v, true", c.in, got, ok, c.want)
		}
	}
	if _, ok := ParseBiome("atlantis"); ok {
		t.Error("ParseBiome should reject unknown names")
	}
}

func TestProgressionAdvancesBiomes(t *testing.T) {
	p := NewProgression()
	if p.CurrentID() != OceanDepths {
		t.Fatalf("fresh run starts in %s, want ocean_depths", p.CurrentID())
	}
	if p.IsBossLevel() {
		t.Error("first level should not be a boss level")
	}

	// Ocean Depths holds four levels; the fourth is the boss.
	for i := 0; i < 3; i++ {
		if p.AdvanceLevel() {
			t.Fatalf("advanced biome after %d levels, want 4", i+1)
		}
	}
	if !p.IsBossLevel() {
		t.Error("last level of the biome should be a boss level")
	}
	if !p.AdvanceLevel() {
		t.Error("completing the boss level should advance the biome")
	}
	if p.CurrentID() != CoralReefs {
		t.Errorf("advanced to %s, want coral_reefs", p.CurrentID())
	}
	if p.TotalLevels() != 4 {
		t.Errorf("total levels = %d, want 4", p.TotalLevels())
	}
}

func TestProgressionAbyssLoops(t *testing.T) {
	p := NewProgression()
	// Walk the whole run into the Abyss.
	for p.CurrentID() != Abyss {
		p.AdvanceLevel()
	}
	levels := Abyss.Definition().LevelsInBiome
	for i := 0; i < levels; i++ {
		if p.AdvanceLevel() {
			t.Fatal("the final biome must never advance")
		}
	}
	if p.CurrentID() != Abyss {
		t.Errorf("final biome left the abyss, now in %s", p.CurrentID())
	}
	if p.BiomeProgress() != 0 {
		t.Errorf("abyss counter should reset for endless play, progress = %v", p.BiomeProgress())
	}
}

func TestProgressionLockedBiome(t *testing.T) {
	p := NewProgression()
	p.Lock(Shipwreck)
	if p.CurrentID() != Shipwreck {
		t.Fatalf("lock moved run to %s, want shipwreck", p.CurrentID())
	}
	for i := 0; i < 10; i++ {
		if p.AdvanceLevel() {
			t.Fatal("a locked run must never change biome")
		}
	}
	if p.CurrentID() != Shipwreck {
		t.Errorf("locked run drifted to %s", p.CurrentID())
	}
	if p.TotalLevels() != 10 {
		t.Errorf("total levels = %d, want 10", p.TotalLevels())
	}

	p.FullReset()
	if _, locked := p.Locked(); locked {
		t.Error("full reset should clear the biome lock")
	}
	if p.CurrentID() != OceanDepths {
		t.Errorf("full reset left run in %s", p.CurrentID())
	}
}

func TestRunProgressMonotonic(t *testing.T) {
	p := NewProgression()
	prev := p.RunProgress()
	if prev != 0 {
		t.Errorf("fresh run progress = %v, want 0", prev)
	}
	// Across the first seven biomes progress strictly increases.
	for p.CurrentID() != Abyss {
		p.AdvanceLevel()
		got := p.RunProgress()
		if got < prev {
			t.Fatalf("run progress went backwards: %v -> %v in %s", prev, got, p.CurrentID())
		}
		prev = got
	}
	if prev < 0.87 || prev > 1.0 {
		t.Errorf("progress entering the abyss = %v, want about 0.875", prev)
	}
}

func TestThemeHelpers(t *testing.T) {
	theme := &OceanDepths.Definition().Theme

	top := theme.BgColorAt(0)
	if top != (Color{theme.BgTop.R, theme.BgTop.G, theme.BgTop.B, 1}) {
		t.Errorf("BgColorAt(0) = %+v, want top color", top)
	}
	bottom := theme.BgColorAt(1)
	if math.Abs(bottom.R-theme.BgBottom.R) > 1e-9 {
		t.Errorf("BgColorAt(1).R = %v, want %v", bottom.R, theme.BgBottom.R)
	}

	border := theme.SolidBorderColor()
	if border.R >= theme.SolidColor.R {
		t.Error("border color should be darker than the solid color")
	}
	highlight := theme.SolidHighlightColor()
	if highlight.R <= theme.SolidColor.R || highlight.R > 1 {
		t.Errorf("highlight R = %v, want lighter than solid and capped at 1", highlight.R)
	}
}

func TestThemeGlowPresence(t *testing.T) {
	if OceanDepths.Definition().Theme.HasGlow {
		t.Error("ocean depths should not glow")
	}
	if !Abyss.Definition().Theme.HasGlow {
		t.Error("the abyss should glow")
	}
}

func TestBiomeRosterWeights(t *testing.T) {
	for _, id := range AllBiomes() {
		def := id.Definition()
		var enemyTotal, hazardTotal float64
		for _, e := range def.Enemies {
			enemyTotal += e.Weight
		}
		for _, h := range def.Hazards {
			hazardTotal += h.Weight
		}
		if math.Abs(enemyTotal-1) > 1e-9 {
			t.Errorf("%s enemy weights sum to %v, want 1", id, enemyTotal)
		}
		if math.Abs(hazardTotal-1) > 1e-9 {
			t.Errorf("%s hazard weights sum to %v, want 1", id, hazardTotal)
		}
		if def.LevelsInBiome <= 0 {
			t.Errorf("%s has no levels", id)
		}
	}
}
