package procgen

import (
	"math"
	"testing"

	"github.com/automoto/octoplat/config"
)

func TestForProgressTierWindows(t *testing.T) {
	cases := []struct {
		progress float64
		min, max int
	}{
		{0.0, 1, 1},
		{0.19, 1, 1},
		{0.2, 1, 2},
		{0.4, 2, 3},
		{0.6, 2, 4},
		{0.8, 3, 5},
		{1.0, 3, 5},
	}
	for _, c := range cases {
		d := ForProgress(c.progress, config.PresetChallenge)
		if d.MinTier != c.min || d.MaxTier != c.max {
			t.Errorf("ForProgress(%v) tiers = %d-%d, want %d-%d",
				c.progress, d.MinTier, d.MaxTier, c.min, c.max)
		}
	}
}

func TestForProgressPresetTierCaps(t *testing.T) {
	if d := ForProgress(1, config.PresetCasual); d.MaxTier != 2 {
		t.Errorf("casual max tier = %d, want 2", d.MaxTier)
	}
	if d := ForProgress(1, config.PresetStandard); d.MaxTier != 4 {
		t.Errorf("standard max tier = %d, want 4", d.MaxTier)
	}
	if d := ForProgress(1, config.PresetChallenge); d.MaxTier != 5 {
		t.Errorf("challenge max tier = %d, want 5", d.MaxTier)
	}
}

func TestForProgressChanceEndpoints(t *testing.T) {
	start := ForProgress(0, config.PresetStandard)
	end := ForProgress(1, config.PresetStandard)

	if math.Abs(start.EnemyChance-0.3) > 1e-9 || math.Abs(end.EnemyChance-0.6) > 1e-9 {
		t.Errorf("standard enemy chance = %v..%v, want 0.3..0.6", start.EnemyChance, end.EnemyChance)
	}
	if math.Abs(start.HazardChance-0.3) > 1e-9 || math.Abs(end.HazardChance-0.5) > 1e-9 {
		t.Errorf("standard hazard chance = %v..%v, want 0.3..0.5", start.HazardChance, end.HazardChance)
	}
	if math.Abs(start.PufferfishChance-0.1) > 1e-9 || math.Abs(end.PufferfishChance-0.35) > 1e-9 {
		t.Errorf("standard pufferfish chance = %v..%v, want 0.1..0.35", start.PufferfishChance, end.PufferfishChance)
	}
	// Grapple anchors and collectibles thin out over a run.
	if end.GrappleChance >= start.GrappleChance {
		t.Error("grapple chance should decrease with progress")
	}
	if end.CollectibleChance >= start.CollectibleChance {
		t.Error("collectible chance should decrease with progress")
	}
}

func TestForProgressClampsInput(t *testing.T) {
	low := ForProgress(-3, config.PresetStandard)
	if low.Progress != 0 {
		t.Errorf("progress clamped to %v, want 0", low.Progress)
	}
	high := ForProgress(7, config.PresetStandard)
	if high.Progress != 1 {
		t.Errorf("progress clamped to %v, want 1", high.Progress)
	}
}

func TestForProgressMonotonicEnemyChance(t *testing.T) {
	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.1 {
		d := ForProgress(p, config.PresetChallenge)
		if d.EnemyChance < prev {
			t.Fatalf("enemy chance dropped at progress %v", p)
		}
		prev = d.EnemyChance
	}
}
