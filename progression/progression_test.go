package progression

import (
	"testing"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/shared/gamemath"
)

func TestRecordDeathDecrementsLives(t *testing.T) {
	m := NewManager(2)

	if m.RecordDeath() {
		t.Error("game over with a life remaining")
	}
	if m.Lives.Current != 1 {
		t.Errorf("lives = %d, want 1", m.Lives.Current)
	}
	if !m.RecordDeath() {
		t.Error("no game over at zero lives")
	}
	if m.Lives.Current != 0 {
		t.Errorf("lives = %d, want 0", m.Lives.Current)
	}

	// A death at zero must not underflow.
	m.RecordDeath()
	if m.Lives.Current != 0 {
		t.Errorf("lives = %d after death at zero, want 0", m.Lives.Current)
	}
	if m.Lives.SessionDeaths != 3 {
		t.Errorf("session deaths = %d, want 3", m.Lives.SessionDeaths)
	}
}

func TestInfiniteLivesNeverDecrement(t *testing.T) {
	m := NewManager(5)
	m.Lives.SetInfinite()

	for i := 0; i < 10; i++ {
		if m.RecordDeath() {
			t.Fatal("game over with infinite lives")
		}
	}
	if m.Lives.Current != InfiniteLives {
		t.Errorf("lives = %d, want infinite", m.Lives.Current)
	}
}

func TestAwardLifeBounded(t *testing.T) {
	l := NewLivesManager(config.Run.MaxLives - 1)

	if !l.AwardLife(config.Run.MaxLives) {
		t.Error("life below max not awarded")
	}
	if l.AwardLife(config.Run.MaxLives) {
		t.Error("life awarded at max")
	}
	if l.Current != config.Run.MaxLives {
		t.Errorf("lives = %d, want %d", l.Current, config.Run.MaxLives)
	}
}

func TestGemMilestone(t *testing.T) {
	m := NewManager(3)
	m.StartRun(3, 0, false)

	if m.CheckGemMilestone(49, config.Run.MaxLives) {
		t.Error("milestone fired below threshold")
	}
	if !m.CheckGemMilestone(50, config.Run.MaxLives) {
		t.Error("milestone did not fire at threshold")
	}
	if m.Lives.Current != 4 {
		t.Errorf("lives = %d after milestone, want 4", m.Lives.Current)
	}
	if m.Lives.NextLifeGems != 100 {
		t.Errorf("next milestone = %d, want 100", m.Lives.NextLifeGems)
	}
	if m.CheckGemMilestone(60, config.Run.MaxLives) {
		t.Error("milestone fired again before the next threshold")
	}
}

func TestRunLifecycle(t *testing.T) {
	m := NewManager(5)
	if m.InRun() {
		t.Fatal("run active before start")
	}

	m.StartRun(5, 42, true)
	if !m.InRun() {
		t.Fatal("run not active after start")
	}

	m.UpdateRunTime(1.5)
	m.RecordDeath()
	m.CompleteLevel(7)
	m.CompleteLevel(3)

	stats := m.Stats()
	if stats.LevelsCompleted != 2 || stats.TotalGems != 10 || stats.RunDeaths != 1 {
		t.Errorf("stats = %+v, want 2 levels, 10 gems, 1 death", stats)
	}
	if stats.RunTime != 1.5 {
		t.Errorf("run time = %.2f, want 1.5", stats.RunTime)
	}
	if stats.CurrentLives != 4 {
		t.Errorf("lives = %d, want 4", stats.CurrentLives)
	}

	// Ending the run deactivates it but keeps the stats readable for
	// the game-over screen.
	m.EndRun()
	if m.InRun() {
		t.Error("run still active after end")
	}
	if m.Stats().LevelsCompleted != 2 {
		t.Error("stats lost after ending the run")
	}
}

func TestRunTimeOnlyTicksWhileActive(t *testing.T) {
	m := NewManager(5)
	m.UpdateRunTime(2)
	if m.Run.RunTime != 0 {
		t.Errorf("run time = %.2f outside a run, want 0", m.Run.RunTime)
	}
}

func TestCompleteLevelAdvancesBiome(t *testing.T) {
	m := NewManager(5)
	m.StartRun(5, 0, false)

	levels := procgen.OceanDepths.Definition().LevelsInBiome
	for i := 0; i < levels-1; i++ {
		if m.CompleteLevel(0) {
			t.Fatalf("biome advanced after %d levels, want %d", i+1, levels)
		}
	}
	if !m.CompleteLevel(0) {
		t.Errorf("biome did not advance after %d levels", levels)
	}
	if m.Run.Biomes.CurrentID() == procgen.OceanDepths {
		t.Error("still in the first biome after advancing")
	}
}

func TestBiomeChallengeStaysLocked(t *testing.T) {
	m := NewManager(5)
	m.StartBiomeChallenge(procgen.Shipwreck, config.PresetChallenge, 7, true, 5)

	if !m.InRun() {
		t.Fatal("challenge run not active")
	}
	levels := procgen.Shipwreck.Definition().LevelsInBiome
	for i := 0; i < levels*2; i++ {
		if m.CompleteLevel(0) {
			t.Fatal("locked run advanced biome")
		}
	}
	if m.Run.Biomes.CurrentID() != procgen.Shipwreck {
		t.Errorf("biome = %v, want Shipwreck", m.Run.Biomes.CurrentID())
	}
}

func TestCaptureSeed(t *testing.T) {
	r := NewRun()
	r.CaptureSeed(99)
	if !r.Seeded || r.StartSeed != 99 {
		t.Errorf("seed = (%d, %v), want captured 99", r.StartSeed, r.Seeded)
	}
	r.CaptureSeed(123)
	if r.StartSeed != 99 {
		t.Errorf("seed = %d, overwritten by a later capture", r.StartSeed)
	}
}

func TestSegmentCountByPresetAndLength(t *testing.T) {
	cases := []struct {
		preset config.DifficultyPreset
		level  int
		want   int
	}{
		{config.PresetCasual, 0, 2},
		{config.PresetCasual, 5, 3},
		{config.PresetStandard, 0, 2},
		{config.PresetStandard, 5, 3},
		{config.PresetStandard, 10, 4},
		{config.PresetChallenge, 0, 3},
		{config.PresetChallenge, 3, 4},
		{config.PresetChallenge, 8, 5},
	}
	for _, tc := range cases {
		r := NewRun()
		r.Preset = tc.preset
		r.LevelCount = tc.level
		if got := r.SegmentCount(); got != tc.want {
			t.Errorf("SegmentCount(%v, level %d) = %d, want %d", tc.preset, tc.level, got, tc.want)
		}
	}
}

func TestSegmentCountMonotonic(t *testing.T) {
	for _, preset := range []config.DifficultyPreset{config.PresetCasual, config.PresetStandard, config.PresetChallenge} {
		r := NewRun()
		r.Preset = preset
		prev := 0
		for lvl := 0; lvl < 20; lvl++ {
			r.LevelCount = lvl
			n := r.SegmentCount()
			if n < prev {
				t.Errorf("%v: segment count dropped from %d to %d at level %d", preset, prev, n, lvl)
			}
			prev = n
		}
	}
}

func TestDeathStateCycle(t *testing.T) {
	var d DeathState
	if d.Update(0.1) {
		t.Error("respawn signalled while alive")
	}

	d.Trigger(gamemath.Vec2{X: 50, Y: 60}, 0.5)
	if !d.Dead || !d.HasPosition {
		t.Fatal("death not recorded")
	}

	if d.Update(0.2) {
		t.Error("respawn signalled mid animation")
	}
	if got := d.AnimationProgress(0.5); got < 0.39 || got > 0.41 {
		t.Errorf("progress = %.2f, want 0.4", got)
	}
	if !d.Update(0.4) {
		t.Error("respawn not signalled after the animation")
	}

	d.Respawn()
	if d.Dead || d.HasPosition {
		t.Error("death state not cleared by respawn")
	}
}
