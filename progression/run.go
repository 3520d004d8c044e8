package progression

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen"
)

// Run holds the state of a single roguelite run. Active spans from
// StartRun through EndRun, including the game-over screen, so run stats
// record correctly across state transitions.
type Run struct {
	Active     bool
	LevelCount int
	TotalGems  int
	// StartSeed is the seed the run began with; Seeded is false when the
	// run started from a random seed.
	StartSeed uint64
	Seeded    bool
	RunTime   float64
	RunDeaths int
	Biomes    *procgen.Progression
	Preset    config.DifficultyPreset
}

func NewRun() *Run {
	return &Run{
		Biomes: procgen.NewProgression(),
		Preset: config.PresetStandard,
	}
}

// StartBiomeChallenge restarts the run locked to a single biome.
func (r *Run) StartBiomeChallenge(biome procgen.BiomeID, preset config.DifficultyPreset, seed uint64, seeded bool) {
	r.Active = true
	r.LevelCount = 0
	r.TotalGems = 0
	r.StartSeed, r.Seeded = seed, seeded
	r.RunTime = 0
	r.RunDeaths = 0
	r.Preset = preset
	r.Biomes.FullReset()
	r.Biomes.Lock(biome)
}

// RecordDeath counts a death against this run.
func (r *Run) RecordDeath() { r.RunDeaths++ }

// UpdateTime advances the run clock.
func (r *Run) UpdateTime(dt float64) { r.RunTime += dt }

// CaptureSeed records the starting seed if none was set yet, so a random
// first-level seed still ends up on the run record.
func (r *Run) CaptureSeed(seed uint64) {
	if !r.Seeded {
		r.StartSeed, r.Seeded = seed, true
	}
}

// SegmentCount picks how many segments the next level links, rising with
// run length and capped by the difficulty preset.
func (r *Run) SegmentCount() int {
	switch r.Preset {
	case config.PresetCasual:
		if r.LevelCount < 5 {
			return 2
		}
		return 3
	case config.PresetChallenge:
		switch {
		case r.LevelCount < 3:
			return 3
		case r.LevelCount < 8:
			return 4
		default:
			return 5
		}
	default:
		switch {
		case r.LevelCount < 5:
			return 2
		case r.LevelCount < 10:
			return 3
		default:
			return 4
		}
	}
}
