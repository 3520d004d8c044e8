package procgen

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
)

// DifficultyParams are the per-level scaling knobs derived from run
// progress and preset. Chances resolve the slot glyphs in segment bodies;
// the tier window filters which segments the selector may use.
type DifficultyParams struct {
	// Progress is the clamped 0..1 position in the run.
	Progress float64

	CollectibleChance float64
	EnemyChance       float64
	PufferfishChance  float64
	HazardChance      float64
	GrappleChance     float64

	MinTier int
	MaxTier int
}

// ForProgress interpolates difficulty parameters for a progress point.
// Enemy, hazard and pufferfish chances rise with progress; grapple anchors
// and collectibles thin out so later levels offer fewer safety nets.
func ForProgress(progress float64, preset config.DifficultyPreset) DifficultyParams {
	progress = gamemath.Clamp(progress, 0, 1)

	var baseEnemy, maxEnemy float64
	var baseHazard, maxHazard float64
	var basePuffer, maxPuffer float64
	var baseGrapple, minGrapple float64
	var baseCollect, minCollect float64

	switch preset {
	case config.PresetCasual:
		baseEnemy, maxEnemy = 0.2, 0.4
		baseHazard, maxHazard = 0.2, 0.35
		basePuffer, maxPuffer = 0.0, 0.15
		baseGrapple, minGrapple = 0.85, 0.75
		baseCollect, minCollect = 0.7, 0.6
	case config.PresetChallenge:
		baseEnemy, maxEnemy = 0.4, 0.8
		baseHazard, maxHazard = 0.4, 0.7
		basePuffer, maxPuffer = 0.2, 0.5
		baseGrapple, minGrapple = 0.7, 0.5
		baseCollect, minCollect = 0.6, 0.4
	default:
		baseEnemy, maxEnemy = 0.3, 0.6
		baseHazard, maxHazard = 0.3, 0.5
		basePuffer, maxPuffer = 0.1, 0.35
		baseGrapple, minGrapple = 0.8, 0.6
		baseCollect, minCollect = 0.65, 0.5
	}

	minTier, maxTier := tierWindow(progress)
	switch preset {
	case config.PresetCasual:
		maxTier = min(maxTier, 2)
	case config.PresetStandard:
		maxTier = min(maxTier, 4)
	}

	return DifficultyParams{
		Progress:          progress,
		CollectibleChance: gamemath.Lerp(baseCollect, minCollect, progress),
		EnemyChance:       gamemath.Lerp(baseEnemy, maxEnemy, progress),
		PufferfishChance:  gamemath.Lerp(basePuffer, maxPuffer, progress),
		HazardChance:      gamemath.Lerp(baseHazard, maxHazard, progress),
		GrappleChance:     gamemath.Lerp(baseGrapple, minGrapple, progress),
		MinTier:           minTier,
		MaxTier:           maxTier,
	}
}

// tierWindow widens and shifts the allowed tier range as a run advances.
func tierWindow(progress float64) (int, int) {
	switch {
	case progress < 0.2:
		return 1, 1
	case progress < 0.4:
		return 1, 2
	case progress < 0.6:
		return 2, 3
	case progress < 0.8:
		return 2, 4
	}
	return 3, 5
}
