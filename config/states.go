package config

import "strings"

// AppState identifies a top-level application screen.
type AppState int

const (
	StateMenu AppState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateLevelComplete
	StateRunComplete
	StateError
)

func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelComplete:
		return "LevelComplete"
	case StateRunComplete:
		return "RunComplete"
	case StateError:
		return "Error"
	}
	return "Unknown"
}

// DifficultyPreset selects the roguelite difficulty band.
type DifficultyPreset int

const (
	PresetCasual DifficultyPreset = iota
	PresetStandard
	PresetChallenge
)

func (p DifficultyPreset) String() string {
	switch p {
	case PresetCasual:
		return "Casual"
	case PresetChallenge:
		return "Challenge"
	}
	return "Standard"
}

// ParseDifficultyPreset accepts the preset name in any casing. Unrecognized
// input falls back to Standard.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "casual", "easy":
		return PresetCasual
	case "challenge", "hard":
		return PresetChallenge
	}
	return PresetStandard
}

// GameplayDifficulty retunes survivability: HP, i-frame duration, enemy
// speed, and starting lives. Orthogonal to DifficultyPreset, which shapes
// generation.
type GameplayDifficulty int

const (
	DifficultyDrifting GameplayDifficulty = iota
	DifficultyTreadingWater
	DifficultyOctoHard
	DifficultyTheKraken
)

func (d GameplayDifficulty) String() string {
	switch d {
	case DifficultyDrifting:
		return "Drifting"
	case DifficultyOctoHard:
		return "OctoHard"
	case DifficultyTheKraken:
		return "The Kraken"
	}
	return "Treading Water"
}

// Apply writes the difficulty tuning into the player config and returns
// the starting lives for the run.
func (d GameplayDifficulty) Apply() (startingLives int) {
	switch d {
	case DifficultyDrifting:
		Player.MaxHP = 5
		Player.InvincibilityDuration = 2.0
		Player.EnemySpeedMultiplier = 0.7
		return 7
	case DifficultyOctoHard:
		Player.MaxHP = 2
		Player.InvincibilityDuration = 0.5
		Player.EnemySpeedMultiplier = 1.0
		return 4
	case DifficultyTheKraken:
		Player.MaxHP = 1
		Player.InvincibilityDuration = 0.3
		Player.EnemySpeedMultiplier = 1.2
		return 3
	default:
		Player.MaxHP = 3
		Player.InvincibilityDuration = 1.0
		Player.EnemySpeedMultiplier = 1.0
		return 5
	}
}
