package progression

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/procgen"
)

// Manager owns the lives pool and the roguelite run state. Run recording
// to the save file happens at the app layer; the manager only produces
// the stats.
type Manager struct {
	Lives *LivesManager
	Run   *Run
}

// RunStats is a summary snapshot of the active run.
type RunStats struct {
	LevelsCompleted int
	TotalGems       int
	RunTime         float64
	RunDeaths       int
	CurrentLives    int
}

func NewManager(startingLives int) *Manager {
	return &Manager{
		Lives: NewLivesManager(startingLives),
		Run:   NewRun(),
	}
}

// InRun reports whether a roguelite run is active. The flag persists
// across app-state transitions until EndRun.
func (m *Manager) InRun() bool { return m.Run.Active }

// RecordDeath counts a death, decrements lives, and reports game over.
func (m *Manager) RecordDeath() bool {
	m.Lives.SessionDeaths++
	if m.InRun() {
		m.Run.RecordDeath()
	}
	if m.Lives.Current > 0 && m.Lives.Current != InfiniteLives {
		m.Lives.Current--
	}
	return m.GameOver()
}

// GameOver reports whether the lives pool is empty.
func (m *Manager) GameOver() bool { return m.Lives.GameOver() }

// AwardExtraLife grants a bounded extra life.
func (m *Manager) AwardExtraLife(max int) bool { return m.Lives.AwardLife(max) }

// CheckGemMilestone awards a life when the run's gem total crosses the
// next milestone.
func (m *Manager) CheckGemMilestone(totalGems, max int) bool {
	return m.Lives.CheckGemMilestone(totalGems, config.Run.EndlessGemMilestone, max)
}

// StartRun begins a fresh endless run through the biome order.
func (m *Manager) StartRun(startingLives int, seed uint64, seeded bool) {
	m.Lives = NewLivesManager(startingLives)
	m.Lives.StartSession(startingLives, config.Run.EndlessGemMilestone, true)
	m.Run = NewRun()
	m.Run.Active = true
	m.Run.StartSeed, m.Run.Seeded = seed, seeded
}

// StartBiomeChallenge begins a run locked to one biome.
func (m *Manager) StartBiomeChallenge(biome procgen.BiomeID, preset config.DifficultyPreset, seed uint64, seeded bool, startingLives int) {
	m.Lives = NewLivesManager(startingLives)
	m.Lives.StartSession(startingLives, config.Run.EndlessGemMilestone, true)
	m.Run.StartBiomeChallenge(biome, preset, seed, seeded)
}

// EndRun deactivates the run when returning to the menu or after a
// generation failure.
func (m *Manager) EndRun() { m.Run.Active = false }

// ResetSession clears session deaths for a level restart.
func (m *Manager) ResetSession() { m.Lives.ResetSession() }

// UpdateRunTime advances the run clock while a run is active.
func (m *Manager) UpdateRunTime(dt float64) {
	if m.InRun() {
		m.Run.UpdateTime(dt)
	}
}

// CompleteLevel records a finished level and advances the biome
// progression, reporting whether a new biome was entered.
func (m *Manager) CompleteLevel(gemsCollected int) bool {
	if !m.InRun() {
		return false
	}
	m.Run.LevelCount++
	m.Run.TotalGems += gemsCollected
	return m.Run.Biomes.AdvanceLevel()
}

// Stats returns a snapshot of the current run.
func (m *Manager) Stats() RunStats {
	return RunStats{
		LevelsCompleted: m.Run.LevelCount,
		TotalGems:       m.Run.TotalGems,
		RunTime:         m.Run.RunTime,
		RunDeaths:       m.Run.RunDeaths,
		CurrentLives:    m.Lives.Current,
	}
}
