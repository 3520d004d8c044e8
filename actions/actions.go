// Package actions is the cross-subsystem mutation protocol. Handlers
// return batches of actions instead of reaching into other subsystems;
// the main loop applies each batch in insertion order, so a state
// transition takes effect before the next action in the batch runs.
// Direct mutation stays acceptable for UI-local and per-frame hot-loop
// state.
package actions

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/shared/gamemath"
)

// Action is one requested mutation. Variants are small value structs.
type Action interface{ isAction() }

// TransitionTo requests a faded transition to an app state.
type TransitionTo struct {
	State config.AppState
}

// SetStateDirect switches app state immediately, without a transition.
type SetStateDirect struct {
	State config.AppState
}

// ReturnToMenu records the active run and returns to the menu.
type ReturnToMenu struct{}

// ShowError transitions to the error screen with a message.
type ShowError struct {
	Message string
}

// PlaySound plays a sound effect, optionally positional.
type PlaySound struct {
	Sound feedback.SoundEvent
}

// PlayMusic starts a music track immediately.
type PlayMusic struct {
	Track feedback.MusicTrack
}

// CrossfadeMusic fades into a track over the given duration.
type CrossfadeMusic struct {
	Track    feedback.MusicTrack
	Duration float64
}

// StopMusic stops all music.
type StopMusic struct{}

// TriggerDeath starts the death flow, honoring invincibility.
type TriggerDeath struct{}

// TakeDamage applies damage from a hazard or enemy; reaching zero HP
// escalates to TriggerDeath.
type TakeDamage struct {
	Amount int
	Source gamemath.Vec2
}

// Respawn places the player back at the active checkpoint.
type Respawn struct{}

// GameOver ends the session when lives run out.
type GameOver struct{}

// AwardExtraLife grants a bounded extra life.
type AwardExtraLife struct{}

// RestartLevel resets the current level, player, and session deaths.
type RestartLevel struct{}

// MarkLevelComplete starts the completion flow.
type MarkLevelComplete struct{}

// SetLevelTextTimer sets the level banner display time.
type SetLevelTextTimer struct {
	Seconds float64
}

// NextLevel advances to the next level.
type NextLevel struct{}

// StartRun begins an endless roguelite run. Seeded is false for a
// random seed.
type StartRun struct {
	Preset config.DifficultyPreset
	Seed   uint64
	Seeded bool
}

// StartBiomeChallenge begins a run locked to one biome.
type StartBiomeChallenge struct {
	Biome  procgen.BiomeID
	Preset config.DifficultyPreset
	Seed   uint64
	Seeded bool
}

// CompleteRogueliteLevel records the level and generates the next one.
type CompleteRogueliteLevel struct{}

// SetGameplayDifficulty retunes HP, i-frames, enemy speed, and starting
// lives.
type SetGameplayDifficulty struct {
	Difficulty config.GameplayDifficulty
}

// ExitRogueliteMode ends the run and leaves roguelite play.
type ExitRogueliteMode struct{}

func (TransitionTo) isAction()           {}
func (SetStateDirect) isAction()         {}
func (ReturnToMenu) isAction()           {}
func (ShowError) isAction()              {}
func (PlaySound) isAction()              {}
func (PlayMusic) isAction()              {}
func (CrossfadeMusic) isAction()         {}
func (StopMusic) isAction()              {}
func (TriggerDeath) isAction()           {}
func (TakeDamage) isAction()             {}
func (Respawn) isAction()                {}
func (GameOver) isAction()               {}
func (AwardExtraLife) isAction()         {}
func (RestartLevel) isAction()           {}
func (MarkLevelComplete) isAction()      {}
func (SetLevelTextTimer) isAction()      {}
func (NextLevel) isAction()              {}
func (StartRun) isAction()               {}
func (StartBiomeChallenge) isAction()    {}
func (CompleteRogueliteLevel) isAction() {}
func (SetGameplayDifficulty) isAction()  {}
func (ExitRogueliteMode) isAction()      {}
