package feedback

import (
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
)

// Tracker remembers last frame's observable state so the processor can
// detect edges. Zero value is not ready; use NewTracker.
type Tracker struct {
	PrevState         player.State
	PrevGemsCollected int
	PrevCheckpoint    gamemath.Vec2
	HasCheckpoint     bool
	PrevVelocityY     float64
	PrevInked         bool

	// PlayedLevelComplete keeps the completion sound from repeating
	// while the completion screen sits on top of the level.
	PlayedLevelComplete bool
}

// NewTracker starts tracking from the fresh-player baseline.
func NewTracker() *Tracker {
	return &Tracker{PrevState: player.StateFalling}
}

// Observe records this frame's state after feedback has been processed.
func (t *Tracker) Observe(state player.State, gems int, velY float64, inked bool) {
	t.PrevState = state
	t.PrevGemsCollected = gems
	t.PrevVelocityY = velY
	t.PrevInked = inked
}

// SetCheckpoint records the active checkpoint.
func (t *Tracker) SetCheckpoint(pos gamemath.Vec2) {
	t.PrevCheckpoint, t.HasCheckpoint = pos, true
}

// ClearCheckpoint forgets the active checkpoint, for level changes.
func (t *Tracker) ClearCheckpoint() {
	t.HasCheckpoint = false
}

// MarkLevelCompletePlayed records that the completion sound fired.
func (t *Tracker) MarkLevelCompletePlayed() { t.PlayedLevelComplete = true }

// ResetLevelComplete rearms the completion sound for a new level.
func (t *Tracker) ResetLevelComplete() { t.PlayedLevelComplete = false }

// Reset returns the tracker to the fresh-level baseline.
func (t *Tracker) Reset() {
	*t = Tracker{PrevState: player.StateFalling}
}
