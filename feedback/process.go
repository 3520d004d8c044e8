package feedback

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/procrand"
)

// Result is one frame of feedback: sounds to play, effects to spawn, and
// statistic deltas for the save data.
type Result struct {
	Sounds  []SoundEvent
	Effects []Effect

	Jumps    int
	Grapples int
}

func (r *Result) addSound(id SoundID) {
	r.Sounds = append(r.Sounds, SoundEvent{ID: id})
}

func (r *Result) addSoundAt(id SoundID, pos gamemath.Vec2) {
	r.Sounds = append(r.Sounds, SoundEvent{ID: id, Position: pos, Positional: true})
}

func (r *Result) addEffect(e Effect) {
	r.Effects = append(r.Effects, e)
}

// Process compares the player against last frame and emits the matching
// sounds and effects. The rng drives only the continuous jet trail; edge
// detection is deterministic. Call once per frame after physics so the
// edges see post-physics state.
func Process(p *player.Player, t *Tracker, gemsCollected int, rng *procrand.Rng) Result {
	var result Result

	state := p.State
	pos := p.Position
	feet := gamemath.Vec2{X: pos.X, Y: pos.Y + 16}

	if state != t.PrevState {
		switch state {
		case player.StateJumping:
			if t.PrevState == player.StateWallGrip {
				result.addSound(SoundWallJump)
				result.addEffect(Effect{
					Type:      EffectWallJump,
					Position:  pos,
					Direction: gamemath.Vec2{X: float64(p.WallDirection)},
				})
			} else {
				result.addSound(SoundJump)
				result.addEffect(Effect{Type: EffectJump, Position: feet})
			}
			p.TriggerStretch()
			result.Jumps++

		case player.StateIdle, player.StateRunning:
			switch t.PrevState {
			case player.StateFalling, player.StateJumping, player.StateJetBoosting:
				result.addSound(SoundLand)
				intensity := gamemath.Clamp(t.PrevVelocityY/500, 0.3, 1.5)
				result.addEffect(Effect{Type: EffectLand, Position: feet, Intensity: intensity})
				p.TriggerSquash(intensity)
				if t.PrevVelocityY > config.Player.HardLandingThreshold {
					p.TriggerLandingRecovery()
				}
			}

		case player.StateJetBoosting:
			if p.JetDownward() {
				result.addSound(SoundDive)
			} else {
				result.addSound(SoundJetBoost)
			}
			result.addEffect(Effect{Type: EffectJetBoost, Position: pos, Direction: p.JetDirection})

		case player.StateSwinging:
			result.addSound(SoundGrappleShoot)
			result.addSoundAt(SoundGrappleAttach, p.GrapplePoint)
			result.addEffect(Effect{Type: EffectGrappleAttach, Position: p.GrapplePoint})
			result.Grapples++
		}

		// A fast downward jet ending on the ground leaves an impact burst.
		if t.PrevState == player.StateJetBoosting && t.PrevVelocityY > 100 {
			switch state {
			case player.StateJumping, player.StateIdle, player.StateRunning:
				result.addEffect(Effect{Type: EffectDiveImpact, Position: feet})
			}
		}
	}

	if state == player.StateJetBoosting && rng != nil && rng.Chance(0.5) {
		result.addEffect(Effect{Type: EffectJetBoost, Position: pos, Direction: p.JetDirection})
	}

	if gemsCollected > t.PrevGemsCollected {
		result.addSound(SoundGemCollect)
		result.addEffect(Effect{Type: EffectGemCollect, Position: pos})
	}

	// Bounce shows up as a sudden upward velocity with no jump involved.
	if p.Velocity.Y < -config.Platform.BounceVelocity*0.9 && t.PrevVelocityY >= 0 {
		result.addSound(SoundBouncePad)
		result.addEffect(Effect{Type: EffectBounce, Position: feet})
	}

	if p.Inked && !t.PrevInked {
		result.addSound(SoundInkShoot)
		result.addEffect(Effect{Type: EffectInkCloud, Position: pos})
	}

	t.Observe(state, gemsCollected, p.Velocity.Y, p.Inked)
	return result
}

// ProcessCheckpoint emits the checkpoint event when the active checkpoint
// changes.
func ProcessCheckpoint(t *Tracker, pos gamemath.Vec2) (Result, bool) {
	if t.HasCheckpoint && t.PrevCheckpoint == pos {
		return Result{}, false
	}
	t.SetCheckpoint(pos)
	var result Result
	result.addSoundAt(SoundCheckpoint, pos)
	result.addEffect(Effect{Type: EffectCheckpoint, Position: pos})
	return result, true
}

// ProcessLevelComplete emits the completion jingle exactly once per level.
func ProcessLevelComplete(t *Tracker, complete bool) (SoundEvent, bool) {
	if !complete || t.PlayedLevelComplete {
		return SoundEvent{}, false
	}
	t.MarkLevelCompletePlayed()
	return SoundEvent{ID: SoundLevelComplete}, true
}
