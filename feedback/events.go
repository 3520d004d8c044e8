// Package feedback turns frame-to-frame state edges into audio-visual
// events. The tracker remembers last frame's player state and the
// processor emits opaque sound and effect descriptors; whatever audio
// and particle stack the app runs consumes them.
package feedback

import "github.com/automoto/octoplat/shared/gamemath"

// SoundID names a sound effect.
type SoundID int

const (
	SoundJump SoundID = iota
	SoundLand
	SoundWallJump
	SoundDive
	SoundJetBoost
	SoundGrappleShoot
	SoundGrappleAttach
	SoundInkShoot
	SoundGemCollect
	SoundCheckpoint
	SoundLevelComplete
	SoundBouncePad
	SoundExtraLife
	SoundPlayerHurt
	SoundPlayerDeath
	SoundMenuMove
	SoundMenuSelect
	SoundMenuBack
	SoundPause
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundWallJump:
		return "wall_jump"
	case SoundDive:
		return "dive"
	case SoundJetBoost:
		return "jet_boost"
	case SoundGrappleShoot:
		return "grapple_shoot"
	case SoundGrappleAttach:
		return "grapple_attach"
	case SoundInkShoot:
		return "ink_shoot"
	case SoundGemCollect:
		return "gem_collect"
	case SoundCheckpoint:
		return "checkpoint"
	case SoundLevelComplete:
		return "level_complete"
	case SoundBouncePad:
		return "bounce_pad"
	case SoundExtraLife:
		return "extra_life"
	case SoundPlayerHurt:
		return "player_hurt"
	case SoundPlayerDeath:
		return "player_death"
	case SoundMenuMove:
		return "menu_move"
	case SoundMenuSelect:
		return "menu_select"
	case SoundMenuBack:
		return "menu_back"
	case SoundPause:
		return "pause"
	}
	return "unknown"
}

// MusicTrack names a music loop.
type MusicTrack int

const (
	MusicMenu MusicTrack = iota
	MusicGameplay
	MusicGameOver
)

// SoundEvent is a sound to play, optionally positional.
type SoundEvent struct {
	ID         SoundID
	Position   gamemath.Vec2
	Positional bool
}

// EffectType names a particle or screen effect.
type EffectType int

const (
	EffectJump EffectType = iota
	EffectWallJump
	EffectLand
	EffectJetBoost
	EffectGrappleAttach
	EffectDiveImpact
	EffectGemCollect
	EffectBounce
	EffectInkCloud
	EffectCheckpoint
)

// Effect is a particle burst descriptor.
type Effect struct {
	Type      EffectType
	Position  gamemath.Vec2
	Direction gamemath.Vec2
	Intensity float64
}
