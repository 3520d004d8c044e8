package progression

import "github.com/automoto/octoplat/shared/gamemath"

// DeathState runs the death animation timer. While Dead the world keeps
// ticking but player input is ignored; Update reports respawn readiness.
type DeathState struct {
	Dead        bool
	Timer       float64
	Position    gamemath.Vec2
	HasPosition bool
}

// Trigger starts the death animation at the given position.
func (d *DeathState) Trigger(pos gamemath.Vec2, animationTime float64) {
	d.Dead = true
	d.Timer = animationTime
	d.Position = pos
	d.HasPosition = true
}

// Update ticks the animation timer and reports when the player is ready
// to respawn.
func (d *DeathState) Update(dt float64) bool {
	if !d.Dead {
		return false
	}
	d.Timer -= dt
	return d.Timer <= 0
}

// Respawn clears the death state after the player is placed back.
func (d *DeathState) Respawn() {
	d.Dead = false
	d.HasPosition = false
}

// AnimationProgress returns how far the death animation has played, 0..1.
func (d *DeathState) AnimationProgress(animationTime float64) float64 {
	if animationTime <= 0 {
		return 1
	}
	return 1 - d.Timer/animationTime
}
