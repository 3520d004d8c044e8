package player

import (
	"math"

	"github.com/automoto/octoplat/config"
)

// UpdateVisuals advances the squash/stretch animation, breathing phase,
// and the hit flash and invincibility timers. Separate from Update so the
// render systems can tick it even while gameplay is paused by death.
func (p *Player) UpdateVisuals(dt float64) {
	switch {
	case p.State == StateJumping:
		p.targetScaleY = 1.15
	case p.State == StateFalling:
		p.targetScaleY = 1.05
	case p.JetDownward():
		p.targetScaleY = 1.2
		p.targetRotation = math.Pi * 0.1
	default:
		p.targetScaleY = 1.0
		p.targetRotation = 0
	}

	p.VisualScaleY = smoothTowards(p.VisualScaleY, p.targetScaleY, 12, dt)
	p.VisualRotation = smoothTowards(p.VisualRotation, p.targetRotation, 10, dt)

	p.BreathingPhase += dt * 2
	if p.BreathingPhase > 2*math.Pi {
		p.BreathingPhase -= 2 * math.Pi
	}

	if p.HitFlashTimer > 0 {
		p.HitFlashTimer = max(p.HitFlashTimer-dt, 0)
	}
	if p.InvincibilityTimer > 0 {
		p.InvincibilityTimer = max(p.InvincibilityTimer-dt, 0)
	}
}

// TriggerStretch snaps into a vertical stretch, for jump takeoff.
func (p *Player) TriggerStretch() {
	p.VisualScaleY = 1.25
	p.targetScaleY = 1.15
}

// TriggerSquash snaps into a squash on landing, scaled by impact.
func (p *Player) TriggerSquash(intensity float64) {
	squash := 1 - 0.3*intensity
	p.VisualScaleY = squash
	p.targetScaleY = squash + 0.15
}

// TriggerLandingRecovery slows ground movement briefly after a hard fall.
func (p *Player) TriggerLandingRecovery() {
	p.LandingRecoveryTimer = config.Player.LandingRecoveryTime
}

func (p *Player) landingRecoveryFactor() float64 {
	if p.LandingRecoveryTimer > 0 {
		return config.Player.LandingRecoveryFactor
	}
	return 1
}

// TriggerHitFlash starts the damage flash.
func (p *Player) TriggerHitFlash() {
	p.HitFlashTimer = config.Player.HitFlashDuration
}

// StartInvincibility grants i-frames for the given duration.
func (p *Player) StartInvincibility(duration float64) {
	p.InvincibilityTimer = duration
}

// Invincible reports whether damage is currently ignored. Jet boosting
// grants implicit i-frames; ink is checked separately by the caller since
// it also suppresses enemy aggro.
func (p *Player) Invincible() bool {
	return p.InvincibilityTimer > 0 || p.State == StateJetBoosting
}

// smoothTowards eases current toward target with an exponential falloff
// that is stable across frame rates.
func smoothTowards(current, target, speed, dt float64) float64 {
	return target + (current-target)*math.Exp(-speed*dt)
}
