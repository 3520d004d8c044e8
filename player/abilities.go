package player

import (
	"math"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
)

// executeJetBoost fires a jet burst in the input direction, or the facing
// direction when the stick is neutral. Downward jets are faster and can
// break blocks and kill enemies.
func (p *Player) executeJetBoost(in *Input) {
	cfg := &config.Player

	p.State = StateJetBoosting
	p.JetCharges--
	p.jetRegen = 0
	p.JetTimer = cfg.JetBoostDuration

	dir := gamemath.Vec2{X: in.MoveX, Y: in.MoveY}
	if dir.Length() < 0.3 {
		dir = gamemath.Vec2{X: config.DirectionRight}
		if !p.FacingRight {
			dir.X = config.DirectionLeft
		}
	}
	length := dir.Length()
	p.JetDirection = gamemath.Vec2{X: dir.X / length, Y: dir.Y / length}

	if abs(p.JetDirection.X) > 0.1 {
		p.FacingRight = p.JetDirection.X > 0
	}
}

// JetDownward reports whether the current jet is primarily downward, which
// is what breaks blocks and drives the dive feedback.
func (p *Player) JetDownward() bool {
	return p.State == StateJetBoosting && p.JetDirection.Y > 0.5
}

// activateInk pops an ink cloud for a burst of invincibility.
func (p *Player) activateInk() {
	p.InkCharges--
	p.InkTimer = config.Player.InkDuration
	p.Inked = true
}

// RefillInk restores ink charges. Called at water pools; jet charges
// regenerate passively instead.
func (p *Player) RefillInk() {
	p.InkCharges = config.Player.InkMaxCharges
}

// nearestGrapplePoint finds the closest grapple point within range that is
// not below the player. Hanging from a point underneath you makes no sense
// on a rope.
func (p *Player) nearestGrapplePoint(points []gamemath.Vec2) (gamemath.Vec2, bool) {
	var best gamemath.Vec2
	bestDist := math.Inf(1)

	for _, pt := range points {
		dist := pt.Sub(p.Position).Length()
		if dist > config.Swing.GrappleRange {
			continue
		}
		if pt.Y > p.Position.Y+20 {
			continue
		}
		if dist < bestDist {
			best, bestDist = pt, dist
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// startGrapple attaches the tentacle and converts the current velocity
// into angular velocity along the swing tangent so momentum carries in.
func (p *Player) startGrapple(target gamemath.Vec2) {
	p.GrapplePoint = target
	p.RopeLength = target.Sub(p.Position).Length()
	p.State = StateSwinging

	angle := gamemath.PendulumAngle(target, p.Position)
	tangent := gamemath.Vec2{X: math.Cos(angle), Y: -math.Sin(angle)}
	p.SwingAngularVelocity = (p.Velocity.X*tangent.X + p.Velocity.Y*tangent.Y) / p.RopeLength
}

// releaseGrapple lets go of the rope with a small momentum boost.
func (p *Player) releaseGrapple() {
	p.Velocity = p.Velocity.Scale(config.Swing.ReleaseBoost)
	p.SwingAngularVelocity = 0

	if p.Velocity.Y < 0 {
		p.State = StateJumping
	} else {
		p.State = StateFalling
	}
}

// maxSwingAngularVelocity caps the swing at roughly half a revolution per
// second to keep release velocities sane.
const maxSwingAngularVelocity = math.Pi

// applyAbilityPhysics moves the player during jet boosts and swings. Both
// states own their velocity entirely; gravity does not apply.
func (p *Player) applyAbilityPhysics(in *Input, dt float64) {
	switch p.State {
	case StateJetBoosting:
		speed := config.Player.JetBoostSpeed
		if p.JetDirection.Y > 0.5 {
			speed *= config.Player.JetDownwardSpeedMult
		}
		p.Velocity = p.JetDirection.Scale(speed)

	case StateSwinging:
		swing := &config.Swing

		angle := gamemath.PendulumAngle(p.GrapplePoint, p.Position)
		p.SwingAngularVelocity += gamemath.PendulumAccel(angle, swing.Gravity, p.RopeLength) * dt
		p.SwingAngularVelocity *= gamemath.FrameDamping(swing.Damping, dt)

		// Left/right input pumps the swing.
		p.SwingAngularVelocity += in.MoveX * swing.PumpStrength * dt
		p.SwingAngularVelocity = gamemath.Clamp(p.SwingAngularVelocity,
			-maxSwingAngularVelocity, maxSwingAngularVelocity)

		// Up/down retracts and extends the rope.
		deadzone := config.Player.InputDeadzone
		if in.MoveY < -deadzone {
			p.RopeLength = max(p.RopeLength-swing.RopeRetractSpeed*dt, swing.RopeMinLength)
		} else if in.MoveY > deadzone {
			p.RopeLength = min(p.RopeLength+swing.RopeRetractSpeed*dt, swing.GrappleRange)
		}

		newAngle := angle + p.SwingAngularVelocity*dt
		newPos := gamemath.PendulumPosition(p.GrapplePoint, newAngle, p.RopeLength)

		// Velocity is derived from the position delta so releasing the
		// rope keeps the swing momentum.
		safeDt := max(dt, 0.001)
		p.Velocity = gamemath.Vec2{
			X: gamemath.ClampSpeed((newPos.X-p.Position.X)/safeDt, 2000),
			Y: gamemath.ClampSpeed((newPos.Y-p.Position.Y)/safeDt, 2000),
		}
		p.Position = newPos
	}
}
