package player

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
)

// applyGravity accelerates downward, clamped to terminal velocity.
func (p *Player) applyGravity(dt float64) {
	cfg := &config.Player
	p.Velocity.Y = min(p.Velocity.Y+cfg.Gravity*dt, cfg.TerminalVelocity)
}

// executeJump performs a regular jump from ground or coyote time.
func (p *Player) executeJump() {
	p.Velocity.Y = config.Player.JumpVelocity
	p.State = StateJumping
	p.CoyoteTimer = 0
}

// executeWallJump performs a wall jump if the stick shows intent. Pressing
// away from the wall gives the full kick; pressing up gives a climb jump
// with a strong vertical boost and just enough horizontal clearance to
// avoid an instant re-grab. Returns false when neither input is present.
func (p *Player) executeWallJump(in *Input) bool {
	cfg := &config.Player

	pressingAway := (in.MoveX > cfg.InputDeadzone && p.WallDirection < 0) ||
		(in.MoveX < -cfg.InputDeadzone && p.WallDirection > 0)
	pressingUp := in.MoveY < -cfg.InputDeadzone

	var horizontal, vertical float64
	switch {
	case pressingAway:
		horizontal = cfg.WallJumpVelocityX
		vertical = cfg.WallJumpVelocityY
	case pressingUp:
		horizontal = cfg.WallJumpVelocityX * cfg.WallJumpClimbHorizontal
		vertical = cfg.WallJumpVelocityY * cfg.WallJumpClimbVertical
	default:
		return false
	}

	// Remember which wall we left before clearing WallDirection, so the
	// same-wall window can reject an immediate return.
	p.lastWallJumpX = p.Position.X + float64(p.WallDirection)*p.Hitbox.Width/2
	p.hasLastWallJump = true

	p.Velocity = gamemath.Vec2{
		X: horizontal * float64(-p.WallDirection),
		Y: vertical,
	}
	p.State = StateJumping
	p.WallDirection = 0

	p.WallJumpCooldown = cfg.WallJumpCooldown
	p.SameWallCooldown = cfg.SameWallCooldown

	if pressingAway {
		p.FacingRight = p.Velocity.X > 0
	}
	return true
}

// applyStatePhysics applies the per-state movement model.
func (p *Player) applyStatePhysics(in *Input, dt float64) {
	cfg := &config.Player
	recovery := p.landingRecoveryFactor()

	switch p.State {
	case StateIdle:
		p.Velocity.X = gamemath.MoveToward(p.Velocity.X, 0, cfg.Deceleration*dt)
		p.applyGravity(dt)

	case StateRunning:
		speed, accel := cfg.MoveSpeed, cfg.Acceleration
		if p.Sprinting {
			speed, accel = cfg.SprintSpeed, cfg.SprintAcceleration
		}
		targetVX := in.MoveX * speed * recovery
		p.Velocity.X = gamemath.MoveToward(p.Velocity.X, targetVX, accel*recovery*dt)
		p.applyGravity(dt)

	case StateJumping, StateFalling:
		airSpeed := cfg.MoveSpeed * cfg.AirControl
		if p.Sprinting {
			airSpeed += (cfg.SprintSpeed - cfg.MoveSpeed) * cfg.SprintAirBonus * cfg.AirControl
		}
		targetVX := in.MoveX * airSpeed
		p.Velocity.X = gamemath.MoveToward(p.Velocity.X, targetVX, cfg.AirAcceleration*dt)
		p.applyGravity(dt)

	case StateWallGrip:
		p.Velocity = gamemath.Vec2{}

	case StateJetBoosting, StateSwinging:
		p.applyAbilityPhysics(in, dt)
	}
}
