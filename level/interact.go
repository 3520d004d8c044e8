package level

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/leveldata"
)

// EnemyHit is the outcome of an enemy contact check.
type EnemyHit uint8

const (
	EnemyHitNone EnemyHit = iota
	EnemyHitPlayerDied
	EnemyHitEnemyKilled
)

// CheckHazards reports whether the player hitbox touches a spike tile.
func CheckHazards(p *player.Player, tm *leveldata.TileMap) bool {
	rect := p.CollisionRect()
	for _, hz := range tm.HazardRectsNear(leveldata.Vec2(p.Position), collisionRadius) {
		if rect.Overlaps(toGameRect(hz)) {
			return true
		}
	}
	return false
}

// CheckEnemies resolves player-enemy contact. A jet boost in any direction
// kills the enemy and bounces the player; otherwise contact is lethal
// unless ink or i-frames are up.
func (e *Environment) CheckEnemies(p *player.Player) EnemyHit {
	rect := p.CollisionRect()
	attacking := p.State == player.StateJetBoosting

	for _, c := range e.Crabs {
		if !c.Alive || !rect.Overlaps(c.CollisionRect()) {
			continue
		}
		if attacking {
			c.Alive = false
			c.TriggerHitFlash()
			e.bounceOffKill(p)
			return EnemyHitEnemyKilled
		}
		if !p.Inked && !p.Invincible() {
			return EnemyHitPlayerDied
		}
	}

	for _, pf := range e.Pufferfish {
		if !pf.Alive || !rect.Overlaps(pf.CollisionRect()) {
			continue
		}
		if attacking {
			pf.Alive = false
			pf.TriggerHitFlash()
			e.bounceOffKill(p)
			return EnemyHitEnemyKilled
		}
		if !p.Inked && !p.Invincible() {
			return EnemyHitPlayerDied
		}
	}

	return EnemyHitNone
}

func (e *Environment) bounceOffKill(p *player.Player) {
	p.Velocity.Y = -config.Platform.BounceVelocity * 0.5
	p.State = player.StateJumping
	p.JetTimer = 0
}

// CheckBreakableBlocks destroys the first breakable block under a
// downward jet and bounces the player off it. The probe extends a little
// past the feet so the break lands before the collision push-out does.
func (e *Environment) CheckBreakableBlocks(p *player.Player, tm *leveldata.TileMap) bool {
	if !p.JetDownward() || p.Velocity.Y <= 0 {
		return false
	}

	rect := p.CollisionRect()
	lookahead := max(p.Velocity.Y*0.02, 8)
	probe := gamemath.Rect{
		X: rect.X + 2,
		Y: rect.Y + rect.H/2,
		W: rect.W - 4,
		H: rect.H/2 + lookahead,
	}

	for _, bt := range tm.BreakableTilesNear(leveldata.Vec2(p.Position), collisionRadius) {
		if e.DestroyedBlocks[bt.Pos] {
			continue
		}
		if probe.Overlaps(toGameRect(bt.Rect)) {
			e.DestroyedBlocks[bt.Pos] = true
			p.Velocity.Y = -config.Platform.BounceVelocity * 0.6
			p.State = player.StateJumping
			p.JetTimer = 0
			return true
		}
	}
	return false
}

// CheckFallDeath reports whether the player fell out of the level.
func CheckFallDeath(p *player.Player, levelHeight float64) bool {
	return p.Position.Y > levelHeight+100
}

// ApplyPlatformCarry adds the velocity of any moving platform the player
// is standing on, using the platform's previous-frame velocity.
func (e *Environment) ApplyPlatformCarry(p *player.Player, dt float64) {
	rect := p.CollisionRect()
	probe := gamemath.Rect{X: rect.X + 2, Y: rect.Bottom(), W: rect.W - 4, H: 4}

	for _, mp := range e.MovingPlatforms {
		if probe.Overlaps(mp.CollisionRect()) {
			p.Position.X += mp.Velocity.X * dt
		}
	}
}

// HandlePlatformCollisions lands the player on dynamic platforms and
// triggers crumbling platforms that are stood on.
func (e *Environment) HandlePlatformCollisions(p *player.Player) {
	rect := p.CollisionRect()
	probe := gamemath.Rect{X: rect.X + 2, Y: rect.Bottom() - 2, W: rect.W - 4, H: 6}

	for _, mp := range e.MovingPlatforms {
		landOnPlatform(p, &rect, mp.CollisionRect())
	}

	for _, cp := range e.CrumblingPlatforms {
		if !cp.Solid() {
			continue
		}
		platRect := cp.CollisionRect()
		landOnPlatform(p, &rect, platRect)
		if probe.Overlaps(platRect) {
			cp.Trigger()
		}
	}
}

// landOnPlatform resolves a top-surface landing within a 16px window.
func landOnPlatform(p *player.Player, rect *gamemath.Rect, plat gamemath.Rect) {
	if p.Velocity.Y < 0 || !rect.Overlaps(plat) {
		return
	}
	bottom := rect.Bottom()
	if bottom > plat.Y && bottom < plat.Y+16 {
		p.Position.Y = plat.Y - rect.H/2
		p.Velocity.Y = 0
		*rect = p.CollisionRect()
	}
}
