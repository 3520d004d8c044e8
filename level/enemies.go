package level

import (
	"math"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/leveldata"
)

// Crab patrols horizontally along a platform, turning around at walls and
// ledges.
type Crab struct {
	ID            string
	Position      gamemath.Vec2
	StartPosition gamemath.Vec2
	Speed         float64
	FacingRight   bool
	Alive         bool

	IdleBobTimer   float64
	WalkCycle      float64
	AlertIntensity float64
	HitFlashTimer  float64
}

func newCrab(id string, pos gamemath.Vec2) *Crab {
	return &Crab{
		ID:            id,
		Position:      pos,
		StartPosition: pos,
		Speed:         config.Enemy.CrabSpeed,
		FacingRight:   true,
		Alive:         true,
	}
}

// Update advances the patrol. The crab probes for a wall ahead and for
// ground ahead and below; either a wall hit or a missing floor flips the
// walk direction instead of stepping.
func (c *Crab) Update(tm *leveldata.TileMap, dt float64) {
	if !c.Alive {
		return
	}

	c.IdleBobTimer += dt * 3
	c.WalkCycle += dt * 8
	if c.HitFlashTimer > 0 {
		c.HitFlashTimer -= dt
	}
	c.AlertIntensity = max(c.AlertIntensity-dt*2, 0)

	cfg := &config.Enemy
	direction := -1.0
	if c.FacingRight {
		direction = 1.0
	}
	newX := c.Position.X + direction*c.Speed*config.Player.EnemySpeedMultiplier*dt

	wallProbe := gamemath.Vec2{X: newX + direction*cfg.CrabWallProbe, Y: c.Position.Y}
	crabRect := gamemath.Rect{X: wallProbe.X - 10, Y: wallProbe.Y - 8, W: 20, H: 16}
	hitsWall := false
	for _, tile := range tm.SolidRectsNear(leveldata.Vec2(wallProbe), 16) {
		if crabRect.Overlaps(toGameRect(tile)) {
			hitsWall = true
			break
		}
	}

	groundProbe := leveldata.Vec2{
		X: newX + direction*cfg.CrabEdgeProbe,
		Y: c.Position.Y + cfg.CrabEdgeProbeDepth,
	}
	hasGround := len(tm.SolidRectsNear(groundProbe, 8)) > 0

	if hitsWall || !hasGround {
		c.FacingRight = !c.FacingRight
	} else {
		c.Position.X = newX
	}
}

// SetAlert raises the alert display when the player is near.
func (c *Crab) SetAlert(intensity float64) {
	c.AlertIntensity = gamemath.Clamp(intensity, 0, 1)
}

// TriggerHitFlash starts the defeat flash.
func (c *Crab) TriggerHitFlash() { c.HitFlashTimer = 0.15 }

// BobOffset returns the idle bob for rendering.
func (c *Crab) BobOffset() float64 { return math.Sin(c.IdleBobTimer) * 1.5 }

// WalkPhase returns the walk cycle position in [0,1).
func (c *Crab) WalkPhase() float64 {
	return math.Mod(c.WalkCycle, 2*math.Pi) / (2 * math.Pi)
}

func (c *Crab) CollisionRect() gamemath.Rect {
	return gamemath.Rect{X: c.Position.X - 12, Y: c.Position.Y - 10, W: 24, H: 20}
}

// Reset returns the crab to its spawn state.
func (c *Crab) Reset() {
	c.Position = c.StartPosition
	c.FacingRight = true
	c.Alive = true
	c.IdleBobTimer = 0
	c.WalkCycle = 0
	c.AlertIntensity = 0
	c.HitFlashTimer = 0
}

// PufferPattern is a pufferfish movement pattern.
type PufferPattern uint8

const (
	PufferStationary PufferPattern = iota
	PufferHorizontal
	PufferVertical
)

func (p PufferPattern) String() string {
	switch p {
	case PufferStationary:
		return "stationary"
	case PufferHorizontal:
		return "horizontal"
	case PufferVertical:
		return "vertical"
	}
	return "unknown"
}

// Pufferfish floats along a parametric path and is hazardous on contact.
type Pufferfish struct {
	ID            string
	Position      gamemath.Vec2
	StartPosition gamemath.Vec2
	Pattern       PufferPattern
	Phase         float64
	Alive         bool

	VisualScale   float64
	TargetScale   float64
	WobblePhase   float64
	HitFlashTimer float64
}

func newPufferfish(id string, pos gamemath.Vec2, pattern PufferPattern) *Pufferfish {
	return &Pufferfish{
		ID:            id,
		Position:      pos,
		StartPosition: pos,
		Pattern:       pattern,
		Alive:         true,
		VisualScale:   1,
		TargetScale:   1,
	}
}

// Update advances the swim phase and derives the position from the
// pattern. All patterns keep a gentle bob on the off axis.
func (pf *Pufferfish) Update(dt float64) {
	if !pf.Alive {
		return
	}

	cfg := &config.Enemy
	pf.Phase += dt * cfg.PufferfishSpeed * config.Player.EnemySpeedMultiplier

	pf.WobblePhase += dt * 4
	if pf.HitFlashTimer > 0 {
		pf.HitFlashTimer -= dt
	}
	pf.VisualScale += (pf.TargetScale - pf.VisualScale) * 4 * dt
	pf.TargetScale = 1 + (pf.TargetScale-1)*gamemath.FrameDamping(0.95, dt)

	switch pf.Pattern {
	case PufferStationary:
		pf.Position.Y = pf.StartPosition.Y + math.Sin(pf.Phase*2)*4
	case PufferHorizontal:
		pf.Position.X = pf.StartPosition.X + math.Sin(pf.Phase)*cfg.PufferfishAmplitude
		pf.Position.Y = pf.StartPosition.Y + math.Sin(pf.Phase*2)*4
	case PufferVertical:
		pf.Position.X = pf.StartPosition.X + math.Sin(pf.Phase*2)*4
		pf.Position.Y = pf.StartPosition.Y + math.Sin(pf.Phase)*cfg.PufferfishAmplitude
	}
}

// PuffUp inflates the fish when the player comes close.
func (pf *Pufferfish) PuffUp() { pf.TargetScale = 1.3 }

// TriggerHitFlash starts the defeat flash.
func (pf *Pufferfish) TriggerHitFlash() { pf.HitFlashTimer = 0.15 }

// WobbleRotation returns the idle wobble in radians.
func (pf *Pufferfish) WobbleRotation() float64 { return math.Sin(pf.WobblePhase) * 0.1 }

// PulseScale returns the breathing pulse for rendering.
func (pf *Pufferfish) PulseScale() float64 { return 1 + math.Sin(pf.Phase*1.5)*0.05 }

func (pf *Pufferfish) CollisionRect() gamemath.Rect {
	return gamemath.Rect{X: pf.Position.X - 14, Y: pf.Position.Y - 14, W: 28, H: 28}
}

// Reset returns the pufferfish to its spawn state.
func (pf *Pufferfish) Reset() {
	pf.Position = pf.StartPosition
	pf.Phase = 0
	pf.Alive = true
	pf.VisualScale = 1
	pf.TargetScale = 1
	pf.WobblePhase = 0
	pf.HitFlashTimer = 0
}

func toGameRect(r leveldata.Rect) gamemath.Rect {
	return gamemath.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
