package level

import (
	"math"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
)

// MovingPlatform travels back and forth between two points. Phase runs 0
// to 1 along the path and the direction flips at the endpoints. Velocity
// is recorded each frame so riders inherit the horizontal carry.
type MovingPlatform struct {
	ID       string
	Position gamemath.Vec2
	Start    gamemath.Vec2
	End      gamemath.Vec2
	Size     gamemath.Vec2
	Velocity gamemath.Vec2

	phase     float64
	direction float64
}

func newMovingPlatform(id string, start, end, size gamemath.Vec2) *MovingPlatform {
	return &MovingPlatform{
		ID:        id,
		Position:  start,
		Start:     start,
		End:       end,
		Size:      size,
		direction: 1,
	}
}

// Update moves the platform along its path at the configured speed.
func (mp *MovingPlatform) Update(dt float64) {
	pathLength := mp.End.Sub(mp.Start).Length()
	if pathLength < 1 {
		return
	}

	phaseSpeed := config.Platform.MovingSpeed / pathLength
	mp.phase += mp.direction * phaseSpeed * dt

	if mp.phase >= 1 {
		mp.phase = 1
		mp.direction = -1
	} else if mp.phase <= 0 {
		mp.phase = 0
		mp.direction = 1
	}

	newPos := gamemath.Vec2{
		X: gamemath.Lerp(mp.Start.X, mp.End.X, mp.phase),
		Y: gamemath.Lerp(mp.Start.Y, mp.End.Y, mp.phase),
	}
	mp.Velocity = newPos.Sub(mp.Position).Scale(1 / dt)
	mp.Position = newPos
}

func (mp *MovingPlatform) CollisionRect() gamemath.Rect {
	return gamemath.Rect{
		X: mp.Position.X - mp.Size.X/2,
		Y: mp.Position.Y - mp.Size.Y/2,
		W: mp.Size.X,
		H: mp.Size.Y,
	}
}

// CrumbleState is the crumbling platform lifecycle state.
type CrumbleState uint8

const (
	CrumbleStable CrumbleState = iota
	CrumbleShaking
	CrumbleFalling
	CrumbleRespawning
)

func (s CrumbleState) String() string {
	switch s {
	case CrumbleStable:
		return "stable"
	case CrumbleShaking:
		return "shaking"
	case CrumbleFalling:
		return "falling"
	case CrumbleRespawning:
		return "respawning"
	}
	return "unknown"
}

// CrumblingPlatform shakes briefly once stood on, then falls away and
// respawns after a delay.
type CrumblingPlatform struct {
	ID            string
	Position      gamemath.Vec2
	StartPosition gamemath.Vec2
	Size          gamemath.Vec2
	State         CrumbleState
	Timer         float64

	fallVelocity float64
}

func newCrumblingPlatform(id string, pos, size gamemath.Vec2) *CrumblingPlatform {
	return &CrumblingPlatform{
		ID:            id,
		Position:      pos,
		StartPosition: pos,
		Size:          size,
	}
}

// Update advances the crumble lifecycle.
func (cp *CrumblingPlatform) Update(dt float64) {
	switch cp.State {
	case CrumbleStable:

	case CrumbleShaking:
		cp.Timer -= dt
		if cp.Timer <= 0 {
			cp.State = CrumbleFalling
			cp.fallVelocity = 0
		}

	case CrumbleFalling:
		cp.fallVelocity += config.Player.Gravity * dt
		cp.Position.Y += cp.fallVelocity * dt
		if cp.Position.Y > cp.StartPosition.Y+500 {
			cp.State = CrumbleRespawning
			cp.Timer = config.Platform.CrumbleRespawnTime
		}

	case CrumbleRespawning:
		cp.Timer -= dt
		if cp.Timer <= 0 {
			cp.Reset()
		}
	}
}

// Trigger starts the shake when a player stands on a stable platform.
func (cp *CrumblingPlatform) Trigger() {
	if cp.State == CrumbleStable {
		cp.State = CrumbleShaking
		cp.Timer = config.Platform.CrumbleShakeTime
	}
}

// Reset restores the platform to its spawn state.
func (cp *CrumblingPlatform) Reset() {
	cp.Position = cp.StartPosition
	cp.State = CrumbleStable
	cp.Timer = 0
	cp.fallVelocity = 0
}

func (cp *CrumblingPlatform) CollisionRect() gamemath.Rect {
	return gamemath.Rect{
		X: cp.Position.X - cp.Size.X/2,
		Y: cp.Position.Y - cp.Size.Y/2,
		W: cp.Size.X,
		H: cp.Size.Y,
	}
}

// Solid reports whether the platform can currently be stood on.
func (cp *CrumblingPlatform) Solid() bool {
	return cp.State == CrumbleStable || cp.State == CrumbleShaking
}

// ShakeOffset returns the render jitter while shaking, intensifying as the
// timer runs out.
func (cp *CrumblingPlatform) ShakeOffset() gamemath.Vec2 {
	if cp.State != CrumbleShaking {
		return gamemath.Vec2{}
	}
	intensity := 3 * (1 - cp.Timer/0.5)
	return gamemath.Vec2{
		X: math.Sin(cp.Timer*50) * intensity,
		Y: math.Cos(cp.Timer*60) * intensity * 0.5,
	}
}
