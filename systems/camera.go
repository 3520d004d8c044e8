package systems

import (
	"math"

	"github.com/automoto/octoplat/components"
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with deadzone, look-ahead and a
// downward bias while falling, clamped to the level bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	pd := GetPlayer(e)
	ld := GetLevel(e)
	if pd == nil || ld == nil || ld.TileMap == nil {
		return
	}
	sim := pd.Sim

	// Look-ahead tracks the player's horizontal speed, frozen while idle
	if math.Abs(sim.Velocity.X) > 1 {
		dir := 1.0
		if !sim.FacingRight {
			dir = -1.0
		}
		target := dir * (config.Camera.Lookahead + math.Abs(sim.Velocity.X)*config.Camera.LookaheadSpeedMult)
		camera.LookAheadX += (target - camera.LookAheadX) * math.Min(1, config.Camera.Smoothing*FrameDT)
	}

	targetX := sim.Position.X + camera.LookAheadX
	targetY := sim.Position.Y
	if sim.Velocity.Y > config.Player.TerminalVelocity*0.5 {
		targetY += config.Camera.VerticalBias
	}

	// Deadzone: only move once the target escapes the box
	if dx := targetX - camera.Position.X; math.Abs(dx) > config.Camera.DeadzoneX {
		targetX = camera.Position.X + dx - math.Copysign(config.Camera.DeadzoneX, dx)
	} else {
		targetX = camera.Position.X
	}
	if dy := targetY - camera.Position.Y; math.Abs(dy) > config.Camera.DeadzoneY {
		targetY = camera.Position.Y + dy - math.Copysign(config.Camera.DeadzoneY, dy)
	} else {
		targetY = camera.Position.Y
	}

	targetX, targetY = clampToLevel(ld, targetX, targetY)

	t := math.Min(1, config.Camera.Smoothing*FrameDT)
	camera.Position.X += (targetX - camera.Position.X) * t
	camera.Position.Y += (targetY - camera.Position.Y) * t
}

// clampToLevel keeps the view inside the level, centering any axis where
// the level is smaller than the screen.
func clampToLevel(ld *components.LevelData, x, y float64) (float64, float64) {
	screenW := float64(config.C.Width)
	screenH := float64(config.C.Height)
	levelW := float64(ld.TileMap.Width) * ld.TileMap.TileSize
	levelH := float64(ld.TileMap.Height) * ld.TileMap.TileSize

	if levelW <= screenW {
		x = levelW / 2
	} else {
		x = math.Max(screenW/2, math.Min(levelW-screenW/2, x))
	}
	if levelH <= screenH {
		y = levelH / 2
	} else {
		y = math.Max(screenH/2, math.Min(levelH-screenH/2, y))
	}
	return x, y
}

// SnapCameraTo centers the camera instantly, for level loads and respawns.
func SnapCameraTo(e *ecs.ECS, pos gamemath.Vec2) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position = pos
	camera.LookAheadX = 0

	if ld := GetLevel(e); ld != nil && ld.TileMap != nil {
		camera.Position.X, camera.Position.Y = clampToLevel(ld, pos.X, pos.Y)
	}
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	camera.Position.X += offsetX
	camera.Position.Y += offsetY

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
