package systems

import (
	"math"

	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/level"
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/tilerender"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders the level and everything living in it.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	ld := GetLevel(e)
	pd := GetPlayer(e)
	if ld == nil || ld.TileMap == nil {
		return
	}

	theme := &ld.Biome.Definition().Theme
	camX, camY := cameraOffset(e, screen)

	tilerender.DrawBackground(screen, theme)
	drawDecorations(screen, ld, theme, camX, camY)
	tilerender.DrawTiles(screen, ld.TileMap, ld.Env, theme, camX, camY)

	drawGems(screen, ld, camX, camY)
	drawPlatforms(screen, ld, theme, camX, camY)
	drawCheckpoints(screen, ld, camX, camY)
	drawEnemies(screen, ld, camX, camY)

	if pd != nil {
		drawPlayer(e, screen, pd, camX, camY)
	}

	drawActiveEffects(e, screen, camX, camY)
}

// cameraOffset converts the camera center into a top-left world offset.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(screen.Bounds().Dx())/2,
		camera.Position.Y - float64(screen.Bounds().Dy())/2
}

// drawDecorations renders biome props behind the terrain. Shapes stay
// simple; variety comes from variant, scale, and phase.
func drawDecorations(screen *ebiten.Image, ld *components.LevelData, theme *procgen.BiomeTheme, camX, camY float64) {
	accent := theme.AccentColor.RGBA()
	particle := theme.ParticleColor.RGBA()

	for i := range ld.Env.Decorations {
		d := &ld.Env.Decorations[i]
		x := d.Position.X - camX
		y := d.Position.Y - camY
		if x < -64 || x > float64(screen.Bounds().Dx())+64 {
			continue
		}

		sway := math.Sin(ld.Env.LevelTime*1.5+d.Phase*math.Pi*2) * 3 * d.Scale
		if d.Type.Floating() {
			y += sway
		}

		switch d.Variant % 2 {
		case 0:
			h := 14 * d.Scale
			vector.StrokeLine(screen,
				float32(x), float32(y),
				float32(x+sway), float32(y-h), 2, accent, true)
		default:
			vector.DrawFilledCircle(screen,
				float32(x), float32(y), float32(3*d.Scale), particle, true)
		}
	}
}

func drawGems(screen *ebiten.Image, ld *components.LevelData, camX, camY float64) {
	for _, g := range ld.Env.Gems {
		if g.Collected {
			continue
		}
		pos := g.RenderPosition(ld.Env.LevelTime)
		vector.DrawFilledCircle(screen,
			float32(pos.X-camX), float32(pos.Y-camY), 6, cfg.GemGold, true)
		vector.DrawFilledCircle(screen,
			float32(pos.X-camX-2), float32(pos.Y-camY-2), 2, cfg.White, true)
	}
}

func drawPlatforms(screen *ebiten.Image, ld *components.LevelData, theme *procgen.BiomeTheme, camX, camY float64) {
	for _, mp := range ld.Env.MovingPlatforms {
		r := mp.CollisionRect()
		vector.DrawFilledRect(screen,
			float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H),
			theme.PlatformColor.RGBA(), false)
		vector.StrokeRect(screen,
			float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H),
			1, theme.PlatformBorderColor().RGBA(), false)
	}

	for _, cp := range ld.Env.CrumblingPlatforms {
		if cp.State == level.CrumbleRespawning {
			continue
		}
		r := cp.CollisionRect()
		shake := cp.ShakeOffset()
		clr := theme.PlatformColor
		if cp.State == level.CrumbleFalling {
			clr.A = 0.6
		}
		vector.DrawFilledRect(screen,
			float32(r.X+shake.X-camX), float32(r.Y+shake.Y-camY),
			float32(r.W), float32(r.H), clr.RGBA(), false)
	}
}

func drawCheckpoints(screen *ebiten.Image, ld *components.LevelData, camX, camY float64) {
	for _, c := range ld.Env.Checkpoints {
		clr := cfg.DarkBlue
		if ld.Env.HasCheckpoint && ld.Env.ActiveCheckpoint == c {
			clr = cfg.LightGreen
		}
		vector.DrawFilledRect(screen,
			float32(c.X-camX-2), float32(c.Y-camY-14), 4, 28, clr, false)
		vector.DrawFilledRect(screen,
			float32(c.X-camX+2), float32(c.Y-camY-14), 10, 8, clr, false)
	}

	if ld.Env.HasExit {
		ex := ld.Env.ExitPosition
		vector.StrokeCircle(screen,
			float32(ex.X-camX), float32(ex.Y-camY), 14, 3, cfg.GemGold, true)
		vector.DrawFilledCircle(screen,
			float32(ex.X-camX), float32(ex.Y-camY), 6, cfg.White, true)
	}

	for _, wp := range ld.Env.WaterPools {
		vector.DrawFilledCircle(screen,
			float32(wp.X-camX), float32(wp.Y-camY), 10, cfg.InkDark, true)
	}

	for _, gp := range ld.Env.GrapplePoints {
		vector.StrokeCircle(screen,
			float32(gp.X-camX), float32(gp.Y-camY), 5, 2, cfg.LightBlue, true)
	}
}

func drawEnemies(screen *ebiten.Image, ld *components.LevelData, camX, camY float64) {
	for _, c := range ld.Env.Crabs {
		if !c.Alive {
			continue
		}
		r := c.CollisionRect()
		clr := cfg.Orange
		if c.HitFlashTimer > 0 {
			clr = cfg.White
		}
		y := r.Y + c.BobOffset()
		vector.DrawFilledRect(screen,
			float32(r.X-camX), float32(y-camY), float32(r.W), float32(r.H), clr, false)
		// Legs
		phase := c.WalkPhase()
		for i := 0; i < 3; i++ {
			lx := r.X + float64(i)*r.W/3 + 3
			ly := y + r.H + math.Sin(phase+float64(i))*2
			vector.StrokeLine(screen,
				float32(lx-camX), float32(y+r.H-camY),
				float32(lx-camX), float32(ly-camY+3), 1, clr, false)
		}
	}

	for _, pf := range ld.Env.Pufferfish {
		if !pf.Alive {
			continue
		}
		r := pf.CollisionRect()
		clr := cfg.Purple
		if pf.HitFlashTimer > 0 {
			clr = cfg.White
		}
		radius := float32(r.W / 2 * pf.PulseScale())
		vector.DrawFilledCircle(screen,
			float32(r.Center().X-camX), float32(r.Center().Y-camY), radius, clr, true)
	}
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, pd *components.PlayerData, camX, camY float64) {
	progress := GetProgress(e)
	sim := pd.Sim

	if progress != nil && progress.Death.Dead {
		drawDeathEffect(screen, progress, camX, camY)
		return
	}

	// Invincibility blink
	if sim.Invincible() && int(sim.InvincibilityTimer*10)%2 == 0 {
		return
	}

	w := cfg.Player.HitboxWidth
	h := cfg.Player.HitboxHeight * sim.VisualScaleY
	x := sim.Position.X - w/2
	y := sim.Position.Y + cfg.Player.HitboxHeight/2 - h

	clr := cfg.Magenta
	if sim.HitFlashTimer > 0 {
		clr = cfg.White
	} else if sim.Inked {
		clr = cfg.InkDark
	}

	// Grapple rope under the body
	if sim.State == player.StateSwinging {
		gp := sim.GrapplePoint
		vector.StrokeLine(screen,
			float32(sim.Position.X-camX), float32(sim.Position.Y-camY),
			float32(gp.X-camX), float32(gp.Y-camY), 2, cfg.LightBlue, true)
	}

	// Body with rounded head
	vector.DrawFilledRect(screen,
		float32(x-camX), float32(y-camY), float32(w), float32(h), clr, false)
	vector.DrawFilledCircle(screen,
		float32(sim.Position.X-camX), float32(y-camY), float32(w/2), clr, true)

	// Eyes track facing
	eyeOffset := 4.0
	if !sim.FacingRight {
		eyeOffset = -eyeOffset
	}
	vector.DrawFilledCircle(screen,
		float32(sim.Position.X+eyeOffset-camX), float32(y+4-camY), 3, cfg.White, true)

	// Jet flame while boosting
	if sim.State == player.StateJetBoosting {
		tail := sim.Position.Sub(sim.JetDirection.Scale(w))
		vector.StrokeLine(screen,
			float32(sim.Position.X-camX), float32(sim.Position.Y-camY),
			float32(tail.X-camX), float32(tail.Y-camY), 4, cfg.LightBlue, true)
	}
}

func drawDeathEffect(screen *ebiten.Image, progress *components.ProgressData, camX, camY float64) {
	if !progress.Death.HasPosition {
		return
	}
	pos := progress.Death.Position
	t := progress.Death.AnimationProgress(deathAnimationTime)

	// Expanding ink burst
	radius := float32(10 + t*40)
	clr := cfg.InkDark
	clr.A = uint8(float64(clr.A) * (1 - t))
	vector.StrokeCircle(screen,
		float32(pos.X-camX), float32(pos.Y-camY), radius, 3, clr, true)
}

func drawActiveEffects(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	effects := GetEffects(e)
	if effects == nil {
		return
	}

	for i := range effects.Active {
		fx := &effects.Active[i]
		t := fx.Progress()
		fade := 1 - t

		switch fx.Type {
		case feedback.EffectInkCloud:
			clr := cfg.InkDark
			clr.A = uint8(200 * fade)
			vector.DrawFilledCircle(screen,
				float32(fx.Position.X-camX), float32(fx.Position.Y-camY),
				float32(12+t*20), clr, true)

		case feedback.EffectGemCollect:
			clr := cfg.GemGold
			clr.A = uint8(255 * fade)
			vector.StrokeCircle(screen,
				float32(fx.Position.X-camX), float32(fx.Position.Y-camY),
				float32(4+t*14), 2, clr, true)

		case feedback.EffectCheckpoint:
			clr := cfg.LightGreen
			clr.A = uint8(255 * fade)
			vector.StrokeCircle(screen,
				float32(fx.Position.X-camX), float32(fx.Position.Y-camY),
				float32(6+t*24), 2, clr, true)

		default:
			clr := cfg.White
			clr.A = uint8(160 * fade)
			size := float32(3 + fx.Intensity*3)
			vector.DrawFilledCircle(screen,
				float32(fx.Position.X-camX), float32(fx.Position.Y-camY),
				size, clr, true)
		}
	}
}
