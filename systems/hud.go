package systems

import (
	"fmt"

	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/fonts"
	"github.com/automoto/octoplat/progression"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the in-game overlay (hearts, lives, gems, ability
// charges, run timer, banners).
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	state := GetAppState(e)
	if state == nil {
		return
	}

	switch state.Current {
	case cfg.StatePlaying, cfg.StatePaused:
		drawPlayerStatus(e, screen)
		drawRunStatus(e, screen)
		drawLevelText(e, screen, state)
	case cfg.StateLevelComplete:
		drawPlayerStatus(e, screen)
		drawRunStatus(e, screen)
		drawLevelCompleteBanner(e, screen)
	case cfg.StateRunComplete:
		drawRunCompleteBanner(e, screen)
	}
}

func drawPlayerStatus(e *ecs.ECS, screen *ebiten.Image) {
	pd := GetPlayer(e)
	if pd == nil {
		return
	}

	// Hearts
	for i := 0; i < cfg.Player.MaxHP; i++ {
		x := float32(10 + i*18)
		clr := cfg.Red
		if i >= pd.HP {
			clr = cfg.BlackOverlay
		}
		vector.DrawFilledCircle(screen, x+3, 13, 5, clr, true)
		vector.DrawFilledCircle(screen, x+9, 13, 5, clr, true)
		vector.DrawFilledRect(screen, x-1, 14, 14, 7, clr, false)
	}

	// Jet charge pips
	for i := 0; i < cfg.Player.JetMaxCharges; i++ {
		x := float32(10 + i*12)
		clr := cfg.LightBlue
		if i >= pd.Sim.JetCharges {
			clr = cfg.BlackOverlay
		}
		vector.DrawFilledCircle(screen, x, 32, 4, clr, true)
	}

	// Ink charge pips
	for i := 0; i < cfg.Player.InkMaxCharges; i++ {
		x := float32(10 + i*12)
		clr := cfg.Purple
		if i >= pd.Sim.InkCharges {
			clr = cfg.BlackOverlay
		}
		vector.DrawFilledCircle(screen, x, 46, 4, clr, true)
	}

	// Wall stamina bar, only while it is draining or refilling
	if pd.Sim.WallStamina < cfg.Player.WallStaminaMax {
		ratio := pd.Sim.WallStamina / cfg.Player.WallStaminaMax
		vector.FillRect(screen, 10, 56, 60, 5, cfg.BlackOverlay, false)
		vector.FillRect(screen, 10, 56, float32(60*ratio), 5, cfg.LightGreen, false)
	}
}

func drawRunStatus(e *ecs.ECS, screen *ebiten.Image) {
	progress := GetProgress(e)
	ld := GetLevel(e)
	if progress == nil || ld == nil || ld.Env == nil {
		return
	}
	width := float64(cfg.C.Width)
	smallFace := fonts.Small.Get()

	// Gems top-right
	vector.DrawFilledCircle(screen, float32(width)-70, 14, 5, cfg.GemGold, true)
	gemStr := fmt.Sprintf("%d/%d", ld.Env.GemsCollected, ld.Env.TotalGems)
	text.Draw(screen, gemStr, smallFace, int(width)-60, 18, cfg.White)

	// Lives under gems
	lives := progress.Manager.Lives.Current
	livesStr := fmt.Sprintf("x%d", lives)
	if lives == progression.InfiniteLives {
		livesStr = "x-"
	}
	vector.DrawFilledCircle(screen, float32(width)-70, 32, 5, cfg.Magenta, true)
	text.Draw(screen, livesStr, smallFace, int(width)-60, 36, cfg.White)

	// Run timer top-center
	if progress.Manager.InRun() {
		total := int(progress.Manager.Run.RunTime)
		timeStr := fmt.Sprintf("%d:%02d", total/60, total%60)
		textWidth := len(timeStr) * 8
		vector.FillRect(screen, float32(width/2)-34, 5, 68, 20, cfg.BlackOverlay, false)
		text.Draw(screen, timeStr, fonts.Bold.Get(), int(width/2)-textWidth/2, 20, cfg.White)
	}
}

func drawLevelText(e *ecs.ECS, screen *ebiten.Image, state *components.AppStateData) {
	if state.LevelTextTimer <= 0 {
		return
	}
	ld := GetLevel(e)
	if ld == nil || ld.Generated == nil {
		return
	}
	width := float64(cfg.C.Width)

	name := ld.Generated.Name
	sub := fmt.Sprintf("%s - level %d", ld.Biome.Definition().Name, ld.LevelIndex+1)

	nameWidth := len(name) * 16
	text.Draw(screen, name, fonts.Title.Get(),
		int(width/2)-nameWidth/2, 90, cfg.White)
	subWidth := len(sub) * 6
	text.Draw(screen, sub, fonts.Small.Get(),
		int(width/2)-subWidth/2, 110, cfg.LightBlue)
}

func drawLevelCompleteBanner(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	vector.FillRect(screen, 0, float32(height/2)-40, float32(width), 80,
		cfg.BlackOverlay, false)

	msg := "LEVEL COMPLETE"
	msgWidth := len(msg) * 16
	text.Draw(screen, msg, fonts.Title.Get(),
		int(width/2)-msgWidth/2, int(height/2), cfg.GemGold)

	if ld := GetLevel(e); ld != nil && ld.Env != nil {
		sub := fmt.Sprintf("gems %d/%d   time %.1fs",
			ld.Env.GemsCollected, ld.Env.TotalGems, ld.Env.LevelTime)
		subWidth := len(sub) * 6
		text.Draw(screen, sub, fonts.Small.Get(),
			int(width/2)-subWidth/2, int(height/2)+24, cfg.White)
	}
}

func drawRunCompleteBanner(e *ecs.ECS, screen *ebiten.Image) {
	progress := GetProgress(e)
	if progress == nil {
		return
	}
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	screen.Fill(cfg.DarkBlue)

	msg := "RUN COMPLETE"
	msgWidth := len(msg) * 16
	text.Draw(screen, msg, fonts.Title.Get(),
		int(width/2)-msgWidth/2, int(height/2)-60, cfg.GemGold)

	stats := progress.Manager.Stats()
	total := int(stats.RunTime)
	lines := []string{
		fmt.Sprintf("levels cleared  %d", stats.LevelsCompleted),
		fmt.Sprintf("gems collected  %d", stats.TotalGems),
		fmt.Sprintf("deaths          %d", stats.RunDeaths),
		fmt.Sprintf("time            %d:%02d", total/60, total%60),
	}
	boldFace := fonts.Bold.Get()
	for i, line := range lines {
		lineWidth := len(line) * 8
		text.Draw(screen, line, boldFace,
			int(width/2)-lineWidth/2, int(height/2)-20+i*22, cfg.White)
	}

	hint := "press select to return to the surface"
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, fonts.Small.Get(),
		int(width/2)-hintWidth/2, int(height/2)+80, cfg.LightBlue)
}
