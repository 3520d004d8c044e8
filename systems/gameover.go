package systems

import (
	"fmt"

	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the game over menu system. retry restarts a
// run with the same settings; toMenu returns to the main menu.
func NewUpdateGameOver(retry, toMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := getOrCreateGameOver(e)
		input := getOrCreateInput(e)

		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pushMenuSound(e, feedback.SoundMenuMove)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pushMenuSound(e, feedback.SoundMenuMove)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			pushMenuSound(e, feedback.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				retry()
			case components.GameOverMenu:
				toMenu()
			}
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			toMenu()
		}
	}
}

func getOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if entry, ok := components.GameOver.First(e.World); ok {
		return components.GameOver.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.GameOver))
	return components.GameOver.Get(entry)
}

// DrawGameOver renders the game over screen with the run summary.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := getOrCreateGameOver(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height),
		cfg.InkDark, false)

	title := "OUT OF LIVES"
	titleWidth := len(title) * 20
	text.Draw(screen, title, fonts.Title.Get(),
		int(width/2)-titleWidth/2, 100, cfg.Red)

	stats := gameOver.Stats
	total := int(stats.RunTime)
	lines := []string{
		fmt.Sprintf("levels cleared  %d", stats.LevelsCompleted),
		fmt.Sprintf("gems collected  %d", stats.TotalGems),
		fmt.Sprintf("deaths          %d", stats.RunDeaths),
		fmt.Sprintf("time            %d:%02d", total/60, total%60),
	}
	smallFace := fonts.Small.Get()
	for i, line := range lines {
		lineWidth := len(line) * 7
		text.Draw(screen, line, smallFace,
			int(width/2)-lineWidth/2, 150+i*18, cfg.White)
	}

	if gameOver.NewBest {
		best := "new best run!"
		bestWidth := len(best) * 7
		text.Draw(screen, best, smallFace,
			int(width/2)-bestWidth/2, 230, cfg.GemGold)
	} else if gameOver.BestLevels > 0 {
		best := fmt.Sprintf("best  %d levels / %d gems",
			gameOver.BestLevels, gameOver.BestGems)
		bestWidth := len(best) * 7
		text.Draw(screen, best, smallFace,
			int(width/2)-bestWidth/2, 230, cfg.LightBlue)
	}

	menuFont := fonts.Bold.Get()
	options := []string{"Dive Again", "Main Menu"}
	for i, label := range options {
		clr := cfg.White
		if components.GameOverOption(i) == gameOver.SelectedOption {
			clr = cfg.GemGold
			label = "> " + label
		}
		labelWidth := len(label) * 10
		text.Draw(screen, label, menuFont,
			int(width/2)-labelWidth/2, int(height)-120+i*32, clr)
	}
}
