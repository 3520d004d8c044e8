package systems

import (
	"github.com/automoto/octoplat/actions"
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause overlay and handles its menu.
func UpdatePause(e *ecs.ECS) {
	state := GetAppState(e)
	if state == nil {
		return
	}
	input := getOrCreateInput(e)
	pause := getOrCreatePause(e)

	switch state.Current {
	case cfg.StatePlaying:
		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.SelectedIndex = 0
			state.Actions.Push(actions.SetStateDirect{State: cfg.StatePaused})
			state.Actions.Push(actions.PlaySound{
				Sound: feedback.SoundEvent{ID: feedback.SoundPause},
			})
		}
		return
	case cfg.StatePaused:
	default:
		return
	}

	numOptions := len(pause.Options)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedIndex = (pause.SelectedIndex - 1 + numOptions) % numOptions
		pushPauseSound(state, feedback.SoundMenuMove)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedIndex = (pause.SelectedIndex + 1) % numOptions
		pushPauseSound(state, feedback.SoundMenuMove)
	}

	if GetAction(input, cfg.ActionPause).JustPressed || GetAction(input, cfg.ActionMenuBack).JustPressed {
		state.Actions.Push(actions.SetStateDirect{State: cfg.StatePlaying})
		pushPauseSound(state, feedback.SoundMenuBack)
		return
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		pushPauseSound(state, feedback.SoundMenuSelect)
		switch pause.Options[pause.SelectedIndex] {
		case components.PauseResume:
			state.Actions.Push(actions.SetStateDirect{State: cfg.StatePlaying})
		case components.PauseRestartLevel:
			state.Actions.Push(actions.RestartLevel{})
		case components.PauseReturnToMenu:
			state.Actions.Push(actions.ReturnToMenu{})
		}
	}
}

func pushPauseSound(state *components.AppStateData, id feedback.SoundID) {
	state.Actions.Push(actions.PlaySound{Sound: feedback.SoundEvent{ID: id}})
}

func getOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(entry, components.PauseData{
			Options: []components.PauseOption{
				components.PauseResume,
				components.PauseRestartLevel,
				components.PauseReturnToMenu,
			},
		})
	}
	return components.Pause.Get(entry)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	state := GetAppState(e)
	if state == nil || state.Current != cfg.StatePaused {
		return
	}
	pause := getOrCreatePause(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(height)/3, cfg.White)

	menuFont := fonts.Bold.Get()
	labels := []string{"Resume", "Restart Level", "Return to Menu"}
	for i, label := range labels {
		clr := cfg.White
		if i == pause.SelectedIndex {
			clr = cfg.GemGold
			label = "> " + label
		}
		x := int((width - float64(len(label)*12)) / 2)
		y := int(height)/3 + 50 + i*34
		text.Draw(screen, label, menuFont, x, y, clr)
	}
}
