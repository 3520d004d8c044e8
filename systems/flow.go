package systems

import (
	"github.com/automoto/octoplat/actions"
	cfg "github.com/automoto/octoplat/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlow advances the between-level states: the level-complete banner
// rolls into the next level, and the run-complete screen waits for a
// confirm before returning to the menu.
func UpdateFlow(e *ecs.ECS) {
	state := GetAppState(e)
	if state == nil {
		return
	}

	switch state.Current {
	case cfg.StatePlaying:
		if state.LevelTextTimer > 0 {
			state.LevelTextTimer -= FrameDT
		}

	case cfg.StateLevelComplete:
		if tr := GetTransition(e); tr != nil && tr.Active() {
			return
		}
		state.LevelTextTimer -= FrameDT
		if state.LevelTextTimer <= 0 {
			state.Actions.Push(actions.NextLevel{})
		}

	case cfg.StateRunComplete:
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionMenuBack).JustPressed {
			state.Actions.Push(actions.ReturnToMenu{})
		}
	}
}
