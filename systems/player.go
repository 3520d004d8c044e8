package systems

import (
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/player"
	"github.com/yohamta/donburi/ecs"
)

// FrameDT is the fixed simulation step. Ebiten ticks at 60hz.
const FrameDT = 1.0 / 60.0

// UpdatePlayer feeds the frame's input and collision world into the
// movement simulation. Runs only while gameplay is active.
func UpdatePlayer(e *ecs.ECS) {
	state := GetAppState(e)
	if state == nil || state.Current != cfg.StatePlaying {
		return
	}

	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	pd := components.Player.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	ld := components.Level.Get(levelEntry)

	progress := GetProgress(e)
	if progress != nil && progress.Death.Dead {
		return
	}

	input := getOrCreateInput(e)
	in := buildPlayerInput(input)

	w := ld.Env.BuildWorld(ld.TileMap, pd.Sim.Position)
	pd.Sim.Update(&in, w, FrameDT)
}

// buildPlayerInput maps polled actions onto the simulation's input frame.
func buildPlayerInput(input *components.InputData) player.Input {
	var in player.Input

	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		in.MoveX -= 1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		in.MoveX += 1
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		in.MoveY -= 1
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		in.MoveY += 1
	}

	in.JumpPressed = GetAction(input, cfg.ActionJump).JustPressed
	in.JumpReleased = GetAction(input, cfg.ActionJump).JustReleased
	in.SprintHeld = GetAction(input, cfg.ActionSprint).Pressed

	in.GrapplePressed = GetAction(input, cfg.ActionGrapple).JustPressed
	in.GrappleHeld = GetAction(input, cfg.ActionGrapple).Pressed

	in.InkPressed = GetAction(input, cfg.ActionInk).JustPressed
	in.JetPressed = GetAction(input, cfg.ActionJet).JustPressed

	return in
}
