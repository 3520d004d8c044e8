package components

import (
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData wraps the headless movement simulation. The ECS entity is a
// thin shell: physics, state and abilities all live in Sim, systems feed
// it input and the collision world each frame.
type PlayerData struct {
	Sim     *player.Player
	Tracker *feedback.Tracker

	// SpawnPoint is the level spawn; respawn prefers the environment's
	// active checkpoint when one is set.
	SpawnPoint gamemath.Vec2

	HP int
}

var Player = donburi.NewComponentType[PlayerData]()
