package factory

import (
	"github.com/automoto/octoplat/archetypes"
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec2) *donburi.Entry {
	entry := archetypes.Player.Spawn(ecs)

	sim := player.New(spawn)
	components.Player.SetValue(entry, components.PlayerData{
		Sim:        sim,
		Tracker:    feedback.NewTracker(),
		SpawnPoint: spawn,
		HP:         cfg.Player.MaxHP,
	})

	rect := sim.CollisionRect()
	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
