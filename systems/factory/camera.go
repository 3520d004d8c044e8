package factory

import (
	"github.com/automoto/octoplat/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Camera.Spawn(ecs)
}
