package config

import "github.com/yohamta/donburi/ecs"

// ECS render/update layers.
const (
	Default ecs.LayerID = iota
)
