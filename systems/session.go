package systems

import (
	"github.com/automoto/octoplat/components"
	"github.com/yohamta/donburi/ecs"
)

// Singleton component accessors. The world scene spawns exactly one
// session entity carrying these; nil returns mean the scene is still
// configuring.

func GetAppState(e *ecs.ECS) *components.AppStateData {
	entry, ok := components.AppState.First(e.World)
	if !ok {
		return nil
	}
	return components.AppState.Get(entry)
}

func GetProgress(e *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return nil
	}
	return components.Progress.Get(entry)
}

func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func GetAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry)
}

func GetEffects(e *ecs.ECS) *components.EffectsData {
	entry, ok := components.Effects.First(e.World)
	if !ok {
		return nil
	}
	return components.Effects.Get(entry)
}

func GetTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		return nil
	}
	return components.Transition.Get(entry)
}

func GetPlayer(e *ecs.ECS) *components.PlayerData {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return nil
	}
	return components.Player.Get(entry)
}
