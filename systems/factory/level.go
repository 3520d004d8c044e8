package factory

import (
	"github.com/automoto/octoplat/archetypes"
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/level"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/progression"
	"github.com/automoto/octoplat/save"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with an empty environment; the
// first LoadCurrentLevel fills it.
func CreateLevel(ecs *ecs.ECS, gen *procgen.Manager) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Env: level.NewEnvironment(),
		Gen: gen,
	})
	return entry
}

// CreateSession spawns the singleton session entity: app state, action
// queue, progression, audio/effect pools and the transition slot.
func CreateSession(ecs *ecs.ECS, store *save.Manager, difficulty cfg.GameplayDifficulty) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)

	components.AppState.SetValue(entry, components.AppStateData{
		Current: cfg.StatePlaying,
	})
	components.Progress.SetValue(entry, components.ProgressData{
		Manager:    progression.NewManager(cfg.Run.StartingLives),
		Save:       store,
		Difficulty: difficulty,
	})
	components.Audio.SetValue(entry, components.AudioData{
		CurrentMusic: feedback.MusicGameplay,
	})
	components.Effects.SetValue(entry, components.EffectsData{})
	components.Transition.SetValue(entry, components.TransitionData{})

	return entry
}
