package systems

import (
	"fmt"

	"github.com/automoto/octoplat/actions"
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/level"
	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/automoto/octoplat/shared/leveldata"
	"github.com/automoto/octoplat/shared/procrand"
	"github.com/yohamta/donburi/ecs"
)

// levelSeedStride separates per-level seeds derived from the run seed.
const levelSeedStride = 7919

// LoadCurrentLevel generates the level for the run's current biome and
// level index and rebuilds the environment, player and collision space
// around it. Pushes ShowError when generation fails.
func LoadCurrentLevel(e *ecs.ECS) {
	state := GetAppState(e)
	ld := GetLevel(e)
	pd := GetPlayer(e)
	progress := GetProgress(e)
	if state == nil || ld == nil || pd == nil || progress == nil {
		return
	}

	run := progress.Manager.Run
	biome := run.Biomes.CurrentID()
	seed := run.StartSeed + uint64(ld.LevelIndex)*levelSeedStride

	generated, err := ld.Gen.GenerateLevel(biome, run.Preset, ld.LevelIndex, seed)
	if err != nil {
		state.Actions.Push(actions.ShowError{
			Message: fmt.Sprintf("level generation failed: %v", err),
		})
		return
	}

	tm, err := leveldata.ParseTileMap(generated.MapData, leveldata.DefaultTileSize)
	if err != nil {
		state.Actions.Push(actions.ShowError{
			Message: fmt.Sprintf("generated level failed to parse: %v", err),
		})
		return
	}

	ld.TileMap = tm
	ld.Generated = generated
	ld.Biome = biome
	ld.Rng = procrand.NewStream(seed, 0xFEED)

	ld.Env.SetupFromTileMap(tm)

	spawn := findSpawn(tm)
	pd.SpawnPoint = spawn
	resetPlayerAt(pd, spawn)

	RebuildSpace(e, tm)

	state.LevelTextTimer = 3
}

// findSpawn locates the spawn marker, with a safe fallback near the top
// left if a level somehow lacks one.
func findSpawn(tm *leveldata.TileMap) gamemath.Vec2 {
	if pos, ok := tm.SpawnPosition(); ok {
		return gamemath.Vec2(pos)
	}
	return gamemath.Vec2{X: tm.TileSize * 2, Y: tm.TileSize * 2}
}

// resetPlayerAt replaces the simulation with a fresh one at pos and
// rearms feedback tracking and HP.
func resetPlayerAt(pd *components.PlayerData, pos gamemath.Vec2) {
	pd.Sim = player.New(pos)
	pd.Tracker.Reset()
	pd.HP = cfg.Player.MaxHP
}

// RespawnPosition picks the active checkpoint when one is set, otherwise
// the level spawn.
func RespawnPosition(env *level.Environment, spawn gamemath.Vec2) gamemath.Vec2 {
	if env.HasCheckpoint {
		return env.ActiveCheckpoint
	}
	return spawn
}
