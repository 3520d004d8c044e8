package systems

import (
	"fmt"
	"time"

	"github.com/automoto/octoplat/actions"
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/procgen"
	"github.com/automoto/octoplat/progression"
	"github.com/automoto/octoplat/save"
	"github.com/yohamta/donburi/ecs"
)

// deathAnimationTime is how long the death effect plays before the
// respawn or game-over decision.
const deathAnimationTime = 0.9

// UpdateActions drains the action queue. Actions pushed by handlers
// during the drain are applied in the same frame, and state transitions
// are visible to every action behind them in the queue.
func UpdateActions(e *ecs.ECS) {
	state := GetAppState(e)
	if state == nil {
		return
	}
	state.Actions.Dispatch(actions.HandlerFunc(func(a actions.Action) {
		applyAction(e, a)
	}))
}

func applyAction(e *ecs.ECS, a actions.Action) {
	state := GetAppState(e)

	switch act := a.(type) {
	case actions.TransitionTo:
		StartTransition(e, func() {
			state.Previous = state.Current
			state.Current = act.State
		})

	case actions.SetStateDirect:
		state.Previous = state.Current
		state.Current = act.State

	case actions.ReturnToMenu:
		if progress := GetProgress(e); progress != nil {
			progress.Manager.EndRun()
			saveQuietly(e)
		}
		state.Previous = state.Current
		state.Current = cfg.StateMenu

	case actions.ShowError:
		state.ErrorMessage = act.Message
		state.Previous = state.Current
		state.Current = cfg.StateError

	case actions.PlaySound:
		if audio := GetAudio(e); audio != nil {
			audio.Push(act.Sound)
		}

	case actions.PlayMusic:
		if audio := GetAudio(e); audio != nil {
			audio.CurrentMusic = act.Track
			audio.MusicFade = 0
			audio.MusicStopped = false
		}

	case actions.CrossfadeMusic:
		if audio := GetAudio(e); audio != nil {
			audio.CurrentMusic = act.Track
			audio.MusicFade = act.Duration
			audio.MusicStopped = false
		}

	case actions.StopMusic:
		if audio := GetAudio(e); audio != nil {
			audio.MusicStopped = true
		}

	case actions.TakeDamage:
		applyDamage(e, act.Amount)

	case actions.TriggerDeath:
		applyDeath(e)

	case actions.Respawn:
		applyRespawn(e)

	case actions.GameOver:
		applyGameOver(e)

	case actions.AwardExtraLife:
		if progress := GetProgress(e); progress != nil {
			if progress.Manager.AwardExtraLife(cfg.Run.MaxLives) {
				state.Actions.Push(actions.PlaySound{
					Sound: feedback.SoundEvent{ID: feedback.SoundExtraLife},
				})
			}
		}

	case actions.RestartLevel:
		applyRestartLevel(e)

	case actions.MarkLevelComplete:
		applyLevelComplete(e)

	case actions.SetLevelTextTimer:
		state.LevelTextTimer = act.Seconds

	case actions.NextLevel:
		applyNextLevel(e)

	case actions.StartRun:
		applyStartRun(e, act)

	case actions.StartBiomeChallenge:
		applyStartBiomeChallenge(e, act)

	case actions.CompleteRogueliteLevel:
		applyRogueliteAdvance(e)

	case actions.SetGameplayDifficulty:
		if progress := GetProgress(e); progress != nil {
			progress.Difficulty = act.Difficulty
		}

	case actions.ExitRogueliteMode:
		if progress := GetProgress(e); progress != nil {
			progress.Manager.EndRun()
		}
	}
}

func applyDamage(e *ecs.ECS, amount int) {
	state := GetAppState(e)
	pd := GetPlayer(e)
	progress := GetProgress(e)
	if pd == nil || progress == nil || progress.Death.Dead {
		return
	}
	if pd.Sim.Invincible() {
		return
	}

	pd.HP -= amount
	pd.Sim.TriggerHitFlash()
	pd.Sim.StartInvincibility(cfg.Player.InvincibilityDuration)
	TriggerScreenShake(e, 4, 12)

	if pd.HP <= 0 {
		state.Actions.Push(actions.TriggerDeath{})
		return
	}
	state.Actions.Push(actions.PlaySound{
		Sound: feedback.SoundEvent{ID: feedback.SoundPlayerHurt},
	})
}

func applyDeath(e *ecs.ECS) {
	pd := GetPlayer(e)
	progress := GetProgress(e)
	if pd == nil || progress == nil || progress.Death.Dead {
		return
	}

	progress.Death.Trigger(pd.Sim.Position, deathAnimationTime)
	progress.Manager.RecordDeath()
	progress.Save.Mutate().TotalDeaths++

	if audio := GetAudio(e); audio != nil {
		audio.Push(feedback.SoundEvent{ID: feedback.SoundPlayerDeath})
	}
	TriggerScreenShake(e, 7, 20)
}

func applyRespawn(e *ecs.ECS) {
	pd := GetPlayer(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	if pd == nil || ld == nil || progress == nil {
		return
	}

	progress.Death.Respawn()

	// Checkpoint respawns keep collected gems and destroyed blocks but
	// put enemies and platforms back.
	ld.Env.ResetEnemies()
	ld.Env.ResetPlatforms()

	pos := RespawnPosition(ld.Env, pd.SpawnPoint)
	pos = NudgeOutOfSolids(e, pos)
	resetPlayerAt(pd, pos)
	pd.Sim.StartInvincibility(cfg.Player.InvincibilityDuration)

	SnapCameraTo(e, pos)
}

func applyGameOver(e *ecs.ECS) {
	state := GetAppState(e)
	progress := GetProgress(e)
	if progress == nil {
		return
	}

	recordRunToSave(e)
	saveQuietly(e)

	state.Previous = state.Current
	state.Current = cfg.StateGameOver
	state.Actions.Push(actions.CrossfadeMusic{Track: feedback.MusicGameOver, Duration: 1})
}

// recordRunToSave folds the finished run into the endless leaderboard and
// lifetime stats.
func recordRunToSave(e *ecs.ECS) {
	progress := GetProgress(e)
	if progress == nil || !progress.Manager.InRun() {
		return
	}

	stats := progress.Manager.Stats()
	data := progress.Save.Mutate()
	data.TotalGems += stats.TotalGems
	data.TotalPlaytime += stats.RunTime

	data.RecordEndlessRun(save.EndlessRun{
		Seed:            progress.Manager.Run.StartSeed,
		LevelsCompleted: stats.LevelsCompleted,
		GemsCollected:   stats.TotalGems,
		Deaths:          stats.RunDeaths,
		Time:            stats.RunTime,
		Timestamp:       time.Now().Unix(),
	})
}

func applyRestartLevel(e *ecs.ECS) {
	pd := GetPlayer(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	state := GetAppState(e)
	if pd == nil || ld == nil || ld.TileMap == nil {
		return
	}

	if progress != nil {
		progress.Death.Respawn()
	}

	ld.Env.SetupFromTileMap(ld.TileMap)
	resetPlayerAt(pd, pd.SpawnPoint)
	SnapCameraTo(e, pd.SpawnPoint)
	state.Previous = state.Current
	state.Current = cfg.StatePlaying
}

func applyLevelComplete(e *ecs.ECS) {
	state := GetAppState(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	if ld == nil || progress == nil {
		return
	}

	name := levelName(ld)
	progress.Save.Mutate().CompleteLevel(name, ld.Env.LevelTime, ld.Env.GemsCollected)
	saveQuietly(e)

	state.Previous = state.Current
	state.Current = cfg.StateLevelComplete
	state.LevelTextTimer = 2

	state.Actions.Push(actions.PlaySound{
		Sound: feedback.SoundEvent{ID: feedback.SoundLevelComplete},
	})
	if progress.Manager.InRun() {
		state.Actions.Push(actions.CompleteRogueliteLevel{})
	}
}

// applyRogueliteAdvance folds the completed level into the run and checks
// the extra-life gem milestone.
func applyRogueliteAdvance(e *ecs.ECS) {
	state := GetAppState(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	if ld == nil || progress == nil {
		return
	}

	progress.Manager.CompleteLevel(ld.Env.GemsCollected)

	// A locked biome wraps its level counter when the last level falls;
	// an open run finishes when the final biome wraps.
	biomes := progress.Manager.Run.Biomes
	_, locked := biomes.Locked()
	if biomes.BiomeProgress() == 0 {
		if locked || !biomeHasNext(biomes.CurrentID()) {
			state.Previous = state.Current
			state.Current = cfg.StateRunComplete
			recordRunToSave(e)
			saveQuietly(e)
			return
		}
	}

	stats := progress.Manager.Stats()
	if progress.Manager.CheckGemMilestone(stats.TotalGems, cfg.Run.MaxLives) {
		state.Actions.Push(actions.PlaySound{
			Sound: feedback.SoundEvent{ID: feedback.SoundExtraLife},
		})
	}
}

func applyNextLevel(e *ecs.ECS) {
	state := GetAppState(e)
	ld := GetLevel(e)
	if ld == nil {
		return
	}

	ld.LevelIndex++
	StartTransition(e, func() {
		LoadCurrentLevel(e)
		state.Previous = state.Current
		state.Current = cfg.StatePlaying
	})
}

func applyStartRun(e *ecs.ECS, act actions.StartRun) {
	state := GetAppState(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	if ld == nil || progress == nil {
		return
	}

	startingLives := progress.Difficulty.Apply()
	progress.Manager.StartRun(startingLives, act.Seed, act.Seeded)
	progress.Manager.Run.Preset = act.Preset
	progress.Death = progression.DeathState{}

	ld.Gen.InitSequencer(act.Seed)
	ld.LevelIndex = 0
	LoadCurrentLevel(e)

	state.Previous = state.Current
	state.Current = cfg.StatePlaying
	state.Actions.Push(actions.CrossfadeMusic{Track: feedback.MusicGameplay, Duration: 1})
}

func applyStartBiomeChallenge(e *ecs.ECS, act actions.StartBiomeChallenge) {
	state := GetAppState(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	if ld == nil || progress == nil {
		return
	}

	startingLives := progress.Difficulty.Apply()
	progress.Manager.StartBiomeChallenge(act.Biome, act.Preset, act.Seed, act.Seeded, startingLives)
	progress.Death = progression.DeathState{}

	ld.Gen.InitSequencer(act.Seed)
	ld.LevelIndex = 0
	LoadCurrentLevel(e)

	state.Previous = state.Current
	state.Current = cfg.StatePlaying
	state.Actions.Push(actions.CrossfadeMusic{Track: feedback.MusicGameplay, Duration: 1})
}

// levelName is the stable key used for per-level bests in the save file.
func levelName(ld *components.LevelData) string {
	if ld.Generated != nil && ld.Generated.Name != "" {
		return ld.Generated.Name
	}
	return fmt.Sprintf("%s-%d", ld.Biome, ld.LevelIndex)
}

func biomeHasNext(b procgen.BiomeID) bool {
	_, ok := b.Next()
	return ok
}

func saveQuietly(e *ecs.ECS) {
	if progress := GetProgress(e); progress != nil {
		_ = progress.Save.SaveIfDirty()
	}
}
