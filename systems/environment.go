package systems

import (
	"github.com/automoto/octoplat/actions"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/level"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnvironment ticks level entities and resolves every interaction
// between the player and the environment. Interaction outcomes go through
// the action queue so state changes apply in a fixed order.
func UpdateEnvironment(e *ecs.ECS) {
	state := GetAppState(e)
	if state == nil || state.Current != cfg.StatePlaying {
		return
	}

	ld := GetLevel(e)
	pd := GetPlayer(e)
	progress := GetProgress(e)
	if ld == nil || pd == nil || progress == nil {
		return
	}

	ld.Env.Update(ld.TileMap, FrameDT)
	progress.Manager.UpdateRunTime(FrameDT)

	if progress.Death.Dead {
		if progress.Death.Update(FrameDT) {
			if progress.Manager.GameOver() {
				state.Actions.Push(actions.GameOver{})
			} else {
				state.Actions.Push(actions.Respawn{})
			}
		}
		return
	}

	sim := pd.Sim

	// Dynamic platforms first so the landing snap happens before any
	// contact checks read the hitbox.
	ld.Env.ApplyPlatformCarry(sim, FrameDT)
	ld.Env.HandlePlatformCollisions(sim)

	switch ld.Env.CheckEnemies(sim) {
	case level.EnemyHitPlayerDied:
		state.Actions.Push(actions.TakeDamage{Amount: 1, Source: sim.Position})
	case level.EnemyHitEnemyKilled:
		audio := GetAudio(e)
		if audio != nil {
			audio.Push(feedback.SoundEvent{ID: feedback.SoundJetBoost})
		}
		TriggerScreenShake(e, 3, 10)
	}

	if level.CheckHazards(sim, ld.TileMap) && !sim.Invincible() && !sim.Inked {
		state.Actions.Push(actions.TakeDamage{Amount: 1, Source: sim.Position})
	}

	if ld.Env.CheckBreakableBlocks(sim, ld.TileMap) {
		audio := GetAudio(e)
		if audio != nil {
			audio.Push(feedback.SoundEvent{ID: feedback.SoundDive})
		}
		TriggerScreenShake(e, 4, 12)
	}

	if level.CheckFallDeath(sim, float64(ld.TileMap.Height)*ld.TileMap.TileSize) {
		state.Actions.Push(actions.TriggerDeath{})
		return
	}

	playerRect := sim.CollisionRect()

	ld.Env.CollectGems(playerRect)

	if pos, activated := ld.Env.ActivateCheckpoint(playerRect); activated {
		if result, fired := feedback.ProcessCheckpoint(pd.Tracker, pos); fired {
			pushFeedback(e, result)
		}
	}

	if ld.Env.TouchingWaterPool(playerRect) {
		sim.RefillInk()
	}

	if ld.Env.AtExit(playerRect) && !ld.Env.LevelComplete {
		ld.Env.LevelComplete = true
		state.Actions.Push(actions.MarkLevelComplete{})
	}
}
