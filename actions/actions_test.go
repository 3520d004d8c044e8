package actions

import (
	"testing"

	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
)

func TestDispatchOrder(t *testing.T) {
	var q Queue
	q.Push(PlaySound{Sound: feedback.SoundEvent{ID: feedback.SoundJump}})
	q.Push(MarkLevelComplete{})
	q.PushAll(NextLevel{}, StopMusic{})

	var got []Action
	n := q.Dispatch(HandlerFunc(func(a Action) {
		got = append(got, a)
	}))

	if n != 4 || len(got) != 4 {
		t.Fatalf("dispatched %d actions, want 4", n)
	}
	if _, ok := got[0].(PlaySound); !ok {
		t.Errorf("got[0] = %T, want PlaySound", got[0])
	}
	if _, ok := got[1].(MarkLevelComplete); !ok {
		t.Errorf("got[1] = %T, want MarkLevelComplete", got[1])
	}
	if _, ok := got[2].(NextLevel); !ok {
		t.Errorf("got[2] = %T, want NextLevel", got[2])
	}
	if _, ok := got[3].(StopMusic); !ok {
		t.Errorf("got[3] = %T, want StopMusic", got[3])
	}
	if !q.Empty() {
		t.Error("queue not empty after dispatch")
	}
}

func TestTransitionVisibleToLaterActions(t *testing.T) {
	var q Queue
	q.Push(SetStateDirect{State: config.StatePlaying})
	q.Push(PlaySound{Sound: feedback.SoundEvent{ID: feedback.SoundMenuSelect}})

	state := config.StateMenu
	var stateWhenSoundPlayed config.AppState
	q.Dispatch(HandlerFunc(func(a Action) {
		switch a := a.(type) {
		case SetStateDirect:
			state = a.State
		case PlaySound:
			stateWhenSoundPlayed = state
		}
	}))

	if stateWhenSoundPlayed != config.StatePlaying {
		t.Errorf("later action saw state %v, want Playing", stateWhenSoundPlayed)
	}
}

func TestDispatchAppliesActionsEnqueuedDuringDispatch(t *testing.T) {
	var q Queue
	q.Push(TriggerDeath{})

	var applied []string
	n := q.Dispatch(HandlerFunc(func(a Action) {
		switch a.(type) {
		case TriggerDeath:
			applied = append(applied, "death")
			// The death handler escalates to game over in the same
			// frame.
			q.Push(GameOver{})
		case GameOver:
			applied = append(applied, "game_over")
		}
	}))

	if n != 2 {
		t.Fatalf("dispatched %d actions, want 2", n)
	}
	if applied[0] != "death" || applied[1] != "game_over" {
		t.Errorf("order = %v, want death then game_over", applied)
	}
}

func TestGameplayDifficultyApply(t *testing.T) {
	defer config.DifficultyTreadingWater.Apply()

	if lives := config.DifficultyTheKraken.Apply(); lives != 3 {
		t.Errorf("Kraken starting lives = %d, want 3", lives)
	}
	if config.Player.MaxHP != 1 {
		t.Errorf("Kraken max hp = %d, want 1", config.Player.MaxHP)
	}
	if config.Player.EnemySpeedMultiplier != 1.2 {
		t.Errorf("Kraken enemy speed = %.1f, want 1.2", config.Player.EnemySpeedMultiplier)
	}

	if lives := config.DifficultyDrifting.Apply(); lives != 7 {
		t.Errorf("Drifting starting lives = %d, want 7", lives)
	}
	if config.Player.InvincibilityDuration != 2.0 {
		t.Errorf("Drifting i-frames = %.1f, want 2.0", config.Player.InvincibilityDuration)
	}
}
