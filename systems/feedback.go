package systems

import (
	"github.com/automoto/octoplat/components"
	cfg "github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/feedback"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFeedback turns frame-to-frame state edges into sounds, visual
// effects and save counters. Runs after physics and interactions so it
// observes the settled frame.
func UpdateFeedback(e *ecs.ECS) {
	state := GetAppState(e)
	if state == nil || state.Current != cfg.StatePlaying {
		return
	}

	pd := GetPlayer(e)
	ld := GetLevel(e)
	progress := GetProgress(e)
	if pd == nil || ld == nil || progress == nil || progress.Death.Dead {
		return
	}

	result := feedback.Process(pd.Sim, pd.Tracker, ld.Env.GemsCollected, ld.Rng)
	pushFeedback(e, result)

	if result.Jumps > 0 || result.Grapples > 0 {
		progress.Save.Mutate().TotalJumps += result.Jumps
		progress.Save.Mutate().TotalGrapples += result.Grapples
	}

	// Hard landings shake the screen. The recovery timer sits at its
	// full value only on the frame the landing happened.
	if pd.Sim.LandingRecoveryTimer >= cfg.Player.LandingRecoveryTime-FrameDT/2 &&
		pd.Sim.LandingRecoveryTimer > 0 {
		TriggerScreenShake(e, 5, 14)
	}

	if ev, fired := feedback.ProcessLevelComplete(pd.Tracker, ld.Env.LevelComplete); fired {
		if audio := GetAudio(e); audio != nil {
			audio.Push(ev)
		}
	}
}

// pushFeedback fans a processing result out to the audio queue and the
// visual effect pool.
func pushFeedback(e *ecs.ECS, result feedback.Result) {
	audio := GetAudio(e)
	effects := GetEffects(e)

	if audio != nil {
		for _, ev := range result.Sounds {
			audio.Push(ev)
		}
	}
	if effects != nil {
		for _, fx := range result.Effects {
			effects.Active = append(effects.Active, spawnEffect(fx))
		}
	}
}

// spawnEffect assigns a lifetime and drift per effect type.
func spawnEffect(fx feedback.Effect) components.ActiveEffect {
	lifetime := 0.35
	var drift gamemath.Vec2

	switch fx.Type {
	case feedback.EffectJetBoost:
		lifetime = 0.25
		drift = fx.Direction.Scale(-40)
	case feedback.EffectWallJump:
		lifetime = 0.3
		drift = gamemath.Vec2{X: fx.Direction.X * 30}
	case feedback.EffectInkCloud:
		lifetime = 0.9
		drift = gamemath.Vec2{Y: -12}
	case feedback.EffectGemCollect:
		lifetime = 0.5
		drift = gamemath.Vec2{Y: -30}
	case feedback.EffectDiveImpact:
		lifetime = 0.4
	case feedback.EffectCheckpoint:
		lifetime = 0.8
		drift = gamemath.Vec2{Y: -20}
	}

	return components.ActiveEffect{
		Effect:   fx,
		Lifetime: lifetime,
		Drift:    drift,
	}
}

// UpdateEffects ages the visual effect pool and drops dead entries.
func UpdateEffects(e *ecs.ECS) {
	effects := GetEffects(e)
	if effects == nil {
		return
	}

	alive := effects.Active[:0]
	for i := range effects.Active {
		fx := &effects.Active[i]
		fx.Age += FrameDT
		fx.Position = fx.Position.Add(fx.Drift.Scale(FrameDT))
		if fx.Alive() {
			alive = append(alive, *fx)
		}
	}
	effects.Active = alive
}
