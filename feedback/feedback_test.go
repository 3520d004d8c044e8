package feedback

import (
	"testing"

	"github.com/automoto/octoplat/player"
	"github.com/automoto/octoplat/shared/gamemath"
)

func hasSound(r Result, id SoundID) bool {
	for _, s := range r.Sounds {
		if s.ID == id {
			return true
		}
	}
	return false
}

func hasEffect(r Result, ty EffectType) bool {
	for _, e := range r.Effects {
		if e.Type == ty {
			return true
		}
	}
	return false
}

func newPlayer(state player.State) *player.Player {
	p := player.New(gamemath.Vec2{X: 100, Y: 100})
	p.State = state
	return p
}

func TestJumpEdge(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateIdle, 0, 0, false)

	p := newPlayer(player.StateJumping)
	res := Process(p, tr, 0, nil)

	if !hasSound(res, SoundJump) || !hasEffect(res, EffectJump) {
		t.Error("jump edge missing sound or effect")
	}
	if res.Jumps != 1 {
		t.Errorf("jump stat delta = %d, want 1", res.Jumps)
	}
	if p.VisualScaleY <= 1 {
		t.Error("jump did not stretch the sprite")
	}
	if tr.PrevState != player.StateJumping {
		t.Error("tracker not advanced")
	}
}

func TestWallJumpEdge(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateWallGrip, 0, 0, false)

	p := newPlayer(player.StateJumping)
	res := Process(p, tr, 0, nil)

	if !hasSound(res, SoundWallJump) {
		t.Error("wall jump sound missing")
	}
	if hasSound(res, SoundJump) {
		t.Error("regular jump sound on a wall jump")
	}
}

func TestNoEdgeNoSound(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateRunning, 0, 0, false)

	p := newPlayer(player.StateRunning)
	res := Process(p, tr, 0, nil)

	if len(res.Sounds) != 0 || len(res.Effects) != 0 {
		t.Errorf("steady state emitted %d sounds, %d effects", len(res.Sounds), len(res.Effects))
	}
}

func TestHardLanding(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateFalling, 0, 600, false)

	p := newPlayer(player.StateIdle)
	res := Process(p, tr, 0, nil)

	if !hasSound(res, SoundLand) {
		t.Fatal("landing sound missing")
	}
	if p.LandingRecoveryTimer <= 0 {
		t.Error("hard landing did not start recovery")
	}

	var landIntensity float64
	for _, e := range res.Effects {
		if e.Type == EffectLand {
			landIntensity = e.Intensity
		}
	}
	if landIntensity != 1.2 {
		t.Errorf("land intensity = %.2f, want 1.2", landIntensity)
	}
}

func TestSoftLandingSkipsRecovery(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateFalling, 0, 300, false)

	p := newPlayer(player.StateRunning)
	res := Process(p, tr, 0, nil)

	if !hasSound(res, SoundLand) {
		t.Error("landing sound missing")
	}
	if p.LandingRecoveryTimer > 0 {
		t.Error("soft landing triggered recovery")
	}
}

func TestJetSoundsByDirection(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateFalling, 0, 0, false)
	p := newPlayer(player.StateJetBoosting)
	p.JetDirection = gamemath.Vec2{Y: 1}
	if res := Process(p, tr, 0, nil); !hasSound(res, SoundDive) {
		t.Error("downward jet did not use the dive sound")
	}

	tr2 := NewTracker()
	tr2.Observe(player.StateFalling, 0, 0, false)
	p2 := newPlayer(player.StateJetBoosting)
	p2.JetDirection = gamemath.Vec2{X: 1}
	if res := Process(p2, tr2, 0, nil); !hasSound(res, SoundJetBoost) {
		t.Error("sideways jet did not use the jet sound")
	}
}

func TestGrappleAttachIsPositional(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateFalling, 0, 0, false)

	p := newPlayer(player.StateSwinging)
	p.GrapplePoint = gamemath.Vec2{X: 150, Y: 40}
	res := Process(p, tr, 0, nil)

	if !hasSound(res, SoundGrappleShoot) {
		t.Error("grapple shoot sound missing")
	}
	found := false
	for _, s := range res.Sounds {
		if s.ID == SoundGrappleAttach {
			found = true
			if !s.Positional || s.Position != p.GrapplePoint {
				t.Errorf("attach sound position = %+v, want positional at %v", s, p.GrapplePoint)
			}
		}
	}
	if !found {
		t.Error("grapple attach sound missing")
	}
	if res.Grapples != 1 {
		t.Errorf("grapple stat delta = %d, want 1", res.Grapples)
	}
}

func TestDiveImpact(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateJetBoosting, 0, 400, false)

	p := newPlayer(player.StateIdle)
	res := Process(p, tr, 0, nil)

	if !hasEffect(res, EffectDiveImpact) {
		t.Error("dive impact effect missing")
	}
}

func TestGemCollectOnce(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateRunning, 0, 0, false)
	p := newPlayer(player.StateRunning)

	res := Process(p, tr, 1, nil)
	if !hasSound(res, SoundGemCollect) {
		t.Error("gem collect sound missing")
	}

	res = Process(p, tr, 1, nil)
	if hasSound(res, SoundGemCollect) {
		t.Error("gem collect sound repeated without a new gem")
	}
}

func TestBounceDetection(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateFalling, 0, 200, false)

	p := newPlayer(player.StateJumping)
	p.Velocity.Y = -520
	res := Process(p, tr, 0, nil)
	if !hasSound(res, SoundBouncePad) {
		t.Error("bounce not detected")
	}

	// A normal jump apex is not a bounce: the previous frame was already
	// moving upward.
	tr.Observe(player.StateJumping, 0, -100, false)
	res = Process(p, tr, 0, nil)
	if hasSound(res, SoundBouncePad) {
		t.Error("bounce detected while already rising")
	}
}

func TestInkEdge(t *testing.T) {
	tr := NewTracker()
	tr.Observe(player.StateRunning, 0, 0, false)

	p := newPlayer(player.StateRunning)
	p.Inked = true
	res := Process(p, tr, 0, nil)
	if !hasSound(res, SoundInkShoot) || !hasEffect(res, EffectInkCloud) {
		t.Error("ink activation missing sound or effect")
	}

	res = Process(p, tr, 0, nil)
	if hasSound(res, SoundInkShoot) {
		t.Error("ink sound repeated while still inked")
	}
}

func TestCheckpointFiresOncePerPoint(t *testing.T) {
	tr := NewTracker()
	first := gamemath.Vec2{X: 160, Y: 160}

	if _, ok := ProcessCheckpoint(tr, first); !ok {
		t.Fatal("first checkpoint did not fire")
	}
	if _, ok := ProcessCheckpoint(tr, first); ok {
		t.Error("same checkpoint fired twice")
	}
	if _, ok := ProcessCheckpoint(tr, gamemath.Vec2{X: 480, Y: 160}); !ok {
		t.Error("new checkpoint did not fire")
	}
}

func TestLevelCompleteJingleOnce(t *testing.T) {
	tr := NewTracker()

	if _, ok := ProcessLevelComplete(tr, false); ok {
		t.Error("jingle before completion")
	}
	if ev, ok := ProcessLevelComplete(tr, true); !ok || ev.ID != SoundLevelComplete {
		t.Error("jingle missing on completion")
	}
	if _, ok := ProcessLevelComplete(tr, true); ok {
		t.Error("jingle repeated")
	}

	tr.ResetLevelComplete()
	if _, ok := ProcessLevelComplete(tr, true); !ok {
		t.Error("jingle not rearmed for the next level")
	}
}
