package player

import (
	"math"
	"testing"

	"github.com/automoto/octoplat/shared/gamemath"
)

const frame = 1.0 / 60.0

func floorWorld() *World {
	return &World{
		Solids: []gamemath.Rect{{X: 0, Y: 300, W: 320, H: 32}},
	}
}

// standing returns a player settled on the floorWorld floor.
func standing(t *testing.T, w *World) *Player {
	t.Helper()
	p := New(gamemath.Vec2{X: 100, Y: 285})
	for i := 0; i < 3; i++ {
		p.Update(&Input{}, w, frame)
	}
	if p.State != StateIdle {
		t.Fatalf("player did not settle: state=%v", p.State)
	}
	return p
}

func TestFallAndLand(t *testing.T) {
	w := floorWorld()
	p := New(gamemath.Vec2{X: 100, Y: 200})

	for i := 0; i < 120; i++ {
		p.Update(&Input{}, w, frame)
	}

	if p.State != StateIdle {
		t.Fatalf("state = %v, want Idle", p.State)
	}
	if got := p.CollisionRect().Bottom(); math.Abs(got-300) > 0.5 {
		t.Errorf("feet at %.2f, want 300", got)
	}
	if p.Velocity.Y != 0 {
		t.Errorf("velocity.y = %.2f after landing, want 0", p.Velocity.Y)
	}
}

func TestRunAndIdleDeceleration(t *testing.T) {
	w := floorWorld()
	p := standing(t, w)

	for i := 0; i < 30; i++ {
		p.Update(&Input{MoveX: 1}, w, frame)
	}
	if p.State != StateRunning {
		t.Fatalf("state = %v, want Running", p.State)
	}
	if p.Velocity.X < 190 {
		t.Errorf("run speed = %.2f, want near 200", p.Velocity.X)
	}
	if !p.FacingRight {
		t.Error("facing left while running right")
	}

	for i := 0; i < 30; i++ {
		p.Update(&Input{}, w, frame)
	}
	if p.State != StateIdle {
		t.Fatalf("state = %v after releasing input, want Idle", p.State)
	}
	if p.Velocity.X != 0 {
		t.Errorf("velocity.x = %.2f at rest, want 0", p.Velocity.X)
	}
}

func TestSprintIsFasterAndDrainsStamina(t *testing.T) {
	w := &World{Solids: []gamemath.Rect{{X: -2000, Y: 300, W: 6000, H: 32}}}
	p := standing(t, w)
	startStamina := p.WallStamina

	for i := 0; i < 60; i++ {
		p.Update(&Input{MoveX: 1, SprintHeld: true}, w, frame)
	}
	if !p.Sprinting {
		t.Fatal("not sprinting with sprint held and input")
	}
	if p.Velocity.X < 350 {
		t.Errorf("sprint speed = %.2f, want near 400", p.Velocity.X)
	}
	if p.WallStamina >= startStamina {
		t.Errorf("stamina did not drain: %.2f -> %.2f", startStamina, p.WallStamina)
	}
}

func TestCoyoteJumpWithinWindow(t *testing.T) {
	w := floorWorld()
	p := standing(t, w)

	// Step off the ledge, then press jump 0.08s later. Coyote time is
	// 0.1s, so the jump should still fire.
	p.Position.X = 400
	for i := 0; i < 8; i++ {
		p.Update(&Input{}, w, 0.01)
	}
	if p.State != StateFalling {
		t.Fatalf("state = %v after leaving ledge, want Falling", p.State)
	}

	p.Update(&Input{JumpPressed: true}, w, 0.01)
	if p.State != StateJumping {
		t.Fatalf("state = %v, want Jumping via coyote time", p.State)
	}
	if p.Velocity.Y > -700 {
		t.Errorf("velocity.y = %.2f, want near jump velocity", p.Velocity.Y)
	}
	if p.CoyoteTimer != 0 {
		t.Errorf("coyote timer = %.3f after jump, want 0", p.CoyoteTimer)
	}
}

func TestCoyoteJumpExpired(t *testing.T) {
	w := floorWorld()
	p := standing(t, w)

	// 0.12s after leaving the ledge the window is gone.
	p.Position.X = 400
	for i := 0; i < 12; i++ {
		p.Update(&Input{}, w, 0.01)
	}
	p.Update(&Input{JumpPressed: true}, w, 0.01)

	if p.State != StateFalling {
		t.Fatalf("state = %v, want Falling with coyote expired", p.State)
	}
	if p.Velocity.Y < 0 {
		t.Errorf("velocity.y = %.2f, player should be falling", p.Velocity.Y)
	}
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	w := floorWorld()
	p := New(gamemath.Vec2{X: 100, Y: 270})
	p.Velocity.Y = 300

	// Press jump while still in the air, just above the floor.
	p.Update(&Input{JumpPressed: true}, w, frame)

	jumped := false
	for i := 0; i < 10; i++ {
		p.Update(&Input{}, w, frame)
		if p.State == StateJumping && p.Velocity.Y < 0 {
			jumped = true
			break
		}
	}
	if !jumped {
		t.Error("buffered jump did not fire on landing")
	}
}

func TestJumpCut(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	p.State = StateJumping
	p.Velocity.Y = -800

	p.Update(&Input{JumpReleased: true}, &World{}, frame)

	// Gravity adds 40 before the cut halves the remainder.
	want := (-800.0 + 2400.0*frame) * 0.5
	if math.Abs(p.Velocity.Y-want) > 1 {
		t.Errorf("velocity.y = %.2f after jump cut, want %.2f", p.Velocity.Y, want)
	}
}

func TestJumpApexTransitionsToFalling(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	p.State = StateJumping
	p.Velocity.Y = -50

	for i := 0; i < 10; i++ {
		p.Update(&Input{}, &World{}, frame)
	}
	if p.State != StateFalling {
		t.Errorf("state = %v past apex, want Falling", p.State)
	}
}

func wallWorld() *World {
	// Floor plus a wall column to the right of the play area.
	return &World{
		Solids: []gamemath.Rect{
			{X: 0, Y: 300, W: 320, H: 32},
			{X: 124, Y: 176, W: 32, H: 124},
		},
	}
}

func TestWallGripEntry(t *testing.T) {
	w := wallWorld()
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.Velocity.Y = 50

	p.Update(&Input{GrappleHeld: true}, w, frame)

	if p.State != StateWallGrip {
		t.Fatalf("state = %v, want WallGrip", p.State)
	}
	if p.WallDirection != 1 {
		t.Errorf("wall direction = %d, want 1", p.WallDirection)
	}
	if p.Velocity != (gamemath.Vec2{}) {
		t.Errorf("velocity = %+v while gripping, want zero", p.Velocity)
	}
}

func TestWallGripRejectedWhileRising(t *testing.T) {
	w := wallWorld()
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.Velocity.Y = -100

	p.Update(&Input{GrappleHeld: true}, w, frame)

	if p.State == StateWallGrip {
		t.Error("gripped wall while moving upward")
	}
}

func TestWallGripReleasedWithoutHold(t *testing.T) {
	w := wallWorld()
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.Velocity.Y = 50
	p.Update(&Input{GrappleHeld: true}, w, frame)
	if p.State != StateWallGrip {
		t.Fatalf("setup failed: state = %v", p.State)
	}

	p.Update(&Input{}, w, frame)
	if p.State != StateFalling {
		t.Errorf("state = %v after releasing grab, want Falling", p.State)
	}
	if p.WallDirection != 0 {
		t.Errorf("wall direction = %d after release, want 0", p.WallDirection)
	}
}

func TestWallJumpAway(t *testing.T) {
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.State = StateWallGrip
	p.WallDirection = 1

	if !p.executeWallJump(&Input{MoveX: -1}) {
		t.Fatal("wall kick away from wall did not execute")
	}
	if p.Velocity.X != -280 {
		t.Errorf("velocity.x = %.2f, want -280", p.Velocity.X)
	}
	if p.Velocity.Y != -520 {
		t.Errorf("velocity.y = %.2f, want -520", p.Velocity.Y)
	}
	if p.State != StateJumping {
		t.Errorf("state = %v, want Jumping", p.State)
	}
	if p.FacingRight {
		t.Error("facing should flip to match kick direction")
	}
	if p.WallJumpCooldown <= 0 || p.SameWallCooldown <= 0 {
		t.Error("wall jump cooldowns not armed")
	}
}

func TestWallJumpClimb(t *testing.T) {
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.State = StateWallGrip
	p.WallDirection = 1

	if !p.executeWallJump(&Input{MoveY: -1}) {
		t.Fatal("climb jump did not execute")
	}
	if math.Abs(p.Velocity.X-(-280*0.45)) > 0.01 {
		t.Errorf("velocity.x = %.2f, want %.2f", p.Velocity.X, -280*0.45)
	}
	if math.Abs(p.Velocity.Y-(-520*1.3)) > 0.01 {
		t.Errorf("velocity.y = %.2f, want %.2f", p.Velocity.Y, -520*1.3)
	}
}

func TestWallJumpNeutralRefused(t *testing.T) {
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.State = StateWallGrip
	p.WallDirection = 1

	if p.executeWallJump(&Input{}) {
		t.Fatal("wall jump executed with neutral input")
	}
	if p.State != StateWallGrip {
		t.Errorf("state = %v, want to keep gripping", p.State)
	}
}

func TestSameWallCooldownBlocksRegrab(t *testing.T) {
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.State = StateWallGrip
	p.WallDirection = 1
	p.executeWallJump(&Input{MoveX: -1})

	p.Velocity.Y = 0
	p.WallJumpCooldown = 0

	if p.canGrabWall(1, true) {
		t.Error("re-grabbed the wall just jumped from")
	}
	if !p.canGrabWall(-1, true) {
		t.Error("opposite wall should be grabbable")
	}
}

func TestWallGripViaUpdateThenKick(t *testing.T) {
	w := wallWorld()
	p := New(gamemath.Vec2{X: 112, Y: 250})
	p.Velocity.Y = 50
	p.Update(&Input{GrappleHeld: true}, w, frame)
	if p.State != StateWallGrip {
		t.Fatalf("setup failed: state = %v", p.State)
	}
	remaining := p.WallJumpsRemaining

	p.Update(&Input{GrappleHeld: true, JumpPressed: true, MoveX: -1}, w, frame)

	if p.State != StateJumping {
		t.Fatalf("state = %v after wall kick, want Jumping", p.State)
	}
	if p.WallJumpsRemaining != remaining-1 {
		t.Errorf("wall jumps remaining = %d, want %d", p.WallJumpsRemaining, remaining-1)
	}
	if p.Velocity.X >= 0 {
		t.Errorf("velocity.x = %.2f, want pushed away from right wall", p.Velocity.X)
	}
}

func TestBouncePad(t *testing.T) {
	w := &World{Bouncers: []gamemath.Rect{{X: 96, Y: 300, W: 32, H: 32}}}
	p := New(gamemath.Vec2{X: 112, Y: 284})
	p.Velocity.Y = 100

	p.Update(&Input{}, w, frame)

	if p.Velocity.Y != -550 {
		t.Errorf("velocity.y = %.2f after bounce, want -550", p.Velocity.Y)
	}
	if p.State != StateJumping {
		t.Errorf("state = %v after bounce, want Jumping", p.State)
	}
}

func TestOneWayPlatformLandAndPassThrough(t *testing.T) {
	w := &World{OneWays: []gamemath.Rect{{X: 96, Y: 300, W: 32, H: 8}}}

	p := New(gamemath.Vec2{X: 112, Y: 280})
	p.Velocity.Y = 300
	for i := 0; i < 5; i++ {
		p.Update(&Input{}, w, frame)
	}
	if got := p.CollisionRect().Bottom(); math.Abs(got-300) > 0.5 {
		t.Errorf("feet at %.2f on one-way, want 300", got)
	}
	if p.State != StateIdle {
		t.Errorf("state = %v standing on one-way, want Idle", p.State)
	}

	// Rising from below passes straight through.
	up := New(gamemath.Vec2{X: 112, Y: 320})
	up.State = StateJumping
	up.Velocity.Y = -600
	up.Update(&Input{}, w, frame)
	if up.Velocity.Y >= 0 {
		t.Errorf("velocity.y = %.2f, upward motion should continue", up.Velocity.Y)
	}
	if up.Position.Y >= 320 {
		t.Error("player did not move up through the one-way platform")
	}
}

func TestJetBoostDownward(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	p.State = StateFalling
	charges := p.JetCharges

	p.Update(&Input{JetPressed: true, MoveY: 1}, &World{}, frame)

	if p.State != StateJetBoosting {
		t.Fatalf("state = %v, want JetBoosting", p.State)
	}
	if p.JetCharges != charges-1 {
		t.Errorf("jet charges = %d, want %d", p.JetCharges, charges-1)
	}
	if !p.JetDownward() {
		t.Error("downward jet not detected")
	}
	// Downward jets run faster than the base boost speed.
	if math.Abs(p.Velocity.Y-500*1.6) > 0.01 {
		t.Errorf("velocity.y = %.2f, want %.2f", p.Velocity.Y, 500*1.6)
	}
	if !p.Invincible() {
		t.Error("jet boost should grant i-frames")
	}
}

func TestJetBoostNeutralUsesFacing(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	p.State = StateFalling
	p.FacingRight = false

	p.Update(&Input{JetPressed: true}, &World{}, frame)

	if p.JetDirection.X >= 0 {
		t.Errorf("jet direction.x = %.2f, want negative from facing", p.JetDirection.X)
	}
	if p.JetDownward() {
		t.Error("horizontal jet flagged as downward")
	}
}

func TestJetBoostExpires(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	p.State = StateFalling
	p.Update(&Input{JetPressed: true, MoveX: 1}, &World{}, frame)

	for i := 0; i < 20; i++ {
		p.Update(&Input{}, &World{}, frame)
	}
	if p.State == StateJetBoosting {
		t.Errorf("jet boost still active after duration elapsed")
	}
}

func TestJetChargeRegen(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	p.State = StateFalling
	p.Update(&Input{JetPressed: true, MoveX: 1}, &World{}, frame)
	spent := p.JetCharges

	// Regen rate is 2s per charge.
	for i := 0; i < 125; i++ {
		p.Update(&Input{}, &World{}, frame)
	}
	if p.JetCharges != spent+1 {
		t.Errorf("jet charges = %d after regen window, want %d", p.JetCharges, spent+1)
	}
}

func TestInkCloud(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})
	charges := p.InkCharges

	p.Update(&Input{InkPressed: true}, &World{}, frame)
	if !p.Inked {
		t.Fatal("ink did not activate")
	}
	if p.InkCharges != charges-1 {
		t.Errorf("ink charges = %d, want %d", p.InkCharges, charges-1)
	}

	// Duration is 1.5s.
	for i := 0; i < 95; i++ {
		p.Update(&Input{}, &World{}, frame)
	}
	if p.Inked {
		t.Error("ink still active after duration")
	}

	p.RefillInk()
	if p.InkCharges != charges {
		t.Errorf("ink charges = %d after refill, want %d", p.InkCharges, charges)
	}
}

func TestGrappleAttachesToNearestValidPoint(t *testing.T) {
	w := &World{GrapplePoints: []gamemath.Vec2{
		{X: 100, Y: 100},  // valid, nearest
		{X: 100, Y: 60},   // valid, farther
		{X: 100, Y: 400},  // below the player, rejected
		{X: 1000, Y: 100}, // out of range
	}}
	p := New(gamemath.Vec2{X: 100, Y: 260})

	p.Update(&Input{GrapplePressed: true}, w, frame)

	if p.State != StateSwinging {
		t.Fatalf("state = %v, want Swinging", p.State)
	}
	if p.GrapplePoint != (gamemath.Vec2{X: 100, Y: 100}) {
		t.Errorf("grapple point = %+v, want the nearest valid point", p.GrapplePoint)
	}
	if math.Abs(p.RopeLength-160) > 1 {
		t.Errorf("rope length = %.2f, want 160", p.RopeLength)
	}
}

func TestGrappleRejectsPointsBelow(t *testing.T) {
	w := &World{GrapplePoints: []gamemath.Vec2{{X: 100, Y: 400}}}
	p := New(gamemath.Vec2{X: 100, Y: 260})

	p.Update(&Input{GrapplePressed: true}, w, frame)

	if p.State == StateSwinging {
		t.Error("grappled to a point below the player")
	}
}

func TestGrappleSecondPressReleases(t *testing.T) {
	w := &World{GrapplePoints: []gamemath.Vec2{{X: 100, Y: 100}}}
	p := New(gamemath.Vec2{X: 100, Y: 260})
	p.Update(&Input{GrapplePressed: true}, w, frame)
	if p.State != StateSwinging {
		t.Fatalf("setup failed: state = %v", p.State)
	}

	p.Update(&Input{GrapplePressed: true}, w, frame)

	if p.State == StateSwinging {
		t.Error("second grapple press did not release")
	}
	if p.SwingAngularVelocity != 0 {
		t.Errorf("angular velocity = %.2f after release, want 0", p.SwingAngularVelocity)
	}
}

func TestSwingJumpRelease(t *testing.T) {
	w := &World{GrapplePoints: []gamemath.Vec2{{X: 200, Y: 100}}}
	p := New(gamemath.Vec2{X: 100, Y: 200})
	p.Velocity.X = 150
	p.Update(&Input{GrapplePressed: true}, w, frame)
	if p.State != StateSwinging {
		t.Fatalf("setup failed: state = %v", p.State)
	}

	p.Update(&Input{JumpPressed: true}, w, frame)

	if p.State != StateJumping {
		t.Fatalf("state = %v after jump release, want Jumping", p.State)
	}
	if p.Velocity.Y >= 0 {
		t.Errorf("velocity.y = %.2f, want an upward boost", p.Velocity.Y)
	}
}

func TestSwingKeepsRopeLength(t *testing.T) {
	w := &World{GrapplePoints: []gamemath.Vec2{{X: 200, Y: 100}}}
	p := New(gamemath.Vec2{X: 120, Y: 220})
	p.Velocity.X = 200
	p.Update(&Input{GrapplePressed: true}, w, frame)
	if p.State != StateSwinging {
		t.Fatalf("setup failed: state = %v", p.State)
	}
	rope := p.RopeLength

	for i := 0; i < 60; i++ {
		p.Update(&Input{}, w, frame)
		if p.State != StateSwinging {
			t.Fatalf("swing ended early at frame %d: state = %v", i, p.State)
		}
		dist := p.Position.DistanceTo(p.GrapplePoint)
		if math.Abs(dist-rope) > 1.5 {
			t.Fatalf("frame %d: rope distance %.2f drifted from %.2f", i, dist, rope)
		}
	}
}

func TestSwingRopeRetract(t *testing.T) {
	w := &World{GrapplePoints: []gamemath.Vec2{{X: 100, Y: 100}}}
	p := New(gamemath.Vec2{X: 100, Y: 260})
	p.Update(&Input{GrapplePressed: true}, w, frame)
	rope := p.RopeLength

	for i := 0; i < 30; i++ {
		p.Update(&Input{MoveY: -1}, w, frame)
	}
	if p.RopeLength >= rope {
		t.Errorf("rope length %.2f did not retract from %.2f", p.RopeLength, rope)
	}
}

func TestCornerCorrectionSlipsIntoGap(t *testing.T) {
	// Running right into the lip of a tile that overhangs the path by a
	// few pixels. The vertical nudge should lift the player over instead
	// of stopping them.
	w := &World{Solids: []gamemath.Rect{{X: 128, Y: 280, W: 32, H: 32}}}
	p := New(gamemath.Vec2{X: 114, Y: 270})
	p.Velocity.X = 200
	startX := p.Position.X
	startY := p.Position.Y

	p.moveHorizontal(w, p.Velocity.X*frame)

	if p.Velocity.X != 200 {
		t.Errorf("velocity.x = %.2f, corner correction should preserve speed", p.Velocity.X)
	}
	if p.Position.X <= startX {
		t.Errorf("position.x = %.2f, want advanced past %.2f", p.Position.X, startX)
	}
	if p.Position.Y >= startY {
		t.Errorf("position.y = %.2f, want nudged up from %.2f", p.Position.Y, startY)
	}
}

func TestRunIntoWallStops(t *testing.T) {
	// A wall rising from the floor blocks horizontal movement at its
	// face and kills the run speed.
	w := &World{Solids: []gamemath.Rect{
		{X: 0, Y: 300, W: 320, H: 32},
		{X: 160, Y: 236, W: 32, H: 64},
	}}
	p := standing(t, w)

	for i := 0; i < 90; i++ {
		p.Update(&Input{MoveX: 1}, w, frame)
	}

	if right := p.CollisionRect().Right(); right > 160.01 {
		t.Errorf("hitbox right = %.2f, want stopped at wall face 160", right)
	}
	if p.Velocity.X != 0 {
		t.Errorf("velocity.x = %.2f after hitting wall, want 0", p.Velocity.X)
	}
}

func TestVisualSquashStretch(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})

	p.TriggerStretch()
	if p.VisualScaleY <= 1 {
		t.Errorf("scale = %.2f after stretch, want > 1", p.VisualScaleY)
	}

	p.TriggerSquash(1)
	if p.VisualScaleY >= 1 {
		t.Errorf("scale = %.2f after squash, want < 1", p.VisualScaleY)
	}

	p.State = StateIdle
	for i := 0; i < 120; i++ {
		p.UpdateVisuals(frame)
	}
	if math.Abs(p.VisualScaleY-1) > 0.01 {
		t.Errorf("scale = %.2f after settling, want 1", p.VisualScaleY)
	}
}

func TestLandingRecoverySlowsGroundSpeed(t *testing.T) {
	w := floorWorld()
	p := standing(t, w)
	p.TriggerLandingRecovery()

	p.Update(&Input{MoveX: 1}, w, frame)
	slowed := p.Velocity.X

	q := standing(t, w)
	q.Update(&Input{MoveX: 1}, w, frame)

	if slowed >= q.Velocity.X {
		t.Errorf("recovery speed %.2f not slower than normal %.2f", slowed, q.Velocity.X)
	}
}

func TestInvincibilityTimers(t *testing.T) {
	p := New(gamemath.Vec2{X: 100, Y: 100})

	p.StartInvincibility(0.5)
	if !p.Invincible() {
		t.Fatal("not invincible after StartInvincibility")
	}
	for i := 0; i < 40; i++ {
		p.UpdateVisuals(frame)
	}
	if p.Invincible() {
		t.Error("invincibility did not expire")
	}

	p.TriggerHitFlash()
	if p.HitFlashTimer <= 0 {
		t.Error("hit flash timer not armed")
	}
}
