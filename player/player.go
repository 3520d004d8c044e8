// Package player implements the octopus character as a headless state
// machine: seven movement states, coyote time, jump buffering, wall
// mechanics with a stamina budget, jet boost, ink cloud, and grapple
// swinging. Input sampling and rendering live in the systems layer; this
// package only moves a hitbox through a set of collision rectangles.
package player

import (
	"github.com/automoto/octoplat/config"
	"github.com/automoto/octoplat/shared/gamemath"
	"github.com/solarlune/resolv"
)

// State is the player movement state.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateJumping
	StateFalling
	StateWallGrip
	StateJetBoosting
	StateSwinging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateJumping:
		return "Jumping"
	case StateFalling:
		return "Falling"
	case StateWallGrip:
		return "WallGrip"
	case StateJetBoosting:
		return "JetBoosting"
	case StateSwinging:
		return "Swinging"
	}
	return "Unknown"
}

// Airborne reports whether the state has no ground support.
func (s State) Airborne() bool {
	return s == StateJumping || s == StateFalling || s == StateJetBoosting || s == StateSwinging
}

// Input is one frame of sampled player intent. Pressed flags are edge
// triggered, held flags are level triggered.
type Input struct {
	MoveX float64
	MoveY float64

	JumpPressed  bool
	JumpReleased bool
	SprintHeld   bool

	GrapplePressed bool
	GrappleHeld    bool

	InkPressed bool
	JetPressed bool
}

// World is the collision environment for one frame: static terrain near
// the player plus whatever dynamic platforms are currently solid. The
// caller rebuilds it each frame from the level environment. Queries run
// against a resolv space built lazily from the rect snapshot.
type World struct {
	Solids        []gamemath.Rect
	OneWays       []gamemath.Rect
	Bouncers      []gamemath.Rect
	Platforms     []gamemath.Rect
	GrapplePoints []gamemath.Vec2

	space            *resolv.Space
	probe            *resolv.Object
	originX, originY float64
}

// Player is the octopus. Position is the hitbox center in world pixels,
// Y grows downward so upward velocities are negative.
type Player struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Hitbox   Hitbox

	State       State
	FacingRight bool
	Sprinting   bool

	CoyoteTimer          float64
	JumpBufferTimer      float64
	LandingRecoveryTimer float64

	// Wall mechanics. WallDirection is -1 for a wall on the left, +1 on
	// the right, 0 when not gripping.
	WallStamina        float64
	WallDirection      int
	WallJumpsRemaining int
	WallJumpCooldown   float64
	SameWallCooldown   float64
	lastWallJumpX      float64
	hasLastWallJump    bool

	JetCharges   int
	JetTimer     float64
	JetDirection gamemath.Vec2
	jetRegen     float64

	InkCharges int
	InkTimer   float64
	Inked      bool

	// Valid only while State is StateSwinging.
	GrapplePoint         gamemath.Vec2
	RopeLength           float64
	SwingAngularVelocity float64

	VisualScaleY   float64
	targetScaleY   float64
	VisualRotation float64
	targetRotation float64
	BreathingPhase float64

	HitFlashTimer      float64
	InvincibilityTimer float64
}

// New returns a player at the spawn position with full charges, falling.
func New(spawn gamemath.Vec2) *Player {
	cfg := &config.Player
	return &Player{
		Position:           spawn,
		Hitbox:             Hitbox{Width: cfg.HitboxWidth, Height: cfg.HitboxHeight},
		State:              StateFalling,
		FacingRight:        true,
		WallStamina:        cfg.WallStaminaMax,
		WallJumpsRemaining: cfg.WallJumpsMax,
		JetCharges:         cfg.JetMaxCharges,
		InkCharges:         cfg.InkMaxCharges,
		VisualScaleY:       1,
		targetScaleY:       1,
	}
}

// CollisionRect returns the hitbox in world space.
func (p *Player) CollisionRect() gamemath.Rect {
	return p.Hitbox.At(p.Position)
}

// OnGround reports whether the player currently has ground support in the
// given world. Callers that need the value outside Update can probe here.
// Dynamic platforms carry the solid tag, so one probe covers both.
func (p *Player) OnGround(w *World) bool {
	return w.checkGround(p.CollisionRect(), TagSolid) || p.onOneWayGround(w)
}

// Update advances the player one frame: sense the environment, tick
// timers, run ability inputs, resolve state transitions, apply per-state
// physics, then move and push out of collisions axis by axis.
func (p *Player) Update(in *Input, w *World, dt float64) {
	cfg := &config.Player

	onGround := p.OnGround(w)
	wallDir := w.checkWall(p.CollisionRect())

	p.updateTimers(in, onGround, dt)

	if in.MoveX > cfg.InputDeadzone {
		p.FacingRight = true
	} else if in.MoveX < -cfg.InputDeadzone {
		p.FacingRight = false
	}

	p.handleAbilityInputs(in, w.GrapplePoints)
	p.handleStateTransitions(in, onGround, wallDir, dt)
	p.applyStatePhysics(in, dt)

	// Variable jump height: cutting the button while ascending trims the
	// remaining rise.
	if p.State == StateJumping && in.JumpReleased && p.Velocity.Y < 0 {
		p.Velocity.Y *= cfg.JumpCutMultiplier
	}

	p.moveHorizontal(w, p.Velocity.X*dt)
	p.moveVertical(w, p.Velocity.Y*dt)
	p.resolveOneWay(w)

	p.checkBouncePads(w)
}

// updateTimers ticks every gameplay timer. Ground contact refills coyote
// time, wall stamina and wall jumps; the jump buffer refills on a fresh
// press and drains otherwise.
func (p *Player) updateTimers(in *Input, onGround bool, dt float64) {
	cfg := &config.Player

	if in.JumpPressed {
		p.JumpBufferTimer = cfg.JumpBufferTime
	} else if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer = max(p.JumpBufferTimer-dt, 0)
	}

	if onGround {
		p.CoyoteTimer = cfg.CoyoteTime
		p.WallStamina = min(p.WallStamina+cfg.WallStaminaRegenRate*dt, cfg.WallStaminaMax)
		p.WallJumpsRemaining = cfg.WallJumpsMax
		p.WallJumpCooldown = 0
		p.SameWallCooldown = 0
		p.hasLastWallJump = false
	} else {
		p.CoyoteTimer = max(p.CoyoteTimer-dt, 0)
	}

	// Jet charges regenerate passively; the timer only runs while a
	// charge is missing.
	if p.JetCharges < cfg.JetMaxCharges {
		p.jetRegen += dt
		if p.jetRegen >= cfg.JetRegenRate {
			p.jetRegen = 0
			p.JetCharges++
		}
	} else {
		p.jetRegen = 0
	}

	if p.WallJumpCooldown > 0 {
		p.WallJumpCooldown = max(p.WallJumpCooldown-dt, 0)
	}
	if p.SameWallCooldown > 0 {
		p.SameWallCooldown = max(p.SameWallCooldown-dt, 0)
		if p.SameWallCooldown <= 0 {
			p.hasLastWallJump = false
		}
	}

	if p.InkTimer > 0 {
		p.InkTimer -= dt
		if p.InkTimer <= 0 {
			p.Inked = false
		}
	}
	if p.JetTimer > 0 {
		p.JetTimer -= dt
	}
	if p.LandingRecoveryTimer > 0 {
		p.LandingRecoveryTimer = max(p.LandingRecoveryTimer-dt, 0)
	}
}

// handleAbilityInputs runs the global ability checks that apply in any
// state: ink cloud, jet boost, and grapple attach/release.
func (p *Player) handleAbilityInputs(in *Input, grapplePoints []gamemath.Vec2) {
	if in.InkPressed && p.InkCharges > 0 && !p.Inked {
		p.activateInk()
	}

	if in.JetPressed && p.JetCharges > 0 &&
		p.State != StateJetBoosting && p.State != StateSwinging {
		p.executeJetBoost(in)
	}

	wasSwinging := p.State == StateSwinging

	if in.GrapplePressed && !wasSwinging {
		if target, ok := p.nearestGrapplePoint(grapplePoints); ok {
			p.startGrapple(target)
		}
	}

	// A second press while already swinging lets go. The wasSwinging
	// check keeps the press that attached from also detaching.
	if wasSwinging && in.GrapplePressed {
		p.releaseGrapple()
	}
}

func (p *Player) handleStateTransitions(in *Input, onGround bool, wallDir int, dt float64) {
	switch p.State {
	case StateIdle, StateRunning:
		p.handleGroundedTransitions(in, onGround, dt)
	case StateJumping, StateFalling:
		p.handleAirborneTransitions(in, onGround, wallDir)
	case StateWallGrip:
		p.handleWallTransitions(in, wallDir, dt)
	case StateJetBoosting:
		p.handleJetTransitions(in, onGround, wallDir)
	case StateSwinging:
		p.handleSwingTransitions(in, onGround, wallDir)
	}
}

func (p *Player) handleGroundedTransitions(in *Input, onGround bool, dt float64) {
	cfg := &config.Player
	wantsJump := p.JumpBufferTimer > 0

	// Sprint shares the wall stamina pool and drains from the first
	// frame of sprinting.
	wantsSprint := in.SprintHeld && abs(in.MoveX) > cfg.InputDeadzone && p.WallStamina > 0
	if wantsSprint {
		p.WallStamina = max(p.WallStamina-cfg.SprintStaminaDrain*dt, 0)
		p.Sprinting = p.WallStamina > 0
	} else {
		p.Sprinting = false
	}

	switch {
	case !onGround:
		p.State = StateFalling
	case wantsJump:
		p.executeJump()
		p.JumpBufferTimer = 0
	case abs(in.MoveX) > cfg.InputDeadzone:
		p.State = StateRunning
	default:
		p.State = StateIdle
		p.Sprinting = false
	}
}

func (p *Player) handleAirborneTransitions(in *Input, onGround bool, wallDir int) {
	cfg := &config.Player
	wantsJump := p.JumpBufferTimer > 0

	switch {
	case p.canGrabWall(wallDir, in.GrappleHeld):
		p.transitionToWall(wallDir)
	case wantsJump && p.CoyoteTimer > 0 && p.State == StateFalling:
		p.executeJump()
		p.JumpBufferTimer = 0
	case onGround && p.Velocity.Y >= 0:
		if abs(in.MoveX) > cfg.InputDeadzone {
			p.State = StateRunning
		} else {
			p.State = StateIdle
		}
		if wantsJump {
			p.executeJump()
			p.JumpBufferTimer = 0
		}
	case p.State == StateJumping && p.Velocity.Y >= 0:
		p.State = StateFalling
	}
}

func (p *Player) handleWallTransitions(in *Input, wallDir int, dt float64) {
	wantsJump := p.JumpBufferTimer > 0

	p.WallStamina = max(p.WallStamina-config.Swing.StaminaDrain*0.5*dt, 0)

	shouldRelease := wallDir == 0 || !in.GrappleHeld || p.WallStamina <= 0

	if wantsJump && p.WallJumpsRemaining > 0 {
		// Wall jumps need intentional input: away for a kick, up for a
		// climb. A neutral stick keeps gripping.
		if p.executeWallJump(in) {
			p.WallJumpsRemaining--
			p.JumpBufferTimer = 0
		}
	} else if shouldRelease {
		p.State = StateFalling
		p.WallDirection = 0
	}
}

func (p *Player) handleJetTransitions(in *Input, onGround bool, wallDir int) {
	switch {
	case p.JetTimer <= 0:
		if onGround {
			p.State = StateIdle
		} else if p.Velocity.Y >= 0 {
			p.State = StateFalling
		} else {
			p.State = StateJumping
		}
	case p.canGrabWall(wallDir, in.GrappleHeld):
		p.transitionToWall(wallDir)
		p.JetTimer = 0
	case onGround && p.JetDirection.Y > 0.3:
		// Only a downward jet cancels on ground contact; horizontal jets
		// skim through it.
		p.State = StateIdle
		p.JetTimer = 0
	}
}

func (p *Player) handleSwingTransitions(in *Input, onGround bool, wallDir int) {
	wantsJump := p.JumpBufferTimer > 0

	switch {
	case wantsJump:
		p.releaseGrapple()
		p.Velocity.Y = config.Player.JumpVelocity * 0.8
		p.State = StateJumping
		p.JumpBufferTimer = 0
	case onGround:
		p.releaseGrapple()
		p.State = StateIdle
	case p.canGrabWall(wallDir, in.GrapplePressed):
		p.releaseGrapple()
		p.transitionToWall(wallDir)
	}
}

func (p *Player) transitionToWall(wallDir int) {
	p.State = StateWallGrip
	p.WallDirection = wallDir
	p.Velocity = gamemath.Vec2{}
}

// canGrabWall gates wall grip entry: wall contact on one side, the grab
// input active, stamina left, cooldowns clear, not rising, and not the
// wall we just jumped from.
func (p *Player) canGrabWall(wallDir int, grabActive bool) bool {
	return wallDir != 0 &&
		grabActive &&
		p.Velocity.Y >= 0 &&
		p.WallStamina > 0 &&
		p.WallJumpCooldown <= 0 &&
		!p.isSameWall(wallDir)
}

// isSameWall reports whether the wall on wallDir's side is the wall the
// player most recently jumped from, within the same-wall window.
func (p *Player) isSameWall(wallDir int) bool {
	if p.SameWallCooldown <= 0 || !p.hasLastWallJump {
		return false
	}
	wallX := p.Position.X + float64(wallDir)*p.Hitbox.Width/2
	return abs(wallX-p.lastWallJumpX) < config.Player.SameWallThreshold
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
