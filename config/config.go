package config

import "image/color"

// PlayerConfig contains all player movement and ability tuning values.
// Velocities are pixels per second, accelerations pixels per second squared,
// times in seconds. Negative Y is up.
type PlayerConfig struct {
	// Physics
	Gravity          float64
	TerminalVelocity float64

	// Ground movement
	MoveSpeed    float64
	Acceleration float64
	Deceleration float64

	// Air movement
	AirControl      float64
	AirAcceleration float64

	// Sprint
	SprintSpeed        float64
	SprintAcceleration float64
	SprintAirBonus     float64
	SprintStaminaDrain float64

	// Jumping
	JumpVelocity      float64 // negative = upward
	JumpCutMultiplier float64 // height kept when the button is released early
	CoyoteTime        float64
	JumpBufferTime    float64

	// Landing
	HardLandingThreshold  float64 // fall speed that triggers recovery
	LandingRecoveryTime   float64
	LandingRecoveryFactor float64 // movement multiplier during recovery

	// Wall mechanics
	WallStaminaMax          float64
	WallStaminaRegenRate    float64
	WallJumpVelocityX       float64
	WallJumpVelocityY       float64
	WallJumpClimbHorizontal float64
	WallJumpClimbVertical   float64
	WallJumpsMax            int
	WallJumpCooldown        float64
	SameWallCooldown        float64
	SameWallThreshold       float64 // pixels within which a wall counts as the same

	// Jet boost
	JetBoostSpeed        float64
	JetBoostDuration     float64
	JetMaxCharges        int
	JetRegenRate         float64 // seconds per charge
	JetDownwardSpeedMult float64

	// Ink cloud
	InkDuration   float64
	InkMaxCharges int

	// Hitbox and input
	HitboxWidth          float64
	HitboxHeight         float64
	InputDeadzone        float64
	GamepadStickDeadzone float64

	// HP
	MaxHP                 int
	InvincibilityDuration float64
	HitFlashDuration      float64
	DeathAnimationTime    float64
	EnemySpeedMultiplier  float64
}

// SwingConfig tunes the grapple tentacle swing.
type SwingConfig struct {
	GrappleRange      float64
	GrappleShootSpeed float64
	Gravity           float64
	Damping           float64 // per-frame at 60Hz, higher keeps more momentum
	PumpStrength      float64
	RopeRetractSpeed  float64
	RopeMinLength     float64
	ReleaseBoost      float64
	StaminaDrain      float64
}

// CollisionConfig holds the pixel windows used during collision resolution.
type CollisionConfig struct {
	CornerCorrectionThreshold float64 // max nudge when clipping a corner
	CornerVelocityThreshold   float64 // min speed before correction engages
	BouncePadWindow           float64 // vertical window to trigger a pad
	OneWayPlatformWindow      float64 // feet-above-surface window for one-ways
}

// EnemyConfig contains enemy behavior tuning.
type EnemyConfig struct {
	CrabSpeed           float64
	CrabWallProbe       float64 // pixels ahead to test for walls
	CrabEdgeProbe       float64 // pixels ahead to test for ledges
	CrabEdgeProbeDepth  float64 // pixels below the probe point
	PufferfishAmplitude float64
	PufferfishSpeed     float64

	SpikeDamage      int
	CrabDamage       int
	PufferfishDamage int
}

// PlatformConfig contains dynamic platform tuning.
type PlatformConfig struct {
	BounceVelocity     float64
	MovingSpeed        float64
	CrumbleShakeTime   float64
	CrumbleRespawnTime float64
}

// RunConfig contains lives and roguelite run tuning.
type RunConfig struct {
	StartingLives       int
	MaxLives            int
	EndlessGemMilestone int // gems per extra life in endless mode
	GemRadius           float64
}

// CameraConfig contains camera follow tuning.
type CameraConfig struct {
	Smoothing          float64
	Lookahead          float64
	LookaheadSpeedMult float64
	VerticalBias       float64 // look down this many pixels when falling
	DeadzoneX          float64
	DeadzoneY          float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Swing SwingConfig
var Collision CollisionConfig
var Enemy EnemyConfig
var Platform PlatformConfig
var Run RunConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	GemGold      = color.RGBA{R: 255, G: 215, B: 60, A: 255}
	InkDark      = color.RGBA{R: 20, G: 20, B: 40, A: 220}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "octoplat",
	}

	Player = PlayerConfig{
		Gravity:          2400.0,
		TerminalVelocity: 750.0,

		MoveSpeed:    200.0,
		Acceleration: 8000.0,
		Deceleration: 12000.0,

		AirControl:      0.9,
		AirAcceleration: 6000.0,

		SprintSpeed:        400.0,
		SprintAcceleration: 10000.0,
		SprintAirBonus:     0.5,
		SprintStaminaDrain: 0.6,

		// Negative velocity because Y increases downward
		JumpVelocity:      -800.0,
		JumpCutMultiplier: 0.5,  // releasing early keeps ~50% of jump height
		CoyoteTime:        0.1,  // 100ms grace after leaving a platform
		JumpBufferTime:    0.12, // 120ms buffer before landing

		HardLandingThreshold:  550.0,
		LandingRecoveryTime:   0.08,
		LandingRecoveryFactor: 0.3,

		WallStaminaMax:          2.0,
		WallStaminaRegenRate:    0.5,
		WallJumpVelocityX:       280.0,
		WallJumpVelocityY:       -520.0,
		WallJumpClimbHorizontal: 0.45, // climb jump: less horizontal push
		WallJumpClimbVertical:   1.3,  // climb jump: more vertical boost
		WallJumpsMax:            2,
		WallJumpCooldown:        0.3,
		SameWallCooldown:        0.45,
		SameWallThreshold:       16.0,

		JetBoostSpeed:        500.0,
		JetBoostDuration:     0.15,
		JetMaxCharges:        3,
		JetRegenRate:         2.0,
		JetDownwardSpeedMult: 1.6,

		InkDuration:   1.5,
		InkMaxCharges: 2,

		HitboxWidth:          24.0,
		HitboxHeight:         30.0,
		InputDeadzone:        0.1,
		GamepadStickDeadzone: 0.2,

		MaxHP:                 3,
		InvincibilityDuration: 1.0,
		HitFlashDuration:      0.12,
		DeathAnimationTime:    0.5,
		EnemySpeedMultiplier:  1.0,
	}

	Swing = SwingConfig{
		GrappleRange:      200.0,
		GrappleShootSpeed: 800.0,
		Gravity:           600.0,
		Damping:           0.995,
		PumpStrength:      4.0,
		RopeRetractSpeed:  100.0,
		RopeMinLength:     50.0,
		ReleaseBoost:      1.2,
		StaminaDrain:      0.8,
	}

	Collision = CollisionConfig{
		CornerCorrectionThreshold: 6.0,
		CornerVelocityThreshold:   10.0,
		BouncePadWindow:           4.0,
		OneWayPlatformWindow:      12.0,
	}

	Enemy = EnemyConfig{
		CrabSpeed:           60.0,
		CrabWallProbe:       12.0,
		CrabEdgeProbe:       14.0,
		CrabEdgeProbeDepth:  20.0,
		PufferfishAmplitude: 40.0,
		PufferfishSpeed:     2.0,

		SpikeDamage:      1,
		CrabDamage:       1,
		PufferfishDamage: 2,
	}

	Platform = PlatformConfig{
		BounceVelocity:     550.0,
		MovingSpeed:        60.0,
		CrumbleShakeTime:   0.6,
		CrumbleRespawnTime: 3.0,
	}

	Run = RunConfig{
		StartingLives:       5,
		MaxLives:            9,
		EndlessGemMilestone: 50,
		GemRadius:           16.0,
	}

	Camera = CameraConfig{
		Smoothing:          5.0,
		Lookahead:          50.0,
		LookaheadSpeedMult: 0.15,
		VerticalBias:       60.0,
		DeadzoneX:          30.0,
		DeadzoneY:          20.0,
	}
}
