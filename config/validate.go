package config

// Validate checks every loaded tuning value and returns one message per
// violation. An empty slice means the configuration is usable.
func Validate() []string {
	var errs []string

	p := Player
	if p.Gravity <= 0 {
		errs = append(errs, "gravity must be positive")
	}
	if p.TerminalVelocity <= 0 {
		errs = append(errs, "terminal_velocity must be positive")
	}
	if p.MoveSpeed <= 0 {
		errs = append(errs, "move_speed must be positive")
	}
	if p.AirControl < 0 || p.AirControl > 1 {
		errs = append(errs, "air_control must be between 0.0 and 1.0")
	}
	if p.Acceleration <= 0 {
		errs = append(errs, "acceleration must be positive")
	}
	if p.Deceleration <= 0 {
		errs = append(errs, "deceleration must be positive")
	}
	if p.JumpVelocity >= 0 {
		errs = append(errs, "jump_velocity must be negative (upward)")
	}
	if p.JumpCutMultiplier < 0 || p.JumpCutMultiplier > 1 {
		errs = append(errs, "jump_cut_multiplier must be between 0.0 and 1.0")
	}
	if p.CoyoteTime < 0 {
		errs = append(errs, "coyote_time must be >= 0")
	}
	if p.JumpBufferTime < 0 {
		errs = append(errs, "jump_buffer_time must be >= 0")
	}
	if p.WallStaminaMax <= 0 {
		errs = append(errs, "wall_stamina_max must be positive")
	}
	if p.WallStaminaRegenRate < 0 {
		errs = append(errs, "wall_stamina_regen_rate must be >= 0")
	}
	if p.WallJumpsMax < 1 {
		errs = append(errs, "wall_jumps_max must be >= 1")
	}
	if p.WallJumpCooldown < 0 {
		errs = append(errs, "wall_jump_cooldown must be >= 0")
	}
	if p.SameWallCooldown < 0 {
		errs = append(errs, "same_wall_cooldown must be >= 0")
	}
	if p.JetBoostSpeed <= 0 {
		errs = append(errs, "jet_boost_speed must be positive")
	}
	if p.JetBoostDuration <= 0 {
		errs = append(errs, "jet_boost_duration must be positive")
	}
	if p.JetMaxCharges < 1 {
		errs = append(errs, "jet_max_charges must be >= 1")
	}
	if p.JetRegenRate <= 0 {
		errs = append(errs, "jet_regen_rate must be positive")
	}
	if p.HitboxWidth <= 0 || p.HitboxHeight <= 0 {
		errs = append(errs, "player_hitbox dimensions must be positive")
	}
	if p.DeathAnimationTime <= 0 {
		errs = append(errs, "death_animation_time must be positive")
	}
	if p.GamepadStickDeadzone < 0 || p.GamepadStickDeadzone > 1 {
		errs = append(errs, "gamepad_stick_deadzone must be between 0.0 and 1.0")
	}

	if Swing.GrappleRange <= 0 {
		errs = append(errs, "grapple_range must be positive")
	}
	if Swing.RopeMinLength <= 0 {
		errs = append(errs, "rope_min_length must be positive")
	}

	if Enemy.CrabSpeed <= 0 {
		errs = append(errs, "crab_speed must be positive")
	}

	if Run.StartingLives < 1 {
		errs = append(errs, "starting_lives must be >= 1")
	}
	if Run.MaxLives < Run.StartingLives {
		errs = append(errs, "max_lives must be >= starting_lives")
	}

	return errs
}
