package gamemath

import "math"

// PendulumAngle returns the angle of the player relative to straight-down
// from the anchor. Zero points down, positive swings to the right.
func PendulumAngle(anchor, pos Vec2) float64 {
	return math.Atan2(pos.X-anchor.X, pos.Y-anchor.Y)
}

// PendulumAccel returns the angular acceleration of a pendulum of length
// ropeLen under the given gravity at the given angle.
func PendulumAccel(angle, gravity, ropeLen float64) float64 {
	if ropeLen <= 0 {
		return 0
	}
	return -(gravity / ropeLen) * math.Sin(angle)
}

// PendulumPosition converts an (anchor, angle, length) triple back into a
// world position on the rope circle.
func PendulumPosition(anchor Vec2, angle, ropeLen float64) Vec2 {
	return Vec2{
		X: anchor.X + math.Sin(angle)*ropeLen,
		Y: anchor.Y + math.Cos(angle)*ropeLen,
	}
}

// FrameDamping converts a per-second damping factor (applied at a 60 Hz
// reference rate) into the factor for a frame of length dt.
func FrameDamping(damping, dt float64) float64 {
	return math.Pow(damping, dt*60)
}
