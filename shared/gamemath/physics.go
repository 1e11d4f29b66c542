package gamemath

import stdmath "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity integrates gravity into a y-down vertical speed and caps the
// fall at terminal. Upward speed is never capped.
func ApplyGravity(speedY, gravity, terminal, dt float64) float64 {
	speedY += gravity * dt
	if speedY > terminal {
		return terminal
	}
	return speedY
}

// NormalizeIntent scales a movement intent down to unit length. Shorter
// vectors are returned unchanged.
func NormalizeIntent(x, y float64) (float64, float64) {
	l := stdmath.Hypot(x, y)
	if l <= 1 {
		return x, y
	}
	return x / l, y / l
}

// Landed reports whether a downward move was stopped (y-down).
func Landed(desiredY, effectiveY float64) bool {
	return desiredY > 0 && effectiveY <= 0
}

// BumpedHead reports whether an upward move was stopped (y-down).
func BumpedHead(desiredY, effectiveY float64) bool {
	return desiredY < 0 && effectiveY >= 0
}
