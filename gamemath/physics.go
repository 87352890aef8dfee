package gamemath

// ClampSpeed clamps a scalar speed to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// CapSpeed rescales v so its magnitude never exceeds max.
func CapSpeed(v Vec, max float64) Vec {
	speed := v.Length()
	if speed <= max || speed == 0 {
		return v
	}
	return v.Scale(max / speed)
}

// Clamp clamps x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
