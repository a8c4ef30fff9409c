package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from toward to by factor t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Abs returns |v|.
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
