package mathutil

// IntAbs returns |x|.
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IntSign collapses x to -1, 0 or 1. Used to turn a tile delta into a unit step.
func IntSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IntClamp limits x to [lo, hi].
func IntClamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
