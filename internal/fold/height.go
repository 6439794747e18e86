package fold

// Interpolator maps linear link progress in [0,1] to eased progress.
type Interpolator func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 {
	return t
}

// Decelerate starts fast and slows to a stop: 1 - (1-t)^2.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// HeightAt returns the container height at progress between from and to.
// Progress 1 (or beyond) returns to exactly so the last frame never drifts.
func HeightAt(from, to int, progress float64) int {
	if progress >= 1 {
		return to
	}
	if progress <= 0 {
		return from
	}
	return int(float64(from) + float64(to-from)*progress)
}
