// Package ease provides the easing curves used by the phase choreography
// and the scroll-driven rope retraction.
package ease

// Clamp01 restricts t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CubicIn accelerates from zero velocity. Used for the drop phase.
func CubicIn(t float64) float64 {
	t = Clamp01(t)
	return t * t * t
}

// CubicOut decelerates to zero velocity. Used for scroll retraction.
func CubicOut(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// CubicInOut accelerates then decelerates. Used for the transition blend.
func CubicInOut(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// SettleInOut is the rise-phase curve: a quintic smoothstep whose long
// deceleration tail reads as the rope settling into place.
func SettleInOut(t float64) float64 {
	t = Clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// Smoothstep is the classic cubic hermite 3t²-2t³. Shapes the neon glow
// ramp.
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
