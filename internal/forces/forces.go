// Package forces computes the angular accelerations and impulses acting
// on a suspended letter: gravity restoring torque, linear damping,
// multi-harmonic wind, pointer repulsion, and neighbor collision
// response. Everything here is a pure function of its arguments so the
// model can be exercised in isolation.
package forces

import (
	"math"

	"github.com/san-kum/letterdrop/internal/ease"
)

const (
	// MaxStepDt caps the integration slice so a stalled frame cannot
	// inject a destabilizing dt.
	MaxStepDt = 1.0 / 30.0

	// Restitution applied when the soft angular clamp fires.
	clampRestitution = 0.35
)

// Harmonic is one sinusoidal component of the wind model.
type Harmonic struct {
	Amplitude float64
	Frequency float64
	PhaseMul  float64
}

// DefaultWind returns the three-harmonic wind table. The frequencies are
// non-commensurate so the sum never visibly repeats, and the phase
// multipliers decorrelate bodies that share a frequency.
func DefaultWind() []Harmonic {
	return []Harmonic{
		{Amplitude: 0.45, Frequency: 0.61, PhaseMul: 1.0},
		{Amplitude: 0.28, Frequency: 1.31, PhaseMul: 1.7},
		{Amplitude: 0.15, Frequency: 2.17, PhaseMul: 2.3},
	}
}

// Gravity returns the restoring angular acceleration pulling a body back
// toward straight down.
func Gravity(theta, ropeLen, mass, g float64) float64 {
	if ropeLen <= 0 || mass <= 0 {
		return 0
	}
	return -(g / ropeLen) * math.Sin(theta) / mass
}

// Damping returns the linear velocity-opposing acceleration.
func Damping(omega, coeff float64) float64 {
	return -coeff * omega
}

// Wind evaluates the harmonic table at simulation time t for a body with
// the given phase offset. Heavier bodies respond less; scale folds in
// the device-class and scroll attenuation.
func Wind(t, windPhase, mass, scale float64, table []Harmonic) float64 {
	if mass <= 0 {
		return 0
	}
	sum := 0.0
	for _, h := range table {
		sum += h.Amplitude * math.Sin(h.Frequency*t+h.PhaseMul*windPhase)
	}
	return sum / mass * scale
}

// PointerRepulsion returns the angular acceleration pushing a bob away
// from the pointer. Zero outside the interaction radius. The radial push
// is projected onto the swing tangent, which is the only direction a
// pendulum can actually move.
func PointerRepulsion(bobX, bobY, pointerX, pointerY, theta, mass, ropeLen, radius, strength float64) float64 {
	if mass <= 0 || ropeLen <= 0 || radius <= 0 {
		return 0
	}
	dx := bobX - pointerX
	dy := bobY - pointerY
	dist := math.Hypot(dx, dy)
	if dist >= radius || dist < 1e-6 {
		return 0
	}
	falloff := 1 - dist/radius
	mag := strength * falloff * falloff
	// Tangent of the swing arc at the bob, unit length.
	tx := math.Cos(theta)
	ty := -math.Sin(theta)
	tangential := (dx/dist)*tx + (dy/dist)*ty
	return mag * tangential / (mass * ropeLen)
}

// CollisionImpulse returns the angular-velocity kick for a body whose
// horizontal gap to a neighbor has dropped below minGap. The sign is the
// caller's: positive pushes the body toward positive angle.
func CollisionImpulse(gap, minGap, mass, strength float64) float64 {
	if mass <= 0 || gap >= minGap {
		return 0
	}
	return strength * (minGap - gap) / mass
}

// MinGap is the required center distance for two adjacent glyphs.
func MinGap(widthA, widthB, clearance float64) float64 {
	return widthA/2 + widthB/2 + clearance
}

// RetractProgress maps a scroll offset to [0, 1] over the retraction
// range (a fraction of the viewport height).
func RetractProgress(scroll, viewportH, rangeFrac float64) float64 {
	if scroll <= 0 || viewportH <= 0 || rangeFrac <= 0 {
		return 0
	}
	return ease.Clamp01(scroll / (viewportH * rangeFrac))
}

// EffectiveRopeLength shortens the base rope length as the user scrolls
// away, easing out toward minLen. Non-increasing in the scroll offset,
// equal to base at offset zero and to minLen past the retraction range.
func EffectiveRopeLength(base, scroll, viewportH, minLen, rangeFrac float64) float64 {
	if base <= minLen {
		return base
	}
	p := RetractProgress(scroll, viewportH, rangeFrac)
	if p == 0 {
		return base
	}
	return ease.Lerp(base, minLen, ease.CubicOut(p))
}

// MaxSwing returns the soft angular clamp for the current retraction
// progress: ±π/3 unscrolled, tightening to ±π/6 fully retracted.
func MaxSwing(retract float64) float64 {
	return ease.Lerp(math.Pi/3, math.Pi/6, ease.Clamp01(retract))
}

// Integrate advances one body by semi-implicit Euler: velocity first,
// then a multiplicative drag, then position. dt is clamped to MaxStepDt.
// If the new angle exceeds maxAngle the body is pinned to the clamp and
// its velocity inverted and attenuated, a soft stop rather than a wall.
func Integrate(theta, omega, alpha, dt, drag, maxAngle float64) (float64, float64) {
	if dt > MaxStepDt {
		dt = MaxStepDt
	}
	omega += alpha * dt
	omega *= 1 - drag
	theta += omega * dt
	if theta > maxAngle {
		theta = maxAngle
		omega = -omega * clampRestitution
	} else if theta < -maxAngle {
		theta = -maxAngle
		omega = -omega * clampRestitution
	}
	return theta, omega
}

// ClampDt bounds a raw frame delta to the stable integration range.
func ClampDt(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxStepDt {
		return MaxStepDt
	}
	return dt
}
