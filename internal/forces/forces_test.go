package forces

import (
	"math"
	"testing"
)

func TestGravityEquilibrium(t *testing.T) {
	if a := Gravity(0, 200, 1.0, 900); math.Abs(a) > 1e-12 {
		t.Errorf("expected zero torque at rest, got %f", a)
	}
}

func TestGravityRestores(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  float64 // sign of the acceleration
	}{
		{"positive angle pulls back", 0.5, -1},
		{"negative angle pulls forward", -0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Gravity(tt.theta, 200, 1.0, 900)
			if a*tt.want <= 0 {
				t.Errorf("expected sign %f, got %f", tt.want, a)
			}
		})
	}
}

func TestGravityMassScaling(t *testing.T) {
	light := Gravity(0.4, 200, 0.5, 900)
	heavy := Gravity(0.4, 200, 2.0, 900)
	if math.Abs(light) <= math.Abs(heavy) {
		t.Errorf("lighter body should respond more: light=%f heavy=%f", light, heavy)
	}
}

func TestGravityDegenerate(t *testing.T) {
	if a := Gravity(0.5, 0, 1, 900); a != 0 {
		t.Errorf("zero rope length should yield zero, got %f", a)
	}
	if a := Gravity(0.5, 200, 0, 900); a != 0 {
		t.Errorf("zero mass should yield zero, got %f", a)
	}
}

func TestDampingOpposesVelocity(t *testing.T) {
	if a := Damping(2.0, 0.9); a >= 0 {
		t.Errorf("expected negative, got %f", a)
	}
	if a := Damping(-2.0, 0.9); a <= 0 {
		t.Errorf("expected positive, got %f", a)
	}
}

func TestWindBounded(t *testing.T) {
	table := DefaultWind()
	bound := 0.0
	for _, h := range table {
		bound += h.Amplitude
	}
	for i := 0; i < 2000; i++ {
		tm := float64(i) * 0.037
		a := Wind(tm, 1.3, 1.0, 1.0, table)
		if math.Abs(a) > bound+1e-9 {
			t.Fatalf("wind %f exceeds amplitude bound %f at t=%f", a, bound, tm)
		}
	}
}

func TestWindDecorrelated(t *testing.T) {
	table := DefaultWind()
	same := true
	for i := 0; i < 100; i++ {
		tm := float64(i) * 0.1
		if Wind(tm, 0, 1, 1, table) != Wind(tm, 2.4, 1, 1, table) {
			same = false
			break
		}
	}
	if same {
		t.Error("bodies with different wind phases should not move in lockstep")
	}
}

func TestPointerRepulsionRadius(t *testing.T) {
	// Pointer far outside the radius: no force.
	if a := PointerRepulsion(0, 200, 500, 200, 0, 1, 200, 150, 1200); a != 0 {
		t.Errorf("expected zero outside radius, got %f", a)
	}
	// Pointer just left of the bob pushes it right (positive angle).
	a := PointerRepulsion(0, 200, -40, 200, 0, 1, 200, 150, 1200)
	if a <= 0 {
		t.Errorf("expected push away from pointer, got %f", a)
	}
}

func TestPointerRepulsionFalloff(t *testing.T) {
	near := PointerRepulsion(0, 200, -20, 200, 0, 1, 200, 150, 1200)
	far := PointerRepulsion(0, 200, -120, 200, 0, 1, 200, 150, 1200)
	if near <= far {
		t.Errorf("closer pointer should push harder: near=%f far=%f", near, far)
	}
}

func TestCollisionImpulse(t *testing.T) {
	if v := CollisionImpulse(80, 70, 1.0, 0.015); v != 0 {
		t.Errorf("no impulse without overlap, got %f", v)
	}
	v := CollisionImpulse(50, 70, 1.0, 0.015)
	if v <= 0 {
		t.Errorf("expected positive impulse magnitude, got %f", v)
	}
	heavy := CollisionImpulse(50, 70, 2.0, 0.015)
	if heavy >= v {
		t.Errorf("heavier body should receive a smaller kick: %f vs %f", heavy, v)
	}
}

func TestEffectiveRopeLengthEndpoints(t *testing.T) {
	base, minLen, viewportH := 200.0, 70.0, 800.0
	if got := EffectiveRopeLength(base, 0, viewportH, minLen, 0.6); got != base {
		t.Errorf("unscrolled length should be base, got %f", got)
	}
	if got := EffectiveRopeLength(base, viewportH, viewportH, minLen, 0.6); math.Abs(got-minLen) > 1e-9 {
		t.Errorf("past retraction range length should be min, got %f", got)
	}
}

func TestEffectiveRopeLengthMonotonic(t *testing.T) {
	base, minLen, viewportH := 200.0, 70.0, 800.0
	prev := EffectiveRopeLength(base, 0, viewportH, minLen, 0.6)
	for scroll := 5.0; scroll <= 900; scroll += 5 {
		cur := EffectiveRopeLength(base, scroll, viewportH, minLen, 0.6)
		if cur > prev+1e-12 {
			t.Fatalf("length increased from %f to %f at scroll %f", prev, cur, scroll)
		}
		prev = cur
	}
}

func TestIntegrateClamp(t *testing.T) {
	maxAngle := math.Pi / 3
	theta, omega := Integrate(0, 1e6, 0, 1.0/60, 0.004, maxAngle)
	if math.Abs(theta) > maxAngle {
		t.Errorf("angle escaped clamp: %f", theta)
	}
	if omega >= 0 {
		t.Errorf("velocity should invert on clamp, got %f", omega)
	}
	if math.Abs(omega) >= 1e6 {
		t.Errorf("velocity should attenuate on clamp, got %f", omega)
	}
}

func TestIntegrateDtClamped(t *testing.T) {
	// A stalled frame delivers a huge dt; the step must behave as if it
	// were the maximum slice.
	t1, o1 := Integrate(0.1, 0.5, 1.0, 5.0, 0.004, math.Pi/3)
	t2, o2 := Integrate(0.1, 0.5, 1.0, MaxStepDt, 0.004, math.Pi/3)
	if t1 != t2 || o1 != o2 {
		t.Errorf("large dt not clamped: (%f,%f) vs (%f,%f)", t1, o1, t2, o2)
	}
}

func TestMaxSwingTightensWhenScrolled(t *testing.T) {
	if MaxSwing(0) != math.Pi/3 {
		t.Errorf("unscrolled clamp should be pi/3")
	}
	if got := MaxSwing(1); math.Abs(got-math.Pi/6) > 1e-9 {
		t.Errorf("fully retracted clamp should be pi/6, got %f", got)
	}
	if MaxSwing(0.5) >= MaxSwing(0) {
		t.Error("clamp should tighten with retraction")
	}
}

func TestClampDt(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0.001, 0.001},
		{1.0, MaxStepDt},
	}
	for _, tt := range tests {
		if got := ClampDt(tt.in); got != tt.want {
			t.Errorf("ClampDt(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
