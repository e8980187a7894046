package metrics

import (
	"testing"

	"github.com/san-kum/letterdrop/internal/engine"
)

func frame(phase engine.Phase, t float64, angles, omegas []float64) engine.Frame {
	f := engine.Frame{Phase: phase, Time: t, Bodies: make([]engine.BodyFrame, len(angles))}
	for i := range angles {
		f.Bodies[i] = engine.BodyFrame{Angle: angles[i], Omega: omegas[i]}
	}
	return f
}

func TestSwingAmplitude(t *testing.T) {
	m := NewSwingAmplitude()
	m.Observe(frame(engine.PhaseIdle, 0, []float64{0.1, -0.4}, []float64{0, 0}))
	m.Observe(frame(engine.PhaseIdle, 1, []float64{0.2, 0.3}, []float64{0, 0}))
	if m.Value() != 0.4 {
		t.Errorf("expected 0.4, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("reset should zero the metric, got %f", m.Value())
	}
}

func TestSwingEnergy(t *testing.T) {
	m := NewSwingEnergy()
	if m.Value() != 0 {
		t.Error("empty metric should read zero")
	}
	m.Observe(frame(engine.PhaseIdle, 0, []float64{0, 0}, []float64{1, 1}))
	m.Observe(frame(engine.PhaseIdle, 1, []float64{0, 0}, []float64{3, 0}))
	// Frame sums are 2 and 9; mean is 5.5.
	if m.Value() != 5.5 {
		t.Errorf("expected 5.5, got %f", m.Value())
	}
}

func TestSettleTime(t *testing.T) {
	m := NewSettleTime(0.05)
	m.Observe(frame(engine.PhaseTransitioning, 1, []float64{0}, []float64{0.01}))
	if m.Value() != -1 {
		t.Error("should not settle before idle")
	}
	m.Observe(frame(engine.PhaseIdle, 2, []float64{0}, []float64{0.2}))
	if m.Value() != -1 {
		t.Error("should not settle while moving")
	}
	m.Observe(frame(engine.PhaseIdle, 3, []float64{0}, []float64{0.01}))
	if m.Value() != 3 {
		t.Errorf("expected settle at t=3, got %f", m.Value())
	}
	// First settle wins.
	m.Observe(frame(engine.PhaseIdle, 4, []float64{0}, []float64{0.01}))
	if m.Value() != 3 {
		t.Errorf("settle time moved to %f", m.Value())
	}
}
